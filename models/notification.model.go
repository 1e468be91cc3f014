package models

import "gorm.io/gorm"

// Notification types fanned out by controllers and the reminder scheduler
const (
	NotifyEnrollmentApproved  = "ENROLLMENT_APPROVED"
	NotifyEnrollmentRejected  = "ENROLLMENT_REJECTED"
	NotifyQuizPassed          = "QUIZ_PASSED"
	NotifyCourseCompleted     = "COURSE_COMPLETED"
	NotifyAssignmentGraded    = "ASSIGNMENT_GRADED"
	NotifyCertificateIssued   = "CERTIFICATE_ISSUED"
	NotifyCertificateRejected = "CERTIFICATE_REJECTED"
	NotifyInactivityReminder  = "INACTIVITY_REMINDER"
	NotifyDiscussionReply     = "DISCUSSION_REPLY"
)

// Notification is an in-app notification row for a single user
type Notification struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read" gorm:"default:false"`
	IsDeleted bool   `gorm:"default:false"`
}
