package course

import (
	"time"

	"gorm.io/gorm"
)

// Assignment submission statuses
const (
	SubmissionSubmitted = "SUBMITTED"
	SubmissionLate      = "LATE"
	SubmissionGraded    = "GRADED"
)

// Assignment represents coursework with a due date. The due date only marks
// submissions as late; it never rejects them.
type Assignment struct {
	gorm.Model
	CourseID    uint       `json:"course_id" gorm:"index;not null"`
	Title       string     `json:"title"`
	Description string     `json:"description" gorm:"type:text"`
	DueDate     *time.Time `json:"due_date"`
	MaxPoints   int        `json:"max_points" gorm:"default:100"`
	IsPublished bool       `json:"is_published" gorm:"default:false"`
	IsDeleted   bool       `gorm:"default:false"`
}

// AssignmentSubmission is a student's submission for an assignment
type AssignmentSubmission struct {
	gorm.Model
	AssignmentID  uint      `json:"assignment_id" gorm:"index;not null"`
	CourseID      uint      `json:"course_id" gorm:"index;not null"`
	UserID        uint      `json:"user_id" gorm:"index;not null"`
	Content       string    `json:"content" gorm:"type:text"`
	AttachmentURL string    `json:"attachment_url"`
	SubmittedAt   time.Time `json:"submitted_at"`
	Status        string    `json:"status" gorm:"default:'SUBMITTED'"` // SUBMITTED, LATE, GRADED
	Grade         *int      `json:"grade"`
	Feedback      string    `json:"feedback" gorm:"type:text"`
	IsDeleted     bool      `gorm:"default:false"`
}
