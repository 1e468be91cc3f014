package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Enrollment statuses
const (
	EnrollmentPending  = "PENDING"
	EnrollmentApproved = "APPROVED"
	EnrollmentRejected = "REJECTED"
)

// QuizScore is the best recorded result for one quiz inside a progress record
type QuizScore struct {
	Score       int       `json:"score"`
	MaxScore    int       `json:"max_score"`
	CompletedAt time.Time `json:"completed_at"`
}

// ProgressRecord is owned exclusively by its enrollment and mutated only
// through the progress service. CompletionPercentage is derived; nothing
// outside services/progress may write it.
type ProgressRecord struct {
	CompletedLessons     datatypes.JSONSlice[uint]              `json:"completed_lessons"`
	CompletedModules     datatypes.JSONSlice[int]               `json:"completed_modules"`
	QuizScores           datatypes.JSONType[map[uint]QuizScore] `json:"quiz_scores"`
	CompletionPercentage int                                    `json:"completion_percentage" gorm:"default:0"`
	LastAccessedAt       *time.Time                             `json:"last_accessed_at"`
}

// Enrollment tracks a user's enrollment in a course with progress
type Enrollment struct {
	gorm.Model
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	CourseID  uint           `json:"course_id" gorm:"index;not null"`
	Status    string         `json:"status" gorm:"default:'PENDING'"` // PENDING, APPROVED, REJECTED
	Progress  ProgressRecord `json:"progress" gorm:"embedded;embeddedPrefix:progress_"`
	IsDeleted bool           `gorm:"default:false"`
}
