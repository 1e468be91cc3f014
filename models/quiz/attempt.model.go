package quiz

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Attempt statuses. Status is the authority on the attempt lifecycle;
// CompletedAt is informational.
const (
	AttemptInProgress = "IN_PROGRESS"
	AttemptCompleted  = "COMPLETED"
)

// AnswerRecord is one graded answer inside a completed attempt
type AnswerRecord struct {
	QuestionIndex int     `json:"question_index"`
	SelectedIndex *int    `json:"selected_index,omitempty"`
	Text          *string `json:"text,omitempty"`
	IsCorrect     bool    `json:"is_correct"`
	PointsEarned  int     `json:"points_earned"`
}

// Attempt represents one student's pass at a quiz. At most one IN_PROGRESS
// attempt per student exists at a time; a COMPLETED attempt is final and
// cannot be resubmitted.
type Attempt struct {
	gorm.Model
	QuizID      uint                               `json:"quiz_id" gorm:"index;not null"`
	UserID      uint                               `json:"user_id" gorm:"index;not null"`
	Status      string                             `json:"status" gorm:"default:'IN_PROGRESS'"` // IN_PROGRESS, COMPLETED
	Score       int                                `json:"score" gorm:"default:0"`
	MaxScore    int                                `json:"max_score" gorm:"default:0"`
	Answers     datatypes.JSONType[[]AnswerRecord] `json:"answers"`
	StartedAt   time.Time                          `json:"started_at"`
	CompletedAt *time.Time                         `json:"completed_at"`
	TimeSpent   int                                `json:"time_spent" gorm:"default:0"` // seconds
	Passed      bool                               `json:"passed" gorm:"default:false"`
	IsDeleted   bool                               `gorm:"default:false"`
}
