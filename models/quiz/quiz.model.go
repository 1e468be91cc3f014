package quiz

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question types
const (
	QuestionMultipleChoice = "MULTIPLE_CHOICE"
	QuestionTrueFalse      = "TRUE_FALSE"
	QuestionShortAnswer    = "SHORT_ANSWER"
)

// Quiz represents a quiz attached to a course. PassingScore is a percentage
// threshold (0-100); TimeLimit is advisory and enforced client-side only.
type Quiz struct {
	gorm.Model
	CourseID     uint   `json:"course_id" gorm:"index;not null"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	PassingScore int    `json:"passing_score" gorm:"default:60"` // percentage 0-100
	TimeLimit    int    `json:"time_limit" gorm:"default:0"`     // minutes, 0 = unlimited
	IsActive     bool   `json:"is_active" gorm:"default:false"`
	IsDeleted    bool   `gorm:"default:false"`

	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
	Attempts  []Attempt  `json:"attempts,omitempty" gorm:"foreignKey:QuizID"`
}

// Question holds one quiz question. The answer key is either CorrectIndex
// (MULTIPLE_CHOICE, TRUE_FALSE) or CorrectText (SHORT_ANSWER), selected by
// QuestionType. Both fields must be omitted from student-facing payloads.
type Question struct {
	gorm.Model
	QuizID       uint                        `json:"quiz_id" gorm:"index;not null"`
	Prompt       string                      `json:"prompt" gorm:"type:text"`
	QuestionType string                      `json:"question_type" gorm:"default:'MULTIPLE_CHOICE'"`
	Options      datatypes.JSONSlice[string] `json:"options"`
	CorrectIndex *int                        `json:"correct_index,omitempty"`
	CorrectText  *string                     `json:"correct_text,omitempty"`
	Points       int                         `json:"points" gorm:"default:1"`
	OrderIndex   int                         `json:"order_index" gorm:"default:0"`
	IsDeleted    bool                        `gorm:"default:false"`
}

// Sanitize removes the answer key from a question for student-facing views
func (q *Question) Sanitize() {
	q.CorrectIndex = nil
	q.CorrectText = nil
}
