package course

import (
	quizModels "lms/models/quiz"

	"gorm.io/gorm"
)

// Course statuses
const (
	StatusDraft    = "DRAFT"
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Course represents a learning course together with its owned sub-structures.
// Modules, quizzes and enrollments are loaded with the course when an
// operation needs the full aggregate (progress, grading).
type Course struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	CreatedBy    uint   `json:"created_by" gorm:"index"`
	Duration     int64  `json:"duration" gorm:"default:0"`     // duration in hours
	Status       string `json:"status" gorm:"default:'DRAFT'"` // DRAFT, ACTIVE, INACTIVE
	ThumbnailURL string `json:"thumbnail_url"`
	IsPublished  bool   `json:"is_published" gorm:"default:false"`
	IsDeleted    bool   `gorm:"default:false"`

	Modules     []Module          `json:"modules,omitempty" gorm:"foreignKey:CourseID"`
	Quizzes     []quizModels.Quiz `json:"quizzes,omitempty" gorm:"foreignKey:CourseID"`
	Enrollments []Enrollment      `json:"enrollments,omitempty" gorm:"foreignKey:CourseID"`
}
