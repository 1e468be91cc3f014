package models

import (
	"time"

	"gorm.io/gorm"
)

// JobPosting represents a job opening shared with students
type JobPosting struct {
	gorm.Model
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Description string     `json:"description" gorm:"type:text"`
	SalaryRange string     `json:"salary_range"`
	ApplyURL    string     `json:"apply_url"`
	PostedBy    uint       `json:"posted_by" gorm:"index;not null"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	ExpiresAt   *time.Time `json:"expires_at"`
	IsDeleted   bool       `gorm:"default:false"`
}
