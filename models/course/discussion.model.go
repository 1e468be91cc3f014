package course

import "gorm.io/gorm"

// DiscussionThread is a course discussion topic opened by a student or admin
type DiscussionThread struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Title     string `json:"title"`
	Body      string `json:"body" gorm:"type:text"`
	IsPinned  bool   `json:"is_pinned" gorm:"default:false"`
	IsClosed  bool   `json:"is_closed" gorm:"default:false"`
	IsDeleted bool   `gorm:"default:false"`

	Replies []DiscussionReply `json:"replies,omitempty" gorm:"foreignKey:ThreadID"`
}

// DiscussionReply is a single reply within a thread
type DiscussionReply struct {
	gorm.Model
	ThreadID  uint   `json:"thread_id" gorm:"index;not null"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Body      string `json:"body" gorm:"type:text"`
	IsDeleted bool   `gorm:"default:false"`
}
