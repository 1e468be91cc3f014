package course

import "gorm.io/gorm"

// Material content types
const (
	MaterialText  = "TEXT"
	MaterialVideo = "VIDEO"
	MaterialPDF   = "PDF"
	MaterialLink  = "LINK"
)

// Material represents a lesson item within a module. Required materials
// count toward the enrollment completion percentage.
type Material struct {
	gorm.Model
	ModuleID     uint   `json:"module_id" gorm:"index;not null"`
	CourseID     uint   `json:"course_id" gorm:"index;not null"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	MaterialType string `json:"material_type" gorm:"default:'TEXT'"` // TEXT, VIDEO, PDF, LINK
	TextContent  string `json:"text_content" gorm:"type:text"`       // For TEXT type
	ContentURL   string `json:"content_url"`                         // For VIDEO, PDF, LINK types
	IsRequired   bool   `json:"is_required" gorm:"default:true"`
	OrderIndex   int    `json:"order_index" gorm:"default:0"`
	IsPublished  bool   `json:"is_published" gorm:"default:false"`
	IsDeleted    bool   `gorm:"default:false"`
}
