package entities

import (
	"time"

	"gorm.io/gorm"
)

// Project is one portfolio project entry. A user may have any number of them.
type Project struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"index" json:"user_id"`
	ProjectName string `json:"project_name"`
	Description string `json:"description"`
	Github      string `json:"github"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) BeforeCreate(tx *gorm.DB) (err error) {
	p.CreatedAt = time.Now().Format(time.RFC3339)
	p.UpdatedAt = p.CreatedAt
	return
}
