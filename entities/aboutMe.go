package entities

import (
	"time"

	"gorm.io/gorm"
)

// AboutMe holds a user's about section. At most one logical row exists per
// user; saving replaces any previous row.
type AboutMe struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"index" json:"user_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Bio       string `json:"bio"`
	Skills    string `json:"skills"`
	Education string `json:"education"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (AboutMe) TableName() string { return "about_me" }

func (a *AboutMe) BeforeCreate(tx *gorm.DB) (err error) {
	a.CreatedAt = time.Now().Format(time.RFC3339)
	a.UpdatedAt = a.CreatedAt
	return
}
