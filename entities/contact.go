package entities

import (
	"time"

	"gorm.io/gorm"
)

// Contact holds a user's contact section, one logical row per user like AboutMe.
type Contact struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"index" json:"user_id"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Linkedin  string `json:"linkedin"`
	Github    string `json:"github"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (Contact) TableName() string { return "contact" }

func (c *Contact) BeforeCreate(tx *gorm.DB) (err error) {
	c.CreatedAt = time.Now().Format(time.RFC3339)
	c.UpdatedAt = c.CreatedAt
	return
}
