package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session maps an opaque token handed to the client to an authenticated user.
// The mapping lives server-side only; deleting the row invalidates the token.
type Session struct {
	Token     string `gorm:"primaryKey;type:varchar(36)" json:"token"`
	UserID    uint   `gorm:"index" json:"user_id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

func (Session) TableName() string { return "sessions" }

func (s *Session) BeforeCreate(tx *gorm.DB) (err error) {
	if s.Token == "" {
		s.Token = uuid.New().String()
	}
	s.CreatedAt = time.Now().Format(time.RFC3339)
	return
}
