package repositories

import (
	"portfolio-server/db"
	"portfolio-server/entities"

	"gorm.io/gorm"
)

type contactPgRepository struct {
	db db.Database
}

func NewContactPgRepository(database db.Database) ContactRepository {
	return &contactPgRepository{db: database}
}

func (r *contactPgRepository) GetByUserID(userID uint) (*entities.Contact, error) {
	var contact entities.Contact
	err := r.db.GetDB().Where("user_id = ?", userID).First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// ReplaceForUser mirrors the about_me replace: delete plus insert inside one
// transaction keyed by the owning user.
func (r *contactPgRepository) ReplaceForUser(contact *entities.Contact) error {
	return r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", contact.UserID).Delete(&entities.Contact{}).Error; err != nil {
			return err
		}
		return tx.Create(contact).Error
	})
}
