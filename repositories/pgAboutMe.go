package repositories

import (
	"portfolio-server/db"
	"portfolio-server/entities"

	"gorm.io/gorm"
)

type aboutMePgRepository struct {
	db db.Database
}

func NewAboutMePgRepository(database db.Database) AboutMeRepository {
	return &aboutMePgRepository{db: database}
}

func (r *aboutMePgRepository) GetByUserID(userID uint) (*entities.AboutMe, error) {
	var about entities.AboutMe
	err := r.db.GetDB().Where("user_id = ?", userID).First(&about).Error
	if err != nil {
		return nil, err
	}
	return &about, nil
}

// ReplaceForUser deletes any existing rows for the owner and inserts the new
// one in a single transaction, so a concurrent reader never sees the section
// missing between the delete and the insert.
func (r *aboutMePgRepository) ReplaceForUser(about *entities.AboutMe) error {
	return r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", about.UserID).Delete(&entities.AboutMe{}).Error; err != nil {
			return err
		}
		return tx.Create(about).Error
	})
}
