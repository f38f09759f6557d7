package repositories

import (
	"portfolio-server/db"
	"portfolio-server/entities"
	"time"
)

type projectPgRepository struct {
	db db.Database
}

func NewProjectPgRepository(database db.Database) ProjectRepository {
	return &projectPgRepository{db: database}
}

func (r *projectPgRepository) Create(project *entities.Project) error {
	return r.db.GetDB().Create(project).Error
}

func (r *projectPgRepository) GetByID(id uint) (*entities.Project, error) {
	var project entities.Project
	err := r.db.GetDB().Where("id = ?", id).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectPgRepository) GetByUserID(userID uint) ([]entities.Project, error) {
	var projects []entities.Project
	err := r.db.GetDB().Where("user_id = ?", userID).Order("id ASC").Find(&projects).Error
	return projects, err
}

func (r *projectPgRepository) Update(project *entities.Project) error {
	project.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(project).Error
}

func (r *projectPgRepository) Delete(id uint) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Project{}).Error
}
