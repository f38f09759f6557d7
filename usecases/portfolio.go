package usecases

import (
	"strings"

	"portfolio-server/entities"
	"portfolio-server/repositories"
)

type PortfolioUseCase struct {
	AboutMeRepo repositories.AboutMeRepository
	ContactRepo repositories.ContactRepository
	ProjectRepo repositories.ProjectRepository
}

func NewPortfolioUseCase(aboutRepo repositories.AboutMeRepository, contactRepo repositories.ContactRepository, projectRepo repositories.ProjectRepository) *PortfolioUseCase {
	return &PortfolioUseCase{
		AboutMeRepo: aboutRepo,
		ContactRepo: contactRepo,
		ProjectRepo: projectRepo,
	}
}

// Preview aggregates every section of one user's portfolio.
type Preview struct {
	About    *entities.AboutMe
	Projects []entities.Project
	Contact  *entities.Contact
}

// GetAboutMe returns the user's about section, or nil when none is saved yet.
func (uc *PortfolioUseCase) GetAboutMe(userID uint) *entities.AboutMe {
	about, err := uc.AboutMeRepo.GetByUserID(userID)
	if err != nil {
		return nil
	}
	return about
}

// SaveAboutMe replaces the user's about section with the submitted fields.
func (uc *PortfolioUseCase) SaveAboutMe(userID uint, name, role, bio, skills, education string) error {
	name = strings.TrimSpace(name)
	role = strings.TrimSpace(role)
	bio = strings.TrimSpace(bio)
	skills = strings.TrimSpace(skills)
	education = strings.TrimSpace(education)

	if name == "" || role == "" || bio == "" || skills == "" || education == "" {
		return ErrFieldsRequired
	}

	return uc.AboutMeRepo.ReplaceForUser(&entities.AboutMe{
		UserID:    userID,
		Name:      name,
		Role:      role,
		Bio:       bio,
		Skills:    skills,
		Education: education,
	})
}

// GetContact returns the user's contact section, or nil when none is saved yet.
func (uc *PortfolioUseCase) GetContact(userID uint) *entities.Contact {
	contact, err := uc.ContactRepo.GetByUserID(userID)
	if err != nil {
		return nil
	}
	return contact
}

// SaveContact replaces the user's contact section with the submitted fields.
func (uc *PortfolioUseCase) SaveContact(userID uint, email, phone, linkedin, github string) error {
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	linkedin = strings.TrimSpace(linkedin)
	github = strings.TrimSpace(github)

	if email == "" || phone == "" || linkedin == "" || github == "" {
		return ErrFieldsRequired
	}

	return uc.ContactRepo.ReplaceForUser(&entities.Contact{
		UserID:   userID,
		Email:    email,
		Phone:    phone,
		Linkedin: linkedin,
		Github:   github,
	})
}

// CreateProject adds a project to the user's portfolio.
func (uc *PortfolioUseCase) CreateProject(userID uint, projectName, description, github string) error {
	projectName = strings.TrimSpace(projectName)
	description = strings.TrimSpace(description)
	github = strings.TrimSpace(github)

	if projectName == "" || description == "" || github == "" {
		return ErrFieldsRequired
	}

	return uc.ProjectRepo.Create(&entities.Project{
		UserID:      userID,
		ProjectName: projectName,
		Description: description,
		Github:      github,
	})
}

// ListProjects returns the user's projects in insertion order.
func (uc *PortfolioUseCase) ListProjects(userID uint) ([]entities.Project, error) {
	return uc.ProjectRepo.GetByUserID(userID)
}

// GetOwnedProject loads a project only if it belongs to the given user.
func (uc *PortfolioUseCase) GetOwnedProject(projectID, userID uint) (*entities.Project, error) {
	project, err := uc.ProjectRepo.GetByID(projectID)
	if err != nil {
		return nil, ErrProjectNotFound
	}
	if project.UserID != userID {
		return nil, ErrNotOwner
	}
	return project, nil
}

// UpdateProject overwrites a project's fields after verifying the caller owns
// the row. An id alone is never enough to mutate.
func (uc *PortfolioUseCase) UpdateProject(projectID, userID uint, projectName, description, github string) error {
	project, err := uc.GetOwnedProject(projectID, userID)
	if err != nil {
		return err
	}

	projectName = strings.TrimSpace(projectName)
	description = strings.TrimSpace(description)
	github = strings.TrimSpace(github)

	if projectName == "" || description == "" || github == "" {
		return ErrFieldsRequired
	}

	project.ProjectName = projectName
	project.Description = description
	project.Github = github
	return uc.ProjectRepo.Update(project)
}

// DeleteProject removes a project after the same ownership check.
func (uc *PortfolioUseCase) DeleteProject(projectID, userID uint) error {
	if _, err := uc.GetOwnedProject(projectID, userID); err != nil {
		return err
	}
	return uc.ProjectRepo.Delete(projectID)
}

// GetPreview collects all sections for the public-facing preview page.
func (uc *PortfolioUseCase) GetPreview(userID uint) (*Preview, error) {
	projects, err := uc.ProjectRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	return &Preview{
		About:    uc.GetAboutMe(userID),
		Projects: projects,
		Contact:  uc.GetContact(userID),
	}, nil
}
