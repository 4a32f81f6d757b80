package services

import (
	"errors"
	"fmt"

	"github.com/pmapi/project-management-api/internal/dto"
	apierrors "github.com/pmapi/project-management-api/internal/errors"
	"github.com/pmapi/project-management-api/internal/models"
	"github.com/pmapi/project-management-api/internal/repository"
	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project business logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// Create creates a project owned by the authenticated caller. Any owner
// value supplied by the client has already been discarded by the serializer.
func (s *ProjectService) Create(ownerID uint64, in dto.ProjectCreateInput) (*models.Project, error) {
	project := &models.Project{
		Name:        in.Name,
		Description: in.Description,
		OwnerID:     ownerID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// List retrieves all projects.
func (s *ProjectService) List() ([]models.Project, error) {
	return s.projectRepo.List()
}

// Get retrieves a project by ID.
func (s *ProjectService) Get(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// Update applies a partial update. A new owner must reference an existing
// user; created_at is never touched.
func (s *ProjectService) Update(id uint64, in dto.ProjectUpdateInput) (*models.Project, error) {
	project, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.Owner != nil {
		if _, err := s.userRepo.FindByID(*in.Owner); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierrors.NewFieldError("owner", apierrors.MsgInvalidPK(*in.Owner))
			}
			return nil, fmt.Errorf("failed to check owner: %w", err)
		}
		project.OwnerID = *in.Owner
	}
	if in.Name != nil {
		project.Name = *in.Name
	}
	if in.Description != nil {
		project.Description = *in.Description
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// Delete removes a project after confirming it exists. Dependent members,
// tasks and their comments are removed by the store's cascade rules.
func (s *ProjectService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.projectRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
