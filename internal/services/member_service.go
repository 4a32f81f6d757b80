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

var ErrMemberNotFound = errors.New("project member not found")

// MemberService handles project membership business logic.
type MemberService struct {
	memberRepo  repository.MemberRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewMemberService creates a new MemberService.
func NewMemberService(memberRepo repository.MemberRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *MemberService {
	return &MemberService{
		memberRepo:  memberRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// Create adds a user to a project. Duplicate (project, user) pairs are not
// rejected.
func (s *MemberService) Create(in dto.MemberCreateInput) (*models.ProjectMember, error) {
	if err := s.checkProject(in.Project); err != nil {
		return nil, err
	}
	if err := s.checkUser(in.User); err != nil {
		return nil, err
	}

	member := &models.ProjectMember{
		ProjectID: in.Project,
		UserID:    in.User,
		Role:      in.Role,
	}

	if err := s.memberRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create project member: %w", err)
	}
	return member, nil
}

// List retrieves memberships, optionally filtered to a single project.
func (s *MemberService) List(projectID *uint64) ([]models.ProjectMember, error) {
	return s.memberRepo.List(repository.MemberFilter{ProjectID: projectID})
}

// Get retrieves a membership by ID.
func (s *MemberService) Get(id uint64) (*models.ProjectMember, error) {
	member, err := s.memberRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find project member: %w", err)
	}
	return member, nil
}

// Update applies a partial update to a membership.
func (s *MemberService) Update(id uint64, in dto.MemberUpdateInput) (*models.ProjectMember, error) {
	member, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.Project != nil {
		if err := s.checkProject(*in.Project); err != nil {
			return nil, err
		}
		member.ProjectID = *in.Project
	}
	if in.User != nil {
		if err := s.checkUser(*in.User); err != nil {
			return nil, err
		}
		member.UserID = *in.User
	}
	if in.Role != nil {
		member.Role = *in.Role
	}

	if err := s.memberRepo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update project member: %w", err)
	}
	return member, nil
}

// Delete removes a membership after confirming it exists.
func (s *MemberService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.memberRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project member: %w", err)
	}
	return nil
}

func (s *MemberService) checkProject(id uint64) error {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierrors.NewFieldError("project", apierrors.MsgInvalidPK(id))
		}
		return fmt.Errorf("failed to check project: %w", err)
	}
	return nil
}

func (s *MemberService) checkUser(id uint64) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierrors.NewFieldError("user", apierrors.MsgInvalidPK(id))
		}
		return fmt.Errorf("failed to check user: %w", err)
	}
	return nil
}
