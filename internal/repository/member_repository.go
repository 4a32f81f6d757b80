package repository

import (
	"github.com/pmapi/project-management-api/internal/models"
	"gorm.io/gorm"
)

// GormMemberRepository is a GORM implementation of MemberRepository
type GormMemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &GormMemberRepository{db: db}
}

// Create creates a new membership
func (r *GormMemberRepository) Create(member *models.ProjectMember) error {
	return r.db.Create(member).Error
}

// FindByID finds a membership by ID
func (r *GormMemberRepository) FindByID(id uint64) (*models.ProjectMember, error) {
	var member models.ProjectMember
	if err := r.db.First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// List retrieves memberships matching the filter in the store's default order
func (r *GormMemberRepository) List(filter MemberFilter) ([]models.ProjectMember, error) {
	var members []models.ProjectMember

	query := r.db.Model(&models.ProjectMember{})
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}

	if err := query.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Update persists the given membership record
func (r *GormMemberRepository) Update(member *models.ProjectMember) error {
	return r.db.Save(member).Error
}

// Delete removes a membership
func (r *GormMemberRepository) Delete(id uint64) error {
	return r.db.Delete(&models.ProjectMember{}, id).Error
}
