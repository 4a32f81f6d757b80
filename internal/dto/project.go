package dto

import (
	"time"

	apierrors "github.com/pmapi/project-management-api/internal/errors"
	"github.com/pmapi/project-management-api/internal/models"
)

// ProjectDTO represents a project in API responses; owner is the bare user id.
type ProjectDTO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Owner       uint64    `json:"owner"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToProjectDTO converts a Project model to ProjectDTO.
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Owner:       project.OwnerID,
		CreatedAt:   project.CreatedAt,
	}
}

// ToProjectDTOs converts a slice of Project models.
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	out := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		out[i] = ToProjectDTO(p)
	}
	return out
}

// ProjectCreateInput holds the validated creation fields. The owner is never
// taken from the body; the controller forces it to the authenticated caller.
type ProjectCreateInput struct {
	Name        string
	Description string
}

// ParseProjectCreate validates a project creation body.
func ParseProjectCreate(raw map[string]any) (*ProjectCreateInput, apierrors.ValidationErrors) {
	errs := apierrors.ValidationErrors{}
	in := &ProjectCreateInput{}

	if v, ok := raw["name"]; ok {
		if s, ok := asString(v, "name", false, errs); ok {
			in.Name = s
		}
	} else {
		errs.Add("name", apierrors.MsgRequired)
	}

	if v, ok := raw["description"]; ok {
		if s, ok := asString(v, "description", false, errs); ok {
			in.Description = s
		}
	} else {
		errs.Add("description", apierrors.MsgRequired)
	}

	if !errs.Empty() {
		return nil, errs
	}
	return in, nil
}

// ProjectUpdateInput holds the fields present in a partial project update.
// Owner may be reassigned here; existence is checked by the service.
type ProjectUpdateInput struct {
	Name        *string
	Description *string
	Owner       *uint64
}

// ParseProjectUpdate validates a partial update body.
func ParseProjectUpdate(raw map[string]any) (*ProjectUpdateInput, apierrors.ValidationErrors) {
	errs := apierrors.ValidationErrors{}
	in := &ProjectUpdateInput{}

	if v, ok := raw["name"]; ok {
		if s, ok := asString(v, "name", false, errs); ok {
			in.Name = &s
		}
	}
	if v, ok := raw["description"]; ok {
		if s, ok := asString(v, "description", false, errs); ok {
			in.Description = &s
		}
	}
	if v, ok := raw["owner"]; ok {
		if v == nil {
			errs.Add("owner", apierrors.MsgNull)
		} else if id, ok := asPK(v, "owner", errs); ok {
			in.Owner = &id
		}
	}

	if !errs.Empty() {
		return nil, errs
	}
	return in, nil
}
