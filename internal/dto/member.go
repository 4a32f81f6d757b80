package dto

import (
	apierrors "github.com/pmapi/project-management-api/internal/errors"
	"github.com/pmapi/project-management-api/internal/models"
)

// MemberDTO represents a project membership in API responses.
type MemberDTO struct {
	ID      uint64             `json:"id"`
	Project uint64             `json:"project"`
	User    uint64             `json:"user"`
	Role    models.ProjectRole `json:"role"`
}

// ToMemberDTO converts a ProjectMember model to MemberDTO.
func ToMemberDTO(member models.ProjectMember) MemberDTO {
	return MemberDTO{
		ID:      member.ID,
		Project: member.ProjectID,
		User:    member.UserID,
		Role:    member.Role,
	}
}

// ToMemberDTOs converts a slice of ProjectMember models.
func ToMemberDTOs(members []models.ProjectMember) []MemberDTO {
	out := make([]MemberDTO, len(members))
	for i, m := range members {
		out[i] = ToMemberDTO(m)
	}
	return out
}

// MemberCreateInput holds the validated creation fields.
type MemberCreateInput struct {
	Project uint64
	User    uint64
	Role    models.ProjectRole
}

// ParseMemberCreate validates a membership creation body.
func ParseMemberCreate(raw map[string]any) (*MemberCreateInput, apierrors.ValidationErrors) {
	errs := apierrors.ValidationErrors{}
	in := &MemberCreateInput{}

	if v, ok := raw["project"]; ok {
		if v == nil {
			errs.Add("project", apierrors.MsgNull)
		} else if id, ok := asPK(v, "project", errs); ok {
			in.Project = id
		}
	} else {
		errs.Add("project", apierrors.MsgRequired)
	}

	if v, ok := raw["user"]; ok {
		if v == nil {
			errs.Add("user", apierrors.MsgNull)
		} else if id, ok := asPK(v, "user", errs); ok {
			in.User = id
		}
	} else {
		errs.Add("user", apierrors.MsgRequired)
	}

	if v, ok := raw["role"]; ok {
		if s, ok := asChoice(v, "role", models.ValidProjectRole, errs); ok {
			in.Role = models.ProjectRole(s)
		}
	} else {
		errs.Add("role", apierrors.MsgRequired)
	}

	if !errs.Empty() {
		return nil, errs
	}
	return in, nil
}

// MemberUpdateInput holds the fields present in a partial membership update.
type MemberUpdateInput struct {
	Project *uint64
	User    *uint64
	Role    *models.ProjectRole
}

// ParseMemberUpdate validates a partial update body.
func ParseMemberUpdate(raw map[string]any) (*MemberUpdateInput, apierrors.ValidationErrors) {
	errs := apierrors.ValidationErrors{}
	in := &MemberUpdateInput{}

	if v, ok := raw["project"]; ok {
		if v == nil {
			errs.Add("project", apierrors.MsgNull)
		} else if id, ok := asPK(v, "project", errs); ok {
			in.Project = &id
		}
	}
	if v, ok := raw["user"]; ok {
		if v == nil {
			errs.Add("user", apierrors.MsgNull)
		} else if id, ok := asPK(v, "user", errs); ok {
			in.User = &id
		}
	}
	if v, ok := raw["role"]; ok {
		if s, ok := asChoice(v, "role", models.ValidProjectRole, errs); ok {
			role := models.ProjectRole(s)
			in.Role = &role
		}
	}

	if !errs.Empty() {
		return nil, errs
	}
	return in, nil
}
