package dto

import (
	"time"

	apierrors "github.com/pmapi/project-management-api/internal/errors"
	"github.com/pmapi/project-management-api/internal/models"
)

// CommentDTO represents a comment in API responses.
type CommentDTO struct {
	ID        uint64    `json:"id"`
	Content   string    `json:"content"`
	User      uint64    `json:"user"`
	Task      uint64    `json:"task"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCommentDTO converts a Comment model to CommentDTO.
func ToCommentDTO(comment models.Comment) CommentDTO {
	return CommentDTO{
		ID:        comment.ID,
		Content:   comment.Content,
		User:      comment.UserID,
		Task:      comment.TaskID,
		CreatedAt: comment.CreatedAt,
	}
}

// ToCommentDTOs converts a slice of Comment models.
func ToCommentDTOs(comments []models.Comment) []CommentDTO {
	out := make([]CommentDTO, len(comments))
	for i, c := range comments {
		out[i] = ToCommentDTO(c)
	}
	return out
}

// CommentCreateInput holds the validated creation fields.
type CommentCreateInput struct {
	Content string
	User    uint64
	Task    uint64
}

// ParseCommentCreate validates a comment creation body. When taskScoped is
// true the task reference comes from the route and the body field is ignored.
func ParseCommentCreate(raw map[string]any, taskScoped bool) (*CommentCreateInput, apierrors.ValidationErrors) {
	errs := apierrors.ValidationErrors{}
	in := &CommentCreateInput{}

	if v, ok := raw["content"]; ok {
		if s, ok := asString(v, "content", false, errs); ok {
			in.Content = s
		}
	} else {
		errs.Add("content", apierrors.MsgRequired)
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

	if !taskScoped {
		if v, ok := raw["task"]; ok {
			if v == nil {
				errs.Add("task", apierrors.MsgNull)
			} else if id, ok := asPK(v, "task", errs); ok {
				in.Task = id
			}
		} else {
			errs.Add("task", apierrors.MsgRequired)
		}
	}

	if !errs.Empty() {
		return nil, errs
	}
	return in, nil
}

// CommentUpdateInput holds the fields present in a partial comment update.
type CommentUpdateInput struct {
	Content *string
	User    *uint64
	Task    *uint64
}

// ParseCommentUpdate validates a partial update body.
func ParseCommentUpdate(raw map[string]any) (*CommentUpdateInput, apierrors.ValidationErrors) {
	errs := apierrors.ValidationErrors{}
	in := &CommentUpdateInput{}

	if v, ok := raw["content"]; ok {
		if s, ok := asString(v, "content", false, errs); ok {
			in.Content = &s
		}
	}
	if v, ok := raw["user"]; ok {
		if v == nil {
			errs.Add("user", apierrors.MsgNull)
		} else if id, ok := asPK(v, "user", errs); ok {
			in.User = &id
		}
	}
	if v, ok := raw["task"]; ok {
		if v == nil {
			errs.Add("task", apierrors.MsgNull)
		} else if id, ok := asPK(v, "task", errs); ok {
			in.Task = &id
		}
	}

	if !errs.Empty() {
		return nil, errs
	}
	return in, nil
}
