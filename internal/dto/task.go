package dto

import (
	"time"

	apierrors "github.com/pmapi/project-management-api/internal/errors"
	"github.com/pmapi/project-management-api/internal/models"
)

// TaskDTO represents a task in API responses. Foreign keys are bare ids;
// assigned_to is null for unassigned tasks.
type TaskDTO struct {
	ID          uint64              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	AssignedTo  *uint64             `json:"assigned_to"`
	Project     uint64              `json:"project"`
	CreatedAt   time.Time           `json:"created_at"`
	DueDate     time.Time           `json:"due_date"`
}

// ToTaskDTO converts a Task model to TaskDTO.
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		AssignedTo:  task.AssignedToID,
		Project:     task.ProjectID,
		CreatedAt:   task.CreatedAt,
		DueDate:     task.DueDate,
	}
}

// ToTaskDTOs converts a slice of Task models.
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	out := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskDTO(t)
	}
	return out
}

// TaskCreateInput holds the validated creation fields.
type TaskCreateInput struct {
	Title       string
	Description string
	Status      models.TaskStatus
	Priority    models.TaskPriority
	AssignedTo  *uint64
	Project     uint64
	DueDate     time.Time
}

// ParseTaskCreate validates a task creation body. When projectScoped is true
// the project reference comes from the route and the body field is ignored.
func ParseTaskCreate(raw map[string]any, projectScoped bool) (*TaskCreateInput, apierrors.ValidationErrors) {
	errs := apierrors.ValidationErrors{}
	in := &TaskCreateInput{}

	if v, ok := raw["title"]; ok {
		if s, ok := asString(v, "title", false, errs); ok {
			in.Title = s
		}
	} else {
		errs.Add("title", apierrors.MsgRequired)
	}

	if v, ok := raw["description"]; ok {
		if s, ok := asString(v, "description", false, errs); ok {
			in.Description = s
		}
	} else {
		errs.Add("description", apierrors.MsgRequired)
	}

	if v, ok := raw["status"]; ok {
		if s, ok := asChoice(v, "status", models.ValidTaskStatus, errs); ok {
			in.Status = models.TaskStatus(s)
		}
	} else {
		errs.Add("status", apierrors.MsgRequired)
	}

	if v, ok := raw["priority"]; ok {
		if s, ok := asChoice(v, "priority", models.ValidTaskPriority, errs); ok {
			in.Priority = models.TaskPriority(s)
		}
	} else {
		errs.Add("priority", apierrors.MsgRequired)
	}

	if v, ok := raw["assigned_to"]; ok && v != nil {
		if id, ok := asPK(v, "assigned_to", errs); ok {
			in.AssignedTo = &id
		}
	}

	if !projectScoped {
		if v, ok := raw["project"]; ok {
			if v == nil {
				errs.Add("project", apierrors.MsgNull)
			} else if id, ok := asPK(v, "project", errs); ok {
				in.Project = id
			}
		} else {
			errs.Add("project", apierrors.MsgRequired)
		}
	}

	if v, ok := raw["due_date"]; ok {
		if t, ok := asDatetime(v, "due_date", errs); ok {
			in.DueDate = t
		}
	} else {
		errs.Add("due_date", apierrors.MsgRequired)
	}

	if !errs.Empty() {
		return nil, errs
	}
	return in, nil
}

// TaskUpdateInput holds the fields present in a partial task update.
// AssignedToSet distinguishes an explicit null (unassign) from absence.
type TaskUpdateInput struct {
	Title         *string
	Description   *string
	Status        *models.TaskStatus
	Priority      *models.TaskPriority
	AssignedTo    *uint64
	AssignedToSet bool
	Project       *uint64
	DueDate       *time.Time
}

// ParseTaskUpdate validates a partial update body; created_at is read-only
// and ignored if supplied.
func ParseTaskUpdate(raw map[string]any) (*TaskUpdateInput, apierrors.ValidationErrors) {
	errs := apierrors.ValidationErrors{}
	in := &TaskUpdateInput{}

	if v, ok := raw["title"]; ok {
		if s, ok := asString(v, "title", false, errs); ok {
			in.Title = &s
		}
	}
	if v, ok := raw["description"]; ok {
		if s, ok := asString(v, "description", false, errs); ok {
			in.Description = &s
		}
	}
	if v, ok := raw["status"]; ok {
		if s, ok := asChoice(v, "status", models.ValidTaskStatus, errs); ok {
			status := models.TaskStatus(s)
			in.Status = &status
		}
	}
	if v, ok := raw["priority"]; ok {
		if s, ok := asChoice(v, "priority", models.ValidTaskPriority, errs); ok {
			priority := models.TaskPriority(s)
			in.Priority = &priority
		}
	}
	if v, ok := raw["assigned_to"]; ok {
		in.AssignedToSet = true
		if v != nil {
			if id, ok := asPK(v, "assigned_to", errs); ok {
				in.AssignedTo = &id
			} else {
				in.AssignedToSet = false
			}
		}
	}
	if v, ok := raw["project"]; ok {
		if v == nil {
			errs.Add("project", apierrors.MsgNull)
		} else if id, ok := asPK(v, "project", errs); ok {
			in.Project = &id
		}
	}
	if v, ok := raw["due_date"]; ok {
		if t, ok := asDatetime(v, "due_date", errs); ok {
			in.DueDate = &t
		}
	}

	if !errs.Empty() {
		return nil, errs
	}
	return in, nil
}
