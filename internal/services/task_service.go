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

var (
	ErrTaskNotFound = errors.New("task not found")
	// ErrScopedProjectNotFound signals that the project id from a scoped
	// create route does not exist; the controller answers with the custom
	// 404 payload rather than a validation error.
	ErrScopedProjectNotFound = errors.New("scoped project does not exist")
)

// TaskService handles task business logic.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// Create creates a task. scopedProject, when non-nil, overrides the body's
// project reference with the route parameter.
func (s *TaskService) Create(in dto.TaskCreateInput, scopedProject *uint64) (*models.Task, error) {
	projectID := in.Project
	if scopedProject != nil {
		projectID = *scopedProject
		if _, err := s.projectRepo.FindByID(projectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrScopedProjectNotFound
			}
			return nil, fmt.Errorf("failed to check project: %w", err)
		}
	} else {
		if err := s.checkProject(projectID); err != nil {
			return nil, err
		}
	}

	if in.AssignedTo != nil {
		if err := s.checkAssignee(*in.AssignedTo); err != nil {
			return nil, err
		}
	}

	task := &models.Task{
		Title:        in.Title,
		Description:  in.Description,
		Status:       in.Status,
		Priority:     in.Priority,
		AssignedToID: in.AssignedTo,
		ProjectID:    projectID,
		DueDate:      in.DueDate,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// List retrieves tasks, optionally filtered to a single project.
func (s *TaskService) List(projectID *uint64) ([]models.Task, error) {
	return s.taskRepo.List(repository.TaskFilter{ProjectID: projectID})
}

// Get retrieves a task by ID.
func (s *TaskService) Get(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// Update applies a partial update; an explicit null assigned_to unassigns
// the task. created_at is never touched.
func (s *TaskService) Update(id uint64, in dto.TaskUpdateInput) (*models.Task, error) {
	task, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.Project != nil {
		if err := s.checkProject(*in.Project); err != nil {
			return nil, err
		}
		task.ProjectID = *in.Project
	}
	if in.AssignedToSet {
		if in.AssignedTo != nil {
			if err := s.checkAssignee(*in.AssignedTo); err != nil {
				return nil, err
			}
		}
		task.AssignedToID = in.AssignedTo
	}
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Status != nil {
		task.Status = *in.Status
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.DueDate != nil {
		task.DueDate = *in.DueDate
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// Delete removes a task after confirming it exists; comments cascade in the
// store.
func (s *TaskService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (s *TaskService) checkProject(id uint64) error {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierrors.NewFieldError("project", apierrors.MsgInvalidPK(id))
		}
		return fmt.Errorf("failed to check project: %w", err)
	}
	return nil
}

func (s *TaskService) checkAssignee(id uint64) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierrors.NewFieldError("assigned_to", apierrors.MsgInvalidPK(id))
		}
		return fmt.Errorf("failed to check assignee: %w", err)
	}
	return nil
}
