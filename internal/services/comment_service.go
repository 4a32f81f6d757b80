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
	ErrCommentNotFound = errors.New("comment not found")
	// ErrScopedTaskNotFound signals that the task id from a scoped create
	// route does not exist; the controller answers with the custom 404
	// payload rather than a validation error.
	ErrScopedTaskNotFound = errors.New("scoped task does not exist")
)

// CommentService handles comment business logic.
type CommentService struct {
	commentRepo repository.CommentRepository
	taskRepo    repository.TaskRepository
	userRepo    repository.UserRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, taskRepo repository.TaskRepository, userRepo repository.UserRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		userRepo:    userRepo,
	}
}

// Create creates a comment. scopedTask, when non-nil, overrides the body's
// task reference with the route parameter.
func (s *CommentService) Create(in dto.CommentCreateInput, scopedTask *uint64) (*models.Comment, error) {
	taskID := in.Task
	if scopedTask != nil {
		taskID = *scopedTask
		if _, err := s.taskRepo.FindByID(taskID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrScopedTaskNotFound
			}
			return nil, fmt.Errorf("failed to check task: %w", err)
		}
	} else {
		if err := s.checkTask(taskID); err != nil {
			return nil, err
		}
	}

	if err := s.checkUser(in.User); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content: in.Content,
		UserID:  in.User,
		TaskID:  taskID,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// List retrieves comments, optionally filtered to a single task.
func (s *CommentService) List(taskID *uint64) ([]models.Comment, error) {
	return s.commentRepo.List(repository.CommentFilter{TaskID: taskID})
}

// Get retrieves a comment by ID.
func (s *CommentService) Get(id uint64) (*models.Comment, error) {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	return comment, nil
}

// Update applies a partial update; created_at is never touched.
func (s *CommentService) Update(id uint64, in dto.CommentUpdateInput) (*models.Comment, error) {
	comment, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.Task != nil {
		if err := s.checkTask(*in.Task); err != nil {
			return nil, err
		}
		comment.TaskID = *in.Task
	}
	if in.User != nil {
		if err := s.checkUser(*in.User); err != nil {
			return nil, err
		}
		comment.UserID = *in.User
	}
	if in.Content != nil {
		comment.Content = *in.Content
	}

	if err := s.commentRepo.Update(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

// Delete removes a comment after confirming it exists.
func (s *CommentService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.commentRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func (s *CommentService) checkTask(id uint64) error {
	if _, err := s.taskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierrors.NewFieldError("task", apierrors.MsgInvalidPK(id))
		}
		return fmt.Errorf("failed to check task: %w", err)
	}
	return nil
}

func (s *CommentService) checkUser(id uint64) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierrors.NewFieldError("user", apierrors.MsgInvalidPK(id))
		}
		return fmt.Errorf("failed to check user: %w", err)
	}
	return nil
}
