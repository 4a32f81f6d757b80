package repository

import (
	"github.com/pmapi/project-management-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// List retrieves all users in the store's default order
	List() ([]models.User, error)

	// Update persists the given user record
	Update(user *models.User) error

	// Delete removes a user; the store cascades owned projects and comments
	// and nullifies task assignments
	Delete(id uint64) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// List retrieves all projects
	List() ([]models.Project, error)

	// Update persists the given project record
	Update(project *models.Project) error

	// Delete removes a project; the store cascades members and tasks,
	// transitively removing comments on those tasks
	Delete(id uint64) error
}

// MemberFilter holds filtering options for listing project memberships
type MemberFilter struct {
	ProjectID *uint64
}

// MemberRepository defines the interface for project membership data access
type MemberRepository interface {
	// Create creates a new membership; duplicate (project, user) pairs
	// are not rejected
	Create(member *models.ProjectMember) error

	// FindByID finds a membership by ID
	FindByID(id uint64) (*models.ProjectMember, error)

	// List retrieves memberships matching the filter
	List(filter MemberFilter) ([]models.ProjectMember, error)

	// Update persists the given membership record
	Update(member *models.ProjectMember) error

	// Delete removes a membership
	Delete(id uint64) error
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	ProjectID *uint64
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// List retrieves tasks matching the filter
	List(filter TaskFilter) ([]models.Task, error)

	// Update persists the given task record
	Update(task *models.Task) error

	// Delete removes a task; the store cascades its comments
	Delete(id uint64) error
}

// CommentFilter holds filtering options for listing comments
type CommentFilter struct {
	TaskID *uint64
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(comment *models.Comment) error

	// FindByID finds a comment by ID
	FindByID(id uint64) (*models.Comment, error)

	// List retrieves comments matching the filter
	List(filter CommentFilter) ([]models.Comment, error)

	// Update persists the given comment record
	Update(comment *models.Comment) error

	// Delete removes a comment
	Delete(id uint64) error
}
