package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/pmapi/project-management-api/internal/auth"
	"github.com/pmapi/project-management-api/internal/database"
	"github.com/pmapi/project-management-api/internal/middleware"
	"github.com/pmapi/project-management-api/internal/models"
	"github.com/pmapi/project-management-api/internal/repository"
	"github.com/pmapi/project-management-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db             *gorm.DB
	issuer         *auth.TokenIssuer
	router         *gin.Engine
	userService    *services.UserService
	authService    *services.AuthService
	projectService *services.ProjectService
	taskService    *services.TaskService
	commentService *services.CommentService
	memberService  *services.MemberService
}

// setupTestEnv builds an in-memory store (foreign keys on, so cascade and
// set-null referential actions run) and mounts the full route table.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectMember{},
		&models.Task{},
		&models.Comment{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	memberRepo := repository.NewMemberRepository(db)

	issuer := auth.NewTokenIssuer("test-secret", 5*time.Minute, time.Hour)
	env := &testEnv{
		db:             db,
		issuer:         issuer,
		userService:    services.NewUserService(userRepo),
		authService:    services.NewAuthService(userRepo, issuer),
		projectService: services.NewProjectService(projectRepo, userRepo),
		taskService:    services.NewTaskService(taskRepo, projectRepo, userRepo),
		commentService: services.NewCommentService(commentRepo, taskRepo, userRepo),
		memberService:  services.NewMemberService(memberRepo, projectRepo, userRepo),
	}

	tokenHandler := NewTokenHandler(env.authService)
	userHandler := NewUserHandler(env.userService)
	projectHandler := NewProjectHandler(env.projectService)
	taskHandler := NewTaskHandler(env.taskService)
	commentHandler := NewCommentHandler(env.commentService)
	memberHandler := NewMemberHandler(env.memberService)

	r := gin.New()
	authRequired := middleware.RequireAuth(issuer)

	r.POST("/users/register/", userHandler.Register)
	r.POST("/auth/token/", tokenHandler.Obtain)
	r.POST("/auth/token/refresh/", tokenHandler.Refresh)

	users := r.Group("/users", authRequired)
	users.GET("/", userHandler.List)
	users.GET("/:id/", userHandler.Get)
	users.PUT("/:id/", userHandler.Update)
	users.PATCH("/:id/", userHandler.Update)
	users.DELETE("/:id/", userHandler.Delete)

	projects := r.Group("/projects", authRequired)
	projects.GET("/", projectHandler.List)
	projects.POST("/", projectHandler.Create)
	projects.GET("/:id/", projectHandler.Get)
	projects.PUT("/:id/", projectHandler.Update)
	projects.PATCH("/:id/", projectHandler.Update)
	projects.DELETE("/:id/", projectHandler.Delete)
	projects.POST("/:id/tasks/", taskHandler.Create)

	tasks := r.Group("/tasks", authRequired)
	tasks.GET("/", taskHandler.List)
	tasks.POST("/", taskHandler.Create)
	tasks.GET("/:id/", taskHandler.Get)
	tasks.PUT("/:id/", taskHandler.Update)
	tasks.PATCH("/:id/", taskHandler.Update)
	tasks.DELETE("/:id/", taskHandler.Delete)
	tasks.POST("/:id/comments/", commentHandler.Create)

	comments := r.Group("/comments", authRequired)
	comments.GET("/", commentHandler.List)
	comments.POST("/", commentHandler.Create)
	comments.GET("/:id/", commentHandler.Get)
	comments.PUT("/:id/", commentHandler.Update)
	comments.PATCH("/:id/", commentHandler.Update)
	comments.DELETE("/:id/", commentHandler.Delete)

	members := r.Group("/members", authRequired)
	members.GET("/", memberHandler.List)
	members.POST("/", memberHandler.Create)
	members.GET("/:id/", memberHandler.Get)
	members.PUT("/:id/", memberHandler.Update)
	members.PATCH("/:id/", memberHandler.Update)
	members.DELETE("/:id/", memberHandler.Delete)

	env.router = r
	return env
}

// request performs an HTTP request against the mounted routes. A non-zero
// asUser attaches a bearer access token for that user id.
func (env *testEnv) request(t *testing.T, method, path string, body any, asUser uint64) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if asUser != 0 {
		token, err := env.issuer.GenerateAccess(asUser)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func (env *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashed",
		IsActive:     true,
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env *testEnv) createProject(t *testing.T, name string, ownerID uint64) *models.Project {
	t.Helper()
	project := &models.Project{
		Name:        name,
		Description: "Test Description",
		OwnerID:     ownerID,
	}
	require.NoError(t, env.db.Create(project).Error)
	return project
}

func (env *testEnv) createTask(t *testing.T, title string, projectID uint64, assignedTo *uint64) *models.Task {
	t.Helper()
	task := &models.Task{
		Title:        title,
		Description:  "Test Description",
		Status:       models.TaskStatusTodo,
		Priority:     models.TaskPriorityMedium,
		AssignedToID: assignedTo,
		ProjectID:    projectID,
		DueDate:      time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, env.db.Create(task).Error)
	return task
}

func (env *testEnv) createComment(t *testing.T, content string, userID, taskID uint64) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		Content: content,
		UserID:  userID,
		TaskID:  taskID,
	}
	require.NoError(t, env.db.Create(comment).Error)
	return comment
}
