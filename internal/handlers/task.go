package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pmapi/project-management-api/internal/dto"
	apierrors "github.com/pmapi/project-management-api/internal/errors"
	"github.com/pmapi/project-management-api/internal/services"
)

// TaskHandler exposes the task resource controller.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// List returns tasks, optionally filtered by the project_id query parameter.
func (h *TaskHandler) List(c *gin.Context) {
	var projectID *uint64
	if s := c.Query("project_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project_id"})
			return
		}
		projectID = &id
	}

	tasks, err := h.taskService.List(projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// Get returns a single task by id.
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	task, err := h.taskService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// Create creates a task. Mounted both unscoped (POST /tasks/) and scoped
// under a project (POST /projects/:id/tasks/); on the scoped route the path
// parameter supplies the project reference and a missing project yields the
// dedicated 404 payload.
func (h *TaskHandler) Create(c *gin.Context) {
	var scopedProject *uint64
	if s := c.Param("id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			apierrors.NotFoundPayload(c, "Project does not exist.")
			return
		}
		scopedProject = &id
	}

	raw, ok := bindObject(c)
	if !ok {
		return
	}

	in, errs := dto.ParseTaskCreate(raw, scopedProject != nil)
	if errs != nil {
		apierrors.BadRequest(c, errs)
		return
	}

	task, err := h.taskService.Create(*in, scopedProject)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// Update applies a partial update to a task.
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	raw, ok := bindObject(c)
	if !ok {
		return
	}

	in, errs := dto.ParseTaskUpdate(raw)
	if errs != nil {
		apierrors.BadRequest(c, errs)
		return
	}

	task, err := h.taskService.Update(id, *in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// Delete removes a task; its comments cascade in the store.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
