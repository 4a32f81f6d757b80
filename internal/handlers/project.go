package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pmapi/project-management-api/internal/dto"
	apierrors "github.com/pmapi/project-management-api/internal/errors"
	"github.com/pmapi/project-management-api/internal/middleware"
	"github.com/pmapi/project-management-api/internal/services"
)

// ProjectHandler exposes the project resource controller. Any authenticated
// caller may mutate any project; ownership is only assigned, not enforced.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// List returns all projects.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTOs(projects))
}

// Get returns a single project by id.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	project, err := h.projectService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// Create creates a project owned by the caller. An owner value in the body
// is ignored.
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Authentication credentials were not provided.")
		return
	}

	raw, ok := bindObject(c)
	if !ok {
		return
	}

	in, errs := dto.ParseProjectCreate(raw)
	if errs != nil {
		apierrors.BadRequest(c, errs)
		return
	}

	project, err := h.projectService.Create(userID, *in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// Update applies a partial update to a project.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	raw, ok := bindObject(c)
	if !ok {
		return
	}

	in, errs := dto.ParseProjectUpdate(raw)
	if errs != nil {
		apierrors.BadRequest(c, errs)
		return
	}

	project, err := h.projectService.Update(id, *in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// Delete removes a project; members, tasks and their comments cascade in
// the store.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
