package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pmapi/project-management-api/internal/dto"
	apierrors "github.com/pmapi/project-management-api/internal/errors"
	"github.com/pmapi/project-management-api/internal/services"
)

// CommentHandler exposes the comment resource controller.
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// List returns comments, optionally filtered by the task_id query parameter.
func (h *CommentHandler) List(c *gin.Context) {
	var taskID *uint64
	if s := c.Query("task_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task_id"})
			return
		}
		taskID = &id
	}

	comments, err := h.commentService.List(taskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentDTOs(comments))
}

// Get returns a single comment by id.
func (h *CommentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	comment, err := h.commentService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentDTO(*comment))
}

// Create creates a comment. Mounted both unscoped (POST /comments/) and
// scoped under a task (POST /tasks/:id/comments/); on the scoped route the
// path parameter supplies the task reference and a missing task yields the
// dedicated 404 payload.
func (h *CommentHandler) Create(c *gin.Context) {
	var scopedTask *uint64
	if s := c.Param("id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			apierrors.NotFoundPayload(c, "Task does not exist.")
			return
		}
		scopedTask = &id
	}

	raw, ok := bindObject(c)
	if !ok {
		return
	}

	in, errs := dto.ParseCommentCreate(raw, scopedTask != nil)
	if errs != nil {
		apierrors.BadRequest(c, errs)
		return
	}

	comment, err := h.commentService.Create(*in, scopedTask)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentDTO(*comment))
}

// Update applies a partial update to a comment.
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	raw, ok := bindObject(c)
	if !ok {
		return
	}

	in, errs := dto.ParseCommentUpdate(raw)
	if errs != nil {
		apierrors.BadRequest(c, errs)
		return
	}

	comment, err := h.commentService.Update(id, *in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentDTO(*comment))
}

// Delete removes a comment.
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.commentService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
