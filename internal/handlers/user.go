package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pmapi/project-management-api/internal/dto"
	apierrors "github.com/pmapi/project-management-api/internal/errors"
	"github.com/pmapi/project-management-api/internal/services"
)

// UserHandler exposes the user resource controller.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register creates a new user. This is the only unauthenticated write; the
// password is accepted write-only and hashed before persistence.
func (h *UserHandler) Register(c *gin.Context) {
	raw, ok := bindObject(c)
	if !ok {
		return
	}

	in, errs := dto.ParseUserRegister(raw)
	if errs != nil {
		apierrors.BadRequest(c, errs)
		return
	}

	user, err := h.userService.Register(*in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// List returns all users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

// Get returns a single user by id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Update applies a partial update to a user.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	raw, ok := bindObject(c)
	if !ok {
		return
	}

	in, errs := dto.ParseUserUpdate(raw)
	if errs != nil {
		apierrors.BadRequest(c, errs)
		return
	}

	user, err := h.userService.Update(id, *in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Delete removes a user; owned projects and comments cascade, assigned
// tasks survive unassigned.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
