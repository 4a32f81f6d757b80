package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pmapi/project-management-api/internal/dto"
	apierrors "github.com/pmapi/project-management-api/internal/errors"
	"github.com/pmapi/project-management-api/internal/services"
)

// MemberHandler exposes the project membership resource controller.
type MemberHandler struct {
	memberService *services.MemberService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// List returns memberships, optionally filtered by the project_id query
// parameter.
func (h *MemberHandler) List(c *gin.Context) {
	var projectID *uint64
	if s := c.Query("project_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project_id"})
			return
		}
		projectID = &id
	}

	members, err := h.memberService.List(projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberDTOs(members))
}

// Get returns a single membership by id.
func (h *MemberHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	member, err := h.memberService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberDTO(*member))
}

// Create adds a user to a project with a role.
func (h *MemberHandler) Create(c *gin.Context) {
	raw, ok := bindObject(c)
	if !ok {
		return
	}

	in, errs := dto.ParseMemberCreate(raw)
	if errs != nil {
		apierrors.BadRequest(c, errs)
		return
	}

	member, err := h.memberService.Create(*in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMemberDTO(*member))
}

// Update applies a partial update to a membership.
func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	raw, ok := bindObject(c)
	if !ok {
		return
	}

	in, errs := dto.ParseMemberUpdate(raw)
	if errs != nil {
		apierrors.BadRequest(c, errs)
		return
	}

	member, err := h.memberService.Update(id, *in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberDTO(*member))
}

// Delete removes a membership.
func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.memberService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
