package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/pmapi/project-management-api/internal/errors"
	"github.com/pmapi/project-management-api/internal/services"
)

// parseID reads the :id route parameter. An unparsable id behaves like a
// missing record: empty-bodied 404.
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c)
		return 0, false
	}
	return id, true
}

// bindObject decodes the request body into a raw JSON object so the
// serializers can distinguish absent fields from zero values.
func bindObject(c *gin.Context) (map[string]any, bool) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.ParseError(c)
		return nil, false
	}
	return raw, true
}

// respondServiceError maps service errors onto the HTTP error taxonomy.
func respondServiceError(c *gin.Context, err error) {
	var verr *apierrors.ValidationError
	switch {
	case errors.As(err, &verr):
		apierrors.BadRequest(c, verr.Fields)
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrCommentNotFound),
		errors.Is(err, services.ErrMemberNotFound):
		apierrors.NotFound(c)
	case errors.Is(err, services.ErrScopedProjectNotFound):
		apierrors.NotFoundPayload(c, "Project does not exist.")
	case errors.Is(err, services.ErrScopedTaskNotFound):
		apierrors.NotFoundPayload(c, "Task does not exist.")
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.BadRequest(c, apierrors.ValidationErrors{
			"username": {apierrors.MsgUsernameTaken},
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, "No active account found with the given credentials")
	case errors.Is(err, services.ErrInvalidToken):
		apierrors.Unauthorized(c, "Token is invalid or expired")
	default:
		apierrors.InternalError(c, "")
	}
}
