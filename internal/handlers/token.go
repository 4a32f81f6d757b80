package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/pmapi/project-management-api/internal/errors"
	"github.com/pmapi/project-management-api/internal/services"
)

// TokenHandler exposes the credential gateway endpoints.
type TokenHandler struct {
	authService *services.AuthService
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(authService *services.AuthService) *TokenHandler {
	return &TokenHandler{
		authService: authService,
	}
}

// Obtain exchanges a username/password for an access/refresh token pair.
func (h *TokenHandler) Obtain(c *gin.Context) {
	type ObtainRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req ObtainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ParseError(c)
		return
	}

	pair, err := h.authService.IssueTokens(req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}

// Refresh exchanges a refresh token for a new access token.
func (h *TokenHandler) Refresh(c *gin.Context) {
	type RefreshRequest struct {
		Refresh string `json:"refresh" binding:"required"`
	}

	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ParseError(c)
		return
	}

	access, err := h.authService.Refresh(req.Refresh)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}
