package services

import (
	"errors"
	"fmt"

	"github.com/pmapi/project-management-api/internal/auth"
	"github.com/pmapi/project-management-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("no active account found with the given credentials")
	ErrInvalidToken       = auth.ErrInvalidToken
)

// AuthService is the credential gateway: it exchanges username/password for
// a bearer token pair and refresh tokens for new access tokens.
type AuthService struct {
	userRepo repository.UserRepository
	issuer   *auth.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, issuer *auth.TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		issuer:   issuer,
	}
}

// TokenPair holds the issued credentials in wire order.
type TokenPair struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

// IssueTokens verifies credentials and returns an access/refresh pair.
// Inactive users cannot obtain tokens.
func (s *AuthService) IssueTokens(username, password string) (*TokenPair, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	access, refresh, err := s.issuer.GeneratePair(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign tokens: %w", err)
	}

	return &TokenPair{Refresh: refresh, Access: access}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := s.issuer.Parse(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return "", ErrInvalidToken
	}

	access, err := s.issuer.GenerateAccess(claims.UserID)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return access, nil
}
