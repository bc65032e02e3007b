package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/asirianni/LatinAd/internal/jwt"
	"github.com/asirianni/LatinAd/internal/logger"
	"github.com/asirianni/LatinAd/internal/models"
)

// Error variables
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// TokenManager defines the token provider contract: issue a token,
// parse one back into claims, and expose the configured lifetime.
type TokenManager interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Expiration(ctx context.Context) time.Duration
}

// TokenRevoker defines the revocation list for logged-out tokens.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthService handles login, logout, refresh and token validation.
type AuthService struct {
	users   UserReader
	jwt     TokenManager
	revoked TokenRevoker
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserReader, jwt TokenManager, revoked TokenRevoker) *AuthService {
	return &AuthService{
		users:   users,
		jwt:     jwt,
		revoked: revoked,
	}
}

// Login authenticates the credentials and returns a fresh token plus
// the user's profile. Missing user and wrong password collapse into the
// same error so callers cannot tell which emails exist.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Warnw("login for unknown email", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// Logout invalidates the presented token for the rest of its lifetime.
func (svc *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := svc.jwt.GetClaims(ctx, tokenString)
	if err != nil {
		return err
	}
	return svc.revoked.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

// Refresh revokes the presented token and issues a new one for the
// same user. The old token stops working immediately.
func (svc *AuthService) Refresh(ctx context.Context, tokenString string) (string, error) {
	claims, err := svc.validClaims(ctx, tokenString)
	if err != nil {
		return "", err
	}

	if err := svc.revoked.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		return "", err
	}

	token, err := svc.jwt.Generate(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}
	return token, nil
}

// CurrentUser returns the profile of the authenticated user.
func (svc *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}
	return user, nil
}

// Validate parses the token and rejects it when revoked. Used by the
// auth middleware before any other request processing.
func (svc *AuthService) Validate(ctx context.Context, tokenString string) (*jwt.Claims, error) {
	return svc.validClaims(ctx, tokenString)
}

// GetTokenFromRequest extracts the bearer token from the request.
func (svc *AuthService) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	return svc.jwt.GetTokenFromRequest(ctx, r)
}

// TokenExpiresIn returns the token lifetime in whole seconds, the
// expires_in value of login and refresh responses.
func (svc *AuthService) TokenExpiresIn(ctx context.Context) int {
	return int(svc.jwt.Expiration(ctx) / time.Second)
}

func (svc *AuthService) validClaims(ctx context.Context, tokenString string) (*jwt.Claims, error) {
	claims, err := svc.jwt.GetClaims(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	revoked, err := svc.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		logger.Log.Errorw("failed to check token revocation", "jti", claims.ID, "err", err)
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}
