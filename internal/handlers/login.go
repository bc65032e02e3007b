package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/asirianni/LatinAd/internal/logger"
	"github.com/asirianni/LatinAd/internal/models"
	"github.com/asirianni/LatinAd/internal/services"
	"github.com/asirianni/LatinAd/internal/validation"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.UserDB, error)
	TokenExpiresIn(ctx context.Context) int
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: test1@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: password123
	Password string `json:"password" validate:"required"`
}

// TokenData is the payload of a successful login or refresh
// swagger:model TokenData
type TokenData struct {
	// JWT access token
	Token string `json:"token"`

	// Always "bearer"
	TokenType string `json:"token_type"`

	// Token lifetime in seconds
	// default: 3600
	ExpiresIn int `json:"expires_in"`

	// Authenticated user
	User UserResource `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate by email and password and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.SuccessResponse "Token and user returned"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Failure 422 {object} handlers.ErrorResponse "Invalid request body"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if errs := validation.Struct(req); errs != nil {
			respondValidation(w, errs)
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				respondError(w, http.StatusUnauthorized, "Invalid email or password")
			default:
				logger.Log.Errorw("login failed", "error", err)
				respondError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		respondData(w, http.StatusOK, "Login successful", TokenData{
			Token:     token,
			TokenType: "bearer",
			ExpiresIn: svc.TokenExpiresIn(r.Context()),
			User:      newUserResource(user),
		})
	}
}
