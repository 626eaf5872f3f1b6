package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service" // Import service package
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

// Email and password rules live in the service so the error causes stay consistent.
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// UserResponse excludes sensitive info like password hash
type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// --- Handler Methods ---

// Register godoc
// @Summary Create an account
// @Description Creates a new user account and signs it in.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration details"
// @Success 201 {object} SessionResponse "Account created"
// @Failure 400 {object} gin.H "Invalid input, weak password or invalid email"
// @Failure 409 {object} gin.H "Email already registered"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	session, err := h.authService.CreateAccount(c.Request.Context(), service.NewAccount{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		h.abortWithAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapSessionToResponse(session))
}

// Login godoc
// @Summary Sign in
// @Description Authenticates a user and returns a JWT token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} SessionResponse "Login successful"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Wrong password"
// @Failure 404 {object} gin.H "User not found"
// @Failure 429 {object} gin.H "Too many failed attempts"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	session, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.abortWithAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapSessionToResponse(session))
}

// Logout godoc
// @Summary Sign out
// @Description Revokes the bearer token used for this request.
// @Tags Auth
// @Security BearerAuth
// @Success 204 "Signed out"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID := c.GetString(ContextTokenIDKey)
	expiresAt := c.GetTime(ContextTokenExpiryKey)
	if err := h.authService.SignOut(c.Request.Context(), tokenID, expiresAt); err != nil {
		abortWithError(c, http.StatusUnauthorized, "Token cannot be revoked")
		return
	}
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "User not found"
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	user, err := h.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.abortWithAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// abortWithAuthError maps an auth error cause to its status and user-facing message.
func (h *AuthHandler) abortWithAuthError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		code = http.StatusNotFound
	case errors.Is(err, service.ErrWrongPassword):
		code = http.StatusUnauthorized
	case errors.Is(err, service.ErrUserAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrAccountValidation):
		code = http.StatusBadRequest
	case errors.Is(err, service.ErrRateLimited):
		code = http.StatusTooManyRequests
	default:
		log.WithField("request_id", c.GetString(ContextRequestIDKey)).Errorf("auth failure: %v", err)
	}
	abortWithError(c, code, service.AuthMessage(err))
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
// Crucially excludes PasswordHash and converts ObjectIDs to strings.
func MapUserToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.Hex(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func mapSessionToResponse(session *service.Session) SessionResponse {
	return SessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      MapUserToResponse(session.User),
	}
}
