package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/feedbackhub/feedback-backend/errors"
	"github.com/feedbackhub/feedback-backend/internal/store"
	"github.com/feedbackhub/feedback-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// AuthHandler handles account registration and login.
type AuthHandler struct {
	userStore store.UserStore
	jwtSecret []byte
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userStore store.UserStore, jwtSecret string) *AuthHandler {
	return &AuthHandler{userStore: userStore, jwtSecret: []byte(jwtSecret)}
}

// Register godoc
// @Summary      Register an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      types.UserCredentials  true  "Credentials"
// @Success      201   {object}  types.User
// @Failure      400   {object}  types.ErrorResponse
// @Failure      409   {object}  types.ErrorResponse
// @Router       /api/users/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req types.UserCredentials
	if !bindJSONOrError(c, &req) {
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		_ = c.Error(apperrors.ValidationFailedFields("validation failed", fields))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		_ = c.Error(apperrors.InternalServerError("failed to process password"))
		return
	}

	user, err := h.userStore.CreateUser(c.Request.Context(), &types.User{
		Username: strings.TrimSpace(req.Username),
		Password: string(hash),
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			_ = c.Error(apperrors.NewConflictError("username already taken", "username: "+req.Username))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary      Log in
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      types.UserCredentials  true  "Credentials"
// @Success      200   {object}  types.AuthResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      401   {object}  types.ErrorResponse
// @Router       /api/users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.UserCredentials
	if !bindJSONOrError(c, &req) {
		return
	}

	user, err := h.userStore.GetUserByUsername(c.Request.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.AuthenticationFailed("invalid username or password"))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		_ = c.Error(apperrors.AuthenticationFailed("invalid username or password"))
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		_ = c.Error(apperrors.InternalServerError("failed to issue token"))
		return
	}

	c.JSON(http.StatusOK, types.AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) issueToken(user *types.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenLifetime).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.jwtSecret)
}
