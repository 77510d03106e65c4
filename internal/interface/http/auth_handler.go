package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/homelyhq/homely-backend/internal/application"
	"github.com/homelyhq/homely-backend/pkg/helpers"
	"github.com/homelyhq/homely-backend/pkg/response"
	"github.com/homelyhq/homely-backend/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type registerRequest struct {
	Username string `json:"username" binding:"required_without=Email,omitempty,username"`
	Email    string `json:"email" binding:"required_without=Username,omitempty,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required_without=Email"`
	Email    string `json:"email" binding:"required_without=Username"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrDuplicateUser):
			response.Error[any](c, http.StatusConflict, "user already exists", nil)
		case errors.Is(err, application.ErrInvalidInput):
			response.Error[any](c, http.StatusBadRequest, "username or email and password are required", nil)
		default:
			if h.Logger != nil {
				h.Logger.WithError(err).Error("register failed")
			}
			response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, u, "registration successful", nil)
}

// Login handles POST /api/login. Accepts username or email.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	login := req.Username
	if login == "" {
		login = req.Email
	}
	u, pair, err := h.Svc.Login(c.Request.Context(), login, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) || errors.Is(err, application.ErrInvalidInput) {
			// One message for every credential failure; which field was
			// wrong is never disclosed.
			response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("login failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, u, "login successful", map[string]any{
		"access_expires_at":  pair.AccessTokenExpiry,
		"refresh_expires_at": pair.RefreshTokenExpiry,
	})
}

// Refresh handles POST /api/refresh. Reads the refresh-token cookie and
// rotates both cookies on success.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, cerr := c.Cookie("refresh_token")
	if cerr != nil || token == "" {
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	u, pair, err := h.Svc.Refresh(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("token refresh failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, u, "token refreshed", map[string]any{
		"access_expires_at":  pair.AccessTokenExpiry,
		"refresh_expires_at": pair.RefreshTokenExpiry,
	})
}

// Logout handles POST /api/logout (auth required).
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Svc.Logout(c.Request.Context(), c.GetInt64("userID"))
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "logged out", nil)
}

// GetProfile handles GET /api/profile (auth required).
func (h *AuthHandler) GetProfile(c *gin.Context) {
	u, err := h.Svc.Profile(c.Request.Context(), c.GetInt64("userID"))
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("profile lookup failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}
	response.Success(c, http.StatusOK, u, "profile", nil)
}
