// internal/handlers/auth.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/boriwala/catalog-backend/internal/config"
	"github.com/boriwala/catalog-backend/internal/middleware"
	"github.com/boriwala/catalog-backend/internal/services"
	"github.com/boriwala/catalog-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// POST /v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req services.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authService.Signup(&req); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.SuccessMessageResponse(c, "Account created. You can log in now; prices unlock once an admin approves your account.")
}

// POST /v1/auth/login
func (h *AuthHandler) BuyerLogin(c *gin.Context) {
	var req services.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.BuyerLogin(&req)
	if err != nil {
		h.respondLoginError(c, err)
		return
	}

	h.setTokenCookie(c, middleware.BuyerTokenCookie, resp.Token)
	utils.SuccessResponse(c, resp)
}

// POST /v1/auth/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req services.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.AdminLogin(&req)
	if err != nil {
		h.respondLoginError(c, err)
		return
	}

	h.setTokenCookie(c, middleware.AdminTokenCookie, resp.Token)
	utils.SuccessResponse(c, resp)
}

// GET /v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.UnauthorizedResponse(c, "")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.UnauthorizedResponse(c, "")
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, user)
}

// POST /v1/auth/logout clears both token cookies so it works for either
// surface.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AdminTokenCookie, "", -1, "/", "", h.secureCookies(), true)
	c.SetCookie(middleware.BuyerTokenCookie, "", -1, "/", "", h.secureCookies(), true)
	utils.SuccessMessageResponse(c, "Logged out")
}

func (h *AuthHandler) respondLoginError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.UnauthorizedResponse(c, err.Error())
	case errors.Is(err, services.ErrAccountDeactivated):
		utils.ForbiddenResponse(c, err.Error())
	default:
		respondServiceError(c, err)
	}
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, name, token string) {
	maxAge := h.cfg.JWT.TokenTTL * 3600
	c.SetCookie(name, token, maxAge, "/", "", h.secureCookies(), true)
}

func (h *AuthHandler) secureCookies() bool {
	return h.cfg.Environment == "production"
}
