package controller

import (
	"context"
	"net/http"

	"dalshop-gateway/middleware"
	"dalshop-gateway/models"
	"dalshop-gateway/services"
	"dalshop-gateway/utils/logger"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	ctx      context.Context
	config   *models.Config
	sessions services.SessionServiceInterface
	logger   logger.Logger
}

func NewAuthController(ctx context.Context, cfg *models.Config, sessions services.SessionServiceInterface, log logger.Logger) *AuthController {
	return &AuthController{
		ctx:      ctx,
		config:   cfg,
		sessions: sessions,
		logger:   log,
	}
}

// Login handles POST /api/v1/auth/login. Credentials are exchanged for a
// pending session; the caller must follow with the second-factor commit
// before the session is usable.
func (h *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBindError(c, err)
		return
	}

	proof, err := h.sessions.BeginAuthentication(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Credentials accepted, verification challenge pending",
		Data:    proof,
	})
}

// Commit handles POST /api/v1/auth/commit. On success the session cookie is
// set and the caller is told which shop page their role lands on.
func (h *AuthController) Commit(c *gin.Context) {
	var req models.CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBindError(c, err)
		return
	}

	session, err := h.sessions.CommitAuthentication(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.SetCookie(
		h.config.SessionCookieName,
		session.ID,
		int(h.config.SessionTTL.Seconds()),
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Welcome back!",
		Data: map[string]interface{}{
			"session_id": session.ID,
			"role":       middleware.RoleFromToken(session.Token),
			"home":       middleware.HomePath(session),
		},
	})
}

// Logout handles POST /api/v1/auth/logout. Safe to call with no session at
// all; ending an already-ended session changes nothing.
func (h *AuthController) Logout(c *gin.Context) {
	session := middleware.CurrentSession(c)
	if session != nil {
		if err := h.sessions.EndSession(c.Request.Context(), session.ID); err != nil {
			respondServiceError(c, err)
			return
		}
	}

	c.SetCookie(h.config.SessionCookieName, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Logged out",
		Data: map[string]interface{}{
			"redirect": "/",
		},
	})
}

// Register handles POST /api/v1/auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBindError(c, err)
		return
	}

	if err := h.sessions.Register(c.Request.Context(), req); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: "Registration pending, check your email for the verification code",
	})
}

// Verify handles POST /api/v1/auth/verify
func (h *AuthController) Verify(c *gin.Context) {
	var req models.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBindError(c, err)
		return
	}

	if err := h.sessions.ConfirmVerification(c.Request.Context(), req.Email, req.Code); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Email verified, you can sign in now",
	})
}

// Resend handles POST /api/v1/auth/resend
func (h *AuthController) Resend(c *gin.Context) {
	var req models.ResendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBindError(c, err)
		return
	}

	if err := h.sessions.ResendVerificationCode(c.Request.Context(), req.Email); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Verification code sent",
	})
}
