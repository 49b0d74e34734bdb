package handlers

import (
	"swiftride/internal/middleware"
	"swiftride/internal/models"
	"swiftride/internal/services"
	"swiftride/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates an account and returns a fresh session.
func (h *AuthHandler) Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	result, err := h.authService.Register(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, "Account created", result)
}

// Login authenticates against the platform and returns a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var input services.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, "Logged in", result)
}

// Logout ends the session. Idempotent.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sess, ok := middleware.SessionFromContext(c); ok {
		h.authService.Logout(c.Request.Context(), sess.ID)
	}
	utils.SuccessResponse(c, "Logged out", nil)
}

// Me returns the account behind the session, refreshed from the platform.
func (h *AuthHandler) Me(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, "Account retrieved", user)
}

// UpdateProfile applies a partial profile edit.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var update models.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), sess, update)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, "Profile updated", user)
}

// ForgotPassword requests a password-reset OTP for an email.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	result, err := h.authService.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, result.Message, nil)
}

// VerifyOTP checks a password-reset code.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
		OTP   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	result, err := h.authService.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, result.Message, gin.H{"token": result.Token})
}

// ResetPassword sets a new password after OTP verification.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required"`
		OTP         string `json:"otp" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	result, err := h.authService.ResetPassword(c.Request.Context(), req.Email, req.OTP, req.NewPassword)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, result.Message, nil)
}
