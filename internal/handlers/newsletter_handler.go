package handlers

import (
	"swiftride/internal/services"
	"swiftride/internal/utils"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletterService services.NewsletterService
}

func NewNewsletterHandler(newsletterService services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
	}
}

// Subscribe forwards a newsletter signup.
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.newsletterService.Subscribe(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, "Subscribed to the newsletter", nil)
}
