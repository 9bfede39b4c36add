package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/melodybakes/inquiry-api/internal/models"
	"github.com/melodybakes/inquiry-api/internal/service"
	appErrors "github.com/melodybakes/inquiry-api/pkg/errors"
)

// IntakeHandler serves the public order-inquiry submission route. The route
// predates this server, so its JSON shapes are kept exactly as the marketing
// site expects them rather than using the dashboard envelope.
type IntakeHandler struct {
	service *service.IntakeService
}

// NewIntakeHandler creates a new handler.
func NewIntakeHandler(svc *service.IntakeService) *IntakeHandler {
	return &IntakeHandler{service: svc}
}

// Submit godoc
// @Summary Submit an order inquiry
// @Description Public order form endpoint with honeypot and rate limiting
// @Tags Intake
// @Accept json
// @Produce json
// @Param payload body models.SubmitInquiryRequest true "Order inquiry payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 405 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Router /submit-order-inquiry [post]
func (h *IntakeHandler) Submit(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		return
	}

	var req models.SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	inquiry, err := h.service.Submit(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		writeIntakeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      inquiry.ID,
		"message": "Inquiry submitted successfully",
	})
}

func writeIntakeError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	switch appErr.Status {
	case http.StatusTooManyRequests:
		c.JSON(http.StatusTooManyRequests, gin.H{"error": appErr.Message, "rateLimited": true})
	case http.StatusBadRequest:
		c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
	default:
		// Storage detail never leaks to the public form.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit inquiry"})
	}
}
