package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/melodybakes/inquiry-api/internal/dto"
	"github.com/melodybakes/inquiry-api/internal/service"
	appErrors "github.com/melodybakes/inquiry-api/pkg/errors"
)

// SurveyHandler serves the public quotation-survey submission route. Like the
// intake route it is consumed by the marketing site, so responses stay flat.
type SurveyHandler struct {
	service *service.SurveyService
}

// NewSurveyHandler creates a new handler.
func NewSurveyHandler(svc *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{service: svc}
}

// Submit godoc
// @Summary Submit a quotation survey
// @Description Validate the wizard answers server-side and create an inquiry
// @Tags Intake
// @Accept json
// @Produce json
// @Param payload body dto.SurveyQuoteRequest true "Survey answers"
// @Success 200 {object} dto.SurveyQuoteResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Router /survey/quote [post]
func (h *SurveyHandler) Submit(c *gin.Context) {
	var req dto.SurveyQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.service.Submit(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		writeSurveyError(c, err)
		return
	}

	payload := gin.H{
		"success": true,
		"id":      result.Inquiry.ID,
		"message": "Inquiry submitted successfully",
	}
	if result.WhatsAppURL != "" {
		payload["whatsapp_url"] = result.WhatsAppURL
	}
	c.JSON(http.StatusOK, payload)
}

func writeSurveyError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	switch appErr.Status {
	case http.StatusTooManyRequests:
		c.JSON(http.StatusTooManyRequests, gin.H{"error": appErr.Message, "rateLimited": true})
	case http.StatusBadRequest:
		c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
	case http.StatusUnprocessableEntity:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": appErr.Message, "disqualified": true})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit inquiry"})
	}
}
