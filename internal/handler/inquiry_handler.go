package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/melodybakes/inquiry-api/internal/dto"
	"github.com/melodybakes/inquiry-api/internal/service"
	appErrors "github.com/melodybakes/inquiry-api/pkg/errors"
	"github.com/melodybakes/inquiry-api/pkg/response"
)

// InquiryHandler wires the moderation dashboard endpoints to the inquiry service.
type InquiryHandler struct {
	service *service.InquiryService
}

// NewInquiryHandler creates a new handler.
func NewInquiryHandler(svc *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: svc}
}

// List godoc
// @Summary List order inquiries
// @Description List inquiries newest-first, optionally filtered by status
// @Tags Inquiries
// @Produce json
// @Param status query string false "Exact status filter (new|contacted|confirmed|completed|cancelled|all)"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Security BearerAuth
// @Router /inquiries [get]
func (h *InquiryHandler) List(c *gin.Context) {
	var query dto.ListInquiriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid list query"))
		return
	}

	items, pagination, err := h.service.List(c.Request.Context(), query.Status, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, items, pagination)
}

// Get godoc
// @Summary Get one inquiry
// @Tags Inquiries
// @Produce json
// @Param id path string true "Inquiry id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /inquiries/{id} [get]
func (h *InquiryHandler) Get(c *gin.Context) {
	inquiry, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, inquiry, nil)
}

// UpdateStatus godoc
// @Summary Update inquiry status
// @Description Move an inquiry to any of the five workflow statuses
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param id path string true "Inquiry id"
// @Param payload body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /inquiries/{id}/status [patch]
func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid status payload"))
		return
	}

	inquiry, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, inquiry, nil)
}

// Export godoc
// @Summary Export inquiries
// @Description Download the inquiry list as CSV or PDF
// @Tags Inquiries
// @Produce octet-stream
// @Param status query string false "Exact status filter"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /inquiries/export [get]
func (h *InquiryHandler) Export(c *gin.Context) {
	var query dto.ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export query"))
		return
	}

	filename, contentType, data, err := h.service.Export(c.Request.Context(), query.Status, query.Format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// OrderSheet godoc
// @Summary Printable order sheet
// @Description Render one inquiry as a printable PDF sheet
// @Tags Inquiries
// @Produce octet-stream
// @Param id path string true "Inquiry id"
// @Success 200 {file} binary
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /inquiries/{id}/sheet [get]
func (h *InquiryHandler) OrderSheet(c *gin.Context) {
	data, err := h.service.OrderSheet(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="order-sheet.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// WhatsAppLink godoc
// @Summary WhatsApp hand-off link
// @Description Build a wa.me link that opens a chat with the customer
// @Tags Inquiries
// @Produce json
// @Param id path string true "Inquiry id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /inquiries/{id}/whatsapp [get]
func (h *InquiryHandler) WhatsAppLink(c *gin.Context) {
	url, err := h.service.WhatsAppLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, dto.WhatsAppLinkResponse{URL: url}, nil)
}
