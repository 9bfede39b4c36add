package dto

// UpdateStatusRequest changes a single inquiry's workflow status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListInquiriesQuery captures moderation list parameters.
type ListInquiriesQuery struct {
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// ExportQuery selects the export rendering.
type ExportQuery struct {
	Status string `form:"status"`
	Format string `form:"format"`
}

// WhatsAppLinkResponse carries the prebuilt hand-off URL for an inquiry.
type WhatsAppLinkResponse struct {
	URL string `json:"url"`
}
