package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melodybakes/inquiry-api/internal/models"
)

func strPtr(s string) *string {
	return &s
}

func validRequest() models.SubmitInquiryRequest {
	return models.SubmitInquiryRequest{
		Name:       "Thandi Nkosi",
		Contact:    "0821234567",
		CakeType:   "Chocolate fudge",
		DateNeeded: "2026-09-12",
	}
}

func TestValidateSubmissionAccepts(t *testing.T) {
	sanitized, reason := ValidateSubmission(validRequest())
	require.NotNil(t, sanitized)
	assert.Empty(t, reason)
	assert.Equal(t, "Thandi Nkosi", sanitized.Name)
	assert.Equal(t, models.DeliveryPickup, sanitized.DeliveryOption)
	assert.Nil(t, sanitized.EventType)
	assert.Nil(t, sanitized.AdditionalNotes)
}

func TestValidateSubmissionHoneypot(t *testing.T) {
	req := validRequest()
	req.Honeypot = strPtr("http://spam.example")

	sanitized, reason := ValidateSubmission(req)
	assert.Nil(t, sanitized)
	assert.Equal(t, "Invalid submission", reason)
}

func TestValidateSubmissionHoneypotWhitespaceIgnored(t *testing.T) {
	req := validRequest()
	req.Honeypot = strPtr("   ")

	sanitized, reason := ValidateSubmission(req)
	require.NotNil(t, sanitized)
	assert.Empty(t, reason)
}

func TestValidateSubmissionRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.SubmitInquiryRequest)
		reason string
	}{
		{"short name", func(r *models.SubmitInquiryRequest) { r.Name = "A" }, "Name must be at least 2 characters"},
		{"whitespace name", func(r *models.SubmitInquiryRequest) { r.Name = "  A  " }, "Name must be at least 2 characters"},
		{"long name", func(r *models.SubmitInquiryRequest) { r.Name = strings.Repeat("a", 101) }, "Name must be less than 100 characters"},
		{"short contact", func(r *models.SubmitInquiryRequest) { r.Contact = "082123" }, "Contact must be at least 10 characters"},
		{"long contact", func(r *models.SubmitInquiryRequest) { r.Contact = strings.Repeat("1", 51) }, "Contact must be less than 50 characters"},
		{"missing cake type", func(r *models.SubmitInquiryRequest) { r.CakeType = "   " }, "Cake type is required"},
		{"long cake type", func(r *models.SubmitInquiryRequest) { r.CakeType = strings.Repeat("c", 101) }, "Cake type must be less than 100 characters"},
		{"missing date", func(r *models.SubmitInquiryRequest) { r.DateNeeded = "" }, "Date needed is required"},
		{"slash date", func(r *models.SubmitInquiryRequest) { r.DateNeeded = "2026/09/12" }, "Invalid date format"},
		{"short year", func(r *models.SubmitInquiryRequest) { r.DateNeeded = "26-09-12" }, "Invalid date format"},
		{"long event type", func(r *models.SubmitInquiryRequest) { r.EventType = strPtr(strings.Repeat("e", 101)) }, "Event type must be less than 100 characters"},
		{"long location", func(r *models.SubmitInquiryRequest) { r.DeliveryLocation = strPtr(strings.Repeat("l", 201)) }, "Delivery location must be less than 200 characters"},
		{"long notes", func(r *models.SubmitInquiryRequest) { r.AdditionalNotes = strPtr(strings.Repeat("n", 5001)) }, "Additional notes must be less than 5000 characters"},
		{"unknown delivery option", func(r *models.SubmitInquiryRequest) { r.DeliveryOption = strPtr("courier") }, "Invalid delivery option"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			sanitized, reason := ValidateSubmission(req)
			assert.Nil(t, sanitized)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestValidateSubmissionDateFormatOnly(t *testing.T) {
	// The check is shape, not calendar validity.
	req := validRequest()
	req.DateNeeded = "2024-13-99"

	sanitized, reason := ValidateSubmission(req)
	require.NotNil(t, sanitized)
	assert.Empty(t, reason)
	assert.Equal(t, "2024-13-99", sanitized.DateNeeded)
}

func TestValidateSubmissionDeliveryOptionNormalized(t *testing.T) {
	req := validRequest()
	req.DeliveryOption = strPtr("  DELIVERY  ")
	req.DeliveryLocation = strPtr("12 Rose Street, Cape Town")

	sanitized, reason := ValidateSubmission(req)
	require.NotNil(t, sanitized)
	assert.Empty(t, reason)
	assert.Equal(t, models.DeliveryDelivery, sanitized.DeliveryOption)
	require.NotNil(t, sanitized.DeliveryLocation)
	assert.Equal(t, "12 Rose Street, Cape Town", *sanitized.DeliveryLocation)
}

func TestValidateSubmissionEmptyDeliveryOptionDefaultsToPickup(t *testing.T) {
	req := validRequest()
	req.DeliveryOption = strPtr("")

	sanitized, _ := ValidateSubmission(req)
	require.NotNil(t, sanitized)
	assert.Equal(t, models.DeliveryPickup, sanitized.DeliveryOption)
}

func TestValidateSubmissionTrimsFields(t *testing.T) {
	req := validRequest()
	req.Name = "  Thandi Nkosi  "
	req.Contact = "  0821234567  "
	req.CakeType = "  Red velvet  "
	req.EventType = strPtr("  Birthday  ")

	sanitized, reason := ValidateSubmission(req)
	require.NotNil(t, sanitized)
	assert.Empty(t, reason)
	assert.Equal(t, "Thandi Nkosi", sanitized.Name)
	assert.Equal(t, "0821234567", sanitized.Contact)
	assert.Equal(t, "Red velvet", sanitized.CakeType)
	require.NotNil(t, sanitized.EventType)
	assert.Equal(t, "Birthday", *sanitized.EventType)
}

func TestValidateSubmissionRuneAwareLimits(t *testing.T) {
	// Multi-byte runes count as one character each.
	req := validRequest()
	req.Name = strings.Repeat("é", 100)

	sanitized, reason := ValidateSubmission(req)
	require.NotNil(t, sanitized)
	assert.Empty(t, reason)
	assert.Equal(t, 100, len([]rune(sanitized.Name)))
}

func TestValidateSubmissionIdempotent(t *testing.T) {
	req := validRequest()
	req.AdditionalNotes = strPtr("  Please add gold leaf  ")

	first, reason := ValidateSubmission(req)
	require.NotNil(t, first)
	require.Empty(t, reason)

	again := models.SubmitInquiryRequest{
		Name:            first.Name,
		Contact:         first.Contact,
		CakeType:        first.CakeType,
		DateNeeded:      first.DateNeeded,
		AdditionalNotes: first.AdditionalNotes,
	}
	second, reason := ValidateSubmission(again)
	require.NotNil(t, second)
	require.Empty(t, reason)
	assert.Equal(t, first, second)
}
