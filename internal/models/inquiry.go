package models

import "time"

// InquiryStatus tracks where an order inquiry sits in the bakery's workflow.
type InquiryStatus string

const (
	StatusNew       InquiryStatus = "new"
	StatusContacted InquiryStatus = "contacted"
	StatusConfirmed InquiryStatus = "confirmed"
	StatusCompleted InquiryStatus = "completed"
	StatusCancelled InquiryStatus = "cancelled"
)

// DeliveryOption is how the customer receives the cake.
type DeliveryOption string

const (
	DeliveryPickup   DeliveryOption = "pickup"
	DeliveryDelivery DeliveryOption = "delivery"
)

// ValidStatus reports whether s is one of the five workflow statuses.
func ValidStatus(s InquiryStatus) bool {
	switch s {
	case StatusNew, StatusContacted, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Inquiry represents a persisted order inquiry row.
type Inquiry struct {
	ID               string         `db:"id" json:"id"`
	Name             string         `db:"name" json:"name"`
	Contact          string         `db:"contact" json:"contact"`
	CakeType         string         `db:"cake_type" json:"cake_type"`
	EventType        *string        `db:"event_type" json:"event_type,omitempty"`
	DeliveryOption   DeliveryOption `db:"delivery_option" json:"delivery_option"`
	DeliveryLocation *string        `db:"delivery_location" json:"delivery_location,omitempty"`
	DateNeeded       string         `db:"date_needed" json:"date_needed"`
	AdditionalNotes  *string        `db:"additional_notes" json:"additional_notes,omitempty"`
	Status           InquiryStatus  `db:"status" json:"status"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
}

// InquiryFilter captures listing criteria for the moderation view.
type InquiryFilter struct {
	Status   *InquiryStatus
	Page     int
	PageSize int
}

// SubmitInquiryRequest is the raw order-form payload before validation. All
// fields arrive untrusted; the intake validator produces the sanitized record.
type SubmitInquiryRequest struct {
	Name             string  `json:"name"`
	Contact          string  `json:"contact"`
	CakeType         string  `json:"cake_type"`
	EventType        *string `json:"event_type"`
	DeliveryOption   *string `json:"delivery_option"`
	DeliveryLocation *string `json:"delivery_location"`
	DateNeeded       string  `json:"date_needed"`
	AdditionalNotes  *string `json:"additional_notes"`
	Honeypot         *string `json:"honeypot"`
}

// SanitizedInquiry is the validator output: trimmed, capped, ready to persist.
type SanitizedInquiry struct {
	Name             string
	Contact          string
	CakeType         string
	EventType        *string
	DeliveryOption   DeliveryOption
	DeliveryLocation *string
	DateNeeded       string
	AdditionalNotes  *string
}
