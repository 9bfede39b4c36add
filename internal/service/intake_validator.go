package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/melodybakes/inquiry-api/internal/models"
)

// Field caps mirror the order_inquiries column limits. Sanitized output is
// hard-truncated to these even when the length checks already passed, so a
// bypassed check can never overflow a column.
const (
	nameMinLen     = 2
	nameMaxLen     = 100
	contactMinLen  = 10
	contactMaxLen  = 50
	cakeTypeMaxLen = 100
	eventTypeMax   = 100
	locationMax    = 200
	notesMax       = 5000
)

// Format only. "2024-13-99" passes; calendar validity is the baker's problem.
var dateNeededPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateSubmission checks a raw order-form payload rule by rule, first
// failure wins, and returns either the sanitized record or a rejection reason.
// It is deterministic and side-effect-free.
func ValidateSubmission(req models.SubmitInquiryRequest) (*models.SanitizedInquiry, string) {
	// Honeypot: hidden field real users never fill. The reason stays generic
	// so bots learn nothing about the detection.
	if req.Honeypot != nil && strings.TrimSpace(*req.Honeypot) != "" {
		return nil, "Invalid submission"
	}

	if utf8.RuneCountInString(strings.TrimSpace(req.Name)) < nameMinLen {
		return nil, "Name must be at least 2 characters"
	}
	if utf8.RuneCountInString(req.Name) > nameMaxLen {
		return nil, "Name must be less than 100 characters"
	}

	if utf8.RuneCountInString(strings.TrimSpace(req.Contact)) < contactMinLen {
		return nil, "Contact must be at least 10 characters"
	}
	if utf8.RuneCountInString(req.Contact) > contactMaxLen {
		return nil, "Contact must be less than 50 characters"
	}

	if strings.TrimSpace(req.CakeType) == "" {
		return nil, "Cake type is required"
	}
	if utf8.RuneCountInString(req.CakeType) > cakeTypeMaxLen {
		return nil, "Cake type must be less than 100 characters"
	}

	if req.DateNeeded == "" {
		return nil, "Date needed is required"
	}
	if !dateNeededPattern.MatchString(req.DateNeeded) {
		return nil, "Invalid date format"
	}

	if req.EventType != nil && utf8.RuneCountInString(*req.EventType) > eventTypeMax {
		return nil, "Event type must be less than 100 characters"
	}
	if req.DeliveryLocation != nil && utf8.RuneCountInString(*req.DeliveryLocation) > locationMax {
		return nil, "Delivery location must be less than 200 characters"
	}
	if req.AdditionalNotes != nil && utf8.RuneCountInString(*req.AdditionalNotes) > notesMax {
		return nil, "Additional notes must be less than 5000 characters"
	}

	deliveryOption := models.DeliveryPickup
	if req.DeliveryOption != nil && *req.DeliveryOption != "" {
		normalized := strings.ToLower(strings.TrimSpace(*req.DeliveryOption))
		switch models.DeliveryOption(normalized) {
		case models.DeliveryPickup, models.DeliveryDelivery:
			deliveryOption = models.DeliveryOption(normalized)
		default:
			return nil, "Invalid delivery option"
		}
	}

	return &models.SanitizedInquiry{
		Name:             trimAndCap(req.Name, nameMaxLen),
		Contact:          trimAndCap(req.Contact, contactMaxLen),
		CakeType:         trimAndCap(req.CakeType, cakeTypeMaxLen),
		EventType:        trimAndCapOptional(req.EventType, eventTypeMax),
		DeliveryOption:   deliveryOption,
		DeliveryLocation: trimAndCapOptional(req.DeliveryLocation, locationMax),
		DateNeeded:       strings.TrimSpace(req.DateNeeded),
		AdditionalNotes:  trimAndCapOptional(req.AdditionalNotes, notesMax),
	}, ""
}

func trimAndCap(s string, max int) string {
	trimmed := strings.TrimSpace(s)
	if utf8.RuneCountInString(trimmed) <= max {
		return trimmed
	}
	runes := []rune(trimmed)
	return string(runes[:max])
}

func trimAndCapOptional(s *string, max int) *string {
	if s == nil || *s == "" {
		return nil
	}
	capped := trimAndCap(*s, max)
	return &capped
}
