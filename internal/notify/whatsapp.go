// Package notify builds WhatsApp hand-off links. The bakery runs its customer
// conversations over WhatsApp, so the dashboard offers a one-tap link that
// opens a chat pre-filled with the inquiry summary.
package notify

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const (
	// wa.me URLs should stay under 2048 characters to open reliably.
	maxURLLength     = 2000
	truncatedMessage = 1500
	truncationNotice = "\n\n[Message truncated - please provide more details in chat]"
)

var (
	markdownChars = regexp.MustCompile("[*_~`]")
	newlineRuns   = regexp.MustCompile(`[\r\n]+`)
	nonDigits     = regexp.MustCompile(`\D`)
)

// Sanitize strips WhatsApp markdown characters, collapses newlines and caps
// the length, so user-supplied text cannot break message formatting.
func Sanitize(text string, maxLength int) string {
	if text == "" {
		return ""
	}
	cleaned := markdownChars.ReplaceAllString(text, "")
	cleaned = newlineRuns.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	if len(cleaned) > maxLength {
		cleaned = cleaned[:maxLength]
	}
	return cleaned
}

// PhoneDigits extracts the dialable digits from a free-form contact field.
func PhoneDigits(contact string) string {
	return nonDigits.ReplaceAllString(contact, "")
}

// BuildURL assembles a wa.me link carrying the message, truncating when the
// encoded result would exceed safe URL limits.
func BuildURL(phoneNumber, message string) string {
	base := fmt.Sprintf("https://wa.me/%s?text=", phoneNumber)
	encoded := url.QueryEscape(message)

	maxMessageLength := maxURLLength - len(base)
	if len(encoded) > maxMessageLength {
		shortened := message
		if len(shortened) > truncatedMessage {
			shortened = shortened[:truncatedMessage]
		}
		encoded = url.QueryEscape(shortened + truncationNotice)
	}

	return base + encoded
}
