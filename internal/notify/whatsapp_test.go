package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsMarkdown(t *testing.T) {
	assert.Equal(t, "bold and sneaky", Sanitize("*bold* _and_ ~sneaky~", 100))
	assert.Equal(t, "code", Sanitize("`code`", 100))
}

func TestSanitizeCollapsesNewlines(t *testing.T) {
	assert.Equal(t, "line one line two", Sanitize("line one\r\n\r\n\nline two", 100))
}

func TestSanitizeTrimsAndCaps(t *testing.T) {
	assert.Equal(t, "hello", Sanitize("   hello   ", 100))
	assert.Equal(t, "abcde", Sanitize("abcdefghij", 5))
	assert.Equal(t, "", Sanitize("", 100))
}

func TestPhoneDigits(t *testing.T) {
	assert.Equal(t, "27821234567", PhoneDigits("+27 82 123 4567"))
	assert.Equal(t, "0821234567", PhoneDigits("082-123-4567"))
	assert.Equal(t, "", PhoneDigits("no number here"))
}

func TestBuildURL(t *testing.T) {
	url := BuildURL("27821234567", "Hi there! Cake inquiry")
	assert.Equal(t, "https://wa.me/27821234567?text=Hi+there%21+Cake+inquiry", url)
}

func TestBuildURLTruncatesLongMessages(t *testing.T) {
	long := strings.Repeat("chocolate ganache with fresh berries ", 200)
	url := BuildURL("27821234567", long)

	assert.LessOrEqual(t, len(url), 2000)
	assert.Contains(t, url, "truncated")
}

func TestBuildURLShortMessageUntouched(t *testing.T) {
	url := BuildURL("27821234567", "short")
	assert.NotContains(t, url, "truncated")
}
