// Package validation provides input validation and sanitization for intent
// messages arriving over the bridge.
package validation

import (
	"encoding/json"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Message size and content limits.
const (
	MaxMessageSize    = 64 * 1024
	MaxCityNameLen    = 40
	MaxMessagesPerMin = 200
)

// City names allow letters, digits, spaces, hyphens, apostrophes and dots.
var validCityNameChars = regexp.MustCompile(`^[a-zA-Z0-9\s\-'.]+$`)

// MessageValidator validates raw bridge messages with per-client rate
// limiting.
type MessageValidator struct {
	rateLimiter *RateLimiter
}

// NewMessageValidator creates a message validator.
func NewMessageValidator() *MessageValidator {
	return &MessageValidator{
		rateLimiter: NewRateLimiter(MaxMessagesPerMin, time.Minute),
	}
}

// Close releases the validator's resources.
func (v *MessageValidator) Close() {
	if v.rateLimiter != nil {
		v.rateLimiter.Close()
	}
}

// ValidateMessage checks a raw message against size, format, and rate
// constraints.
func (v *MessageValidator) ValidateMessage(data []byte, clientID string) error {
	if len(data) > MaxMessageSize {
		return fmt.Errorf("message too large: %d bytes (max %d)", len(data), MaxMessageSize)
	}
	if !json.Valid(data) {
		return fmt.Errorf("invalid JSON format")
	}
	if !v.rateLimiter.Allow(clientID) {
		return fmt.Errorf("rate limit exceeded: max %d messages per minute", MaxMessagesPerMin)
	}
	return nil
}

// ValidateCityName validates and sanitizes a city name from an intent. An
// empty name is allowed; it asks the engine to pick a default.
func ValidateCityName(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	if len(name) > MaxCityNameLen {
		return "", fmt.Errorf("city name too long: %d characters (max %d)", len(name), MaxCityNameLen)
	}
	if !utf8.ValidString(name) {
		return "", fmt.Errorf("city name contains invalid UTF-8")
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("city name cannot be only whitespace")
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("city name contains control characters")
		}
	}
	if !validCityNameChars.MatchString(trimmed) {
		return "", fmt.Errorf("city name contains invalid characters")
	}
	return html.EscapeString(trimmed), nil
}

// ValidateEntityID checks the shape of a unit or city identifier. IDs are
// UUID strings; anything else is rejected before it reaches the engine.
func ValidateEntityID(id string) error {
	if id == "" {
		return fmt.Errorf("entity id cannot be empty")
	}
	if len(id) != 36 {
		return fmt.Errorf("entity id has invalid length %d", len(id))
	}
	for i, r := range id {
		switch i {
		case 8, 13, 18, 23:
			if r != '-' {
				return fmt.Errorf("entity id malformed at position %d", i)
			}
		default:
			isHex := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
			if !isHex {
				return fmt.Errorf("entity id malformed at position %d", i)
			}
		}
	}
	return nil
}
