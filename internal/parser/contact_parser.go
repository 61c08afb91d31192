package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRegexp = regexp.MustCompile(`^\+?\d{6,15}$`)
)

// NormalizeEmail normalizes an email address to lowercase
// Returns error if the shape is invalid
func NormalizeEmail(email string) (string, error) {
	if email == "" {
		return "", nil
	}

	email = strings.ToLower(strings.TrimSpace(email))

	if !emailRegexp.MatchString(email) {
		return "", fmt.Errorf("invalid email format. Use: name@domain.tld")
	}

	return email, nil
}

// IsValidEmail checks if a string looks like an email address
func IsValidEmail(email string) bool {
	if email == "" {
		return true // Empty is valid (checked separately where required)
	}

	return emailRegexp.MatchString(strings.ToLower(strings.TrimSpace(email)))
}

// NormalizePhone strips separators from a phone number, keeping a leading +
// Accepts formats like "+41 79 123 45 67", "079-123-45-67"
func NormalizePhone(phone string) (string, error) {
	if phone == "" {
		return "", nil
	}

	cleaned := strings.TrimSpace(phone)
	cleaned = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "/", "", ".", "").Replace(cleaned)

	if !phoneRegexp.MatchString(cleaned) {
		return "", fmt.Errorf("invalid phone format. Use digits with optional leading +")
	}

	return cleaned, nil
}

// IsValidPhone checks if a string looks like a phone number
func IsValidPhone(phone string) bool {
	if phone == "" {
		return true // Empty is valid (optional field)
	}

	_, err := NormalizePhone(phone)
	return err == nil
}
