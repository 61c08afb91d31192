package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseSince parses the start of a reporting range
// Supported formats:
// - dd/mm/yyyy (e.g., "15/12/2024")
// - X days (e.g., "3 days", "1 day")
// - X weeks (e.g., "2 weeks", "1 week")
// - X months (e.g., "6 months", "1 month")
// Relative forms count backwards from today.
func ParseSince(input string) (*time.Time, error) {
	if input == "" {
		return nil, nil
	}

	input = strings.TrimSpace(input)

	// Try dd/mm/yyyy format first
	if since, err := parseDateFormat(input); err == nil {
		return since, nil
	}

	// Try relative time formats
	if since, err := parseRelativePast(input); err == nil {
		return since, nil
	}

	return nil, fmt.Errorf("invalid date format. Use: dd/mm/yyyy, X days, X weeks, or X months")
}

// parseDateFormat parses dd/mm/yyyy format
func parseDateFormat(input string) (*time.Time, error) {
	dateRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	matches := dateRegex.FindStringSubmatch(input)

	if len(matches) != 4 {
		return nil, fmt.Errorf("invalid date format")
	}

	day, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, fmt.Errorf("invalid day")
	}

	month, err := strconv.Atoi(matches[2])
	if err != nil {
		return nil, fmt.Errorf("invalid month")
	}

	year, err := strconv.Atoi(matches[3])
	if err != nil {
		return nil, fmt.Errorf("invalid year")
	}

	// Validate date ranges
	if day < 1 || day > 31 {
		return nil, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("year must be between 2000 and 2100")
	}

	since := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// Check if date is valid (handles leap years, etc.)
	if since.Day() != day || since.Month() != time.Month(month) || since.Year() != year {
		return nil, fmt.Errorf("invalid date")
	}

	return &since, nil
}

// parseRelativePast parses relative forms like "3 days", "2 weeks", "1 month"
func parseRelativePast(input string) (*time.Time, error) {
	input = strings.ToLower(input)

	relativeRegex := regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks|month|months)$`)
	matches := relativeRegex.FindStringSubmatch(input)

	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid relative time format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, fmt.Errorf("invalid number")
	}

	unit := matches[2]
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch unit {
	case "day", "days":
		if amount < 1 || amount > 365 {
			return nil, fmt.Errorf("days must be between 1 and 365")
		}
		since := today.AddDate(0, 0, -amount)
		return &since, nil

	case "week", "weeks":
		if amount < 1 || amount > 52 {
			return nil, fmt.Errorf("weeks must be between 1 and 52")
		}
		since := today.AddDate(0, 0, -amount*7)
		return &since, nil

	case "month", "months":
		if amount < 1 || amount > 24 {
			return nil, fmt.Errorf("months must be between 1 and 24")
		}
		since := today.AddDate(0, -amount, 0)
		return &since, nil

	default:
		return nil, fmt.Errorf("unsupported time unit")
	}
}

// FormatSessionDate formats a session date for display
func FormatSessionDate(date time.Time) string {
	now := time.Now()

	// Calculate calendar days difference
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	sessionDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	daysDiff := int(today.Sub(sessionDay).Hours() / 24)

	dateStr := date.Format("02/01/2006 15:04")

	if daysDiff == 0 {
		return fmt.Sprintf("today (%s)", dateStr)
	} else if daysDiff == 1 {
		return fmt.Sprintf("yesterday (%s)", dateStr)
	} else if daysDiff > 1 && daysDiff <= 7 {
		return fmt.Sprintf("%d days ago (%s)", daysDiff, dateStr)
	}
	return dateStr
}
