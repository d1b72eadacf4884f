package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"orgevents/internal/domain"
)

const (
	minPasswordLen = 8
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return "", invalidInput("invalid email format")
	}
	return email, nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return invalidInput("password must be at least %d characters", minPasswordLen)
	}
	return nil
}

func validateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return invalidInput("date must be YYYY-MM-DD")
	}
	return nil
}

func validateTime(t string) error {
	if _, err := time.Parse(timeLayout, t); err != nil {
		return invalidInput("time must be HH:MM")
	}
	return nil
}
