// Package subscribers manages the newsletter audience: signup intake
// with double opt-in tokens, the SQLite store behind the ops dashboard,
// and the cached reader count shown on public pages.
package subscribers

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// ErrInvalidEmail marks a rejected signup address. Handlers map it to
// a 400 while every other store error stays a 500.
var ErrInvalidEmail = errors.New("invalid email address")

// Subscriber statuses. A signup starts pending and becomes confirmed
// through the emailed token link; unsubscribed and bounced rows are
// kept for suppression instead of being deleted.
const (
	StatusPending      = "pending"
	StatusConfirmed    = "confirmed"
	StatusUnsubscribed = "unsubscribed"
	StatusBounced      = "bounced"
)

// Statuses lists the valid subscriber statuses in lifecycle order.
var Statuses = []string{StatusPending, StatusConfirmed, StatusUnsubscribed, StatusBounced}

// ValidStatus reports whether s is a known subscriber status.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Subscriber is one newsletter signup.
type Subscriber struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	Token     string    `json:"-"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const maxEmailLen = 254

// NormalizeEmail lowercases and trims an address and validates it.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", fmt.Errorf("empty email: %w", ErrInvalidEmail)
	}
	if len(email) > maxEmailLen {
		return "", fmt.Errorf("email exceeds %d characters: %w", maxEmailLen, ErrInvalidEmail)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, ErrInvalidEmail)
	}
	// reject the "Name <addr>" form, only bare addresses are stored
	if addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}
