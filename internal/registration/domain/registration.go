package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	documentDomain "github.com/anylai/signup/internal/document/domain"
)

// Registration is an accepted sign-up. It is handed back to the caller, who owns
// persisting or submitting it.
type Registration struct {
	ID           uuid.UUID
	Kind         documentDomain.Kind
	Document     string
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Profile      Profile
	CreatedAt    time.Time
}

// Review is the outcome of checking a whole form. Problems maps a field name to
// the message shown under it.
type Review struct {
	Ready    bool
	Problems map[Field]string
}

// Summary joins the problems in field order for logs and error messages.
func (r Review) Summary() string {
	fields := make([]string, 0, len(r.Problems))
	for field := range r.Problems {
		fields = append(fields, string(field))
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+r.Problems[Field(field)])
	}
	return strings.Join(parts, "; ")
}

// IncompleteFormError carries the review of a form that failed to register.
type IncompleteFormError struct {
	Review Review
}

func (e *IncompleteFormError) Error() string {
	return ErrFormIncomplete.Error() + ": " + e.Review.Summary()
}

// Unwrap exposes ErrFormIncomplete so callers can match with errors.Is.
func (e *IncompleteFormError) Unwrap() error {
	return ErrFormIncomplete
}
