package models

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.Author.Balance == "" {
		p.Author.Balance = "0.00"
	}
}

// PostedOn reports whether the post was created during the calendar day
// containing t, in t's location.
func (p *Post) PostedOn(t time.Time) bool {
	start, end := DayWindow(t)
	return !p.CreatedAt.Before(start) && p.CreatedAt.Before(end)
}

// DayWindow returns the half-open [local midnight, next midnight) interval
// containing t.
func DayWindow(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
