package repositories

import (
	"errors"
	"time"

	"mfergm/app/models"
)

var (
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateDay is returned when the same author tuple already has a
	// post stored for the calendar day being written.
	ErrDuplicateDay = errors.New("post already exists for this mfer today")
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	HasPostedOn(address, title, thumbnail string, day time.Time) (bool, error)
	ListApproved(limit, offset int) ([]*models.Post, error)
	CountApproved() (int, error)
}
