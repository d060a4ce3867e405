package store

import (
	"context"
	"errors"
	"time"

	"Prescryber/models"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// UserUpdate carries the fields UpdateByID may change. Empty fields are
// left untouched.
type UserUpdate struct {
	Name     string
	Email    string
	Password string
}

// UserStore is the credential store contract.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	Create(ctx context.Context, user models.User) (models.User, error)
	UpdateByID(ctx context.Context, id string, update UserUpdate) (models.User, error)
	DeleteByID(ctx context.Context, id string) (models.User, error)
}

// PrescriptionStore is the prescription store contract. Concurrent updates
// to the same document are last-write-wins.
type PrescriptionStore interface {
	FindByID(ctx context.Context, id string) (models.Prescription, error)
	// FindForUser returns every prescription the email participates in,
	// as patient or as prescriber.
	FindForUser(ctx context.Context, email string) ([]models.Prescription, error)
	FindAll(ctx context.Context) ([]models.Prescription, error)
	// FindDue selects unfilled, verified prescriptions of the given reminder
	// interval whose expected end date is not older than since.
	FindDue(ctx context.Context, interval int, since time.Time) ([]models.Prescription, error)
	Create(ctx context.Context, prescription models.Prescription) (models.Prescription, error)
	ReplaceByID(ctx context.Context, id string, prescription models.Prescription) (models.Prescription, error)
	DeleteByID(ctx context.Context, id string) (models.Prescription, error)
}
