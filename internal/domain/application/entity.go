package application

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("application not found")

type Application struct {
	ID        int64
	SeniorID  string
	JobID     int64
	AppliedAt time.Time
	Status    Status
	Notes     string

	// Denormalized on read.
	SeniorName string
	JobTitle   string
}

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, id int64) (Application, error)
	List(ctx context.Context) ([]Application, error)

	// UpdateStatus overwrites the application status and, in the same
	// transaction, applies the status' side effects on the employment
	// history ledger: transitioning into approved opens at most one active
	// history row (start date = now), transitioning into completed closes
	// the active row (end date = now).
	UpdateStatus(ctx context.Context, id int64, next Status, now time.Time) error
}
