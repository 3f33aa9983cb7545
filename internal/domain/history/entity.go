package history

import (
	"context"
	"time"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// History is an append-only employment record derived from an approved
// application, denormalized through the application to its job and company.
type History struct {
	ID            int64
	ApplicationID int64
	StartDate     time.Time
	EndDate       *time.Time
	Status        string
	VerifiedAt    time.Time

	SeniorID    string
	JobID       int64
	CompanyID   string
	CompanyName string
	JobTitle    string
}

type Repository interface {
	List(ctx context.Context) ([]History, error)
	ListByApplication(ctx context.Context, applicationID int64) ([]History, error)
}
