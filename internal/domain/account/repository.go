package account

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("account not found")
	ErrDuplicateID = errors.New("account id already exists")
)

type Repository interface {
	// GetByID resolves an id against the single account key space,
	// regardless of kind.
	GetByID(ctx context.Context, id string) (Account, error)

	CreateSenior(ctx context.Context, acc Account, profile SeniorProfile) error
	CreateCompany(ctx context.Context, acc Account, company Company) error

	GetSenior(ctx context.Context, id string) (Account, SeniorProfile, error)
	GetCompany(ctx context.Context, id string) (Account, Company, error)
	GetGovernment(ctx context.Context, id string) (Account, Government, error)

	// ReplaceSeniorProfile overwrites the complete extended field set of a
	// senior. Absent fields are written as NULL, not merged.
	ReplaceSeniorProfile(ctx context.Context, id string, profile SeniorProfile) error
}
