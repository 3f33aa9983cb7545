package seeder

import (
	"context"

	"silverwork/internal/database"
)

// Seeder populates one slice of demo data. Implementations check for their
// own marker rows and return nil without writing when the data is already
// present.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
