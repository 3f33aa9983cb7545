package posting

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("job posting not found")

type Posting struct {
	ID             int64
	CompanyID      string
	CompanyName    string // denormalized on read, "Unknown" when the company row is gone
	Title          string
	Description    string
	Location       string
	EmploymentType string
	WageType       string
	WageAmount     int64
	WorkDays       string
	WorkHours      string
	WorkPeriod     string
	PostedAt       time.Time
	Deadline       *time.Time
	Status         Status
	GovID          *string
}

// GovernmentApproved gates the public projection: true iff the posting has
// passed government approval.
func (p Posting) GovernmentApproved() bool {
	return p.Status == StatusApproved
}

type Repository interface {
	Create(ctx context.Context, p *Posting) error
	GetByID(ctx context.Context, id int64) (Posting, error)
	List(ctx context.Context) ([]Posting, error)

	// UpdateStatus overwrites the posting status. govID, when non-nil,
	// records the approving government account.
	UpdateStatus(ctx context.Context, id int64, next Status, govID *string) error
}
