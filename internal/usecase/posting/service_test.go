package posting

import (
	"context"
	"errors"
	"testing"
	"time"

	"silverwork/internal/domain/account"
	"silverwork/internal/domain/posting"
)

type fakePostingRepo struct {
	postings map[int64]posting.Posting
	nextID   int64
}

func newFakePostingRepo() *fakePostingRepo {
	return &fakePostingRepo{postings: map[int64]posting.Posting{}, nextID: 1}
}

func (r *fakePostingRepo) Create(_ context.Context, p *posting.Posting) error {
	p.ID = r.nextID
	r.nextID++
	p.PostedAt = time.Now()
	r.postings[p.ID] = *p
	return nil
}

func (r *fakePostingRepo) GetByID(_ context.Context, id int64) (posting.Posting, error) {
	p, ok := r.postings[id]
	if !ok {
		return posting.Posting{}, posting.ErrNotFound
	}
	return p, nil
}

func (r *fakePostingRepo) List(_ context.Context) ([]posting.Posting, error) {
	out := make([]posting.Posting, 0, len(r.postings))
	for _, p := range r.postings {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePostingRepo) UpdateStatus(_ context.Context, id int64, next posting.Status, govID *string) error {
	p, ok := r.postings[id]
	if !ok {
		return posting.ErrNotFound
	}
	p.Status = next
	if govID != nil {
		p.GovID = govID
	}
	r.postings[id] = p
	return nil
}

type fakeAccounts struct {
	companies   map[string]struct{}
	governments map[string]struct{}
}

func (f fakeAccounts) GetByID(context.Context, string) (account.Account, error) {
	return account.Account{}, account.ErrNotFound
}

func (f fakeAccounts) CreateSenior(context.Context, account.Account, account.SeniorProfile) error {
	return nil
}

func (f fakeAccounts) CreateCompany(context.Context, account.Account, account.Company) error {
	return nil
}

func (f fakeAccounts) GetSenior(context.Context, string) (account.Account, account.SeniorProfile, error) {
	return account.Account{}, account.SeniorProfile{}, account.ErrNotFound
}

func (f fakeAccounts) GetCompany(_ context.Context, id string) (account.Account, account.Company, error) {
	if _, ok := f.companies[id]; !ok {
		return account.Account{}, account.Company{}, account.ErrNotFound
	}
	return account.Account{ID: id, Kind: account.KindCompany}, account.Company{AccountID: id}, nil
}

func (f fakeAccounts) GetGovernment(_ context.Context, id string) (account.Account, account.Government, error) {
	if _, ok := f.governments[id]; !ok {
		return account.Account{}, account.Government{}, account.ErrNotFound
	}
	return account.Account{ID: id, Kind: account.KindGovernment}, account.Government{AccountID: id}, nil
}

func (f fakeAccounts) ReplaceSeniorProfile(context.Context, string, account.SeniorProfile) error {
	return account.ErrNotFound
}

func validCreateInput() CreateInput {
	return CreateInput{
		CompanyID:      "C1",
		Title:          "Facility Assistant",
		Description:    "Light facility upkeep",
		Location:       "Seoul",
		EmploymentType: "part_time",
		WageType:       "hourly",
		WageAmount:     12000,
		WorkDays:       "Mon, Wed, Fri",
		WorkHours:      "09:00-13:00",
		WorkPeriod:     "6 months",
		Deadline:       "2025-12-15",
	}
}

func newTestService(repo *fakePostingRepo, accounts fakeAccounts) *Service {
	return NewService(repo, accounts, nil)
}

func TestCreateForcesPendingApproval(t *testing.T) {
	repo := newFakePostingRepo()
	svc := newTestService(repo, fakeAccounts{companies: map[string]struct{}{"C1": {}}})

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != posting.StatusPendingApproval {
		t.Fatalf("status = %q, want pending_approval", created.Status)
	}
	if created.GovernmentApproved() {
		t.Fatalf("new posting must not be government approved")
	}
	if created.Deadline == nil || created.Deadline.Format("2006-01-02") != "2025-12-15" {
		t.Fatalf("deadline not parsed: %v", created.Deadline)
	}
}

func TestCreateValidation(t *testing.T) {
	repo := newFakePostingRepo()
	svc := newTestService(repo, fakeAccounts{companies: map[string]struct{}{"C1": {}}})
	ctx := context.Background()

	in := validCreateInput()
	in.Title = ""
	if _, err := svc.Create(ctx, in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing title: expected ErrInvalidInput, got %v", err)
	}

	in = validCreateInput()
	in.Deadline = "15-12-2025"
	if _, err := svc.Create(ctx, in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad deadline: expected ErrInvalidInput, got %v", err)
	}

	in = validCreateInput()
	in.CompanyID = "ghost"
	if _, err := svc.Create(ctx, in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown company: expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakePostingRepo()
	accounts := fakeAccounts{
		companies:   map[string]struct{}{"C1": {}},
		governments: map[string]struct{}{"gov_admin": {}},
	}
	svc := newTestService(repo, accounts)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.UpdateStatus(ctx, created.ID, "approved", "gov_admin"); err != nil {
		t.Fatalf("approve: %v", err)
	}
	got := repo.postings[created.ID]
	if got.Status != posting.StatusApproved {
		t.Fatalf("status = %q, want approved", got.Status)
	}
	if got.GovID == nil || *got.GovID != "gov_admin" {
		t.Fatalf("approving government not recorded: %v", got.GovID)
	}
	if !got.GovernmentApproved() {
		t.Fatalf("government_approved must be true after approval")
	}

	if err := svc.UpdateStatus(ctx, created.ID, "pending_approval", ""); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
	if err := svc.UpdateStatus(ctx, created.ID, "frozen", ""); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if err := svc.UpdateStatus(ctx, 999, "approved", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.UpdateStatus(ctx, created.ID, "closed", ""); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestUpdateStatusUnknownGovernment(t *testing.T) {
	repo := newFakePostingRepo()
	svc := newTestService(repo, fakeAccounts{companies: map[string]struct{}{"C1": {}}})
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.UpdateStatus(ctx, created.ID, "approved", "ghost_gov"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
