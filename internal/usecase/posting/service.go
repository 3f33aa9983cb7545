package posting

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"silverwork/internal/domain/account"
	"silverwork/internal/domain/posting"
)

var (
	ErrNotFound          = errors.New("job posting not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidStatus     = errors.New("unknown status")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrInternal          = errors.New("internal error")
)

const dateLayout = "2006-01-02"

type CreateInput struct {
	CompanyID      string
	Title          string
	Description    string
	Location       string
	EmploymentType string
	WageType       string
	WageAmount     int64
	WorkDays       string
	WorkHours      string
	WorkPeriod     string
	Deadline       string
}

type Usecase interface {
	Create(ctx context.Context, in CreateInput) (posting.Posting, error)
	List(ctx context.Context) ([]posting.Posting, error)
	UpdateStatus(ctx context.Context, id int64, status, govID string) error
}

type Service struct {
	postings posting.Repository
	accounts account.Repository
	logger   *zap.Logger
}

func NewService(postings posting.Repository, accounts account.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{postings: postings, accounts: accounts, logger: logger}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (posting.Posting, error) {
	if strings.TrimSpace(in.CompanyID) == "" ||
		strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.Location) == "" ||
		strings.TrimSpace(in.EmploymentType) == "" ||
		strings.TrimSpace(in.WorkDays) == "" ||
		strings.TrimSpace(in.WorkHours) == "" ||
		strings.TrimSpace(in.WorkPeriod) == "" ||
		in.WageAmount <= 0 {
		return posting.Posting{}, ErrInvalidInput
	}

	var deadline *time.Time
	if d := strings.TrimSpace(in.Deadline); d != "" {
		t, err := time.Parse(dateLayout, d)
		if err != nil {
			return posting.Posting{}, ErrInvalidInput
		}
		deadline = &t
	}

	if _, _, err := s.accounts.GetCompany(ctx, in.CompanyID); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return posting.Posting{}, ErrInvalidInput
		}
		s.logger.Error("load company", zap.String("company_id", in.CompanyID), zap.Error(err))
		return posting.Posting{}, ErrInternal
	}

	// Caller input never sets the initial status.
	p := posting.Posting{
		CompanyID:      in.CompanyID,
		Title:          strings.TrimSpace(in.Title),
		Description:    in.Description,
		Location:       in.Location,
		EmploymentType: in.EmploymentType,
		WageType:       in.WageType,
		WageAmount:     in.WageAmount,
		WorkDays:       in.WorkDays,
		WorkHours:      in.WorkHours,
		WorkPeriod:     in.WorkPeriod,
		Deadline:       deadline,
		Status:         posting.StatusPendingApproval,
	}

	if err := s.postings.Create(ctx, &p); err != nil {
		s.logger.Error("create job posting", zap.String("company_id", in.CompanyID), zap.Error(err))
		return posting.Posting{}, ErrInternal
	}

	created, err := s.postings.GetByID(ctx, p.ID)
	if err != nil {
		s.logger.Error("reload job posting", zap.Int64("job_id", p.ID), zap.Error(err))
		return posting.Posting{}, ErrInternal
	}

	s.logger.Info("job posting created",
		zap.Int64("job_id", created.ID),
		zap.String("company_id", created.CompanyID),
	)
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]posting.Posting, error) {
	out, err := s.postings.List(ctx)
	if err != nil {
		s.logger.Error("list job postings", zap.Error(err))
		return nil, ErrInternal
	}
	return out, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status, govID string) error {
	next, err := posting.ParseStatus(status)
	if err != nil {
		return ErrInvalidStatus
	}

	current, err := s.postings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, posting.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("load job posting", zap.Int64("job_id", id), zap.Error(err))
		return ErrInternal
	}

	if !current.Status.CanTransitionTo(next) {
		return ErrIllegalTransition
	}

	var approver *string
	if next == posting.StatusApproved {
		if g := strings.TrimSpace(govID); g != "" {
			if _, _, err := s.accounts.GetGovernment(ctx, g); err != nil {
				if errors.Is(err, account.ErrNotFound) {
					return ErrInvalidInput
				}
				s.logger.Error("load government account", zap.String("gov_id", g), zap.Error(err))
				return ErrInternal
			}
			approver = &g
		}
	}

	if err := s.postings.UpdateStatus(ctx, id, next, approver); err != nil {
		if errors.Is(err, posting.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("update job posting status", zap.Int64("job_id", id), zap.Error(err))
		return ErrInternal
	}

	s.logger.Info("job posting status updated",
		zap.Int64("job_id", id),
		zap.String("from", string(current.Status)),
		zap.String("to", string(next)),
	)
	return nil
}
