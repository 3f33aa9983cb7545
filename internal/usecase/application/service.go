package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"silverwork/internal/domain/account"
	"silverwork/internal/domain/application"
	"silverwork/internal/domain/posting"
)

var (
	ErrNotFound          = errors.New("application not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidStatus     = errors.New("unknown status")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrInternal          = errors.New("internal error")
)

type CreateInput struct {
	SeniorID string
	JobID    int64
	Notes    string
}

type Usecase interface {
	Create(ctx context.Context, in CreateInput) (application.Application, error)
	List(ctx context.Context) ([]application.Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type Service struct {
	applications application.Repository
	accounts     account.Repository
	postings     posting.Repository
	logger       *zap.Logger

	now func() time.Time
}

func NewService(
	applications application.Repository,
	accounts account.Repository,
	postings posting.Repository,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		applications: applications,
		accounts:     accounts,
		postings:     postings,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (application.Application, error) {
	seniorID := strings.TrimSpace(in.SeniorID)
	if seniorID == "" || in.JobID <= 0 {
		return application.Application{}, ErrInvalidInput
	}

	if _, _, err := s.accounts.GetSenior(ctx, seniorID); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return application.Application{}, ErrInvalidInput
		}
		s.logger.Error("load senior", zap.String("senior_id", seniorID), zap.Error(err))
		return application.Application{}, ErrInternal
	}
	if _, err := s.postings.GetByID(ctx, in.JobID); err != nil {
		if errors.Is(err, posting.ErrNotFound) {
			return application.Application{}, ErrInvalidInput
		}
		s.logger.Error("load job posting", zap.Int64("job_id", in.JobID), zap.Error(err))
		return application.Application{}, ErrInternal
	}

	// Caller input never sets the initial status.
	a := application.Application{
		SeniorID:  seniorID,
		JobID:     in.JobID,
		AppliedAt: s.now(),
		Status:    application.StatusSubmitted,
		Notes:     in.Notes,
	}

	if err := s.applications.Create(ctx, &a); err != nil {
		s.logger.Error("create application", zap.String("senior_id", seniorID), zap.Error(err))
		return application.Application{}, ErrInternal
	}

	created, err := s.applications.GetByID(ctx, a.ID)
	if err != nil {
		s.logger.Error("reload application", zap.Int64("application_id", a.ID), zap.Error(err))
		return application.Application{}, ErrInternal
	}

	s.logger.Info("application submitted",
		zap.Int64("application_id", created.ID),
		zap.String("senior_id", created.SeniorID),
		zap.Int64("job_id", created.JobID),
	)
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]application.Application, error) {
	out, err := s.applications.List(ctx)
	if err != nil {
		s.logger.Error("list applications", zap.Error(err))
		return nil, ErrInternal
	}
	return out, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	next, err := application.ParseStatus(status)
	if err != nil {
		return ErrInvalidStatus
	}

	current, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("load application", zap.Int64("application_id", id), zap.Error(err))
		return ErrInternal
	}

	if !current.Status.CanTransitionTo(next) {
		return ErrIllegalTransition
	}

	if err := s.applications.UpdateStatus(ctx, id, next, s.now()); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("update application status", zap.Int64("application_id", id), zap.Error(err))
		return ErrInternal
	}

	switch next {
	case application.StatusApproved:
		s.logger.Info("application approved, employment history opened",
			zap.Int64("application_id", id),
			zap.String("senior_id", current.SeniorID),
			zap.Int64("job_id", current.JobID),
		)
	case application.StatusCompleted:
		s.logger.Info("application completed, employment history closed",
			zap.Int64("application_id", id),
		)
	default:
		s.logger.Info("application status updated",
			zap.Int64("application_id", id),
			zap.String("to", string(next)),
		)
	}
	return nil
}
