package history

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"silverwork/internal/domain/history"
)

var ErrInternal = errors.New("internal error")

type Usecase interface {
	List(ctx context.Context) ([]history.History, error)
}

type Service struct {
	histories history.Repository
	logger    *zap.Logger
}

func NewService(histories history.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{histories: histories, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]history.History, error) {
	out, err := s.histories.List(ctx)
	if err != nil {
		s.logger.Error("list employment histories", zap.Error(err))
		return nil, ErrInternal
	}
	return out, nil
}
