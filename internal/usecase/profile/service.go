package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"silverwork/internal/domain/account"
)

var (
	ErrNotFound     = errors.New("senior not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

const dateLayout = "2006-01-02"

// Profile is the extended senior projection. Unset fields read as empty
// strings, including the formatted birth date.
type Profile struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Phone                string `json:"phone"`
	BirthDate            string `json:"birth_date"`
	Gender               string `json:"gender"`
	Address              string `json:"address"`
	RestrictedActivities string `json:"restricted_activities"`
	EmploymentType       string `json:"employment_type"`
	Location             string `json:"location"`
	WorkDays             string `json:"work_days"`
	WorkHours            string `json:"work_hours"`
	WorkPeriod           string `json:"work_period"`
}

// UpdateInput carries the complete replacement field set; fields left empty
// are stored as unset, not merged with existing values.
type UpdateInput struct {
	BirthDate            string
	Gender               string
	Address              string
	RestrictedActivities string
	EmploymentType       string
	Location             string
	WorkDays             string
	WorkHours            string
	WorkPeriod           string
}

type Usecase interface {
	Get(ctx context.Context, id string) (Profile, error)
	Update(ctx context.Context, id string, in UpdateInput) error
}

type Service struct {
	accounts account.Repository
	logger   *zap.Logger
}

func NewService(accounts account.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{accounts: accounts, logger: logger}
}

func (s *Service) Get(ctx context.Context, id string) (Profile, error) {
	acc, p, err := s.accounts.GetSenior(ctx, id)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return Profile{}, ErrNotFound
		}
		s.logger.Error("load senior profile", zap.String("senior_id", id), zap.Error(err))
		return Profile{}, ErrInternal
	}

	birth := ""
	if p.BirthDate != nil {
		birth = p.BirthDate.Format(dateLayout)
	}

	return Profile{
		ID:                   acc.ID,
		Name:                 acc.Name,
		Phone:                acc.Phone,
		BirthDate:            birth,
		Gender:               p.Gender,
		Address:              p.Address,
		RestrictedActivities: p.RestrictedActivities,
		EmploymentType:       p.EmploymentType,
		Location:             p.Location,
		WorkDays:             p.WorkDays,
		WorkHours:            p.WorkHours,
		WorkPeriod:           p.WorkPeriod,
	}, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) error {
	var birth *time.Time
	if d := strings.TrimSpace(in.BirthDate); d != "" {
		t, err := time.Parse(dateLayout, d)
		if err != nil {
			return ErrInvalidInput
		}
		birth = &t
	}

	p := account.SeniorProfile{
		AccountID:            id,
		BirthDate:            birth,
		Gender:               in.Gender,
		Address:              in.Address,
		RestrictedActivities: in.RestrictedActivities,
		EmploymentType:       in.EmploymentType,
		Location:             in.Location,
		WorkDays:             in.WorkDays,
		WorkHours:            in.WorkHours,
		WorkPeriod:           in.WorkPeriod,
	}

	if err := s.accounts.ReplaceSeniorProfile(ctx, id, p); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("replace senior profile", zap.String("senior_id", id), zap.Error(err))
		return ErrInternal
	}

	s.logger.Info("senior profile replaced", zap.String("senior_id", id))
	return nil
}
