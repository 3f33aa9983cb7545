package auth

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"silverwork/internal/domain/account"
	"silverwork/internal/pkg/credential"
	"silverwork/internal/pkg/token"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateID        = errors.New("id already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
)

type RegisterInput struct {
	Role     string
	Username string
	Password string
	Name     string
	Phone    string

	Preferences PreferencesInput
	CompanyInfo CompanyInfoInput
}

// PreferencesInput mirrors the registration preference bundle. Only the
// working-location field is persisted at registration; JobType is accepted
// and discarded.
type PreferencesInput struct {
	WorkLocation string
	JobType      string
}

type CompanyInfoInput struct {
	BusinessNumber string
	Address        string
}

type LoginInput struct {
	Username string
	Password string
}

// User is the role-tagged public projection returned by login.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`

	Phone          string       `json:"phone,omitempty"`
	Address        string       `json:"address,omitempty"`
	BusinessNumber string       `json:"business_number,omitempty"`
	Department     string       `json:"department,omitempty"`
	Preferences    *Preferences `json:"preferences,omitempty"`
}

type Preferences struct {
	WorkLocation string `json:"workLocation"`
	JobType      string `json:"jobType"`
}

type Usecase interface {
	Register(ctx context.Context, in RegisterInput) error
	Login(ctx context.Context, in LoginInput) (User, string, error)
}

type Service struct {
	accounts account.Repository
	hasher   credential.Hasher
	tokens   token.Service
	logger   *zap.Logger
}

func NewService(accounts account.Repository, hasher credential.Hasher, tokens token.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{accounts: accounts, hasher: hasher, tokens: tokens, logger: logger}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) error {
	kind := account.Kind(strings.TrimSpace(in.Role))
	if !kind.Registerable() {
		return ErrInvalidInput
	}

	username := strings.TrimSpace(in.Username)
	name := strings.TrimSpace(in.Name)
	if username == "" || name == "" || in.Password == "" {
		return ErrInvalidInput
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.Error("hash credential", zap.Error(err))
		return ErrInternal
	}

	acc := account.Account{
		ID:             username,
		CredentialHash: hash,
		Kind:           kind,
		Name:           name,
		Phone:          strings.TrimSpace(in.Phone),
	}

	switch kind {
	case account.KindSenior:
		err = s.accounts.CreateSenior(ctx, acc, account.SeniorProfile{
			AccountID: username,
			Location:  strings.TrimSpace(in.Preferences.WorkLocation),
		})
	case account.KindCompany:
		err = s.accounts.CreateCompany(ctx, acc, account.Company{
			AccountID:      username,
			BusinessNumber: strings.TrimSpace(in.CompanyInfo.BusinessNumber),
			Address:        strings.TrimSpace(in.CompanyInfo.Address),
		})
	}
	if err != nil {
		if errors.Is(err, account.ErrDuplicateID) {
			return ErrDuplicateID
		}
		s.logger.Error("create account", zap.String("id", username), zap.Error(err))
		return ErrInternal
	}

	s.logger.Info("account registered", zap.String("id", username), zap.String("kind", string(kind)))
	return nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (User, string, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return User{}, "", ErrInvalidCredentials
	}

	acc, err := s.accounts.GetByID(ctx, username)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return User{}, "", ErrInvalidCredentials
		}
		s.logger.Error("load account", zap.String("id", username), zap.Error(err))
		return User{}, "", ErrInternal
	}

	if err := s.hasher.Compare(acc.CredentialHash, in.Password); err != nil {
		return User{}, "", ErrInvalidCredentials
	}

	usr, err := s.projectUser(ctx, acc)
	if err != nil {
		s.logger.Error("project user", zap.String("id", username), zap.Error(err))
		return User{}, "", ErrInternal
	}

	tok, err := s.tokens.Generate(acc.ID, string(acc.Kind))
	if err != nil {
		s.logger.Error("issue session token", zap.String("id", username), zap.Error(err))
		return User{}, "", ErrInternal
	}

	return usr, tok, nil
}

func (s *Service) projectUser(ctx context.Context, acc account.Account) (User, error) {
	usr := User{
		ID:       acc.ID,
		Username: acc.ID,
		Name:     acc.Name,
		Role:     string(acc.Kind),
	}

	switch acc.Kind {
	case account.KindSenior:
		_, profile, err := s.accounts.GetSenior(ctx, acc.ID)
		if err != nil {
			return User{}, err
		}
		jobType := profile.EmploymentType
		if jobType == "" {
			jobType = "both"
		}
		usr.Phone = acc.Phone
		usr.Address = profile.Address
		usr.Preferences = &Preferences{WorkLocation: profile.Location, JobType: jobType}
	case account.KindCompany:
		_, company, err := s.accounts.GetCompany(ctx, acc.ID)
		if err != nil {
			return User{}, err
		}
		usr.Phone = acc.Phone
		usr.Address = company.Address
		usr.BusinessNumber = company.BusinessNumber
	case account.KindGovernment:
		_, gov, err := s.accounts.GetGovernment(ctx, acc.ID)
		if err != nil {
			return User{}, err
		}
		usr.Department = gov.Department
	}

	return usr, nil
}
