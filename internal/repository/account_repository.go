package repository

import (
	"context"
	"errors"

	"silverwork/internal/database"
	"silverwork/internal/domain/account"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type PostgresAccountRepository struct {
	db database.DB
}

func NewPostgresAccountRepository(db database.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) GetByID(ctx context.Context, id string) (account.Account, error) {
	var acc account.Account
	row := r.db.QueryRow(ctx,
		`SELECT id, credential_hash, kind, name, COALESCE(phone, ''), created_at
		 FROM accounts
		 WHERE id = $1`,
		id,
	)
	if err := row.Scan(&acc.ID, &acc.CredentialHash, &acc.Kind, &acc.Name, &acc.Phone, &acc.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrNotFound
		}
		return account.Account{}, err
	}
	return acc, nil
}

func (r *PostgresAccountRepository) CreateSenior(ctx context.Context, acc account.Account, profile account.SeniorProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := insertAccount(ctx, tx, acc, account.KindSenior); err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO seniors (account_id, birth_date, gender, address, restricted_activities,
			employment_type, location, work_days, work_hours, work_period)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''),
			NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''))`,
		acc.ID, profile.BirthDate, profile.Gender, profile.Address, profile.RestrictedActivities,
		profile.EmploymentType, profile.Location, profile.WorkDays, profile.WorkHours, profile.WorkPeriod,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresAccountRepository) CreateCompany(ctx context.Context, acc account.Account, company account.Company) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := insertAccount(ctx, tx, acc, account.KindCompany); err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO companies (account_id, business_number, address)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))`,
		acc.ID, company.BusinessNumber, company.Address,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresAccountRepository) GetSenior(ctx context.Context, id string) (account.Account, account.SeniorProfile, error) {
	var acc account.Account
	var p account.SeniorProfile
	row := r.db.QueryRow(ctx,
		`SELECT a.id, a.credential_hash, a.kind, a.name, COALESCE(a.phone, ''), a.created_at,
			s.birth_date, COALESCE(s.gender, ''), COALESCE(s.address, ''),
			COALESCE(s.restricted_activities, ''), COALESCE(s.employment_type, ''),
			COALESCE(s.location, ''), COALESCE(s.work_days, ''), COALESCE(s.work_hours, ''),
			COALESCE(s.work_period, '')
		 FROM accounts a
		 JOIN seniors s ON s.account_id = a.id
		 WHERE a.id = $1 AND a.kind = 'senior'`,
		id,
	)
	err := row.Scan(
		&acc.ID, &acc.CredentialHash, &acc.Kind, &acc.Name, &acc.Phone, &acc.CreatedAt,
		&p.BirthDate, &p.Gender, &p.Address, &p.RestrictedActivities, &p.EmploymentType,
		&p.Location, &p.WorkDays, &p.WorkHours, &p.WorkPeriod,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.SeniorProfile{}, account.ErrNotFound
		}
		return account.Account{}, account.SeniorProfile{}, err
	}
	p.AccountID = acc.ID
	return acc, p, nil
}

func (r *PostgresAccountRepository) GetCompany(ctx context.Context, id string) (account.Account, account.Company, error) {
	var acc account.Account
	var c account.Company
	row := r.db.QueryRow(ctx,
		`SELECT a.id, a.credential_hash, a.kind, a.name, COALESCE(a.phone, ''), a.created_at,
			COALESCE(c.business_number, ''), COALESCE(c.address, '')
		 FROM accounts a
		 JOIN companies c ON c.account_id = a.id
		 WHERE a.id = $1 AND a.kind = 'company'`,
		id,
	)
	err := row.Scan(
		&acc.ID, &acc.CredentialHash, &acc.Kind, &acc.Name, &acc.Phone, &acc.CreatedAt,
		&c.BusinessNumber, &c.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.Company{}, account.ErrNotFound
		}
		return account.Account{}, account.Company{}, err
	}
	c.AccountID = acc.ID
	return acc, c, nil
}

func (r *PostgresAccountRepository) GetGovernment(ctx context.Context, id string) (account.Account, account.Government, error) {
	var acc account.Account
	var g account.Government
	row := r.db.QueryRow(ctx,
		`SELECT a.id, a.credential_hash, a.kind, a.name, COALESCE(a.phone, ''), a.created_at,
			COALESCE(g.department, ''), COALESCE(g.tel, ''), COALESCE(g.email, '')
		 FROM accounts a
		 JOIN governments g ON g.account_id = a.id
		 WHERE a.id = $1 AND a.kind = 'government'`,
		id,
	)
	err := row.Scan(
		&acc.ID, &acc.CredentialHash, &acc.Kind, &acc.Name, &acc.Phone, &acc.CreatedAt,
		&g.Department, &g.Tel, &g.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.Government{}, account.ErrNotFound
		}
		return account.Account{}, account.Government{}, err
	}
	g.AccountID = acc.ID
	return acc, g, nil
}

func (r *PostgresAccountRepository) ReplaceSeniorProfile(ctx context.Context, id string, profile account.SeniorProfile) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE seniors
		 SET birth_date = $2,
			gender = NULLIF($3, ''),
			address = NULLIF($4, ''),
			restricted_activities = NULLIF($5, ''),
			employment_type = NULLIF($6, ''),
			location = NULLIF($7, ''),
			work_days = NULLIF($8, ''),
			work_hours = NULLIF($9, ''),
			work_period = NULLIF($10, '')
		 WHERE account_id = $1`,
		id, profile.BirthDate, profile.Gender, profile.Address, profile.RestrictedActivities,
		profile.EmploymentType, profile.Location, profile.WorkDays, profile.WorkHours, profile.WorkPeriod,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return account.ErrNotFound
	}
	return nil
}

func insertAccount(ctx context.Context, tx database.Tx, acc account.Account, kind account.Kind) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO accounts (id, credential_hash, kind, name, phone)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''))`,
		acc.ID, acc.CredentialHash, kind, acc.Name, acc.Phone,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return account.ErrDuplicateID
		}
		return err
	}
	return nil
}
