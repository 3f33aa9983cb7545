package seeder

import (
	"context"
	"fmt"

	"silverwork/internal/database"
	"silverwork/internal/pkg/credential"
)

// AccountsSeeder inserts the demo government authority, companies and
// seniors. The government account doubles as the idempotence guard: once it
// exists the seeder is a no-op.
type AccountsSeeder struct{}

func (AccountsSeeder) Name() string { return "accounts" }

func (AccountsSeeder) Run(ctx context.Context, db database.DB) error {
	var exists bool
	row := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE id = $1)`, "gov_admin")
	if err := row.Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	hasher := credential.BcryptHasher{}
	hash := func(plain string) (string, error) {
		return hasher.Hash(plain)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	govHash, err := hash("gov123")
	if err != nil {
		return err
	}
	compHash, err := hash("comp123")
	if err != nil {
		return err
	}
	seniorHash, err := hash("senior123")
	if err != nil {
		return err
	}

	accounts := []struct {
		ID    string
		Hash  string
		Kind  string
		Name  string
		Phone string
	}{
		{"gov_admin", govHash, "government", "Government Admin", "02-1234-5678"},
		{"company_samsung", compHash, "company", "Samsung Electronics", "02-555-5555"},
		{"company_hyundai", compHash, "company", "Hyundai Department Store", "02-333-3333"},
		{"senior_kim", seniorHash, "senior", "Kim Younghee", "010-1234-5678"},
		{"senior_park", seniorHash, "senior", "Park Chulsoo", "010-9876-5432"},
	}
	for _, a := range accounts {
		_, err := tx.Exec(ctx,
			`INSERT INTO accounts (id, credential_hash, kind, name, phone) VALUES ($1, $2, $3, $4, $5)`,
			a.ID, a.Hash, a.Kind, a.Name, a.Phone,
		)
		if err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO governments (account_id, department, tel, email)
		 VALUES ($1, $2, $3, $4)`,
		"gov_admin", "Senior Welfare Division", "02-1234-5678", "admin@gov.kr",
	); err != nil {
		return err
	}

	companies := []struct {
		ID             string
		BusinessNumber string
		Address        string
	}{
		{"company_samsung", "123-45-67890", "Seoul Gangnam-gu"},
		{"company_hyundai", "098-76-54321", "Seoul Jung-gu"},
	}
	for _, c := range companies {
		_, err := tx.Exec(ctx,
			`INSERT INTO companies (account_id, business_number, address) VALUES ($1, $2, $3)`,
			c.ID, c.BusinessNumber, c.Address,
		)
		if err != nil {
			return err
		}
	}

	seniors := []struct {
		ID             string
		BirthDate      string
		Gender         string
		Address        string
		Location       string
		EmploymentType string
	}{
		{"senior_kim", "1955-01-01", "female", "Seoul Gangnam-gu", "Seoul Gangnam-gu", "part_time"},
		{"senior_park", "1950-05-05", "male", "Seoul Jung-gu", "Seoul Jung-gu", "day_labor"},
	}
	for _, s := range seniors {
		_, err := tx.Exec(ctx,
			`INSERT INTO seniors (account_id, birth_date, gender, address, location, employment_type)
			 VALUES ($1, $2::date, $3, $4, $5, $6)`,
			s.ID, s.BirthDate, s.Gender, s.Address, s.Location, s.EmploymentType,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
