package seeder

import (
	"context"
	"fmt"

	"silverwork/internal/database"
)

// PostingsSeeder inserts two demo postings (one already approved with its
// approving government recorded, one still pending), plus an approved
// application and its active employment history. Skipped once any posting
// exists.
type PostingsSeeder struct{}

func (PostingsSeeder) Name() string { return "postings" }

func (PostingsSeeder) Run(ctx context.Context, db database.DB) error {
	var exists bool
	row := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM job_postings)`)
	if err := row.Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	var job1ID int64
	row = tx.QueryRow(ctx,
		`INSERT INTO job_postings (company_id, title, description, location, employment_type,
			wage_type, wage_amount, work_days, work_hours, work_period, deadline_date, status, gov_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::date, $12, $13)
		 RETURNING id`,
		"company_samsung",
		"Facility Management Assistant",
		"Office upkeep and light facility checks",
		"Seoul Gangnam-gu",
		"part_time",
		"hourly", int64(12000),
		"Mon, Wed, Fri", "09:00-13:00", "6 months",
		"2025-12-15",
		"approved",
		"gov_admin",
	)
	if err := row.Scan(&job1ID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO job_postings (company_id, title, description, location, employment_type,
			wage_type, wage_amount, work_days, work_hours, work_period, deadline_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::date, $12)`,
		"company_hyundai",
		"Customer Service Helper",
		"In-store customer guidance and simple consultations",
		"Seoul Jung-gu",
		"part_time",
		"hourly", int64(13000),
		"Tue, Thu", "10:00-15:00", "3 months",
		"2025-12-20",
		"pending_approval",
	); err != nil {
		return err
	}

	var appID int64
	row = tx.QueryRow(ctx,
		`INSERT INTO applications (senior_id, job_id, applied_at, status, notes)
		 VALUES ($1, $2, $3::date, $4, $5)
		 RETURNING id`,
		"senior_kim", job1ID, "2025-11-18", "approved",
		"Experience and working conditions are a good fit",
	)
	if err := row.Scan(&appID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO employment_histories (application_id, start_date, status)
		 VALUES ($1, $2::date, $3)`,
		appID, "2025-11-20", "active",
	); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
