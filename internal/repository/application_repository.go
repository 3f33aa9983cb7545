package repository

import (
	"context"
	"errors"
	"time"

	"silverwork/internal/database"
	"silverwork/internal/domain/application"
	"silverwork/internal/domain/history"

	"github.com/jackc/pgx/v5"
)

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationSelect = `
SELECT ap.id, ap.senior_id, ap.job_id, ap.applied_at, ap.status, COALESCE(ap.notes, ''),
	COALESCE(a.name, 'Unknown'), COALESCE(jp.title, 'Unknown')
FROM applications ap
LEFT JOIN accounts a ON a.id = ap.senior_id
LEFT JOIN job_postings jp ON jp.id = ap.job_id`

func (r *PostgresApplicationRepository) Create(ctx context.Context, a *application.Application) error {
	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (senior_id, job_id, applied_at, status, notes)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		 RETURNING id`,
		a.SeniorID, a.JobID, a.AppliedAt, a.Status, a.Notes,
	)
	return row.Scan(&a.ID)
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id int64) (application.Application, error) {
	row := r.db.QueryRow(ctx, applicationSelect+` WHERE ap.id = $1`, id)
	a, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) List(ctx context.Context) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, applicationSelect+` ORDER BY ap.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus writes the new status and its history side effect atomically.
// The partial unique index on active histories keeps concurrent approvals
// from opening a second stint.
func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id int64, next application.Status, now time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	affected, err := tx.Exec(ctx, `UPDATE applications SET status = $2 WHERE id = $1`, id, next)
	if err != nil {
		return err
	}
	if affected == 0 {
		return application.ErrNotFound
	}

	switch next {
	case application.StatusApproved:
		_, err = tx.Exec(ctx,
			`INSERT INTO employment_histories (application_id, start_date, status, verified_at)
			 SELECT $1, $2, $3, $4
			 WHERE NOT EXISTS (
				SELECT 1 FROM employment_histories WHERE application_id = $1 AND status = $3
			 )`,
			id, now, history.StatusActive, now,
		)
	case application.StatusCompleted:
		_, err = tx.Exec(ctx,
			`UPDATE employment_histories SET end_date = $2, status = $3
			 WHERE application_id = $1 AND status = $4`,
			id, now, history.StatusCompleted, history.StatusActive,
		)
	}
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	err := row.Scan(
		&a.ID, &a.SeniorID, &a.JobID, &a.AppliedAt, &a.Status, &a.Notes,
		&a.SeniorName, &a.JobTitle,
	)
	return a, err
}
