package repository

import (
	"context"

	"silverwork/internal/database"
	"silverwork/internal/domain/history"
)

type PostgresHistoryRepository struct {
	db database.DB
}

func NewPostgresHistoryRepository(db database.DB) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{db: db}
}

const historySelect = `
SELECT h.id, h.application_id, h.start_date, h.end_date, h.status, h.verified_at,
	COALESCE(ap.senior_id, ''), COALESCE(jp.id, 0), COALESCE(jp.company_id, ''),
	COALESCE(ca.name, 'Unknown'), COALESCE(jp.title, '')
FROM employment_histories h
JOIN applications ap ON ap.id = h.application_id
LEFT JOIN job_postings jp ON jp.id = ap.job_id
LEFT JOIN accounts ca ON ca.id = jp.company_id`

func (r *PostgresHistoryRepository) List(ctx context.Context) ([]history.History, error) {
	return r.list(ctx, historySelect+` ORDER BY h.id`)
}

func (r *PostgresHistoryRepository) ListByApplication(ctx context.Context, applicationID int64) ([]history.History, error) {
	return r.list(ctx, historySelect+` WHERE h.application_id = $1 ORDER BY h.id`, applicationID)
}

func (r *PostgresHistoryRepository) list(ctx context.Context, query string, args ...any) ([]history.History, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]history.History, 0)
	for rows.Next() {
		var h history.History
		err := rows.Scan(
			&h.ID, &h.ApplicationID, &h.StartDate, &h.EndDate, &h.Status, &h.VerifiedAt,
			&h.SeniorID, &h.JobID, &h.CompanyID, &h.CompanyName, &h.JobTitle,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
