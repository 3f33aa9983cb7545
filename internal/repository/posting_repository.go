package repository

import (
	"context"
	"errors"

	"silverwork/internal/database"
	"silverwork/internal/domain/posting"

	"github.com/jackc/pgx/v5"
)

type PostgresPostingRepository struct {
	db database.DB
}

func NewPostgresPostingRepository(db database.DB) *PostgresPostingRepository {
	return &PostgresPostingRepository{db: db}
}

const postingSelect = `
SELECT jp.id, jp.company_id, COALESCE(a.name, 'Unknown'),
	jp.title, COALESCE(jp.description, ''), COALESCE(jp.location, ''),
	COALESCE(jp.employment_type, ''), COALESCE(jp.wage_type, ''), jp.wage_amount,
	COALESCE(jp.work_days, ''), COALESCE(jp.work_hours, ''), COALESCE(jp.work_period, ''),
	jp.posted_at, jp.deadline_date, jp.status, jp.gov_id
FROM job_postings jp
LEFT JOIN accounts a ON a.id = jp.company_id`

func (r *PostgresPostingRepository) Create(ctx context.Context, p *posting.Posting) error {
	row := r.db.QueryRow(ctx,
		`INSERT INTO job_postings (company_id, title, description, location, employment_type,
			wage_type, wage_amount, work_days, work_hours, work_period, deadline_date, status)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''),
			NULLIF($6, ''), $7, NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), $11, $12)
		 RETURNING id, posted_at`,
		p.CompanyID, p.Title, p.Description, p.Location, p.EmploymentType,
		p.WageType, p.WageAmount, p.WorkDays, p.WorkHours, p.WorkPeriod, p.Deadline, p.Status,
	)
	return row.Scan(&p.ID, &p.PostedAt)
}

func (r *PostgresPostingRepository) GetByID(ctx context.Context, id int64) (posting.Posting, error) {
	row := r.db.QueryRow(ctx, postingSelect+` WHERE jp.id = $1`, id)
	p, err := scanPosting(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return posting.Posting{}, posting.ErrNotFound
		}
		return posting.Posting{}, err
	}
	return p, nil
}

func (r *PostgresPostingRepository) List(ctx context.Context) ([]posting.Posting, error) {
	rows, err := r.db.Query(ctx, postingSelect+` ORDER BY jp.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]posting.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPostingRepository) UpdateStatus(ctx context.Context, id int64, next posting.Status, govID *string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE job_postings SET status = $2, gov_id = COALESCE($3, gov_id) WHERE id = $1`,
		id, next, govID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return posting.ErrNotFound
	}
	return nil
}

func scanPosting(row database.Row) (posting.Posting, error) {
	var p posting.Posting
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.CompanyName,
		&p.Title, &p.Description, &p.Location,
		&p.EmploymentType, &p.WageType, &p.WageAmount,
		&p.WorkDays, &p.WorkHours, &p.WorkPeriod,
		&p.PostedAt, &p.Deadline, &p.Status, &p.GovID,
	)
	return p, err
}
