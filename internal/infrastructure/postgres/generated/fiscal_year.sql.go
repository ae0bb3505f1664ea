package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createFiscalYear = `-- name: CreateFiscalYear :exec
INSERT INTO fiscal_years (id, year_number, start_date, end_date, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateFiscalYearParams struct {
	ID         string             `json:"id"`
	YearNumber int32              `json:"year_number"`
	StartDate  pgtype.Date        `json:"start_date"`
	EndDate    pgtype.Date        `json:"end_date"`
	Status     string             `json:"status"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateFiscalYear(ctx context.Context, arg CreateFiscalYearParams) error {
	_, err := q.db.Exec(ctx, createFiscalYear,
		arg.ID,
		arg.YearNumber,
		arg.StartDate,
		arg.EndDate,
		arg.Status,
		arg.CreatedAt,
	)
	return err
}

const getFiscalYear = `-- name: GetFiscalYear :one
SELECT id, year_number, start_date, end_date, status, closing_entry_id, created_at
FROM fiscal_years
WHERE id = $1
`

func (q *Queries) GetFiscalYear(ctx context.Context, id string) (FiscalYear, error) {
	row := q.db.QueryRow(ctx, getFiscalYear, id)
	var i FiscalYear
	err := row.Scan(
		&i.ID,
		&i.YearNumber,
		&i.StartDate,
		&i.EndDate,
		&i.Status,
		&i.ClosingEntryID,
		&i.CreatedAt,
	)
	return i, err
}

const listFiscalYears = `-- name: ListFiscalYears :many
SELECT id, year_number, start_date, end_date, status, closing_entry_id, created_at
FROM fiscal_years
ORDER BY year_number DESC
LIMIT $1 OFFSET $2
`

type ListFiscalYearsParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func (q *Queries) ListFiscalYears(ctx context.Context, arg ListFiscalYearsParams) ([]FiscalYear, error) {
	rows, err := q.db.Query(ctx, listFiscalYears, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []FiscalYear
	for rows.Next() {
		var i FiscalYear
		if err := rows.Scan(
			&i.ID,
			&i.YearNumber,
			&i.StartDate,
			&i.EndDate,
			&i.Status,
			&i.ClosingEntryID,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateFiscalYearStatus = `-- name: UpdateFiscalYearStatus :execrows
UPDATE fiscal_years
SET status = $2, closing_entry_id = $3
WHERE id = $1
`

type UpdateFiscalYearStatusParams struct {
	ID             string      `json:"id"`
	Status         string      `json:"status"`
	ClosingEntryID pgtype.Text `json:"closing_entry_id"`
}

func (q *Queries) UpdateFiscalYearStatus(ctx context.Context, arg UpdateFiscalYearStatusParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateFiscalYearStatus, arg.ID, arg.Status, arg.ClosingEntryID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
