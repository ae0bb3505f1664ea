package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createJournalEntry = `-- name: CreateJournalEntry :exec
INSERT INTO journal_entries (
    id, fiscal_year_id, journal_code, entry_number, entry_date, description,
    reference, status, created_at, created_by, posted_at, posted_by
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`

type CreateJournalEntryParams struct {
	ID           string             `json:"id"`
	FiscalYearID string             `json:"fiscal_year_id"`
	JournalCode  string             `json:"journal_code"`
	EntryNumber  int32              `json:"entry_number"`
	EntryDate    pgtype.Date        `json:"entry_date"`
	Description  string             `json:"description"`
	Reference    string             `json:"reference"`
	Status       string             `json:"status"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	CreatedBy    string             `json:"created_by"`
	PostedAt     pgtype.Timestamptz `json:"posted_at"`
	PostedBy     pgtype.Text        `json:"posted_by"`
}

func (q *Queries) CreateJournalEntry(ctx context.Context, arg CreateJournalEntryParams) error {
	_, err := q.db.Exec(ctx, createJournalEntry,
		arg.ID,
		arg.FiscalYearID,
		arg.JournalCode,
		arg.EntryNumber,
		arg.EntryDate,
		arg.Description,
		arg.Reference,
		arg.Status,
		arg.CreatedAt,
		arg.CreatedBy,
		arg.PostedAt,
		arg.PostedBy,
	)
	return err
}

const updateJournalEntry = `-- name: UpdateJournalEntry :execrows
UPDATE journal_entries
SET entry_date = $2, description = $3, reference = $4, status = $5, posted_at = $6, posted_by = $7
WHERE id = $1
`

type UpdateJournalEntryParams struct {
	ID          string             `json:"id"`
	EntryDate   pgtype.Date        `json:"entry_date"`
	Description string             `json:"description"`
	Reference   string             `json:"reference"`
	Status      string             `json:"status"`
	PostedAt    pgtype.Timestamptz `json:"posted_at"`
	PostedBy    pgtype.Text        `json:"posted_by"`
}

func (q *Queries) UpdateJournalEntry(ctx context.Context, arg UpdateJournalEntryParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateJournalEntry,
		arg.ID,
		arg.EntryDate,
		arg.Description,
		arg.Reference,
		arg.Status,
		arg.PostedAt,
		arg.PostedBy,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteJournalEntry = `-- name: DeleteJournalEntry :execrows
DELETE FROM journal_entries WHERE id = $1
`

func (q *Queries) DeleteJournalEntry(ctx context.Context, id string) (int64, error) {
	result, err := q.db.Exec(ctx, deleteJournalEntry, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getJournalEntry = `-- name: GetJournalEntry :one
SELECT id, fiscal_year_id, journal_code, entry_number, entry_date, description,
       reference, status, created_at, created_by, posted_at, posted_by
FROM journal_entries
WHERE id = $1
`

func (q *Queries) GetJournalEntry(ctx context.Context, id string) (JournalEntry, error) {
	row := q.db.QueryRow(ctx, getJournalEntry, id)
	var i JournalEntry
	err := row.Scan(
		&i.ID,
		&i.FiscalYearID,
		&i.JournalCode,
		&i.EntryNumber,
		&i.EntryDate,
		&i.Description,
		&i.Reference,
		&i.Status,
		&i.CreatedAt,
		&i.CreatedBy,
		&i.PostedAt,
		&i.PostedBy,
	)
	return i, err
}

const getJournalEntryForUpdate = `-- name: GetJournalEntryForUpdate :one
SELECT id, fiscal_year_id, journal_code, entry_number, entry_date, description,
       reference, status, created_at, created_by, posted_at, posted_by
FROM journal_entries
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetJournalEntryForUpdate(ctx context.Context, id string) (JournalEntry, error) {
	row := q.db.QueryRow(ctx, getJournalEntryForUpdate, id)
	var i JournalEntry
	err := row.Scan(
		&i.ID,
		&i.FiscalYearID,
		&i.JournalCode,
		&i.EntryNumber,
		&i.EntryDate,
		&i.Description,
		&i.Reference,
		&i.Status,
		&i.CreatedAt,
		&i.CreatedBy,
		&i.PostedAt,
		&i.PostedBy,
	)
	return i, err
}

const listJournalEntries = `-- name: ListJournalEntries :many
SELECT id, fiscal_year_id, journal_code, entry_number, entry_date, description,
       reference, status, created_at, created_by, posted_at, posted_by
FROM journal_entries
WHERE ($1::text = '' OR fiscal_year_id = $1)
  AND ($2::text = '' OR journal_code = $2)
  AND ($3::text = '' OR status = $3)
ORDER BY entry_date DESC, journal_code, entry_number DESC
LIMIT $4 OFFSET $5
`

type ListJournalEntriesParams struct {
	FiscalYearID string `json:"fiscal_year_id"`
	JournalCode  string `json:"journal_code"`
	Status       string `json:"status"`
	Limit        int32  `json:"limit"`
	Offset       int32  `json:"offset"`
}

func (q *Queries) ListJournalEntries(ctx context.Context, arg ListJournalEntriesParams) ([]JournalEntry, error) {
	rows, err := q.db.Query(ctx, listJournalEntries,
		arg.FiscalYearID,
		arg.JournalCode,
		arg.Status,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []JournalEntry
	for rows.Next() {
		var i JournalEntry
		if err := rows.Scan(
			&i.ID,
			&i.FiscalYearID,
			&i.JournalCode,
			&i.EntryNumber,
			&i.EntryDate,
			&i.Description,
			&i.Reference,
			&i.Status,
			&i.CreatedAt,
			&i.CreatedBy,
			&i.PostedAt,
			&i.PostedBy,
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

const createJournalLine = `-- name: CreateJournalLine :exec
INSERT INTO journal_lines (id, entry_id, line_number, account_id, third_party_id, label, debit_minor, credit_minor, currency)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type CreateJournalLineParams struct {
	ID           string      `json:"id"`
	EntryID      string      `json:"entry_id"`
	LineNumber   int32       `json:"line_number"`
	AccountID    string      `json:"account_id"`
	ThirdPartyID pgtype.Text `json:"third_party_id"`
	Label        string      `json:"label"`
	DebitMinor   int64       `json:"debit_minor"`
	CreditMinor  int64       `json:"credit_minor"`
	Currency     string      `json:"currency"`
}

func (q *Queries) CreateJournalLine(ctx context.Context, arg CreateJournalLineParams) error {
	_, err := q.db.Exec(ctx, createJournalLine,
		arg.ID,
		arg.EntryID,
		arg.LineNumber,
		arg.AccountID,
		arg.ThirdPartyID,
		arg.Label,
		arg.DebitMinor,
		arg.CreditMinor,
		arg.Currency,
	)
	return err
}

const deleteJournalLines = `-- name: DeleteJournalLines :exec
DELETE FROM journal_lines WHERE entry_id = $1
`

func (q *Queries) DeleteJournalLines(ctx context.Context, entryID string) error {
	_, err := q.db.Exec(ctx, deleteJournalLines, entryID)
	return err
}

const getJournalLinesByEntries = `-- name: GetJournalLinesByEntries :many
SELECT id, entry_id, line_number, account_id, third_party_id, label, debit_minor, credit_minor, currency
FROM journal_lines
WHERE entry_id = ANY($1::text[])
ORDER BY entry_id, line_number
`

func (q *Queries) GetJournalLinesByEntries(ctx context.Context, entryIds []string) ([]JournalLine, error) {
	rows, err := q.db.Query(ctx, getJournalLinesByEntries, entryIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []JournalLine
	for rows.Next() {
		var i JournalLine
		if err := rows.Scan(
			&i.ID,
			&i.EntryID,
			&i.LineNumber,
			&i.AccountID,
			&i.ThirdPartyID,
			&i.Label,
			&i.DebitMinor,
			&i.CreditMinor,
			&i.Currency,
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

const nextEntryNumber = `-- name: NextEntryNumber :one
INSERT INTO entry_sequences (fiscal_year_id, journal_code, last_number)
VALUES ($1, $2, 1)
ON CONFLICT (fiscal_year_id, journal_code)
DO UPDATE SET last_number = entry_sequences.last_number + 1
RETURNING last_number
`

type NextEntryNumberParams struct {
	FiscalYearID string `json:"fiscal_year_id"`
	JournalCode  string `json:"journal_code"`
}

func (q *Queries) NextEntryNumber(ctx context.Context, arg NextEntryNumberParams) (int32, error) {
	row := q.db.QueryRow(ctx, nextEntryNumber, arg.FiscalYearID, arg.JournalCode)
	var last_number int32
	err := row.Scan(&last_number)
	return last_number, err
}

const getPostedTotals = `-- name: GetPostedTotals :one
SELECT COALESCE(SUM(l.debit_minor), 0)::BIGINT AS total_debit,
       COALESCE(SUM(l.credit_minor), 0)::BIGINT AS total_credit
FROM journal_lines l
JOIN journal_entries e ON e.id = l.entry_id
WHERE e.status = 'posted' AND e.fiscal_year_id = $1
`

type GetPostedTotalsRow struct {
	TotalDebit  int64 `json:"total_debit"`
	TotalCredit int64 `json:"total_credit"`
}

func (q *Queries) GetPostedTotals(ctx context.Context, fiscalYearID string) (GetPostedTotalsRow, error) {
	row := q.db.QueryRow(ctx, getPostedTotals, fiscalYearID)
	var i GetPostedTotalsRow
	err := row.Scan(&i.TotalDebit, &i.TotalCredit)
	return i, err
}
