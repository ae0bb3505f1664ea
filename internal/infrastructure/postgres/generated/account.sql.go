package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createAccount = `-- name: CreateAccount :exec
INSERT INTO accounts (id, number, label, is_summary, is_auxiliary, parent_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreateAccountParams struct {
	ID          string             `json:"id"`
	Number      string             `json:"number"`
	Label       string             `json:"label"`
	IsSummary   bool               `json:"is_summary"`
	IsAuxiliary bool               `json:"is_auxiliary"`
	ParentID    pgtype.Text        `json:"parent_id"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateAccount(ctx context.Context, arg CreateAccountParams) error {
	_, err := q.db.Exec(ctx, createAccount,
		arg.ID,
		arg.Number,
		arg.Label,
		arg.IsSummary,
		arg.IsAuxiliary,
		arg.ParentID,
		arg.CreatedAt,
	)
	return err
}

const listAccounts = `-- name: ListAccounts :many
SELECT id, number, label, is_summary, is_auxiliary, parent_id, created_at
FROM accounts
ORDER BY number
LIMIT $1 OFFSET $2
`

type ListAccountsParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func (q *Queries) ListAccounts(ctx context.Context, arg ListAccountsParams) ([]Account, error) {
	rows, err := q.db.Query(ctx, listAccounts, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Account
	for rows.Next() {
		var i Account
		if err := rows.Scan(
			&i.ID,
			&i.Number,
			&i.Label,
			&i.IsSummary,
			&i.IsAuxiliary,
			&i.ParentID,
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

const getPostableAccountIDs = `-- name: GetPostableAccountIDs :many
SELECT id FROM accounts
WHERE id = ANY($1::text[]) AND NOT is_summary
`

func (q *Queries) GetPostableAccountIDs(ctx context.Context, ids []string) ([]string, error) {
	rows, err := q.db.Query(ctx, getPostableAccountIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createThirdParty = `-- name: CreateThirdParty :exec
INSERT INTO third_parties (id, code, name, type, created_at)
VALUES ($1, $2, $3, $4, $5)
`

type CreateThirdPartyParams struct {
	ID        string             `json:"id"`
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	Type      string             `json:"type"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateThirdParty(ctx context.Context, arg CreateThirdPartyParams) error {
	_, err := q.db.Exec(ctx, createThirdParty,
		arg.ID,
		arg.Code,
		arg.Name,
		arg.Type,
		arg.CreatedAt,
	)
	return err
}

const listThirdParties = `-- name: ListThirdParties :many
SELECT id, code, name, type, created_at
FROM third_parties
ORDER BY code
LIMIT $1 OFFSET $2
`

type ListThirdPartiesParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func (q *Queries) ListThirdParties(ctx context.Context, arg ListThirdPartiesParams) ([]ThirdParty, error) {
	rows, err := q.db.Query(ctx, listThirdParties, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ThirdParty
	for rows.Next() {
		var i ThirdParty
		if err := rows.Scan(
			&i.ID,
			&i.Code,
			&i.Name,
			&i.Type,
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

const getThirdPartyIDs = `-- name: GetThirdPartyIDs :many
SELECT id FROM third_parties
WHERE id = ANY($1::text[])
`

func (q *Queries) GetThirdPartyIDs(ctx context.Context, ids []string) ([]string, error) {
	rows, err := q.db.Query(ctx, getThirdPartyIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
