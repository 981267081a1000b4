// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package personal

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/persona/internal/platform/apperr"
	"github.com/taibuivan/persona/internal/platform/database/schema"
	"github.com/taibuivan/persona/internal/platform/dberr"
)

// PostgresRepository implements [Repository] over core.personal.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var personalColumns = strings.Join(schema.CorePersonal.Columns(), ", ")

func scanPersonal(row pgx.Row) (*Personal, error) {
	p := &Personal{}
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

func collect(rows pgx.Rows, action string) ([]*Personal, error) {
	defer rows.Close()

	personals := []*Personal{}
	for rows.Next() {
		p, err := scanPersonal(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourcePersonal, action+"_scan")
		}
		personals = append(personals, p)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourcePersonal, action)
	}
	return personals, nil
}

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Personal, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CorePersonal.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, resourcePersonal, "count_personal")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC LIMIT $1 OFFSET $2`,
		personalColumns, schema.CorePersonal.Table, schema.CorePersonal.ID)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourcePersonal, "list_personal")
	}

	personals, err := collect(rows, "list_personal")
	return personals, total, err
}

func (repository *PostgresRepository) ListByUser(context context.Context, userID int64) ([]*Personal, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		personalColumns, schema.CorePersonal.Table, schema.CorePersonal.UserID, schema.CorePersonal.ID)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, resourcePersonal, "list_personal_by_user")
	}

	return collect(rows, "list_personal_by_user")
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Personal, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		personalColumns, schema.CorePersonal.Table, schema.CorePersonal.ID)

	p, err := scanPersonal(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourcePersonal, "get_personal")
	}
	return p, nil
}

func (repository *PostgresRepository) Create(context context.Context, p *Personal) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s, %s, %s
	`,
		schema.CorePersonal.Table, schema.CorePersonal.UserID, schema.CorePersonal.Name,
		schema.CorePersonal.ID, schema.CorePersonal.CreatedAt, schema.CorePersonal.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.UserID, p.Name).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, resourcePersonal, "create_personal")
}

func (repository *PostgresRepository) Update(context context.Context, p *Personal) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.CorePersonal.Table, schema.CorePersonal.UserID, schema.CorePersonal.Name,
		schema.CorePersonal.UpdatedAt, schema.CorePersonal.ID,
		schema.CorePersonal.CreatedAt, schema.CorePersonal.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.ID, p.UserID, p.Name).Scan(&p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, resourcePersonal, "update_personal")
}

// Delete removes a profile; its addresses go with it (ON DELETE CASCADE).
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CorePersonal.Table, schema.CorePersonal.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourcePersonal, "delete_personal")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound(resourcePersonal)
	}
	return nil
}
