// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package address

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

// PostgresRepository implements [Repository] over core.address.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var addressColumns = strings.Join(schema.CoreAddress.Columns(), ", ")

func scanAddress(row pgx.Row) (*Address, error) {
	a := &Address{}
	err := row.Scan(
		&a.ID, &a.PersonalID, &a.AddressName, &a.Address,
		&a.City, &a.Province, &a.Country, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func collect(rows pgx.Rows, action string) ([]*Address, error) {
	defer rows.Close()

	addresses := []*Address{}
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceAddress, action+"_scan")
		}
		addresses = append(addresses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceAddress, action)
	}
	return addresses, nil
}

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Address, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CoreAddress.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, resourceAddress, "count_address")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC LIMIT $1 OFFSET $2`,
		addressColumns, schema.CoreAddress.Table, schema.CoreAddress.ID)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceAddress, "list_address")
	}

	addresses, err := collect(rows, "list_address")
	return addresses, total, err
}

func (repository *PostgresRepository) ListByPersonal(context context.Context, personalID int64) ([]*Address, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		addressColumns, schema.CoreAddress.Table, schema.CoreAddress.PersonalID, schema.CoreAddress.ID)

	rows, err := repository.db.Query(context, query, personalID)
	if err != nil {
		return nil, dberr.Wrap(err, resourceAddress, "list_address_by_personal")
	}

	return collect(rows, "list_address_by_personal")
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Address, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		addressColumns, schema.CoreAddress.Table, schema.CoreAddress.ID)

	a, err := scanAddress(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceAddress, "get_address")
	}
	return a, nil
}

func (repository *PostgresRepository) Create(context context.Context, a *Address) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s, %s
	`,
		schema.CoreAddress.Table,
		schema.CoreAddress.PersonalID, schema.CoreAddress.AddressName, schema.CoreAddress.Address,
		schema.CoreAddress.City, schema.CoreAddress.Province, schema.CoreAddress.Country,
		schema.CoreAddress.ID, schema.CoreAddress.CreatedAt, schema.CoreAddress.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.PersonalID, a.AddressName, a.Address, a.City, a.Province, a.Country,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	return dberr.Wrap(err, resourceAddress, "create_address")
}

func (repository *PostgresRepository) Update(context context.Context, a *Address) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.CoreAddress.Table,
		schema.CoreAddress.PersonalID, schema.CoreAddress.AddressName, schema.CoreAddress.Address,
		schema.CoreAddress.City, schema.CoreAddress.Province, schema.CoreAddress.Country,
		schema.CoreAddress.UpdatedAt, schema.CoreAddress.ID,
		schema.CoreAddress.CreatedAt, schema.CoreAddress.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.PersonalID, a.AddressName, a.Address, a.City, a.Province, a.Country,
	).Scan(&a.CreatedAt, &a.UpdatedAt)

	return dberr.Wrap(err, resourceAddress, "update_address")
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreAddress.Table, schema.CoreAddress.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceAddress, "delete_address")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound(resourceAddress)
	}
	return nil
}
