// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/persona/internal/platform/apperr"
	"github.com/taibuivan/persona/internal/platform/database/schema"
	"github.com/taibuivan/persona/internal/platform/dberr"
	"github.com/taibuivan/persona/pkg/pagination"
)

// # Repository Implementation

// PostgresUserRepository implements [UserRepository] using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new Postgres implementation for user accounts.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

const resourceUser = "User"

// errEmailTaken is the client message for the users.account email constraint.
var errEmailTaken = apperr.BadRequest("Email already exists")

var userColumns = strings.Join(schema.UserAccount.Columns(), ", ")

func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

/*
FindByID retrieves a user record from the users.account table.

Returns:
  - *User: Hydrated identity entity
  - error: apperr.NotFound or database execution failure
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id int64) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.ID)

	user, err := scanUser(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceUser, "postgres_user_repo_find_by_id")
	}

	return user, nil
}

// FindByEmail retrieves a user by its unique email address.
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.Email)

	user, err := scanUser(repository.pool.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, resourceUser, "postgres_user_repo_find_by_email")
	}

	return user, nil
}

// List returns one page of users ordered by id.
func (repository *PostgresUserRepository) List(context context.Context, params pagination.Params) ([]*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s LIMIT $1 OFFSET $2`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.ID)

	rows, err := repository.pool.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, dberr.Wrap(err, resourceUser, "postgres_user_repo_list")
	}
	defer rows.Close()

	users := make([]*User, 0, params.Limit)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceUser, "postgres_user_repo_list_scan")
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceUser, "postgres_user_repo_list_rows")
	}

	return users, nil
}

// Count returns the total number of users.
func (repository *PostgresUserRepository) Count(context context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.UserAccount.Table)

	var total int
	if err := repository.pool.QueryRow(context, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, resourceUser, "postgres_user_repo_count")
	}

	return total, nil
}

/*
Create inserts a new account and hydrates its generated id and timestamps.

Returns:
  - error: "Email already exists" (400) on the unique email constraint
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s, %s`,
		schema.UserAccount.Table,
		schema.UserAccount.Name, schema.UserAccount.Email, schema.UserAccount.Password,
		schema.UserAccount.ID, schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, user.Name, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if dberr.IsUniqueViolation(err, schema.UserAccount.EmailKey) {
		return errEmailTaken.WithCause(err)
	}

	return dberr.Wrap(err, resourceUser, "postgres_user_repo_create")
}

// Update overwrites the mutable columns of an existing account.
func (repository *PostgresUserRepository) Update(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s`,
		schema.UserAccount.Table,
		schema.UserAccount.Name, schema.UserAccount.Email, schema.UserAccount.Password,
		schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, user.ID, user.Name, user.Email, user.PasswordHash).
		Scan(&user.CreatedAt, &user.UpdatedAt)

	if dberr.IsUniqueViolation(err, schema.UserAccount.EmailKey) {
		return errEmailTaken.WithCause(err)
	}

	return dberr.Wrap(err, resourceUser, "postgres_user_repo_update")
}

// Delete removes a user; owned rows are removed by ON DELETE CASCADE.
func (repository *PostgresUserRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.UserAccount.Table, schema.UserAccount.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceUser, "postgres_user_repo_delete")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceUser)
	}

	return nil
}
