// Package clients provides the PostgreSQL repository for the client table.
package clients

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/clientdb/internal/common"
	"github.com/dmitrijs2005/clientdb/internal/dbx"
	"github.com/dmitrijs2005/clientdb/internal/registry/models"
	"github.com/dmitrijs2005/clientdb/internal/registry/pgerr"
)

// PostgresRepository implements client storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the client and sets its generated ID. A malformed email or
// a missing name yields common.ErrConstraintViolation.
func (r *PostgresRepository) Create(ctx context.Context, client *models.Client) (*models.Client, error) {
	query :=
		`INSERT INTO client (first_name, last_name, email)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		client.FirstName, client.LastName, client.Email).Scan(&client.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", pgerr.Translate(err))
	}

	return client, nil
}

// Update overwrites the set fields of changes and keeps the others. It
// returns the number of rows touched, 0 when id does not exist.
func (r *PostgresRepository) Update(ctx context.Context, id int64, changes models.ClientChanges) (int64, error) {
	query :=
		`UPDATE client
		 SET first_name = COALESCE($1, first_name),
		     last_name = COALESCE($2, last_name),
		     email = COALESCE($3, email)
		 WHERE id = $4
		 `

	res, err := r.db.ExecContext(ctx, query, changes.FirstName, changes.LastName, changes.Email, id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", pgerr.Translate(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}

	return n, nil
}

// Delete removes the client (its phones go with it through the cascade)
// and returns what was removed, or common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) (*models.DeletedClient, error) {
	query :=
		`DELETE FROM client
		 WHERE id = $1
		 RETURNING id, first_name, last_name, email
		 `

	deleted := &models.DeletedClient{}
	var email sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(&deleted.ID, &deleted.FirstName, &deleted.LastName, &email)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	deleted.Email = email.String

	return deleted, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Client, error) {
	query :=
		`SELECT id, first_name, last_name, email FROM client
		 WHERE id = $1
		 `

	client := &models.Client{}
	var email sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(&client.ID, &client.FirstName, &client.LastName, &email)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	client.Email = email.String

	return client, nil
}
