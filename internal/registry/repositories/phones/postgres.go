// Package phones provides the PostgreSQL repository for the phone table.
package phones

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/clientdb/internal/dbx"
	"github.com/dmitrijs2005/clientdb/internal/registry/models"
	"github.com/dmitrijs2005/clientdb/internal/registry/pgerr"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create adds a phone for clientID. An unknown client yields
// common.ErrForeignKeyViolation.
func (r *PostgresRepository) Create(ctx context.Context, clientID int64, telephone string) (*models.Phone, error) {
	query :=
		`INSERT INTO phone (client_id, telephone)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	phone := &models.Phone{ClientID: clientID, Telephone: telephone}
	err := r.db.QueryRowContext(ctx, query, clientID, telephone).Scan(&phone.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", pgerr.Translate(err))
	}

	return phone, nil
}

// DeleteByTelephone removes every phone whose number equals telephone and
// returns how many rows went away. telephone is not unique.
func (r *PostgresRepository) DeleteByTelephone(ctx context.Context, telephone string) (int64, error) {
	query :=
		`DELETE FROM phone
		 WHERE telephone = $1
		 `

	res, err := r.db.ExecContext(ctx, query, telephone)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}

	return n, nil
}

func (r *PostgresRepository) ListByClient(ctx context.Context, clientID int64) ([]*models.Phone, error) {
	query :=
		`SELECT id, client_id, telephone FROM phone
		 WHERE client_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to select phones: %w", err)
	}
	defer rows.Close()

	var result []*models.Phone
	for rows.Next() {
		var (
			item      models.Phone
			telephone sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.ClientID, &telephone); err != nil {
			return nil, err
		}
		item.Telephone = telephone.String
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
