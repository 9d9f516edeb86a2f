// Package lookup searches clients together with their phones.
package lookup

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/clientdb/internal/dbx"
	"github.com/dmitrijs2005/clientdb/internal/registry/models"
)

// PostgresRepository runs the client/phone left join over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Find returns one row per client and phone (one row with a nil Telephone
// for a client without phones) where any set criterion of filter equals
// its column.
//
// Unset criteria are bound as NULL, and col = NULL is never true, so they
// contribute no matches. A filter with nothing set returns an empty result
// without querying. An empty result is not an error.
func (r *PostgresRepository) Find(ctx context.Context, filter models.ClientFilter) ([]*models.ClientRow, error) {
	if filter.IsEmpty() {
		return nil, nil
	}

	query :=
		`SELECT client.id, first_name, last_name, email, telephone FROM client
		 LEFT JOIN phone ON client.id = phone.client_id
		 WHERE first_name = $1 OR last_name = $2 OR email = $3 OR telephone = $4
		 ORDER BY client.id, phone.id
		 `

	rows, err := r.db.QueryContext(ctx, query, filter.FirstName, filter.LastName, filter.Email, filter.Telephone)
	if err != nil {
		return nil, fmt.Errorf("failed to select clients: %w", err)
	}
	defer rows.Close()

	var result []*models.ClientRow
	for rows.Next() {
		var (
			item      models.ClientRow
			email     sql.NullString
			telephone sql.NullString
		)
		if err := rows.Scan(&item.ClientID, &item.FirstName, &item.LastName, &email, &telephone); err != nil {
			return nil, err
		}
		item.Email = email.String
		if telephone.Valid {
			item.Telephone = &telephone.String
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
