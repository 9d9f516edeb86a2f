// Package repomanager provides a concrete RepositoryManager for PostgreSQL.
// Repositories are cheap and bound per call, so the same manager serves a
// plain *sql.DB and any *sql.Tx opened by a service.
package repomanager

import (
	"github.com/dmitrijs2005/clientdb/internal/dbx"
	"github.com/dmitrijs2005/clientdb/internal/registry/repositories/clients"
	"github.com/dmitrijs2005/clientdb/internal/registry/repositories/lookup"
	"github.com/dmitrijs2005/clientdb/internal/registry/repositories/phones"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations.
type PostgresRepositoryManager struct{}

// Clients returns a clients.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Clients(db dbx.DBTX) clients.Repository {
	return clients.NewPostgresRepository(db)
}

// Phones returns a phones.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Phones(db dbx.DBTX) phones.Repository {
	return phones.NewPostgresRepository(db)
}

// Lookup returns a lookup.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Lookup(db dbx.DBTX) lookup.Repository {
	return lookup.NewPostgresRepository(db)
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
