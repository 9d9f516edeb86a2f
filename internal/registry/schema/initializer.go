// Package schema (re)creates the client and phone tables from the embedded
// migrations using goose.
package schema

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/clientdb/internal/registry/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// VersionTable is the goose bookkeeping table. It is dropped together with
// the data tables so the create step always runs again.
const VersionTable = "goose_db_version"

// dropStatements run in dependency order: phone references client.
var dropStatements = []string{
	`DROP TABLE IF EXISTS phone`,
	`DROP TABLE IF EXISTS client`,
	`DROP TABLE IF EXISTS ` + VersionTable,
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Initializer owns the DDL of the registry.
type Initializer struct {
	db *sql.DB
}

func NewInitializer(db *sql.DB) *Initializer {
	return &Initializer{db: db}
}

// Initialize drops phone and client, then creates them again. Any DDL
// error is returned as is; nothing is retried.
func (i *Initializer) Initialize(ctx context.Context) error {
	if err := i.Drop(ctx); err != nil {
		return err
	}
	return i.Create(ctx)
}

// Drop removes the registry tables if they exist.
func (i *Initializer) Drop(ctx context.Context) error {
	for _, stmt := range dropStatements {
		if _, err := i.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("drop schema: %w", err)
		}
	}
	return nil
}

// Create applies the embedded migrations. Tables are created with
// IF NOT EXISTS, so existing data is kept.
func (i *Initializer) Create(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetTableName(VersionTable)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if err := gooseUpContext(ctx, i.db, "."); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
