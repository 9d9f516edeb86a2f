// Package registry wires the client registry together: it opens the
// PostgreSQL handle, builds the repositories, service, schema initializer
// and console printer, and runs the demonstration sequence.
package registry

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/dmitrijs2005/clientdb/internal/logging"
	"github.com/dmitrijs2005/clientdb/internal/registry/config"
	"github.com/dmitrijs2005/clientdb/internal/registry/printer"
	"github.com/dmitrijs2005/clientdb/internal/registry/repositories/repomanager"
	"github.com/dmitrijs2005/clientdb/internal/registry/schema"
	"github.com/dmitrijs2005/clientdb/internal/registry/seed"
	"github.com/dmitrijs2005/clientdb/internal/registry/services"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DriverName is the database/sql driver registered by pgx.
const DriverName = "pgx"

// openDB is a seam for tests.
var openDB = func(driver, dsn string) (*sql.DB, error) {
	return sql.Open(driver, dsn)
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	schema  *schema.Initializer
	service *services.ClientService
	printer *printer.Printer
}

// NewApp opens the database and builds the components. out receives the
// console results, logOut the JSON log. The caller must Close the App.
func NewApp(ctx context.Context, c *config.Config, out, logOut io.Writer) (*App, error) {
	sl, err := logging.NewJSONLogger(logOut, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	logger := sl.With("run_id", uuid.NewString())

	db, err := openDB(DriverName, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	// One connection for the whole run.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return &App{
		config:  c,
		logger:  logger,
		db:      db,
		schema:  schema.NewInitializer(db),
		service: services.NewClientService(db, repomanager.NewPostgresRepositoryManager(), logger),
		printer: printer.New(out),
	}, nil
}

func (app *App) Registry() services.Registry {
	return app.service
}

func (app *App) Schema() *schema.Initializer {
	return app.schema
}

func (app *App) Printer() *printer.Printer {
	return app.printer
}

func (app *App) Logger() logging.Logger {
	return app.logger
}

// Run executes the demonstration sequence.
func (app *App) Run(ctx context.Context) error {
	app.logger.Info(ctx, "starting demo", "reset", !app.config.SkipReset)

	r := seed.NewRunner(app.service, app.schema, app.printer, app.logger)
	if err := r.Run(ctx, !app.config.SkipReset); err != nil {
		app.logger.Error(ctx, "demo aborted", "error", err)
		return err
	}

	app.logger.Info(ctx, "demo finished")
	return nil
}

// Close releases the database handle.
func (app *App) Close() error {
	return app.db.Close()
}
