// Package seed holds the demonstration data set and the fixed sequence run
// by cmd/clientdb: reset the schema, add ten clients, apply two changes,
// delete a phone and a client, and look one client up.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/clientdb/internal/common"
	"github.com/dmitrijs2005/clientdb/internal/logging"
	"github.com/dmitrijs2005/clientdb/internal/registry/models"
	"github.com/dmitrijs2005/clientdb/internal/registry/printer"
	"github.com/dmitrijs2005/clientdb/internal/registry/services"
)

// Client is one entry of the demo data set. An empty Telephone adds no phone.
type Client struct {
	FirstName string
	LastName  string
	Email     string
	Telephone string
}

// Clients is the demo data set, inserted in order (ids 1..10 on a fresh schema).
var Clients = []Client{
	{"Andrey", "Sokolov", "andrey_sokolov@mail.ru", "89031234568"},
	{"Olga", "Petrova", "olga_petrova@gmail.com", "89037778880"},
	{"Sergey", "Frolov", "sergey@gmail.com", "89164579871"},
	{"Natalia", "Kuznetsova", "natalia@bk.ru", ""},
	{"Mikhail", "Lermontov", "mikhail_l@yahoo.com", "89051112233"},
	{"Dmitry", "Popov", "dmitry@mail.ru", "89174445566"},
	{"Anastasia", "Smirnova", "anastasia@gmail.com", "89167778823"},
	{"Yuliya", "Nikolaeva", "yuliya_nik@mail.ru", ""},
	{"Aleksei", "Groshev", "aleksei@gmail.com", "89569876543"},
	{"Marina", "Titova", "marina@list.ru", "89051199776"},
}

// SchemaInitializer resets (Initialize) or ensures (Create) the registry tables.
type SchemaInitializer interface {
	Initialize(ctx context.Context) error
	Create(ctx context.Context) error
}

// Runner drives the demo sequence.
type Runner struct {
	registry services.Registry
	schema   SchemaInitializer
	printer  *printer.Printer
	logger   logging.Logger
}

func NewRunner(r services.Registry, s SchemaInitializer, p *printer.Printer, l logging.Logger) *Runner {
	return &Runner{registry: r, schema: s, printer: p, logger: l}
}

// Populate inserts the demo clients and returns their ids in order.
func (r *Runner) Populate(ctx context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(Clients))
	for _, c := range Clients {
		var tel *string
		if c.Telephone != "" {
			tel = models.Ptr(c.Telephone)
		}
		id, err := r.registry.AddClient(ctx, c.FirstName, c.LastName, c.Email, tel)
		if err != nil {
			return ids, fmt.Errorf("seed %s %s: %w", c.FirstName, c.LastName, err)
		}
		ids = append(ids, id)
	}
	r.logger.Info(ctx, "clients seeded", "count", len(ids))
	return ids, nil
}

// Run executes the whole sequence. The first error aborts it; steps that
// already committed stay committed. When reset is false the schema is only
// created if missing.
func (r *Runner) Run(ctx context.Context, reset bool) error {
	initSchema := r.schema.Create
	if reset {
		initSchema = r.schema.Initialize
	}
	if err := initSchema(ctx); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	r.logger.Info(ctx, "schema ready", "reset", reset)

	ids, err := r.Populate(ctx)
	if err != nil {
		return err
	}

	if err := r.registry.ChangeClient(ctx, ids[0], models.ClientChanges{LastName: models.Ptr("Sokolova")}); err != nil {
		return fmt.Errorf("change client %d: %w", ids[0], err)
	}
	if err := r.registry.ChangeClient(ctx, ids[4], models.ClientChanges{Email: models.Ptr("mikhail_updated@yahoo.com")}); err != nil {
		return fmt.Errorf("change client %d: %w", ids[4], err)
	}
	r.logger.Info(ctx, "clients changed", "client_ids", []int64{ids[0], ids[4]})

	n, err := r.registry.DeletePhone(ctx, "89167778823")
	if err != nil {
		return fmt.Errorf("delete phone: %w", err)
	}
	r.logger.Info(ctx, "phone deleted", "rows", n)

	deleted, err := r.registry.DeleteClient(ctx, ids[2])
	switch {
	case errors.Is(err, common.ErrorNotFound):
		r.printer.DeleteMissed(ids[2])
	case err != nil:
		return fmt.Errorf("delete client %d: %w", ids[2], err)
	default:
		r.printer.Deleted(deleted)
	}

	rows, err := r.registry.FindClient(ctx, models.ClientFilter{FirstName: models.Ptr("Natalia")})
	if err != nil {
		return fmt.Errorf("find client: %w", err)
	}
	r.printer.Rows(rows)

	return nil
}
