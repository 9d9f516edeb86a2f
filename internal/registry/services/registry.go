// Package services contains the registry's unit-of-work layer. Every
// mutating operation runs in its own transaction and is committed before
// the call returns.
package services

import (
	"context"

	"github.com/dmitrijs2005/clientdb/internal/registry/models"
)

// Registry is the set of operations offered to callers (the demo seed and
// the command line).
type Registry interface {
	AddClient(ctx context.Context, firstName, lastName, email string, telephone *string) (int64, error)
	ChangeClient(ctx context.Context, id int64, changes models.ClientChanges) error
	DeleteClient(ctx context.Context, id int64) (*models.DeletedClient, error)
	GetClient(ctx context.Context, id int64) (*models.Client, error)

	AddPhone(ctx context.Context, clientID int64, telephone string) (int64, error)
	DeletePhone(ctx context.Context, telephone string) (int64, error)
	ListPhones(ctx context.Context, clientID int64) ([]*models.Phone, error)

	FindClient(ctx context.Context, filter models.ClientFilter) ([]*models.ClientRow, error)
}
