package lookup

import (
	"context"

	"github.com/dmitrijs2005/clientdb/internal/registry/models"
)

type Repository interface {
	Find(ctx context.Context, filter models.ClientFilter) ([]*models.ClientRow, error)
}
