package clients

import (
	"context"

	"github.com/dmitrijs2005/clientdb/internal/registry/models"
)

type Repository interface {
	Create(ctx context.Context, client *models.Client) (*models.Client, error)
	Update(ctx context.Context, id int64, changes models.ClientChanges) (int64, error)
	Delete(ctx context.Context, id int64) (*models.DeletedClient, error)
	Get(ctx context.Context, id int64) (*models.Client, error)
}
