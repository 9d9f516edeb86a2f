package phones

import (
	"context"

	"github.com/dmitrijs2005/clientdb/internal/registry/models"
)

type Repository interface {
	Create(ctx context.Context, clientID int64, telephone string) (*models.Phone, error)
	DeleteByTelephone(ctx context.Context, telephone string) (int64, error)
	ListByClient(ctx context.Context, clientID int64) ([]*models.Phone, error)
}
