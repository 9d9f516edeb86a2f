package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/clientdb/internal/dbx"
	"github.com/dmitrijs2005/clientdb/internal/registry/models"
)

// AddPhone attaches telephone to an existing client. An unknown client
// yields common.ErrForeignKeyViolation.
func (s *ClientService) AddPhone(ctx context.Context, clientID int64, telephone string) (int64, error) {
	var phone *models.Phone
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		phone, err = s.repomanager.Phones(tx).Create(ctx, clientID, telephone)
		if err != nil {
			return fmt.Errorf("error creating phone: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug(ctx, "phone added", "client_id", clientID, "phone_id", phone.ID)
	return phone.ID, nil
}

// DeletePhone removes every phone with this exact number and reports how
// many were removed.
func (s *ClientService) DeletePhone(ctx context.Context, telephone string) (int64, error) {
	var n int64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		n, err = s.repomanager.Phones(tx).DeleteByTelephone(ctx, telephone)
		if err != nil {
			return fmt.Errorf("error deleting phone: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug(ctx, "phones deleted", "rows", n)
	return n, nil
}

func (s *ClientService) ListPhones(ctx context.Context, clientID int64) ([]*models.Phone, error) {
	return s.repomanager.Phones(s.db).ListByClient(ctx, clientID)
}
