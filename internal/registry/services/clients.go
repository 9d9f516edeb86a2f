package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/clientdb/internal/dbx"
	"github.com/dmitrijs2005/clientdb/internal/logging"
	"github.com/dmitrijs2005/clientdb/internal/registry/models"
	"github.com/dmitrijs2005/clientdb/internal/registry/repositories/repomanager"
)

// ClientService implements Registry on top of the repositories.
type ClientService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

var _ Registry = (*ClientService)(nil)

// NewClientService constructs a ClientService sharing one database handle.
func NewClientService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *ClientService {
	return &ClientService{db: db, repomanager: m, logger: logger}
}

// AddClient inserts a client and, when telephone is non-empty, its first
// phone. Both inserts commit together; a failure of either leaves nothing.
func (s *ClientService) AddClient(ctx context.Context, firstName, lastName, email string, telephone *string) (int64, error) {
	client := &models.Client{FirstName: firstName, LastName: lastName, Email: email}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Clients(tx).Create(ctx, client); err != nil {
			return fmt.Errorf("error creating client: %w", err)
		}
		if telephone == nil || *telephone == "" {
			return nil
		}
		if _, err := s.repomanager.Phones(tx).Create(ctx, client.ID, *telephone); err != nil {
			return fmt.Errorf("error creating phone: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug(ctx, "client added", "client_id", client.ID, "with_phone", telephone != nil && *telephone != "")
	return client.ID, nil
}

// ChangeClient applies a partial update. An unknown id is a silent no-op.
func (s *ClientService) ChangeClient(ctx context.Context, id int64, changes models.ClientChanges) error {
	var n int64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		n, err = s.repomanager.Clients(tx).Update(ctx, id, changes)
		if err != nil {
			return fmt.Errorf("error updating client: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug(ctx, "client changed", "client_id", id, "rows", n)
	return nil
}

// DeleteClient removes the client and, by cascade, its phones. It returns
// common.ErrorNotFound when there is no such client.
func (s *ClientService) DeleteClient(ctx context.Context, id int64) (*models.DeletedClient, error) {
	var deleted *models.DeletedClient
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		deleted, err = s.repomanager.Clients(tx).Delete(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "client deleted", "client_id", id)
	return deleted, nil
}

func (s *ClientService) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	return s.repomanager.Clients(s.db).Get(ctx, id)
}
