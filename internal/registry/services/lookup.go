package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/clientdb/internal/registry/models"
)

// FindClient returns the client/phone rows matching any set criterion.
// No match is an empty slice, not an error.
func (s *ClientService) FindClient(ctx context.Context, filter models.ClientFilter) ([]*models.ClientRow, error) {
	rows, err := s.repomanager.Lookup(s.db).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error searching clients: %w", err)
	}
	s.logger.Debug(ctx, "clients found", "rows", len(rows))
	return rows, nil
}
