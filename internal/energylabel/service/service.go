// Package service provides business logic for energy label lookups.
package service

import (
	"context"

	"github.com/Wim1201/locatie-informatie-v5/internal/energylabel/client"
	"github.com/Wim1201/locatie-informatie-v5/internal/energylabel/transport"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
)

// Service handles energy label lookups.
type Service struct {
	client *client.Client
	log    *logger.Logger
}

// New creates a new energy label service.
func New(client *client.Client, log *logger.Logger) *Service {
	return &Service{client: client, log: log}
}

// Lookup returns the first label registered for the object, falling back to
// an address lookup when the object ID is unknown or has no label.
// Returns nil when EP-Online has no label.
func (s *Service) Lookup(ctx context.Context, objectID string, key transport.AddressKey) (*transport.EnergyLabel, error) {
	if objectID != "" {
		labels, err := s.client.GetByBAGObjectID(ctx, objectID)
		if err != nil {
			return nil, err
		}
		if len(labels) > 0 {
			return &labels[0], nil
		}
	}

	if key.Postcode == "" || key.Huisnummer == "" {
		return nil, nil
	}

	labels, err := s.client.GetByAddress(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		s.log.WithContext(ctx).Debug("no energy label registered", "postcode", key.Postcode, "huisnummer", key.Huisnummer)
		return nil, nil
	}

	return &labels[0], nil
}
