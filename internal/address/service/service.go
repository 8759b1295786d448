// Package service provides address resolution on top of the Locatieserver client.
package service

import (
	"context"
	"strings"

	"github.com/Wim1201/locatie-informatie-v5/internal/address/transport"
	"github.com/Wim1201/locatie-informatie-v5/platform/apperr"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
)

// Searcher is the upstream lookup the service depends on.
type Searcher interface {
	Search(ctx context.Context, query string) (*transport.Location, error)
	Suggest(ctx context.Context, query string) ([]transport.Suggestion, error)
}

// Service resolves free-text addresses.
type Service struct {
	searcher Searcher
	log      *logger.Logger
}

// New creates a new address service.
func New(searcher Searcher, log *logger.Logger) *Service {
	return &Service{searcher: searcher, log: log}
}

// Resolve returns the top address match. A missing match is NotFound and an
// unreachable upstream is Unavailable; both end the request.
func (s *Service) Resolve(ctx context.Context, query string) (*transport.Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.Validation("adres is verplicht").WithOp("address.Resolve")
	}

	loc, err := s.searcher.Search(ctx, query)
	if err != nil {
		return nil, apperr.Unavailable("adresservice is niet bereikbaar", err).WithOp("address.Resolve")
	}
	if loc == nil {
		s.log.WithContext(ctx).Info("address not found", "query", query)
		return nil, apperr.NotFound("adres niet gevonden").WithOp("address.Resolve")
	}

	return loc, nil
}

// Suggest returns autocomplete candidates.
func (s *Service) Suggest(ctx context.Context, query string) ([]transport.Suggestion, error) {
	suggestions, err := s.searcher.Suggest(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, apperr.Unavailable("adresservice is niet bereikbaar", err).WithOp("address.Suggest")
	}
	return suggestions, nil
}
