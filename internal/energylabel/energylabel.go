// Package energylabel provides the energy label bounded context.
// This file defines the public interfaces exposed to other domains.
package energylabel

import (
	"context"

	"github.com/Wim1201/locatie-informatie-v5/internal/energylabel/transport"
)

// EnergyLabelService defines the public interface for energy label lookups.
// Other domains should depend on this interface, not the concrete implementation.
type EnergyLabelService interface {
	// Lookup fetches the label for a BAG object, falling back to the address.
	// Returns nil if no label is found.
	Lookup(ctx context.Context, objectID string, key transport.AddressKey) (*transport.EnergyLabel, error)
}
