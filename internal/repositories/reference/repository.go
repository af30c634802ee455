// Package reference provides the interface for reference data persistence
package reference

//go:generate mockgen -destination=mock/mock_repository.go -package=referencemock github.com/SogeMoge/xwsbot/internal/repositories/reference Repository

import (
	"context"

	"github.com/SogeMoge/xwsbot/internal/entities/reference"
	"github.com/SogeMoge/xwsbot/internal/pkg/lookup"
)

// Repository answers the reference lookups made while resolving a squad.
// A missing record is a NotFound result, not an error. Errors are reserved
// for storage failures.
type Repository interface {
	// LookupFaction finds a faction by xws id
	LookupFaction(ctx context.Context, id string) (lookup.Result[*reference.Faction], error)

	// LookupPilot finds a pilot by xws id
	LookupPilot(ctx context.Context, id string) (lookup.Result[*reference.Pilot], error)

	// LookupShipForPilot finds the ship the given pilot flies
	LookupShipForPilot(ctx context.Context, pilotID string) (lookup.Result[*reference.Ship], error)

	// LookupUpgrade finds an upgrade by xws id
	LookupUpgrade(ctx context.Context, id string) (lookup.Result[*reference.Upgrade], error)
}

// Store adds the bulk writes used by the importer
type Store interface {
	Repository

	// Reset removes every reference record and returns how many keys went
	Reset(ctx context.Context) (int, error)

	// SaveFactions writes factions keyed by xws
	SaveFactions(ctx context.Context, factions []*reference.Faction) error

	// SaveShips writes ships and their nested pilots. Each pilot is stored
	// with ShipXWS pointing back at its ship.
	SaveShips(ctx context.Context, ships []*reference.Ship) error

	// SaveUpgrades writes upgrades keyed by xws
	SaveUpgrades(ctx context.Context, upgrades []*reference.Upgrade) error
}
