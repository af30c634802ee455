package squad

import (
	"github.com/SogeMoge/xwsbot/internal/entities"
	"github.com/SogeMoge/xwsbot/internal/entities/reference"
	"github.com/SogeMoge/xwsbot/internal/entities/xws"
	"github.com/SogeMoge/xwsbot/internal/pkg/lookup"
)

// DefaultSquadName is used when the document has no name
const DefaultSquadName = "Unnamed Squad"

// ResolveInput defines the request for resolving a fetched squad
type ResolveInput struct {
	// Link is the builder link the user posted
	Link  string
	Squad *xws.Squad
}

// ResolveOutput defines the response for resolving a squad
type ResolveOutput struct {
	Squad *EnrichedSquad
}

// EnrichedSquad is a squad with every reference record attached
type EnrichedSquad struct {
	Link     string
	Name     string
	Faction  *reference.Faction
	Points   entities.Number
	GameMode lookup.Result[xws.GameMode]
	// Pilots in deployment order, unresolvable entries removed
	Pilots []EnrichedPilot
}

// EnrichedPilot is one resolved pilot entry. Ship and every upgrade are
// always non-nil; missing records are replaced with placeholders.
type EnrichedPilot struct {
	Entry    xws.Pilot
	Pilot    *reference.Pilot
	Ship     *reference.Ship
	Upgrades []*reference.Upgrade
}
