// Package engine computes squad point costs: pilot base cost, fixed and
// variable upgrade costs, per-pilot totals and the list bid.
package engine

import (
	"strconv"

	"github.com/SogeMoge/xwsbot/internal/entities"
	"github.com/SogeMoge/xwsbot/internal/entities/reference"
	"github.com/SogeMoge/xwsbot/internal/entities/xws"
	"github.com/SogeMoge/xwsbot/internal/pkg/lookup"
)

// Unresolved is how an unknown cost or bid is displayed
const Unresolved = "?"

// Cost is an upgrade cost. An unresolved cost is distinct from a real zero.
type Cost struct {
	Value    int
	Resolved bool
}

// Resolved returns a known cost
func Resolved(v int) Cost {
	return Cost{Value: v, Resolved: true}
}

// String renders the value, or "?" when unresolved
func (c Cost) String() string {
	if !c.Resolved {
		return Unresolved
	}
	return strconv.Itoa(c.Value)
}

// BaseCost returns the pilot's printed cost. A missing or non-numeric cost
// reports false and counts as 0 toward the total.
func BaseCost(pilot *reference.Pilot) (int, bool) {
	if pilot == nil {
		return 0, false
	}
	return pilot.Cost.Int()
}

// UpgradeCost resolves the cost of an upgrade fitted to pilot on ship
func UpgradeCost(upgrade *reference.Upgrade, ship *reference.Ship, pilot *reference.Pilot) Cost {
	if upgrade == nil || upgrade.Cost == nil {
		return Cost{}
	}
	cost := upgrade.Cost

	if cost.Value.IsSet() {
		v, ok := cost.Value.Int()
		if !ok {
			return Cost{}
		}
		return Resolved(v)
	}

	if cost.Variable == "" || len(cost.Values) == 0 {
		return Cost{}
	}

	key, ok := variableKey(cost.Variable, ship, pilot)
	if !ok {
		return Cost{}
	}

	raw, ok := cost.Values[key]
	if !ok {
		return Cost{}
	}
	v, ok := raw.Int()
	if !ok {
		return Cost{}
	}
	return Resolved(v)
}

// variableKey picks the value-table key for a variable cost
func variableKey(variable string, ship *reference.Ship, pilot *reference.Pilot) (string, bool) {
	switch variable {
	case reference.VariableSize:
		if ship == nil || ship.Size == "" {
			return "", false
		}
		return ship.Size, true
	case reference.VariableAgility:
		agility, ok := ship.StatValue(reference.StatAgility)
		if !ok {
			return "", false
		}
		return strconv.Itoa(agility), true
	case reference.VariableInitiative:
		if pilot == nil || pilot.Initiative == nil {
			return "", false
		}
		return strconv.Itoa(*pilot.Initiative), true
	default:
		return "", false
	}
}

// PilotTotal is base plus every resolved upgrade cost. Unresolved costs add
// nothing, so one unknown card does not blank the whole total.
func PilotTotal(base int, costs []Cost) int {
	total := base
	for _, c := range costs {
		if c.Resolved {
			total += c.Value
		}
	}
	return total
}

// Bid is the point limit minus the declared squad points. It reports false
// when the game mode or the points are unknown.
func Bid(mode lookup.Result[xws.GameMode], points entities.Number) (int, bool) {
	m, ok := mode.Get()
	if !ok {
		return 0, false
	}
	p, ok := points.Int()
	if !ok {
		return 0, false
	}
	return m.PointLimit - p, true
}
