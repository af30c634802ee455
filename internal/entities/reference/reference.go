// Package reference holds the card data loaded from xwing-data2
package reference

import (
	"fmt"

	"github.com/SogeMoge/xwsbot/internal/entities"
)

// Ship sizes as written in xwing-data2
const (
	SizeSmall   = "Small"
	SizeMedium  = "Medium"
	SizeLarge   = "Large"
	SizeHuge    = "Huge"
	SizeUnknown = "?"
)

// Variable cost kinds
const (
	VariableSize       = "size"
	VariableAgility    = "agility"
	VariableInitiative = "initiative"
)

// StatAgility is the stat type used by agility-based costs
const StatAgility = "agility"

// UnknownShipXWS identifies the placeholder ship
const UnknownShipXWS = "unknown"

// Faction is a playable faction
type Faction struct {
	XWS  string `json:"xws"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// Pilot is a pilot card. ShipXWS is filled in on import from the file the
// pilot was nested in.
type Pilot struct {
	XWS        string          `json:"xws"`
	Name       string          `json:"name"`
	Caption    string          `json:"caption,omitempty"`
	Initiative *int            `json:"initiative,omitempty"`
	Limited    int             `json:"limited,omitempty"`
	Cost       entities.Number `json:"cost"`
	Image      string          `json:"image,omitempty"`
	ShipXWS    string          `json:"ship_xws,omitempty"`
}

// Stat is one entry of a ship's stat line
type Stat struct {
	Type  string `json:"type"`
	Arc   string `json:"arc,omitempty"`
	Value *int   `json:"value,omitempty"`
}

// Ship is a ship chassis. Pilots is only populated while importing.
type Ship struct {
	XWS     string  `json:"xws"`
	Name    string  `json:"name"`
	Size    string  `json:"size"`
	Faction string  `json:"faction,omitempty"`
	Stats   []Stat  `json:"stats"`
	Pilots  []Pilot `json:"pilots,omitempty"`
}

// StatValue returns the value of the first stat of the given type
func (s *Ship) StatValue(statType string) (int, bool) {
	if s == nil {
		return 0, false
	}
	for _, stat := range s.Stats {
		if stat.Type == statType && stat.Value != nil {
			return *stat.Value, true
		}
	}
	return 0, false
}

// Cost is either a fixed Value or a Variable lookup into Values
type Cost struct {
	Value    entities.Number            `json:"value"`
	Variable string                     `json:"variable,omitempty"`
	Values   map[string]entities.Number `json:"values,omitempty"`
}

// IsFixed reports whether the cost carries a fixed value
func (c *Cost) IsFixed() bool {
	return c != nil && c.Value.IsSet()
}

// Side is one face of an upgrade card
type Side struct {
	Title string   `json:"title,omitempty"`
	Type  string   `json:"type,omitempty"`
	Slots []string `json:"slots,omitempty"`
	Image string   `json:"image,omitempty"`
}

// Upgrade is an upgrade card
type Upgrade struct {
	XWS   string `json:"xws"`
	Name  string `json:"name"`
	Cost  *Cost  `json:"cost,omitempty"`
	Sides []Side `json:"sides,omitempty"`
}

// Image returns the first side's image, if any
func (u *Upgrade) Image() string {
	if u == nil || len(u.Sides) == 0 {
		return ""
	}
	return u.Sides[0].Image
}

// PlaceholderShip stands in for a ship missing from the reference data
func PlaceholderShip() *Ship {
	return &Ship{
		XWS:   UnknownShipXWS,
		Name:  "Unknown Ship",
		Size:  SizeUnknown,
		Stats: []Stat{},
	}
}

// PlaceholderUpgrade stands in for an upgrade missing from the reference data.
// It has no cost, so it always renders as unresolved.
func PlaceholderUpgrade(id string) *Upgrade {
	return &Upgrade{
		XWS:   id,
		Name:  fmt.Sprintf("Unknown(%s)", id),
		Sides: []Side{{Image: ""}},
	}
}
