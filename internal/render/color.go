package render

// DefaultColor is used for factions without an assigned color
const DefaultColor = 0x808080

var factionColors = map[string]int{
	"rebelalliance":      0xB22222,
	"galacticempire":     0x5A6472,
	"scumandvillainy":    0xB8860B,
	"firstorder":         0x8B0000,
	"resistance":         0xF28C28,
	"galacticrepublic":   0xC9A227,
	"separatistalliance": 0x1F5FAD,
}

// FactionColor returns the embed color for a faction xws id
func FactionColor(factionXWS string) int {
	if c, ok := factionColors[factionXWS]; ok {
		return c
	}
	return DefaultColor
}
