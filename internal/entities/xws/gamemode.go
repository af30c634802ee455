package xws

import (
	"regexp"
	"strconv"
)

// Game modes encoded in a builder link
const (
	ModeStandard   = "Standard"
	ModeWildspace  = "Wildspace"
	ModeEpic       = "Epic"
	ModeQuickbuild = "Quickbuild"
)

// modePattern matches the "&d=v8Z<mode>Z<points>Z" segment of a builder link
var modePattern = regexp.MustCompile(`&d=v8Z([sheq])Z(\d*)Z`)

var modeNames = map[string]string{
	"s": ModeStandard,
	"h": ModeWildspace,
	"e": ModeEpic,
	"q": ModeQuickbuild,
}

// GameMode is the mode label and point limit of a squad
type GameMode struct {
	Name       string
	PointLimit int
}

// ParseGameMode extracts the game mode from a builder link. It reports false
// when the segment is missing, carries the wrong version prefix, or has no
// usable point limit.
func ParseGameMode(link string) (GameMode, bool) {
	m := modePattern.FindStringSubmatch(link)
	if m == nil {
		return GameMode{}, false
	}

	name, ok := modeNames[m[1]]
	if !ok || m[2] == "" {
		return GameMode{}, false
	}

	limit, err := strconv.Atoi(m[2])
	if err != nil {
		return GameMode{}, false
	}

	return GameMode{Name: name, PointLimit: limit}, true
}
