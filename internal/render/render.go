// Package render formats an enriched squad into Discord embed descriptions.
//
// The first block always starts with the squad header. Pilot lines follow in
// deployment order and are never split: a line that would push a block over
// the size limit starts the next block instead. A pilot line that could not
// fit any block drops trailing upgrades behind "…".
package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/SogeMoge/xwsbot/internal/engine"
	"github.com/SogeMoge/xwsbot/internal/entities/reference"
	"github.com/SogeMoge/xwsbot/internal/orchestrators/squad"
)

// MaxBlockSize is Discord's embed description limit, in characters
const MaxBlockSize = 4096

// Image fallbacks for records without an image
const (
	PilotImageFallback   = "https://github.com/SogeMoge/x-wing2.0-project-goldenrod/blob/2.0/src/images/En/pilots/"
	UpgradeImageFallback = "https://github.com/SogeMoge/x-wing2.0-project-goldenrod/blob/2.0/src/images/En/upgrades/"
)

const ellipsis = "…"

const (
	unknownMode    = "Unknown"
	unknownFaction = "Unknown Faction"
	unknownPilot   = "Unknown Pilot"
	unknownUpgrade = "Unknown Upgrade"
)

// Block is one embed: its description text and side color
type Block struct {
	Description string
	Color       int
}

// Options tunes rendering. The zero value renders with the defaults.
type Options struct {
	// MaxBlockSize in runes (optional, defaults to MaxBlockSize)
	MaxBlockSize int
	// PilotImageFallback (optional, defaults to PilotImageFallback)
	PilotImageFallback string
	// UpgradeImageFallback (optional, defaults to UpgradeImageFallback)
	UpgradeImageFallback string
}

func (o *Options) withDefaults() Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.MaxBlockSize <= 0 {
		out.MaxBlockSize = MaxBlockSize
	}
	if out.PilotImageFallback == "" {
		out.PilotImageFallback = PilotImageFallback
	}
	if out.UpgradeImageFallback == "" {
		out.UpgradeImageFallback = UpgradeImageFallback
	}
	return out
}

// Render formats s into one or more blocks. The result is never empty.
func Render(s *squad.EnrichedSquad, opts *Options) []Block {
	o := opts.withDefaults()

	lines := make([]string, 0, len(s.Pilots))
	for _, p := range s.Pilots {
		lines = append(lines, PilotLine(p, &o))
	}

	color := DefaultColor
	if s.Faction != nil {
		color = FactionColor(s.Faction.XWS)
	}

	return Paginate(Header(s, o.MaxBlockSize), lines, o.MaxBlockSize, color)
}

// Header renders the squad title, faction, points, mode and bid. The squad
// name is shortened if the header alone would not fit in maxSize runes.
func Header(s *squad.EnrichedSquad, maxSize int) string {
	faction := unknownFaction
	if s.Faction != nil && s.Faction.Name != "" {
		faction = s.Faction.Name
	}

	limit, modeName := engine.Unresolved, unknownMode
	if mode, ok := s.GameMode.Get(); ok {
		limit, modeName = strconv.Itoa(mode.PointLimit), mode.Name
	}

	bid := engine.Unresolved
	if v, ok := engine.Bid(s.GameMode, s.Points); ok {
		bid = strconv.Itoa(v)
	}

	rest := fmt.Sprintf("\n%s [%s/%s: %s]\n-# Bid: %s\n", faction, s.Points, limit, modeName, bid)

	build := func(name string) string {
		title := name
		if s.Link != "" {
			title = fmt.Sprintf("[%s](%s)", name, s.Link)
		}
		return "**" + title + "**" + rest
	}

	header := build(s.Name)
	if maxSize > 0 {
		if excess := utf8.RuneCountInString(header) - maxSize; excess > 0 {
			header = build(truncate(s.Name, utf8.RuneCountInString(s.Name)-excess-1) + ellipsis)
		}
	}
	return header
}

// PilotLine renders one pilot with its upgrades, costs and total. The total
// is only shown when the pilot has upgrades. Upgrades are dropped from the end
// until the line fits in the block size; the total still counts them.
func PilotLine(p squad.EnrichedPilot, opts *Options) string {
	o := opts.withDefaults()

	name, image := unknownPilot, o.PilotImageFallback
	var initiative *int
	if p.Pilot != nil {
		if p.Pilot.Name != "" {
			name = p.Pilot.Name
		}
		if p.Pilot.Image != "" {
			image = p.Pilot.Image
		}
		initiative = p.Pilot.Initiative
	}

	shipXWS := ""
	if p.Ship != nil {
		shipXWS = p.Ship.XWS
	}

	head := fmt.Sprintf("%s %s**[%s](%s)** (%s)", ShipEmoji(shipXWS), InitiativeEmoji(initiative), name, image, pilotCost(p))
	if len(p.Upgrades) == 0 {
		return head + "\n"
	}

	base, _ := engine.BaseCost(p.Pilot)
	costs := make([]engine.Cost, 0, len(p.Upgrades))
	parts := make([]string, 0, len(p.Upgrades))
	for _, u := range p.Upgrades {
		cost := engine.UpgradeCost(u, p.Ship, p.Pilot)
		costs = append(costs, cost)
		parts = append(parts, upgradePart(u.Name, upgradeImage(u.Sides, o.UpgradeImageFallback), cost))
	}
	total := engine.PilotTotal(base, costs)

	line := head + upgradeList(parts, total)
	for keep := len(parts) - 1; keep >= 0 && utf8.RuneCountInString(line) > o.MaxBlockSize; keep-- {
		line = head + upgradeList(append(parts[:keep:keep], ellipsis), total)
	}
	return line
}

func upgradeList(parts []string, total int) string {
	return fmt.Sprintf(": *%s* __**[%d]**__\n", strings.Join(parts, ", "), total)
}

func pilotCost(p squad.EnrichedPilot) string {
	if p.Pilot == nil {
		return engine.Unresolved
	}
	return p.Pilot.Cost.String()
}

func upgradePart(name, image string, cost engine.Cost) string {
	if name == "" {
		name = unknownUpgrade
	}
	return fmt.Sprintf("[%s](%s)(%s)", name, image, cost)
}

// upgradeImage uses the first side's image. Only an upgrade with no sides at
// all falls back, so a placeholder keeps its empty image.
func upgradeImage(sides []reference.Side, fallback string) string {
	if len(sides) == 0 {
		return fallback
	}
	return sides[0].Image
}

// Paginate packs header and lines into blocks of at most maxSize runes. A
// line longer than maxSize on its own is cut and ends in "…".
func Paginate(header string, lines []string, maxSize int, color int) []Block {
	var blocks []Block
	current := header
	size := utf8.RuneCountInString(current)

	for _, line := range lines {
		n := utf8.RuneCountInString(line)
		if n > maxSize {
			line = clipLine(line, maxSize)
			n = utf8.RuneCountInString(line)
		}
		if size+n > maxSize && current != "" {
			blocks = append(blocks, Block{Description: current, Color: color})
			current, size = "", 0
		}
		current += line
		size += n
	}

	if current != "" || len(blocks) == 0 {
		blocks = append(blocks, Block{Description: current, Color: color})
	}
	return blocks
}

// Footer is the attribution under each block, with a part counter when the
// squad spans more than one block.
func Footer(phrase, user string, part, total int) string {
	text := phrase + " " + user
	if total > 1 {
		text += fmt.Sprintf("\n[Part %d/%d]", part, total)
	}
	return text
}

// clipLine shortens line to maxSize runes, keeping the trailing newline
func clipLine(line string, maxSize int) string {
	if maxSize < 2 {
		return truncate(line, maxSize)
	}
	return truncate(strings.TrimSuffix(line, "\n"), maxSize-2) + ellipsis + "\n"
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
