// Package squad attaches reference data to a fetched XWS squad
package squad

//go:generate mockgen -destination=mock/mock_service.go -package=squadmock github.com/SogeMoge/xwsbot/internal/orchestrators/squad Service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/SogeMoge/xwsbot/internal/engine"
	"github.com/SogeMoge/xwsbot/internal/entities/reference"
	"github.com/SogeMoge/xwsbot/internal/entities/xws"
	"github.com/SogeMoge/xwsbot/internal/errors"
	"github.com/SogeMoge/xwsbot/internal/pkg/logger"
	"github.com/SogeMoge/xwsbot/internal/pkg/lookup"
	referencerepo "github.com/SogeMoge/xwsbot/internal/repositories/reference"
)

// Values of the "missing" error meta
const (
	MissingFaction = "faction"
	MissingPilots  = "pilots"
)

// Service defines the interface for squad resolution
type Service interface {
	// Resolve looks up the faction, pilots, ships and upgrades of a squad.
	// Returns errors.FailedPrecondition (meta "missing") when the document
	// has no faction or no pilots. Missing reference records are logged and
	// replaced or skipped. Storage failures are returned.
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)
}

// Config holds the dependencies for the squad orchestrator
type Config struct {
	Repository referencerepo.Repository
	// Logger (optional) is used when the context carries none
	Logger *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	return vb.Build()
}

type orchestrator struct {
	repo   referencerepo.Repository
	logger *zap.Logger
}

// NewOrchestrator creates a new squad orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &orchestrator{
		repo:   cfg.Repository,
		logger: log,
	}, nil
}

func (o *orchestrator) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil || input.Squad == nil {
		return nil, errors.InvalidArgument("squad is required")
	}
	doc := input.Squad
	log := logger.FromContext(ctx, o.logger)

	if doc.Faction == "" {
		return nil, errors.FailedPrecondition("list data incomplete: missing faction").
			WithMeta("missing", MissingFaction)
	}
	if len(doc.Pilots) == 0 {
		return nil, errors.FailedPrecondition("list has no pilots").
			WithMeta("missing", MissingPilots)
	}

	faction, err := o.resolveFaction(ctx, log, doc.Faction)
	if err != nil {
		return nil, err
	}

	mode := lookup.NotFound[xws.GameMode]()
	if link := doc.Vendor.YASB.Link; link != "" {
		if m, ok := xws.ParseGameMode(link); ok {
			mode = lookup.Found(m)
		} else {
			log.Warn("Could not extract game mode from builder link", zap.String("builder_link", link))
		}
	}

	name := doc.Name
	if name == "" {
		name = DefaultSquadName
	}

	pilots := make([]EnrichedPilot, 0, len(doc.Pilots))
	for i, entry := range doc.Pilots {
		enriched, ok, err := o.resolvePilot(ctx, log, i, entry)
		if err != nil {
			return nil, err
		}
		if ok {
			pilots = append(pilots, enriched)
		}
	}

	log.Info("Resolved squad",
		zap.String("faction", faction.XWS),
		zap.Int("pilots", len(pilots)),
		zap.Int("skipped_pilots", len(doc.Pilots)-len(pilots)))

	return &ResolveOutput{
		Squad: &EnrichedSquad{
			Link:     input.Link,
			Name:     name,
			Faction:  faction,
			Points:   doc.Points,
			GameMode: mode,
			Pilots:   pilots,
		},
	}, nil
}

func (o *orchestrator) resolveFaction(ctx context.Context, log *zap.Logger, id string) (*reference.Faction, error) {
	res, err := o.repo.LookupFaction(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up faction %s", id)
	}
	if faction, ok := res.Get(); ok {
		return faction, nil
	}

	log.Warn("Faction not found, using its id", zap.String("faction_id", id))
	return &reference.Faction{
		XWS:  id,
		Name: factionName(id),
	}, nil
}

func (o *orchestrator) resolvePilot(ctx context.Context, log *zap.Logger, index int, entry xws.Pilot) (EnrichedPilot, bool, error) {
	if entry.ID == "" {
		log.Error("Pilot entry has no id, skipping", zap.Int("pilot_index", index))
		return EnrichedPilot{}, false, nil
	}

	pilotRes, err := o.repo.LookupPilot(ctx, entry.ID)
	if err != nil {
		return EnrichedPilot{}, false, errors.Wrapf(err, "failed to look up pilot %s", entry.ID)
	}
	pilot, ok := pilotRes.Get()
	if !ok {
		log.Error("Pilot not found, skipping", zap.String("pilot_id", entry.ID))
		return EnrichedPilot{}, false, nil
	}

	if _, ok := engine.BaseCost(pilot); !ok {
		log.Warn("Pilot cost is not a number, counting 0",
			zap.String("pilot_id", pilot.XWS),
			zap.Stringer("cost", pilot.Cost))
	}

	shipRes, err := o.repo.LookupShipForPilot(ctx, pilot.XWS)
	if err != nil {
		return EnrichedPilot{}, false, errors.Wrapf(err, "failed to look up ship for pilot %s", pilot.XWS)
	}
	ship, ok := shipRes.Get()
	if !ok {
		log.Error("Ship not found, using placeholder", zap.String("pilot_id", pilot.XWS))
		ship = reference.PlaceholderShip()
	}

	ids := entry.Upgrades.IDs()
	upgrades := make([]*reference.Upgrade, 0, len(ids))
	for _, id := range ids {
		res, err := o.repo.LookupUpgrade(ctx, id)
		if err != nil {
			return EnrichedPilot{}, false, errors.Wrapf(err, "failed to look up upgrade %s", id)
		}
		upgrade, ok := res.Get()
		if !ok {
			log.Error("Upgrade not found, using placeholder",
				zap.String("upgrade_id", id),
				zap.String("pilot_id", pilot.XWS))
			upgrade = reference.PlaceholderUpgrade(id)
		}
		upgrades = append(upgrades, upgrade)
	}

	return EnrichedPilot{
		Entry:    entry,
		Pilot:    pilot,
		Ship:     ship,
		Upgrades: upgrades,
	}, true, nil
}

// factionName rebuilds a display name from a faction id. A Caser holds
// state, so one is made per call.
func factionName(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
}
