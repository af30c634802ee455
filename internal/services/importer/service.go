// Package importer loads xwing-data2 reference files into the reference store.
package importer

//go:generate mockgen -destination=mock/mock_service.go -package=importermock github.com/SogeMoge/xwsbot/internal/services/importer Service

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/SogeMoge/xwsbot/internal/entities/reference"
	"github.com/SogeMoge/xwsbot/internal/errors"
	"github.com/SogeMoge/xwsbot/internal/pkg/logger"
	referencerepo "github.com/SogeMoge/xwsbot/internal/repositories/reference"
)

// Directories under the data root
const (
	FactionsDir = "factions"
	PilotsDir   = "pilots"
	UpgradesDir = "upgrades"

	// DefaultConcurrency bounds parallel file decoding
	DefaultConcurrency = 8
)

// Service rebuilds the reference store from a data directory
type Service interface {
	// Prepare drops every reference record and imports the files under
	// input.Root. Malformed files are skipped and reported.
	Prepare(ctx context.Context, input *PrepareInput) (*PrepareOutput, error)
}

// PrepareInput names the data root, e.g. submodules/xwing-data2/data
type PrepareInput struct {
	Root string
}

// PrepareOutput counts what was written
type PrepareOutput struct {
	Factions     int
	Ships        int
	Pilots       int
	Upgrades     int
	SkippedFiles []string
}

// Config holds the dependencies for the importer
type Config struct {
	Store referencerepo.Store
	// Logger (optional)
	Logger *zap.Logger
	// Concurrency (optional, defaults to DefaultConcurrency)
	Concurrency int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Store == nil {
		vb.RequiredField("Store")
	}
	if c.Concurrency < 0 {
		vb.Fieldf("Concurrency", "must not be negative, got %d", c.Concurrency)
	}
	return vb.Build()
}

type service struct {
	store       referencerepo.Store
	logger      *zap.Logger
	concurrency int
}

// New creates an importer
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	s := &service{
		store:       cfg.Store,
		logger:      cfg.Logger,
		concurrency: cfg.Concurrency,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.concurrency == 0 {
		s.concurrency = DefaultConcurrency
	}
	return s, nil
}

// decoded is the content of the files of one kind
type decoded struct {
	mu       sync.Mutex
	factions []*reference.Faction
	ships    []*reference.Ship
	upgrades []*reference.Upgrade
	skipped  []string
}

func (s *service) Prepare(ctx context.Context, input *PrepareInput) (*PrepareOutput, error) {
	if input == nil || input.Root == "" {
		return nil, errors.InvalidArgument("data root is required")
	}

	log := logger.FromContext(ctx, s.logger).With(zap.String("root", input.Root))

	info, err := os.Stat(input.Root)
	if err != nil || !info.IsDir() {
		return nil, errors.NotFoundf("data root %s is not a directory", input.Root).WithMeta("root", input.Root)
	}

	factionFiles, err := filepath.Glob(filepath.Join(input.Root, FactionsDir, "*.json"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list faction files")
	}
	upgradeFiles, err := filepath.Glob(filepath.Join(input.Root, UpgradesDir, "*.json"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list upgrade files")
	}
	pilotFiles, err := walkJSON(filepath.Join(input.Root, PilotsDir))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pilot files")
	}

	log.Info("Decoding reference files",
		zap.Int("faction_files", len(factionFiles)),
		zap.Int("pilot_files", len(pilotFiles)),
		zap.Int("upgrade_files", len(upgradeFiles)))

	out := &decoded{}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, path := range factionFiles {
		g.Go(func() error {
			return s.decodeFile(gctx, log, out, path, func(data []byte) error {
				items, err := decodeList[reference.Faction](data)
				if err != nil {
					return err
				}
				out.mu.Lock()
				out.factions = append(out.factions, items...)
				out.mu.Unlock()
				return nil
			})
		})
	}
	for _, path := range pilotFiles {
		g.Go(func() error {
			return s.decodeFile(gctx, log, out, path, func(data []byte) error {
				items, err := decodeList[reference.Ship](data)
				if err != nil {
					return err
				}
				out.mu.Lock()
				out.ships = append(out.ships, items...)
				out.mu.Unlock()
				return nil
			})
		})
	}
	for _, path := range upgradeFiles {
		g.Go(func() error {
			return s.decodeFile(gctx, log, out, path, func(data []byte) error {
				items, err := decodeList[reference.Upgrade](data)
				if err != nil {
					return err
				}
				out.mu.Lock()
				out.upgrades = append(out.upgrades, items...)
				out.mu.Unlock()
				return nil
			})
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	factions := keep(log, "faction", out.factions, func(f *reference.Faction) string { return f.XWS })
	ships := keep(log, "ship", out.ships, func(sh *reference.Ship) string { return sh.XWS })
	upgrades := keep(log, "upgrade", out.upgrades, func(u *reference.Upgrade) string { return u.XWS })

	pilots := 0
	for _, ship := range ships {
		kept := ship.Pilots[:0]
		for _, p := range ship.Pilots {
			if p.XWS == "" {
				log.Debug("Dropping pilot without xws", zap.String("ship", ship.XWS), zap.String("name", p.Name))
				continue
			}
			kept = append(kept, p)
		}
		ship.Pilots = kept
		pilots += len(kept)
	}

	removed, err := s.store.Reset(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reset reference store")
	}
	log.Info("Dropped reference records", zap.Int("keys", removed))

	if err := s.store.SaveFactions(ctx, factions); err != nil {
		return nil, errors.Wrap(err, "failed to save factions")
	}
	if err := s.store.SaveShips(ctx, ships); err != nil {
		return nil, errors.Wrap(err, "failed to save ships")
	}
	if err := s.store.SaveUpgrades(ctx, upgrades); err != nil {
		return nil, errors.Wrap(err, "failed to save upgrades")
	}

	sort.Strings(out.skipped)
	result := &PrepareOutput{
		Factions:     len(factions),
		Ships:        len(ships),
		Pilots:       pilots,
		Upgrades:     len(upgrades),
		SkippedFiles: out.skipped,
	}

	log.Info("Imported reference data",
		zap.Int("factions", result.Factions),
		zap.Int("ships", result.Ships),
		zap.Int("pilots", result.Pilots),
		zap.Int("upgrades", result.Upgrades),
		zap.Int("skipped_files", len(result.SkippedFiles)))

	return result, nil
}

// decodeFile reads one file. Unreadable or malformed files are recorded as
// skipped; only cancellation stops the import.
func (s *service) decodeFile(ctx context.Context, log *zap.Logger, out *decoded, path string, apply func([]byte) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeCanceled, "import canceled")
	}

	data, err := os.ReadFile(path)
	if err == nil {
		err = apply(data)
	}
	if err != nil {
		log.Warn("Skipping reference file", zap.String("file", path), zap.Error(err))
		out.mu.Lock()
		out.skipped = append(out.skipped, path)
		out.mu.Unlock()
	}
	return nil
}

// decodeList accepts either a JSON array or a single object
func decodeList[T any](data []byte) ([]*T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []*T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var item T
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return nil, err
	}
	return []*T{&item}, nil
}

// keep drops nil entries and entries without an xws id, then sorts by id
func keep[T any](log *zap.Logger, kind string, items []*T, id func(*T) string) []*T {
	out := make([]*T, 0, len(items))
	for _, item := range items {
		if item == nil || id(item) == "" {
			log.Debug("Dropping record without xws", zap.String("kind", kind))
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return id(out[i]) < id(out[j]) })
	return out
}

func walkJSON(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == root {
				return filepath.SkipDir
			}
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
