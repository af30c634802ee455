package reference

import (
	"context"
	"encoding/json"

	"github.com/SogeMoge/xwsbot/internal/entities/reference"
	"github.com/SogeMoge/xwsbot/internal/errors"
	"github.com/SogeMoge/xwsbot/internal/pkg/lookup"
	redisclient "github.com/SogeMoge/xwsbot/internal/redis"
)

const (
	keyPattern       = "xws:*"
	factionKeyPrefix = "xws:faction:"
	pilotKeyPrefix   = "xws:pilot:"
	shipKeyPrefix    = "xws:ship:"
	upgradeKeyPrefix = "xws:upgrade:"

	scanBatch = 500
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis reference store
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed reference store
func NewRedis(cfg *RedisConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// FactionKey returns the Redis key of a faction
func FactionKey(id string) string { return factionKeyPrefix + id }

// PilotKey returns the Redis key of a pilot
func PilotKey(id string) string { return pilotKeyPrefix + id }

// ShipKey returns the Redis key of a ship
func ShipKey(id string) string { return shipKeyPrefix + id }

// UpgradeKey returns the Redis key of an upgrade
func UpgradeKey(id string) string { return upgradeKeyPrefix + id }

func (r *redisRepository) LookupFaction(ctx context.Context, id string) (lookup.Result[*reference.Faction], error) {
	return get[reference.Faction](ctx, r.client, FactionKey(id), id)
}

func (r *redisRepository) LookupPilot(ctx context.Context, id string) (lookup.Result[*reference.Pilot], error) {
	return get[reference.Pilot](ctx, r.client, PilotKey(id), id)
}

func (r *redisRepository) LookupShipForPilot(ctx context.Context, pilotID string) (lookup.Result[*reference.Ship], error) {
	pilot, err := r.LookupPilot(ctx, pilotID)
	if err != nil {
		return lookup.NotFound[*reference.Ship](), err
	}

	p, ok := pilot.Get()
	if !ok || p.ShipXWS == "" {
		return lookup.NotFound[*reference.Ship](), nil
	}

	return get[reference.Ship](ctx, r.client, ShipKey(p.ShipXWS), p.ShipXWS)
}

func (r *redisRepository) LookupUpgrade(ctx context.Context, id string) (lookup.Result[*reference.Upgrade], error) {
	return get[reference.Upgrade](ctx, r.client, UpgradeKey(id), id)
}

func get[T any](ctx context.Context, client redisclient.Client, key, id string) (lookup.Result[*T], error) {
	if id == "" {
		return lookup.NotFound[*T](), nil
	}

	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return lookup.NotFound[*T](), nil
		}
		return lookup.NotFound[*T](), errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read %s", key).
			WithMeta("key", key)
	}

	var record T
	if err := json.Unmarshal(raw, &record); err != nil {
		return lookup.NotFound[*T](), errors.Wrapf(err, "failed to decode %s", key).
			WithMeta("key", key)
	}

	return lookup.Found(&record), nil
}

func (r *redisRepository) Reset(ctx context.Context) (int, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, keyPattern, scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan reference keys")
	}

	deleted := 0
	for start := 0; start < len(keys); start += scanBatch {
		end := min(start+scanBatch, len(keys))
		n, err := r.client.Del(ctx, keys[start:end]...).Result()
		if err != nil {
			return deleted, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete reference keys")
		}
		deleted += int(n)
	}

	return deleted, nil
}

func (r *redisRepository) SaveFactions(ctx context.Context, factions []*reference.Faction) error {
	records := make(map[string]any, len(factions))
	for _, f := range factions {
		if f == nil || f.XWS == "" {
			return errors.InvalidArgument("faction xws cannot be empty")
		}
		records[FactionKey(f.XWS)] = f
	}
	return r.write(ctx, records)
}

func (r *redisRepository) SaveShips(ctx context.Context, ships []*reference.Ship) error {
	records := make(map[string]any, len(ships))
	for _, ship := range ships {
		if ship == nil || ship.XWS == "" {
			return errors.InvalidArgument("ship xws cannot be empty")
		}

		for i := range ship.Pilots {
			pilot := ship.Pilots[i]
			if pilot.XWS == "" {
				return errors.InvalidArgumentf("pilot xws cannot be empty (ship %s)", ship.XWS)
			}
			pilot.ShipXWS = ship.XWS
			records[PilotKey(pilot.XWS)] = &pilot
		}

		stored := *ship
		stored.Pilots = nil
		records[ShipKey(ship.XWS)] = &stored
	}
	return r.write(ctx, records)
}

func (r *redisRepository) SaveUpgrades(ctx context.Context, upgrades []*reference.Upgrade) error {
	records := make(map[string]any, len(upgrades))
	for _, u := range upgrades {
		if u == nil || u.XWS == "" {
			return errors.InvalidArgument("upgrade xws cannot be empty")
		}
		records[UpgradeKey(u.XWS)] = u
	}
	return r.write(ctx, records)
}

func (r *redisRepository) write(ctx context.Context, records map[string]any) error {
	if len(records) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	for key, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal %s", key)
		}
		pipe.Set(ctx, key, data, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write reference records")
	}
	return nil
}
