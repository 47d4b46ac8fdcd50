package cache

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-api/internal/domain/player"
	"github.com/riskibarqy/football-api/internal/domain/store"
	"github.com/riskibarqy/football-api/internal/domain/team"
	basecache "github.com/riskibarqy/football-api/internal/platform/cache"
)

// Reads go through the cache unless they run inside a transaction. Every
// write purges the whole cache because team names are denormalized into
// player reads and rosters are derived from players.

type txMarkerKey struct{}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txMarkerKey{}).(bool)
	return v
}

// Transactor marks the transaction context so reads bypass the cache, and
// purges again after the unit of work ends.
type Transactor struct {
	next  store.Transactor
	cache *basecache.Store
}

func NewTransactor(next store.Transactor, cache *basecache.Store) *Transactor {
	return &Transactor{next: next, cache: cache}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	defer t.cache.Purge(ctx)
	return t.next.WithinTx(context.WithValue(ctx, txMarkerKey{}, true), fn)
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	if inTx(ctx) {
		return r.next.GetByID(ctx, id)
	}

	v, err := r.cache.GetOrLoad(ctx, "team:id:"+strconv.FormatInt(id, 10), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) List(ctx context.Context, opts team.ListOptions) ([]team.Team, error) {
	if inTx(ctx) {
		return r.next.List(ctx, opts)
	}

	key := "team:list:" + strconv.Itoa(opts.Offset) + ":" + strconv.Itoa(opts.Limit) + ":" + string(opts.SortBy)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return r.next.List(ctx, opts)
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return slices.Clone(items), nil
}

func (r *TeamRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.next.ExistsByName(ctx, name)
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	defer r.cache.Purge(ctx)
	return r.next.Create(ctx, item)
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (team.Team, error) {
	defer r.cache.Purge(ctx)
	return r.next.Update(ctx, item)
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	defer r.cache.Purge(ctx)
	return r.next.Delete(ctx, id)
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	if inTx(ctx) {
		return r.next.List(ctx)
	}

	v, err := r.cache.GetOrLoad(ctx, "player:list", func(ctx context.Context) (any, error) {
		return r.next.List(ctx)
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return slices.Clone(items), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	if inTx(ctx) {
		return r.next.GetByID(ctx, id)
	}

	v, err := r.cache.GetOrLoad(ctx, "player:id:"+strconv.FormatInt(id, 10), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByID)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) ListByTeamIDs(ctx context.Context, teamIDs []int64) ([]player.Player, error) {
	if inTx(ctx) {
		return r.next.ListByTeamIDs(ctx, teamIDs)
	}

	ids := slices.Clone(teamIDs)
	slices.Sort(ids)
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}

	v, err := r.cache.GetOrLoad(ctx, "player:teams:"+strings.Join(parts, ","), func(ctx context.Context) (any, error) {
		return r.next.ListByTeamIDs(ctx, teamIDs)
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return slices.Clone(items), nil
}

func (r *PlayerRepository) ExistsByName(ctx context.Context, firstName, lastName string) (bool, error) {
	return r.next.ExistsByName(ctx, firstName, lastName)
}

func (r *PlayerRepository) ExistsByAttributes(ctx context.Context, item player.Player) (bool, error) {
	return r.next.ExistsByAttributes(ctx, item)
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	defer r.cache.Purge(ctx)
	return r.next.Create(ctx, item)
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) (player.Player, error) {
	defer r.cache.Purge(ctx)
	return r.next.Update(ctx, item)
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	defer r.cache.Purge(ctx)
	return r.next.Delete(ctx, id)
}

func (r *PlayerRepository) DeleteByTeamID(ctx context.Context, teamID int64) error {
	defer r.cache.Purge(ctx)
	return r.next.DeleteByTeamID(ctx, teamID)
}
