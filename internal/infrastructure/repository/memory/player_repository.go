package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/football-api/internal/domain/player"
	"github.com/riskibarqy/football-api/internal/platform/dberr"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.selectLocked(func(player.Player) bool { return true }), nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.players[id]
	if !ok {
		return player.Player{}, false, nil
	}
	return r.withTeamNameLocked(item), true, nil
}

func (r *PlayerRepository) ListByTeamIDs(_ context.Context, teamIDs []int64) ([]player.Player, error) {
	if len(teamIDs) == 0 {
		return []player.Player{}, nil
	}

	wanted := make(map[int64]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		wanted[id] = struct{}{}
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.selectLocked(func(item player.Player) bool {
		if item.TeamID == nil {
			return false
		}
		_, ok := wanted[*item.TeamID]
		return ok
	}), nil
}

func (r *PlayerRepository) ExistsByName(_ context.Context, firstName, lastName string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.players {
		if item.FirstName == firstName && item.LastName == lastName {
			return true, nil
		}
	}
	return false, nil
}

func (r *PlayerRepository) ExistsByAttributes(_ context.Context, candidate player.Player) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.attributesTakenLocked(candidate, 0), nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.checkLocked(item); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	r.store.playerSeq++
	item.ID = r.store.playerSeq
	r.store.players[item.ID] = clonePlayer(item)

	return item, nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) (player.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.players[item.ID]; !ok {
		return item, nil
	}
	if err := r.checkLocked(item); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	r.store.players[item.ID] = clonePlayer(item)

	return item, nil
}

func (r *PlayerRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.players, id)
	return nil
}

func (r *PlayerRepository) DeleteByTeamID(_ context.Context, teamID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, item := range r.store.players {
		if item.TeamID != nil && *item.TeamID == teamID {
			delete(r.store.players, id)
		}
	}
	return nil
}

func (r *PlayerRepository) checkLocked(item player.Player) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", dberr.NewViolation(dberr.ErrConstraintViolation, "players_not_null"), err)
	}
	if item.TeamID != nil {
		if _, ok := r.store.teams[*item.TeamID]; !ok {
			return dberr.NewViolation(dberr.ErrConstraintViolation, "players_team_id_fkey")
		}
	}
	if r.attributesTakenLocked(item, item.ID) {
		return dberr.NewViolation(dberr.ErrUniqueViolation, "players_attributes_key")
	}
	return nil
}

func (r *PlayerRepository) attributesTakenLocked(candidate player.Player, exceptID int64) bool {
	for id, item := range r.store.players {
		if id != exceptID && item.SameAttributes(candidate) {
			return true
		}
	}
	return false
}

func (r *PlayerRepository) selectLocked(keep func(player.Player) bool) []player.Player {
	out := make([]player.Player, 0, len(r.store.players))
	for _, item := range r.store.players {
		if keep(item) {
			out = append(out, r.withTeamNameLocked(item))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *PlayerRepository) withTeamNameLocked(item player.Player) player.Player {
	item = clonePlayer(item)
	item.TeamName = ""
	if item.TeamID != nil {
		if owner, ok := r.store.teams[*item.TeamID]; ok {
			item.TeamName = owner.Name
		}
	}
	return item
}
