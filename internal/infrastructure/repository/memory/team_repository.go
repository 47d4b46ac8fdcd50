package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/football-api/internal/domain/team"
	"github.com/riskibarqy/football-api/internal/platform/dberr"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) GetByID(_ context.Context, id int64) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.teams[id]
	return item, ok, nil
}

func (r *TeamRepository) List(_ context.Context, opts team.ListOptions) ([]team.Team, error) {
	less, err := teamLess(opts.SortBy)
	if err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	items := make([]team.Team, 0, len(r.store.teams))
	for _, item := range r.store.teams {
		items = append(items, item)
	}
	r.store.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if less(items[i], items[j]) {
			return true
		}
		if less(items[j], items[i]) {
			return false
		}
		return items[i].ID < items[j].ID
	})

	if opts.Offset >= len(items) {
		return []team.Team{}, nil
	}
	items = items[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(items) {
		items = items[:opts.Limit]
	}

	return items, nil
}

func (r *TeamRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.nameTakenLocked(name, 0), nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (team.Team, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.checkLocked(item); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}

	r.store.teamSeq++
	item.ID = r.store.teamSeq
	stored := item
	stored.Players = nil
	r.store.teams[item.ID] = stored

	return item, nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) (team.Team, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.teams[item.ID]; !ok {
		return item, nil
	}
	if err := r.checkLocked(item); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}

	stored := item
	stored.Players = nil
	r.store.teams[item.ID] = stored

	return item, nil
}

func (r *TeamRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.teams, id)
	for playerID, item := range r.store.players {
		if item.TeamID != nil && *item.TeamID == id {
			delete(r.store.players, playerID)
		}
	}

	return nil
}

func (r *TeamRepository) checkLocked(item team.Team) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", dberr.NewViolation(dberr.ErrConstraintViolation, "teams_not_null"), err)
	}
	if r.nameTakenLocked(item.Name, item.ID) {
		return dberr.NewViolation(dberr.ErrUniqueViolation, "teams_name_key")
	}
	return nil
}

func (r *TeamRepository) nameTakenLocked(name string, exceptID int64) bool {
	for id, item := range r.store.teams {
		if id != exceptID && item.Name == name {
			return true
		}
	}
	return false
}

func teamLess(field team.SortField) (func(a, b team.Team) bool, error) {
	switch field {
	case team.SortByID:
		return func(a, b team.Team) bool { return a.ID < b.ID }, nil
	case team.SortByName:
		return func(a, b team.Team) bool { return strings.Compare(a.Name, b.Name) < 0 }, nil
	case team.SortByAcronym:
		return func(a, b team.Team) bool { return strings.Compare(a.Acronym, b.Acronym) < 0 }, nil
	case team.SortByBudget:
		return func(a, b team.Team) bool { return a.Budget < b.Budget }, nil
	default:
		return nil, fmt.Errorf("%w: %q", dberr.ErrUnknownSortField, field)
	}
}
