package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/football-api/internal/domain/player"
	"github.com/riskibarqy/football-api/internal/domain/store"
	"github.com/riskibarqy/football-api/internal/domain/team"
	"github.com/riskibarqy/football-api/internal/platform/dberr"
	"github.com/riskibarqy/football-api/internal/platform/logging"
)

type TeamService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	tx         store.Transactor
	logger     *logging.Logger
}

func NewTeamService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	tx store.Transactor,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &TeamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		tx:         tx,
		logger:     logger,
	}
}

// ListTeams returns page number page (zero based) of size teams ordered by
// sortBy, each with its roster.
func (s *TeamService) ListTeams(ctx context.Context, page, size int, sortBy string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	s.logger.InfoContext(ctx, "list teams", "page", page, "size", size, "sort_by", sortBy)

	if page < 0 {
		return nil, fmt.Errorf("%w: page must be >= 0", ErrInvalidInput)
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: size must be >= 1", ErrInvalidInput)
	}

	items, err := s.teamRepo.List(ctx, team.ListOptions{
		Offset: page * size,
		Limit:  size,
		SortBy: team.SortField(sortBy),
	})
	if err != nil {
		if errors.Is(err, dberr.ErrUnknownSortField) {
			return nil, newError(ErrInvalidInput, "No property '%s' found for type 'Team'", sortBy)
		}
		return nil, fmt.Errorf("list teams: %w", err)
	}

	if err := s.attachRosters(ctx, items); err != nil {
		return nil, err
	}

	return items, nil
}

func (s *TeamService) GetTeam(ctx context.Context, id int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	s.logger.InfoContext(ctx, "get team", "team_id", id)

	item, err := s.getTeam(ctx, id)
	if err != nil {
		return team.Team{}, err
	}

	items := []team.Team{item}
	if err := s.attachRosters(ctx, items); err != nil {
		return team.Team{}, err
	}

	return items[0], nil
}

func (s *TeamService) CreateTeam(ctx context.Context, in TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	s.logger.InfoContext(ctx, "create team")

	exists, err := s.teamRepo.ExistsByName(ctx, in.Name)
	if err != nil {
		return team.Team{}, fmt.Errorf("check team exists by name: %w", err)
	}
	if exists {
		return team.Team{}, duplicateTeam(in.Name)
	}

	if in.Players != nil {
		if err := checkForDuplicatePlayers(in.Players); err != nil {
			return team.Team{}, err
		}
		for _, p := range in.Players {
			exists, err := s.playerRepo.ExistsByAttributes(ctx, p.toPlayer())
			if err != nil {
				return team.Team{}, fmt.Errorf("check player exists by attributes: %w", err)
			}
			if exists {
				return team.Team{}, newError(ErrDuplicate, "Player already exists in other team: %s %s", p.FirstName, p.LastName)
			}
		}
	}

	var created team.Team
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		item, err := s.teamRepo.Create(ctx, team.Team{
			Name:    in.Name,
			Acronym: in.Acronym,
			Budget:  in.Budget,
		})
		if err != nil {
			return teamStorageError("create team", in.Name, err)
		}

		roster, err := s.insertRoster(ctx, rosterPlayers(in.Players, item.ID, item.Name))
		if err != nil {
			return err
		}

		item.Players = roster
		created = item
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "create team failed", "name", in.Name, "error", err)
		return team.Team{}, err
	}

	s.logger.InfoContext(ctx, "team created", "team_id", created.ID, "players", len(created.Players))
	return created, nil
}

// UpdateTeam overwrites name, acronym and budget. A supplied roster replaces
// the stored one; a nil roster leaves it untouched.
func (s *TeamService) UpdateTeam(ctx context.Context, id int64, in TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.UpdateTeam")
	defer span.End()

	s.logger.InfoContext(ctx, "update team", "team_id", id)

	if _, err := s.getTeam(ctx, id); err != nil {
		return team.Team{}, err
	}
	if in.Players != nil {
		if err := checkForDuplicatePlayers(in.Players); err != nil {
			return team.Team{}, err
		}
	}

	var updated team.Team
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		item, err := s.teamRepo.Update(ctx, team.Team{
			ID:      id,
			Name:    in.Name,
			Acronym: in.Acronym,
			Budget:  in.Budget,
		})
		if err != nil {
			return storageError("update team", err)
		}

		if in.Players != nil {
			if err := s.playerRepo.DeleteByTeamID(ctx, id); err != nil {
				return storageError("delete players by team id", err)
			}
			roster, err := s.insertRoster(ctx, rosterPlayers(in.Players, id, item.Name))
			if err != nil {
				return err
			}
			item.Players = roster
		}

		updated = item
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "update team failed", "team_id", id, "error", err)
		return team.Team{}, err
	}

	if in.Players == nil {
		items := []team.Team{updated}
		if err := s.attachRosters(ctx, items); err != nil {
			return team.Team{}, err
		}
		updated = items[0]
	}

	return updated, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.DeleteTeam")
	defer span.End()

	s.logger.InfoContext(ctx, "delete team", "team_id", id)

	if _, err := s.getTeam(ctx, id); err != nil {
		return err
	}

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.playerRepo.DeleteByTeamID(ctx, id); err != nil {
			return storageError("delete players by team id", err)
		}
		if err := s.teamRepo.Delete(ctx, id); err != nil {
			return storageError("delete team", err)
		}
		return nil
	})
}

func (s *TeamService) getTeam(ctx context.Context, id int64) (team.Team, error) {
	item, exists, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, notFound("Team", id)
	}

	return item, nil
}

func (s *TeamService) insertRoster(ctx context.Context, items []player.Player) ([]player.Player, error) {
	out := make([]player.Player, 0, len(items))
	for _, item := range items {
		created, err := s.playerRepo.Create(ctx, item)
		if err != nil {
			return nil, storageError("create roster player", err)
		}
		out = append(out, created)
	}
	return out, nil
}

// attachRosters loads the players of every team in one query and assigns
// them in id order. Teams without players get an empty roster.
func (s *TeamService) attachRosters(ctx context.Context, items []team.Team) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	players, err := s.playerRepo.ListByTeamIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("list players by team ids: %w", err)
	}

	byTeam := make(map[int64][]player.Player, len(items))
	for _, p := range players {
		if p.TeamID == nil {
			continue
		}
		byTeam[*p.TeamID] = append(byTeam[*p.TeamID], p)
	}

	for i := range items {
		roster := byTeam[items[i].ID]
		if roster == nil {
			roster = []player.Player{}
		}
		items[i].Players = roster
	}

	return nil
}

func duplicateTeam(name string) *Error {
	return newError(ErrDuplicate, "Team already exists with name %s", name)
}

// teamStorageError reports a unique violation on the team row as a duplicate
// name, which covers a concurrent insert of the same name.
func teamStorageError(op, name string, err error) error {
	if errors.Is(err, dberr.ErrUniqueViolation) {
		return fmt.Errorf("%s: %w: %w", op, duplicateTeam(name), err)
	}
	return storageError(op, err)
}
