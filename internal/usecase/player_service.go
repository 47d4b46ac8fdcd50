package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-api/internal/domain/player"
	"github.com/riskibarqy/football-api/internal/domain/team"
	"github.com/riskibarqy/football-api/internal/platform/logging"
)

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	logger     *logging.Logger
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		logger:     logger,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	s.logger.InfoContext(ctx, "list players")

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, id int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	s.logger.InfoContext(ctx, "get player", "player_id", id)

	return s.getPlayer(ctx, id)
}

func (s *PlayerService) CreatePlayer(ctx context.Context, in PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	s.logger.InfoContext(ctx, "create player")

	exists, err := s.playerRepo.ExistsByName(ctx, in.FirstName, in.LastName)
	if err != nil {
		return player.Player{}, fmt.Errorf("check player exists by name: %w", err)
	}
	if exists {
		return player.Player{}, newError(ErrDuplicate, "Player already exists with name %s %s", in.FirstName, in.LastName)
	}

	item, err := buildPlayer(ctx, s.teamRepo, in)
	if err != nil {
		return player.Player{}, err
	}

	created, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		return player.Player{}, storageError("create player", err)
	}

	s.logger.InfoContext(ctx, "player created", "player_id", created.ID)
	return created, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, id int64, in PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	s.logger.InfoContext(ctx, "update player", "player_id", id)

	if _, err := s.getPlayer(ctx, id); err != nil {
		return player.Player{}, err
	}

	item, err := buildPlayer(ctx, s.teamRepo, in)
	if err != nil {
		return player.Player{}, err
	}
	item.ID = id

	updated, err := s.playerRepo.Update(ctx, item)
	if err != nil {
		return player.Player{}, storageError("update player", err)
	}

	return updated, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	s.logger.InfoContext(ctx, "delete player", "player_id", id)

	if _, err := s.getPlayer(ctx, id); err != nil {
		return err
	}

	if err := s.playerRepo.Delete(ctx, id); err != nil {
		return storageError("delete player", err)
	}

	return nil
}

func (s *PlayerService) getPlayer(ctx context.Context, id int64) (player.Player, error) {
	item, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, notFound("Player", id)
	}

	return item, nil
}
