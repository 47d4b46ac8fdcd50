package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-api/internal/domain/player"
	"github.com/riskibarqy/football-api/internal/domain/team"
	playermock "github.com/riskibarqy/football-api/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/football-api/internal/mocks/domain/team"
	"github.com/riskibarqy/football-api/internal/platform/dberr"
	"github.com/stretchr/testify/mock"
)

type inlineTx struct{}

func (inlineTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestTeamService_ListTeams_PassesPageWindowUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	service := NewTeamService(teamRepo, playerRepo, inlineTx{}, nil)

	teamRepo.
		On("List", mock.Anything, team.ListOptions{Offset: 10, Limit: 5, SortBy: team.SortByBudget}).
		Return([]team.Team{{ID: 1, Name: "Ajax"}, {ID: 2, Name: "Benfica"}}, nil).
		Once()
	teamID := int64(2)
	playerRepo.
		On("ListByTeamIDs", mock.Anything, []int64{1, 2}).
		Return([]player.Player{{ID: 7, FirstName: "Joao", TeamID: &teamID}}, nil).
		Once()

	got, err := service.ListTeams(ctx, 2, 5, "budget")
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected team count: %d", len(got))
	}
	if got[0].Players == nil || len(got[0].Players) != 0 {
		t.Fatalf("expected empty non-nil roster, got %+v", got[0].Players)
	}
	if len(got[1].Players) != 1 || got[1].Players[0].ID != 7 {
		t.Fatalf("unexpected roster: %+v", got[1].Players)
	}
}

func TestTeamService_ListTeams_UnknownSortFieldUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	service := NewTeamService(teamRepo, playerRepo, inlineTx{}, nil)

	teamRepo.
		On("List", mock.Anything, mock.Anything).
		Return(nil, dberr.ErrUnknownSortField).
		Once()

	_, err := service.ListTeams(ctx, 0, 10, "coach")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTeamService_CreateTeam_DuplicateNameUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	service := NewTeamService(teamRepo, playerRepo, inlineTx{}, nil)

	teamRepo.
		On("ExistsByName", mock.Anything, "Ajax").
		Return(true, nil).
		Once()

	_, err := service.CreateTeam(ctx, TeamInput{Name: "Ajax", Acronym: "AJX"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestTeamService_CreateTeam_PlayerInOtherTeamUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	service := NewTeamService(teamRepo, playerRepo, inlineTx{}, nil)

	teamRepo.
		On("ExistsByName", mock.Anything, "Ajax").
		Return(false, nil).
		Once()
	playerRepo.
		On("ExistsByAttributes", mock.Anything, mock.MatchedBy(func(p player.Player) bool { return p.LastName == "Olsen" })).
		Return(true, nil).
		Once()

	_, err := service.CreateTeam(ctx, TeamInput{
		Name:    "Ajax",
		Acronym: "AJX",
		Players: []PlayerInput{{FirstName: "Jan", LastName: "Olsen", Position: "GK"}},
	})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if err.Error() != "Player already exists in other team: Jan Olsen" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestTeamService_CreateTeam_NameRaceIsDuplicateUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	service := NewTeamService(teamRepo, playerRepo, inlineTx{}, nil)

	teamRepo.
		On("ExistsByName", mock.Anything, "Ajax").
		Return(false, nil).
		Once()
	teamRepo.
		On("Create", mock.Anything, mock.Anything).
		Return(team.Team{}, dberr.NewViolation(dberr.ErrUniqueViolation, "teams_name_key")).
		Once()

	_, err := service.CreateTeam(ctx, TeamInput{Name: "Ajax", Acronym: "AJX"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestTeamService_UpdateTeam_NotFoundBeforeAnyMutationUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	service := NewTeamService(teamRepo, playerRepo, inlineTx{}, nil)

	teamRepo.
		On("GetByID", mock.Anything, int64(5)).
		Return(team.Team{}, false, nil).
		Once()

	_, err := service.UpdateTeam(ctx, 5, TeamInput{
		Name:    "Ajax",
		Acronym: "AJX",
		Players: []PlayerInput{{FirstName: "A", LastName: "B", Position: "GK"}},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != "Team not found with id 5" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestTeamService_UpdateTeam_NameClashIsIntegrityViolationUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	service := NewTeamService(teamRepo, playerRepo, inlineTx{}, nil)

	teamRepo.
		On("GetByID", mock.Anything, int64(2)).
		Return(team.Team{ID: 2, Name: "PSV"}, true, nil).
		Once()
	teamRepo.
		On("Update", mock.Anything, mock.Anything).
		Return(team.Team{}, dberr.NewViolation(dberr.ErrUniqueViolation, "teams_name_key")).
		Once()

	_, err := service.UpdateTeam(ctx, 2, TeamInput{Name: "Ajax", Acronym: "PSV"})
	if !errors.Is(err, ErrIntegrityViolation) {
		t.Fatalf("expected ErrIntegrityViolation, got %v", err)
	}
	if errors.Is(err, ErrDuplicate) {
		t.Fatalf("rename clash must not be reported as a duplicate: %v", err)
	}
}

func TestTeamService_DeleteTeam_RemovesRosterFirstUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	service := NewTeamService(teamRepo, playerRepo, inlineTx{}, nil)

	var order []string
	teamRepo.
		On("GetByID", mock.Anything, int64(4)).
		Return(team.Team{ID: 4, Name: "Ajax"}, true, nil).
		Once()
	playerRepo.
		On("DeleteByTeamID", mock.Anything, int64(4)).
		Run(func(mock.Arguments) { order = append(order, "players") }).
		Return(nil).
		Once()
	teamRepo.
		On("Delete", mock.Anything, int64(4)).
		Run(func(mock.Arguments) { order = append(order, "team") }).
		Return(nil).
		Once()

	if err := service.DeleteTeam(ctx, 4); err != nil {
		t.Fatalf("delete team: %v", err)
	}
	if len(order) != 2 || order[0] != "players" || order[1] != "team" {
		t.Fatalf("unexpected delete order: %v", order)
	}
}
