package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/riskibarqy/football-api/internal/infrastructure/repository/memory"
)

type testServices struct {
	teams   *TeamService
	players *PlayerService
}

func newTestServices() testServices {
	store := memory.NewStore()
	teamRepo := memory.NewTeamRepository(store)
	playerRepo := memory.NewPlayerRepository(store)

	return testServices{
		teams:   NewTeamService(teamRepo, playerRepo, memory.NewTransactor(store), nil),
		players: NewPlayerService(playerRepo, teamRepo, nil),
	}
}

func intPtr(v int) *int { return &v }

func TestTeamService_CreateThenGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestServices()

	created, err := svc.teams.CreateTeam(ctx, TeamInput{Name: "Ajax", Acronym: "AJX", Budget: 120.5})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	got, err := svc.teams.GetTeam(ctx, created.ID)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if got.Name != "Ajax" || got.Acronym != "AJX" || got.Budget != 120.5 {
		t.Fatalf("unexpected team: %+v", got)
	}
	if got.Players == nil || len(got.Players) != 0 {
		t.Fatalf("expected empty roster, got %+v", got.Players)
	}
}

func TestTeamService_CreateDuplicateName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestServices()

	if _, err := svc.teams.CreateTeam(ctx, TeamInput{Name: "Ajax", Acronym: "AJX"}); err != nil {
		t.Fatalf("create team: %v", err)
	}
	_, err := svc.teams.CreateTeam(ctx, TeamInput{Name: "Ajax", Acronym: "AJA"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestTeamService_CreateWithBatchDuplicatePersistsNothing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestServices()

	_, err := svc.teams.CreateTeam(ctx, TeamInput{
		Name:    "Ajax",
		Acronym: "AJX",
		Players: []PlayerInput{
			{FirstName: "Jan", LastName: "Olsen", Position: "GK"},
			{FirstName: "Jan", LastName: "Olsen", Position: "CB"},
		},
	})
	if !errors.Is(err, ErrInvalidEntity) {
		t.Fatalf("expected ErrInvalidEntity, got %v", err)
	}
	if err.Error() != "Duplicate player detected: Jan Olsen" {
		t.Fatalf("unexpected message: %s", err.Error())
	}

	teams, err := svc.teams.ListTeams(ctx, 0, 10, "name")
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("expected no team persisted, got %+v", teams)
	}
	players, err := svc.players.ListPlayers(ctx)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 0 {
		t.Fatalf("expected no player persisted, got %+v", players)
	}
}

func TestTeamService_CreateWithRoster(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestServices()

	created, err := svc.teams.CreateTeam(ctx, TeamInput{
		Name:    "Ajax",
		Acronym: "AJX",
		Players: []PlayerInput{
			{FirstName: "Jan", LastName: "Olsen", Position: "GK"},
			{FirstName: "Piet", LastName: "Kramer", Position: "ST", Age: intPtr(24)},
		},
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	got, err := svc.teams.GetTeam(ctx, created.ID)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if len(got.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(got.Players))
	}
	for _, p := range got.Players {
		if p.TeamID == nil || *p.TeamID != created.ID {
			t.Fatalf("roster player not attached to team: %+v", p)
		}
	}
}

func TestTeamService_RosterFailureRollsBackTeam(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestServices()

	_, err := svc.teams.CreateTeam(ctx, TeamInput{
		Name:    "Ajax",
		Acronym: "AJX",
		Players: []PlayerInput{{FirstName: "Jan", LastName: "Olsen"}},
	})
	if !errors.Is(err, ErrIntegrityViolation) {
		t.Fatalf("expected ErrIntegrityViolation, got %v", err)
	}

	var clientErr *Error
	if !errors.As(err, &clientErr) || clientErr.Message != integrityMessage {
		t.Fatalf("expected integrity message, got %v", err)
	}

	if _, err := svc.teams.CreateTeam(ctx, TeamInput{Name: "Ajax", Acronym: "AJX"}); err != nil {
		t.Fatalf("team insert should have been rolled back: %v", err)
	}
}

func TestTeamService_DeleteCascadesPlayers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestServices()

	created, err := svc.teams.CreateTeam(ctx, TeamInput{
		Name:    "Ajax",
		Acronym: "AJX",
		Players: []PlayerInput{
			{FirstName: "Jan", LastName: "Olsen", Position: "GK"},
			{FirstName: "Piet", LastName: "Kramer", Position: "ST"},
		},
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	if err := svc.teams.DeleteTeam(ctx, created.ID); err != nil {
		t.Fatalf("delete team: %v", err)
	}

	for _, p := range created.Players {
		if _, err := svc.players.GetPlayer(ctx, p.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected player %d to be gone, got %v", p.ID, err)
		}
	}
	if _, err := svc.teams.GetTeam(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected team to be gone, got %v", err)
	}
}

func TestTeamService_UpdateReplacesRoster(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestServices()

	created, err := svc.teams.CreateTeam(ctx, TeamInput{
		Name:    "Ajax",
		Acronym: "AJX",
		Players: []PlayerInput{{FirstName: "Jan", LastName: "Olsen", Position: "GK"}},
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	oldID := created.Players[0].ID

	updated, err := svc.teams.UpdateTeam(ctx, created.ID, TeamInput{
		Name:    "AFC Ajax",
		Acronym: "AJA",
		Budget:  10,
		Players: []PlayerInput{{FirstName: "Remko", LastName: "Pasveer", Position: "GK"}},
	})
	if err != nil {
		t.Fatalf("update team: %v", err)
	}
	if updated.Name != "AFC Ajax" || len(updated.Players) != 1 {
		t.Fatalf("unexpected updated team: %+v", updated)
	}

	if _, err := svc.players.GetPlayer(ctx, oldID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected old player to be gone, got %v", err)
	}
	got, err := svc.players.GetPlayer(ctx, updated.Players[0].ID)
	if err != nil {
		t.Fatalf("get new player: %v", err)
	}
	if got.TeamName != "AFC Ajax" {
		t.Fatalf("expected new team name, got %q", got.TeamName)
	}
}

func TestTeamService_UpdateWithoutRosterKeepsPlayers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestServices()

	created, err := svc.teams.CreateTeam(ctx, TeamInput{
		Name:    "Ajax",
		Acronym: "AJX",
		Players: []PlayerInput{{FirstName: "Jan", LastName: "Olsen", Position: "GK"}},
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	updated, err := svc.teams.UpdateTeam(ctx, created.ID, TeamInput{Name: "Ajax", Acronym: "AJX", Budget: 99})
	if err != nil {
		t.Fatalf("update team: %v", err)
	}
	if updated.Budget != 99 || len(updated.Players) != 1 || updated.Players[0].ID != created.Players[0].ID {
		t.Fatalf("unexpected updated team: %+v", updated)
	}
}

func TestTeamService_ListSortedByName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestServices()

	for _, name := range []string{"Porto", "Ajax", "Celtic", "Benfica", "Lazio", "Inter", "Roma", "Milan", "Napoli", "Genoa", "Empoli", "Fiorentina"} {
		if _, err := svc.teams.CreateTeam(ctx, TeamInput{Name: name, Acronym: name[:3]}); err != nil {
			t.Fatalf("create team %s: %v", name, err)
		}
	}

	items, err := svc.teams.ListTeams(ctx, 0, 10, "name")
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(items) != 10 {
		t.Fatalf("expected 10 teams, got %d", len(items))
	}
	if !sort.SliceIsSorted(items, func(i, j int) bool { return items[i].Name < items[j].Name }) {
		t.Fatalf("teams not sorted by name: %+v", items)
	}

	second, err := svc.teams.ListTeams(ctx, 1, 10, "name")
	if err != nil {
		t.Fatalf("list second page: %v", err)
	}
	if len(second) != 2 || second[0].Name != "Porto" || second[1].Name != "Roma" {
		t.Fatalf("unexpected second page: %+v", second)
	}

	if _, err := svc.teams.ListTeams(ctx, -1, 10, "name"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative page, got %v", err)
	}
}

func TestPlayerService_TeamRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestServices()

	owner, err := svc.teams.CreateTeam(ctx, TeamInput{Name: "Ajax", Acronym: "AJX"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	created, err := svc.players.CreatePlayer(ctx, PlayerInput{FirstName: "Jan", LastName: "Olsen", Position: "GK", TeamID: &owner.ID})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}

	if _, err := svc.teams.UpdateTeam(ctx, owner.ID, TeamInput{Name: "AFC Ajax", Acronym: "AJX"}); err != nil {
		t.Fatalf("rename team: %v", err)
	}

	got, err := svc.players.GetPlayer(ctx, created.ID)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if got.TeamID == nil || *got.TeamID != owner.ID || got.TeamName != "AFC Ajax" {
		t.Fatalf("unexpected team reference: %+v", got)
	}

	_, err = svc.players.CreatePlayer(ctx, PlayerInput{FirstName: "Jan", LastName: "Olsen", Position: "CB"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for same name, got %v", err)
	}
}
