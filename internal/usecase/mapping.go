package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-api/internal/domain/player"
	"github.com/riskibarqy/football-api/internal/domain/team"
)

// PlayerInput is the writable part of a player.
type PlayerInput struct {
	FirstName    string
	LastName     string
	Position     string
	JerseyNumber *int
	Age          *int
	Nationality  *string
	Size         *string
	Salary       *float64
	TeamID       *int64
}

// TeamInput is the writable part of a team. A nil Players means the roster
// was not supplied; an empty non-nil slice is an empty roster.
type TeamInput struct {
	Name    string
	Acronym string
	Budget  float64
	Players []PlayerInput
}

func (in PlayerInput) toPlayer() player.Player {
	return player.Player{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Position:     in.Position,
		JerseyNumber: in.JerseyNumber,
		Age:          in.Age,
		Nationality:  in.Nationality,
		Size:         in.Size,
		Salary:       in.Salary,
	}
}

// buildPlayer maps the input and resolves its team reference. A team id that
// does not resolve leaves the player without a team.
func buildPlayer(ctx context.Context, teamRepo team.Repository, in PlayerInput) (player.Player, error) {
	item := in.toPlayer()
	if in.TeamID == nil {
		return item, nil
	}

	owner, exists, err := teamRepo.GetByID(ctx, *in.TeamID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get team by id: %w", err)
	}
	if exists {
		id := owner.ID
		item.TeamID = &id
		item.TeamName = owner.Name
	}

	return item, nil
}

// rosterPlayers attaches every roster entry to teamID. Team ids carried by
// the entries themselves are ignored.
func rosterPlayers(items []PlayerInput, teamID int64, teamName string) []player.Player {
	out := make([]player.Player, 0, len(items))
	for _, in := range items {
		item := in.toPlayer()
		id := teamID
		item.TeamID = &id
		item.TeamName = teamName
		out = append(out, item)
	}
	return out
}

type playerName struct {
	first string
	last  string
}

// checkForDuplicatePlayers rejects a batch where two entries share the same
// first and last name.
func checkForDuplicatePlayers(items []PlayerInput) error {
	seen := make(map[playerName]struct{}, len(items))
	for _, in := range items {
		key := playerName{first: in.FirstName, last: in.LastName}
		if _, ok := seen[key]; ok {
			return newError(ErrInvalidEntity, "Duplicate player detected: %s %s", in.FirstName, in.LastName)
		}
		seen[key] = struct{}{}
	}
	return nil
}
