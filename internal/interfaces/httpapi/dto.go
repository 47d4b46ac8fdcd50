package httpapi

import (
	"context"

	"github.com/riskibarqy/football-api/internal/domain/player"
	"github.com/riskibarqy/football-api/internal/domain/team"
	"github.com/riskibarqy/football-api/internal/usecase"
)

// playerRequest accepts the full wire shape so a fetched player can be sent
// back unchanged; id and teamName are ignored.
type playerRequest struct {
	ID           *int64   `json:"id"`
	FirstName    string   `json:"firstName" validate:"required"`
	LastName     string   `json:"lastName" validate:"required"`
	Position     string   `json:"position" validate:"required"`
	JerseyNumber *int     `json:"jerseyNumber"`
	Age          *int     `json:"age"`
	Nationality  *string  `json:"nationality"`
	Size         *string  `json:"size"`
	Salary       *float64 `json:"salary"`
	TeamID       *int64   `json:"teamId"`
	TeamName     *string  `json:"teamName"`
}

type teamRequest struct {
	ID      *int64          `json:"id"`
	Name    string          `json:"name" validate:"required"`
	Acronym string          `json:"acronym" validate:"required"`
	Budget  *float64        `json:"budget" validate:"required"`
	Players []playerRequest `json:"players" validate:"dive"`
}

type listTeamsQuery struct {
	Page   int    `json:"page" validate:"min=0"`
	Size   int    `json:"size" validate:"min=1"`
	SortBy string `json:"sortBy" validate:"required"`
}

type playerDTO struct {
	ID           int64    `json:"id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Position     string   `json:"position"`
	JerseyNumber *int     `json:"jerseyNumber,omitempty"`
	Age          *int     `json:"age,omitempty"`
	Nationality  *string  `json:"nationality,omitempty"`
	Size         *string  `json:"size,omitempty"`
	Salary       *float64 `json:"salary,omitempty"`
	TeamID       *int64   `json:"teamId,omitempty"`
	TeamName     *string  `json:"teamName,omitempty"`
}

type teamDTO struct {
	ID      int64       `json:"id"`
	Name    string      `json:"name"`
	Acronym string      `json:"acronym"`
	Budget  float64     `json:"budget"`
	Players []playerDTO `json:"players"`
}

func (r playerRequest) toInput() usecase.PlayerInput {
	return usecase.PlayerInput{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Position:     r.Position,
		JerseyNumber: r.JerseyNumber,
		Age:          r.Age,
		Nationality:  r.Nationality,
		Size:         r.Size,
		Salary:       r.Salary,
		TeamID:       r.TeamID,
	}
}

func (r teamRequest) toInput() usecase.TeamInput {
	in := usecase.TeamInput{
		Name:    r.Name,
		Acronym: r.Acronym,
	}
	if r.Budget != nil {
		in.Budget = *r.Budget
	}
	if r.Players != nil {
		in.Players = make([]usecase.PlayerInput, 0, len(r.Players))
		for _, p := range r.Players {
			in.Players = append(in.Players, p.toInput())
		}
	}
	return in
}

func playerToDTO(ctx context.Context, v player.Player) playerDTO {
	_, span := startSpan(ctx, "httpapi.playerToDTO")
	defer span.End()

	out := playerDTO{
		ID:           v.ID,
		FirstName:    v.FirstName,
		LastName:     v.LastName,
		Position:     v.Position,
		JerseyNumber: v.JerseyNumber,
		Age:          v.Age,
		Nationality:  v.Nationality,
		Size:         v.Size,
		Salary:       v.Salary,
	}
	if v.TeamID != nil {
		teamID := *v.TeamID
		teamName := v.TeamName
		out.TeamID = &teamID
		out.TeamName = &teamName
	}
	return out
}

// teamToDTO nests the roster without the back-reference to the team.
func teamToDTO(ctx context.Context, v team.Team) teamDTO {
	ctx, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	players := make([]playerDTO, 0, len(v.Players))
	for _, p := range v.Players {
		item := playerToDTO(ctx, p)
		item.TeamID = nil
		item.TeamName = nil
		players = append(players, item)
	}

	return teamDTO{
		ID:      v.ID,
		Name:    v.Name,
		Acronym: v.Acronym,
		Budget:  v.Budget,
		Players: players,
	}
}
