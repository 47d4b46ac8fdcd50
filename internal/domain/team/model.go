package team

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/football-api/internal/domain/player"
)

// Team is a football club owning an ordered roster of players.
type Team struct {
	ID      int64
	Name    string
	Acronym string
	Budget  float64
	Players []player.Player
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if strings.TrimSpace(t.Acronym) == "" {
		return fmt.Errorf("team acronym is required")
	}

	return nil
}

// SortField is a column a team page can be ordered by.
type SortField string

const (
	SortByID      SortField = "id"
	SortByName    SortField = "name"
	SortByAcronym SortField = "acronym"
	SortByBudget  SortField = "budget"
)

// ListOptions selects one page of teams.
type ListOptions struct {
	Offset int
	Limit  int
	SortBy SortField
}
