package memory

import (
	"sync"

	"github.com/riskibarqy/football-api/internal/domain/player"
	"github.com/riskibarqy/football-api/internal/domain/team"
)

// Store holds the tables shared by the memory repositories. It mirrors the
// relational constraints: unique team name, unique player attributes, team
// foreign key with cascade on delete.
type Store struct {
	mu        sync.RWMutex
	teams     map[int64]team.Team
	players   map[int64]player.Player
	teamSeq   int64
	playerSeq int64
}

func NewStore() *Store {
	return &Store{
		teams:   make(map[int64]team.Team),
		players: make(map[int64]player.Player),
	}
}

type snapshot struct {
	teams     map[int64]team.Team
	players   map[int64]player.Player
	teamSeq   int64
	playerSeq int64
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := snapshot{
		teams:     make(map[int64]team.Team, len(s.teams)),
		players:   make(map[int64]player.Player, len(s.players)),
		teamSeq:   s.teamSeq,
		playerSeq: s.playerSeq,
	}
	for id, item := range s.teams {
		out.teams[id] = item
	}
	for id, item := range s.players {
		out.players[id] = item
	}
	return out
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = snap.teams
	s.players = snap.players
	s.teamSeq = snap.teamSeq
	s.playerSeq = snap.playerSeq
}

func clonePlayer(item player.Player) player.Player {
	item.JerseyNumber = clonePtr(item.JerseyNumber)
	item.Age = clonePtr(item.Age)
	item.Nationality = clonePtr(item.Nationality)
	item.Size = clonePtr(item.Size)
	item.Salary = clonePtr(item.Salary)
	item.TeamID = clonePtr(item.TeamID)
	return item
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
