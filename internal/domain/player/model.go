package player

import (
	"fmt"
	"strings"
)

// Player is an athlete, optionally registered to a team.
type Player struct {
	ID           int64
	FirstName    string
	LastName     string
	Position     string
	JerseyNumber *int
	Age          *int
	Nationality  *string
	Size         *string
	Salary       *float64
	// TeamID is nil for free agents. TeamName is denormalized on reads.
	TeamID   *int64
	TeamName string
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("player first name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("player last name is required")
	}
	if strings.TrimSpace(p.Position) == "" {
		return fmt.Errorf("player position is required")
	}

	return nil
}

// FullName is the identity used by duplicate-name checks.
func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// SameAttributes reports whether two players collide on the storage
// uniqueness tuple. Two nil optional values are considered equal.
func (p Player) SameAttributes(other Player) bool {
	return p.FirstName == other.FirstName &&
		p.LastName == other.LastName &&
		p.Position == other.Position &&
		equalPtr(p.JerseyNumber, other.JerseyNumber) &&
		equalPtr(p.Age, other.Age) &&
		equalPtr(p.Nationality, other.Nationality) &&
		equalPtr(p.Size, other.Size) &&
		equalPtr(p.Salary, other.Salary)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
