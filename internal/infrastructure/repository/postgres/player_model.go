package postgres

import "database/sql"

type playerTableModel struct {
	ID           int64          `db:"id"`
	FirstName    string         `db:"first_name"`
	LastName     string         `db:"last_name"`
	Position     string         `db:"position"`
	JerseyNumber *int           `db:"jersey_number"`
	Age          *int           `db:"age"`
	Nationality  *string        `db:"nationality"`
	Size         *string        `db:"size"`
	Salary       *float64       `db:"salary"`
	TeamID       *int64         `db:"team_id"`
	TeamName     sql.NullString `db:"team_name"`
}

type playerWriteModel struct {
	FirstName    string   `db:"first_name"`
	LastName     string   `db:"last_name"`
	Position     string   `db:"position"`
	JerseyNumber *int     `db:"jersey_number"`
	Age          *int     `db:"age"`
	Nationality  *string  `db:"nationality"`
	Size         *string  `db:"size"`
	Salary       *float64 `db:"salary"`
	TeamID       *int64   `db:"team_id"`
}
