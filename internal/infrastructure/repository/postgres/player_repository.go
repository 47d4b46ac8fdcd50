package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-api/internal/domain/player"
	"github.com/riskibarqy/football-api/internal/platform/dberr"
	qb "github.com/riskibarqy/football-api/internal/platform/querybuilder"
)

const playerFromJoinTeam = "players p LEFT JOIN teams t ON t.id = p.team_id"

var playerSelectColumns = []string{
	"p.id",
	"p.first_name",
	"p.last_name",
	"p.position",
	"p.jersey_number",
	"p.age",
	"p.nationality",
	"p.size",
	"p.salary",
	"p.team_id",
	"t.name AS team_name",
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From(playerFromJoinTeam).
		OrderBy("p.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	return r.selectPlayers(ctx, "select players", query, args)
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From(playerFromJoinTeam).
		Where(qb.Eq("p.id", id)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by id query: %w", err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) ListByTeamIDs(ctx context.Context, teamIDs []int64) ([]player.Player, error) {
	if len(teamIDs) == 0 {
		return []player.Player{}, nil
	}

	query, args, err := qb.Select(playerSelectColumns...).From(playerFromJoinTeam).
		Where(qb.In("p.team_id", int64SliceToAny(teamIDs))).
		OrderBy("p.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by team ids query: %w", err)
	}

	return r.selectPlayers(ctx, "select players by team ids", query, args)
}

func (r *PlayerRepository) ExistsByName(ctx context.Context, firstName, lastName string) (bool, error) {
	query, args, err := qb.Select("1").From("players").
		Where(
			qb.Eq("first_name", firstName),
			qb.Eq("last_name", lastName),
		).
		ToExistsSQL()
	if err != nil {
		return false, fmt.Errorf("build player exists by name query: %w", err)
	}

	return r.exists(ctx, "check player exists by name", query, args)
}

func (r *PlayerRepository) ExistsByAttributes(ctx context.Context, item player.Player) (bool, error) {
	query, args, err := qb.Select("1").From("players").
		Where(
			qb.Eq("first_name", item.FirstName),
			qb.Eq("last_name", item.LastName),
			qb.Eq("position", item.Position),
			qb.NotDistinct("jersey_number", item.JerseyNumber),
			qb.NotDistinct("age", item.Age),
			qb.NotDistinct("nationality", item.Nationality),
			qb.NotDistinct("size", item.Size),
			qb.NotDistinct("salary", item.Salary),
		).
		ToExistsSQL()
	if err != nil {
		return false, fmt.Errorf("build player exists by attributes query: %w", err)
	}

	return r.exists(ctx, "check player exists by attributes", query, args)
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	query, args, err := qb.InsertModel("players", toPlayerWriteModel(item), "RETURNING id")
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &item.ID, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", dberr.Translate(err))
	}

	return item, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) (player.Player, error) {
	query, args, err := qb.UpdateModel("players", toPlayerWriteModel(item), "", qb.Eq("id", item.ID))
	if err != nil {
		return player.Player{}, fmt.Errorf("build update player query: %w", err)
	}

	if _, err := conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", dberr.Translate(err))
	}

	return item, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, "delete player", qb.Eq("id", id))
}

func (r *PlayerRepository) DeleteByTeamID(ctx context.Context, teamID int64) error {
	return r.delete(ctx, "delete players by team id", qb.Eq("team_id", teamID))
}

func (r *PlayerRepository) delete(ctx context.Context, op string, where qb.Condition) error {
	query, args, err := qb.DeleteFrom("players").Where(where).ToSQL()
	if err != nil {
		return fmt.Errorf("build %s query: %w", op, err)
	}

	if _, err := conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, dberr.Translate(err))
	}

	return nil
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, op, query string, args []any) ([]player.Player, error) {
	var rows []playerTableModel
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) exists(ctx context.Context, op, query string, args []any) (bool, error) {
	var exists bool
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &exists, query, args...); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Position:     m.Position,
		JerseyNumber: m.JerseyNumber,
		Age:          m.Age,
		Nationality:  m.Nationality,
		Size:         m.Size,
		Salary:       m.Salary,
		TeamID:       m.TeamID,
		TeamName:     nullStringValue(m.TeamName),
	}
}

func toPlayerWriteModel(item player.Player) playerWriteModel {
	return playerWriteModel{
		FirstName:    item.FirstName,
		LastName:     item.LastName,
		Position:     item.Position,
		JerseyNumber: item.JerseyNumber,
		Age:          item.Age,
		Nationality:  item.Nationality,
		Size:         item.Size,
		Salary:       item.Salary,
		TeamID:       item.TeamID,
	}
}
