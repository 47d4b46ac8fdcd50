package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-api/internal/domain/team"
	"github.com/riskibarqy/football-api/internal/platform/dberr"
	qb "github.com/riskibarqy/football-api/internal/platform/querybuilder"
)

var teamSelectColumns = []string{"id", "name", "acronym", "budget"}

var teamSortColumns = map[team.SortField]string{
	team.SortByID:      "id",
	team.SortByName:    "name",
	team.SortByAcronym: "acronym",
	team.SortByBudget:  "budget",
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team by id query: %w", err)
	}

	var row teamTableModel
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) List(ctx context.Context, opts team.ListOptions) ([]team.Team, error) {
	column, ok := teamSortColumns[opts.SortBy]
	if !ok {
		return nil, fmt.Errorf("%w: %q", dberr.ErrUnknownSortField, opts.SortBy)
	}

	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		OrderBy(column+" ASC", "id ASC").
		Limit(opts.Limit).
		Offset(opts.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query, args, err := qb.Select("1").From("teams").
		Where(qb.Eq("name", name)).
		ToExistsSQL()
	if err != nil {
		return false, fmt.Errorf("build team exists query: %w", err)
	}

	var exists bool
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &exists, query, args...); err != nil {
		return false, fmt.Errorf("check team exists: %w", err)
	}

	return exists, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	query, args, err := qb.InsertModel("teams", teamWriteModel{
		Name:    item.Name,
		Acronym: item.Acronym,
		Budget:  item.Budget,
	}, "RETURNING id")
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &item.ID, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", dberr.Translate(err))
	}

	return item, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (team.Team, error) {
	query, args, err := qb.UpdateModel("teams", teamWriteModel{
		Name:    item.Name,
		Acronym: item.Acronym,
		Budget:  item.Budget,
	}, "", qb.Eq("id", item.ID))
	if err != nil {
		return team.Team{}, fmt.Errorf("build update team query: %w", err)
	}

	if _, err := conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", dberr.Translate(err))
	}

	return item, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom("teams").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete team query: %w", err)
	}

	if _, err := conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete team: %w", dberr.Translate(err))
	}

	return nil
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:      m.ID,
		Name:    m.Name,
		Acronym: m.Acronym,
		Budget:  m.Budget,
	}
}
