package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/octofit-tracker/internal/domain/team"
	qb "github.com/riskibarqy/octofit-tracker/internal/platform/querybuilder"
)

const teamsTable = "teams"

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	query, args, err := qb.InsertModel(teamsTable, teamInsertModelFrom(item)).Returning("*").ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return team.Team{}, teamWriteError("insert team", err)
	}

	return teamFromRow(row), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (team.Team, bool, error) {
	key, ok := parseID(id)
	if !ok {
		return team.Team{}, false, nil
	}
	return r.getOne(ctx, qb.Eq("id", key))
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	return r.getOne(ctx, qb.Eq("name", name))
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From(teamsTable).OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (team.Team, bool, error) {
	key, ok := parseID(item.ID)
	if !ok {
		return team.Team{}, false, nil
	}

	query, args, err := qb.UpdateModel(teamsTable, teamInsertModelFrom(item), "created_at").
		Where(qb.Eq("id", key)).
		Returning("*").
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build update team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, true, teamWriteError("update team", err)
	}

	return teamFromRow(row), true, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) (bool, error) {
	key, ok := parseID(id)
	if !ok {
		return false, nil
	}
	return deleteByID(ctx, r.db, teamsTable, key)
}

func (r *TeamRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.db, teamsTable)
}

func (r *TeamRepository) getOne(ctx context.Context, cond qb.Condition) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From(teamsTable).Where(cond).Limit(1).ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}

	return teamFromRow(row), true, nil
}

func teamWriteError(op string, err error) error {
	if constraint, ok := uniqueConstraint(err); ok {
		return fmt.Errorf("%w: %s", team.ErrDuplicate, constraint)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func teamInsertModelFrom(item team.Team) teamInsertModel {
	return teamInsertModel{
		Name:        item.Name,
		Description: item.Description,
		Captain:     item.Captain,
		Members:     textArray(item.Members),
		TotalPoints: item.TotalPoints,
		CreatedAt:   item.CreatedAt,
	}
}

func teamFromRow(row teamTableModel) team.Team {
	members := []string(row.Members)
	if members == nil {
		members = []string{}
	}
	return team.Team{
		ID:          formatID(row.ID),
		Name:        row.Name,
		Description: row.Description,
		Captain:     row.Captain,
		Members:     members,
		TotalPoints: row.TotalPoints,
		CreatedAt:   row.CreatedAt.UTC(),
	}
}
