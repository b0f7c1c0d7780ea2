package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/octofit-tracker/internal/domain/user"
	qb "github.com/riskibarqy/octofit-tracker/internal/platform/querybuilder"
)

const usersTable = "users"

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, item user.User) (user.User, error) {
	query, args, err := qb.InsertModel(usersTable, userInsertModelFrom(item)).Returning("*").ToSQL()
	if err != nil {
		return user.User{}, fmt.Errorf("build insert user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return user.User{}, userWriteError("insert user", err)
	}

	return userFromRow(row), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, bool, error) {
	key, ok := parseID(id)
	if !ok {
		return user.User{}, false, nil
	}

	query, args, err := qb.Select("*").From(usersTable).
		Where(qb.Eq("id", key)).
		Limit(1).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user: %w", err)
	}

	return userFromRow(row), true, nil
}

func (r *UserRepository) List(ctx context.Context, filter user.Filter) ([]user.User, error) {
	query, args, err := qb.Select("*").From(usersTable).
		Where(qb.EqIf("team", filter.Team)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, userFromRow(row))
	}
	return out, nil
}

func (r *UserRepository) Update(ctx context.Context, item user.User) (user.User, bool, error) {
	key, ok := parseID(item.ID)
	if !ok {
		return user.User{}, false, nil
	}

	query, args, err := qb.UpdateModel(usersTable, userInsertModelFrom(item), "created_at").
		Where(qb.Eq("id", key)).
		Returning("*").
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build update user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, true, userWriteError("update user", err)
	}

	return userFromRow(row), true, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	key, ok := parseID(id)
	if !ok {
		return false, nil
	}
	return deleteByID(ctx, r.db, usersTable, key)
}

func (r *UserRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.db, usersTable)
}

func userWriteError(op string, err error) error {
	if constraint, ok := uniqueConstraint(err); ok {
		return fmt.Errorf("%w: %s", user.ErrDuplicate, constraint)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func userInsertModelFrom(item user.User) userInsertModel {
	return userInsertModel{
		Email:     item.Email,
		Username:  item.Username,
		Password:  item.PasswordHash,
		FullName:  item.FullName,
		Team:      item.Team,
		AvatarURL: item.AvatarURL,
		CreatedAt: item.CreatedAt,
	}
}

func userFromRow(row userTableModel) user.User {
	return user.User{
		ID:           formatID(row.ID),
		Email:        row.Email,
		Username:     row.Username,
		PasswordHash: row.Password,
		FullName:     row.FullName,
		Team:         nullStringToPtr(row.Team),
		AvatarURL:    nullStringToPtr(row.AvatarURL),
		CreatedAt:    row.CreatedAt.UTC(),
	}
}
