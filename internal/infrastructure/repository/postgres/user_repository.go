package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-tournament/internal/domain/user"
	qb "github.com/riskibarqy/cricket-tournament/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	return r.list(ctx)
}

func (r *UserRepository) ListByStatus(ctx context.Context, status string) ([]user.User, error) {
	return r.list(ctx, qb.Eq("status", status))
}

func (r *UserRepository) list(ctx context.Context, conditions ...qb.Condition) ([]user.User, error) {
	query, args, err := selectUsersQuery(conditions...)
	if err != nil {
		return nil, crerr.Wrap(err, "build select users query")
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select users")
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, userFromRow(row))
	}
	return out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	query, args, err := qb.Select("*").From("users").
		Where(qb.Eq("public_id", userID)).
		ToSQL()
	if err != nil {
		return user.User{}, false, crerr.Wrap(err, "build get user by id query")
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, crerr.Wrapf(err, "get user %s", userID)
	}
	return userFromRow(row), true, nil
}

func (r *UserRepository) Create(ctx context.Context, item user.User) error {
	query, args, err := qb.InsertModel("users", userToInsertModel(item), "")
	if err != nil {
		return crerr.Wrap(err, "build insert user query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if field, ok := uniqueViolationField(err); ok {
			return &user.DuplicateError{Field: field}
		}
		return crerr.Wrap(err, "insert user")
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, item user.User) error {
	builder, err := qb.UpdateModel("users", userToInsertModel(item), "public_id", "created_at")
	if err != nil {
		return crerr.Wrap(err, "build update user model")
	}
	query, args, err := builder.Where(qb.Eq("public_id", item.ID)).ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build update user query")
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if field, ok := uniqueViolationField(err); ok {
			return &user.DuplicateError{Field: field}
		}
		return crerr.Wrapf(err, "update user %s", item.ID)
	}
	return affectedOne(result, user.ErrNotFound)
}

func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	query, args, err := qb.DeleteFrom("users").Where(qb.Eq("public_id", userID)).ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build delete user query")
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return crerr.Wrapf(err, "delete user %s", userID)
	}
	return affectedOne(result, user.ErrNotFound)
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "users")
}

func (r *UserRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	return count(ctx, r.db, "users", qb.Eq("status", status))
}

func count(ctx context.Context, db *sqlx.DB, table string, conditions ...qb.Condition) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From(table).Where(conditions...).ToSQL()
	if err != nil {
		return 0, crerr.Wrapf(err, "build count %s query", table)
	}

	var total int
	if err := db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, crerr.Wrapf(err, "count %s", table)
	}
	return total, nil
}

// selectUsersQuery orders on public_id last so ties match the memory store.
func selectUsersQuery(conditions ...qb.Condition) (string, []any, error) {
	return qb.Select("*").From("users").
		Where(conditions...).
		OrderBy("registration_date DESC", "public_id DESC").
		ToSQL()
}
