package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-tournament/internal/domain/match"
	qb "github.com/riskibarqy/cricket-tournament/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	return r.list(ctx)
}

func (r *MatchRepository) ListByTournament(ctx context.Context, tournamentID string) ([]match.Match, error) {
	return r.list(ctx, qb.Eq("tournament_public_id", tournamentID))
}

func (r *MatchRepository) ListByStatus(ctx context.Context, status string) ([]match.Match, error) {
	return r.list(ctx, qb.Eq("status", status))
}

func (r *MatchRepository) list(ctx context.Context, conditions ...qb.Condition) ([]match.Match, error) {
	query, args, err := selectMatchesQuery(conditions...)
	if err != nil {
		return nil, crerr.Wrap(err, "build select matches query")
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select matches")
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		item, err := matchFromRow(row)
		if err != nil {
			return nil, crerr.Wrapf(err, "map match %s", row.PublicID)
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("public_id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, crerr.Wrap(err, "build get match by id query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, crerr.Wrapf(err, "get match %s", matchID)
	}

	item, err := matchFromRow(row)
	if err != nil {
		return match.Match{}, false, crerr.Wrapf(err, "map match %s", matchID)
	}
	return item, true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	model, err := matchToInsertModel(item)
	if err != nil {
		return err
	}
	query, args, err := qb.InsertModel("matches", model, "")
	if err != nil {
		return crerr.Wrap(err, "build insert match query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrap(err, "insert match")
	}
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	model, err := matchToInsertModel(item)
	if err != nil {
		return err
	}
	builder, err := qb.UpdateModel("matches", model, "public_id", "created_at")
	if err != nil {
		return crerr.Wrap(err, "build update match model")
	}
	query, args, err := builder.Where(qb.Eq("public_id", item.ID)).ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build update match query")
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return crerr.Wrapf(err, "update match %s", item.ID)
	}
	return affectedOne(result, match.ErrNotFound)
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	query, args, err := qb.DeleteFrom("matches").Where(qb.Eq("public_id", matchID)).ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build delete match query")
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return crerr.Wrapf(err, "delete match %s", matchID)
	}
	return affectedOne(result, match.ErrNotFound)
}

func (r *MatchRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "matches")
}

// selectMatchesQuery orders on public_id last so ties match the memory store.
func selectMatchesQuery(conditions ...qb.Condition) (string, []any, error) {
	return qb.Select("*").From("matches").
		Where(conditions...).
		OrderBy("scheduled_date", "match_number", "public_id").
		ToSQL()
}
