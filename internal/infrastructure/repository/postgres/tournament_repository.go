package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-tournament/internal/domain/tournament"
	qb "github.com/riskibarqy/cricket-tournament/internal/platform/querybuilder"
)

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	return r.list(ctx)
}

func (r *TournamentRepository) ListByStatus(ctx context.Context, status string) ([]tournament.Tournament, error) {
	return r.list(ctx, qb.Eq("status", status))
}

func (r *TournamentRepository) list(ctx context.Context, conditions ...qb.Condition) ([]tournament.Tournament, error) {
	query, args, err := selectTournamentsQuery(conditions...)
	if err != nil {
		return nil, crerr.Wrap(err, "build select tournaments query")
	}

	var rows []tournamentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select tournaments")
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		item, err := tournamentFromRow(row)
		if err != nil {
			return nil, crerr.Wrapf(err, "map tournament %s", row.PublicID)
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select("*").From("tournaments").
		Where(qb.Eq("public_id", tournamentID)).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, crerr.Wrap(err, "build get tournament by id query")
	}

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, crerr.Wrapf(err, "get tournament %s", tournamentID)
	}

	item, err := tournamentFromRow(row)
	if err != nil {
		return tournament.Tournament{}, false, crerr.Wrapf(err, "map tournament %s", tournamentID)
	}
	return item, true, nil
}

func (r *TournamentRepository) Create(ctx context.Context, item tournament.Tournament) error {
	model, err := tournamentToInsertModel(item)
	if err != nil {
		return err
	}
	query, args, err := qb.InsertModel("tournaments", model, "")
	if err != nil {
		return crerr.Wrap(err, "build insert tournament query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrap(err, "insert tournament")
	}
	return nil
}

func (r *TournamentRepository) Update(ctx context.Context, item tournament.Tournament) error {
	model, err := tournamentToInsertModel(item)
	if err != nil {
		return err
	}
	builder, err := qb.UpdateModel("tournaments", model, "public_id", "created_at")
	if err != nil {
		return crerr.Wrap(err, "build update tournament model")
	}
	query, args, err := builder.Where(qb.Eq("public_id", item.ID)).ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build update tournament query")
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return crerr.Wrapf(err, "update tournament %s", item.ID)
	}
	return affectedOne(result, tournament.ErrNotFound)
}

// Delete removes only the tournament row; matches keep their tournament reference.
func (r *TournamentRepository) Delete(ctx context.Context, tournamentID string) error {
	query, args, err := qb.DeleteFrom("tournaments").Where(qb.Eq("public_id", tournamentID)).ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build delete tournament query")
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return crerr.Wrapf(err, "delete tournament %s", tournamentID)
	}
	return affectedOne(result, tournament.ErrNotFound)
}

func (r *TournamentRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "tournaments")
}

func (r *TournamentRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	return count(ctx, r.db, "tournaments", qb.Eq("status", status))
}

// selectTournamentsQuery orders on public_id last so ties match the memory store.
func selectTournamentsQuery(conditions ...qb.Condition) (string, []any, error) {
	return qb.Select("*").From("tournaments").
		Where(conditions...).
		OrderBy("created_at DESC", "public_id DESC").
		ToSQL()
}
