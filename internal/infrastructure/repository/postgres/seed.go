package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-tournament/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/cricket-tournament/internal/platform/querybuilder"
)

// BootstrapSeed loads the demo tournaments, matches and registrations into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	total, err := count(ctx, db, "tournaments")
	if err != nil {
		return crerr.Wrap(err, "count tournaments for bootstrap seed")
	}
	if total > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin seed tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	insert := func(table, id string, model any) error {
		query, args, err := qb.InsertModel(table, model, "ON CONFLICT (public_id) DO NOTHING")
		if err != nil {
			return crerr.Wrapf(err, "build seed %s %s query", table, id)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return crerr.Wrapf(err, "seed %s %s", table, id)
		}
		return nil
	}

	for _, item := range memory.SeedTournaments() {
		model, err := tournamentToInsertModel(item)
		if err != nil {
			return err
		}
		if err := insert("tournaments", item.ID, model); err != nil {
			return err
		}
	}
	for _, item := range memory.SeedMatches() {
		model, err := matchToInsertModel(item)
		if err != nil {
			return err
		}
		if err := insert("matches", item.ID, model); err != nil {
			return err
		}
	}
	for _, item := range memory.SeedUsers() {
		if err := insert("users", item.ID, userToInsertModel(item)); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit seed tx")
	}
	return nil
}
