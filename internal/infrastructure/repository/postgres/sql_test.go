package postgres

import (
	"errors"
	"strings"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"

	"github.com/riskibarqy/cricket-tournament/internal/domain/match"
	"github.com/riskibarqy/cricket-tournament/internal/domain/tournament"
	"github.com/riskibarqy/cricket-tournament/internal/domain/user"
)

func TestUniqueViolationField(t *testing.T) {
	t.Run("maps known constraint to api field", func(t *testing.T) {
		err := crerr.Wrap(&pq.Error{Code: "23505", Constraint: "users_whatsapp_number_key"}, "insert user")
		field, ok := uniqueViolationField(err)
		if !ok || field != "whatsappNumber" {
			t.Fatalf("expected whatsappNumber, got %q ok=%v", field, ok)
		}
	})

	t.Run("falls back to constraint name", func(t *testing.T) {
		field, ok := uniqueViolationField(&pq.Error{Code: "23505", Constraint: "matches_public_id_key"})
		if !ok || field != "matches_public_id_key" {
			t.Fatalf("unexpected field %q ok=%v", field, ok)
		}
	})

	t.Run("ignores other errors", func(t *testing.T) {
		if _, ok := uniqueViolationField(&pq.Error{Code: "23514"}); ok {
			t.Fatalf("expected check violation to be ignored")
		}
		if _, ok := uniqueViolationField(errors.New("boom")); ok {
			t.Fatalf("expected plain error to be ignored")
		}
	})
}

func TestUserModelRoundTrip(t *testing.T) {
	approved := time.Date(2025, 9, 12, 6, 0, 0, 0, time.UTC)
	item := user.User{ID: "usr-1", Email: "a@b.com", Type: user.TypeBowler, Status: user.StatusApproved, ApprovedAt: &approved}

	model := userToInsertModel(item)
	if !model.ApprovedAt.Valid || model.RejectedAt.Valid {
		t.Fatalf("unexpected null times: %+v", model)
	}

	got := userFromRow(userTableModel{PublicID: model.PublicID, PlayerType: model.PlayerType, ApprovedAt: model.ApprovedAt})
	if got.ID != "usr-1" || got.Type != user.TypeBowler || got.ApprovedAt == nil || !got.ApprovedAt.Equal(approved) || got.RejectedAt != nil {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestTournamentContactPersonDocument(t *testing.T) {
	model, err := tournamentToInsertModel(tournament.Tournament{
		ID:            "trn-1",
		ContactPerson: tournament.ContactPerson{Name: "Suresh", Email: "suresh@example.com"},
	})
	if err != nil {
		t.Fatalf("encode tournament: %v", err)
	}
	if model.ContactPerson != `{"name":"Suresh","email":"suresh@example.com"}` {
		t.Fatalf("unexpected contact document: %s", model.ContactPerson)
	}

	got, err := tournamentFromRow(tournamentTableModel{PublicID: "trn-1", ContactPerson: []byte(model.ContactPerson)})
	if err != nil {
		t.Fatalf("decode tournament: %v", err)
	}
	if got.ContactPerson.Name != "Suresh" || got.ContactPerson.Phone != "" {
		t.Fatalf("unexpected contact: %+v", got.ContactPerson)
	}
}

func TestMatchDocuments(t *testing.T) {
	model, err := matchToInsertModel(match.Match{
		ID:         "mch-1",
		TeamAScore: match.Score{Runs: 120, Wickets: 4, Overs: 20},
		Umpires:    match.Umpires{Umpire1: "A. Rao"},
	})
	if err != nil {
		t.Fatalf("encode match: %v", err)
	}
	if model.TeamAScore != `{"runs":120,"wickets":4,"overs":20}` {
		t.Fatalf("unexpected score document: %s", model.TeamAScore)
	}
	if model.Highlights == nil {
		t.Fatalf("expected empty highlights array, got nil")
	}

	got, err := matchFromRow(matchTableModel{
		PublicID:   "mch-1",
		TeamAScore: []byte(model.TeamAScore),
		TeamBScore: []byte(model.TeamBScore),
		Umpires:    []byte(model.Umpires),
		Highlights: pq.StringArray{"Six over long on"},
	})
	if err != nil {
		t.Fatalf("decode match: %v", err)
	}
	if got.TeamAScore.Format() != "120/4 (20 ov)" || got.Umpires.Umpire1 != "A. Rao" || len(got.Highlights) != 1 {
		t.Fatalf("unexpected match: %+v", got)
	}

	if _, err := matchFromRow(matchTableModel{TeamAScore: []byte("{")}); err == nil {
		t.Fatalf("expected decode error for malformed document")
	}
}

func TestListQueriesBreakTiesOnPublicID(t *testing.T) {
	cases := []struct {
		name  string
		build func() (string, []any, error)
		order string
	}{
		{name: "users", build: func() (string, []any, error) { return selectUsersQuery() }, order: "ORDER BY registration_date DESC, public_id DESC"},
		{name: "tournaments", build: func() (string, []any, error) { return selectTournamentsQuery() }, order: "ORDER BY created_at DESC, public_id DESC"},
		{name: "matches", build: func() (string, []any, error) { return selectMatchesQuery() }, order: "ORDER BY scheduled_date, match_number, public_id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			query, _, err := tc.build()
			if err != nil {
				t.Fatalf("build query: %v", err)
			}
			if !strings.HasSuffix(query, tc.order) {
				t.Fatalf("expected %q to end with %q", query, tc.order)
			}
		})
	}
}
