package tournament

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/cricket-tournament/internal/platform/validation"
)

func sample() Tournament {
	start := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	return Tournament{
		Title:                "Mysuru Premier Cup",
		Venue:                "Gangothri Grounds",
		StartDate:            start,
		EndDate:              start.AddDate(0, 0, 14),
		RegistrationDeadline: start.AddDate(0, 0, -7),
		MaxTeams:             8,
		PrizePool:            50000,
		TournamentType:       "Round Robin",
		Format:               "T20",
	}
}

func TestValidate_AcceptsSample(t *testing.T) {
	item := sample().Normalize()
	if item.Status != StatusUpcoming || item.TournamentType != TypeRoundRobin || item.Format != FormatT20 {
		t.Fatalf("unexpected normalized enums: %+v", item)
	}
	if err := item.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_RejectsInconsistentNumbersAndDates(t *testing.T) {
	item := sample()
	item.EndDate = item.StartDate.AddDate(0, 0, -1)
	item.MaxTeams = 1
	item.RegisteredTeams = 3
	item.RegistrationFee = -10
	item.Status = "paused"
	item.ContactPerson.Email = "organiser"

	var verr validation.Errors
	if !errors.As(item.Normalize().Validate(), &verr) {
		t.Fatalf("expected validation.Errors")
	}
	for _, field := range []string{"endDate", "maxTeams", "registeredTeams", "registrationFee", "status", "contactPerson.email"} {
		if !verr.Has(field) {
			t.Fatalf("expected violation for %s, got %v", field, verr)
		}
	}
}

func TestIsRegistrationOpen(t *testing.T) {
	item := sample()
	before := item.RegistrationDeadline.Add(-time.Hour)

	if !item.IsRegistrationOpen(before) {
		t.Fatalf("expected registration open before deadline")
	}
	if item.IsRegistrationOpen(item.RegistrationDeadline.Add(time.Hour)) {
		t.Fatalf("expected registration closed after deadline")
	}
	item.RegisteredTeams = item.MaxTeams
	if item.IsRegistrationOpen(before) {
		t.Fatalf("expected registration closed when full")
	}
}

func TestDateRangeAndDeadline(t *testing.T) {
	item := sample()
	if got := item.DateRange(); got != "2024-12-01 - 2024-12-15" {
		t.Fatalf("unexpected date range: %q", got)
	}
	if item.DeadlineAfterStart() {
		t.Fatalf("deadline before start should not be flagged")
	}
	item.RegistrationDeadline = item.StartDate.AddDate(0, 0, 2)
	if !item.DeadlineAfterStart() {
		t.Fatalf("expected late deadline to be flagged")
	}
}
