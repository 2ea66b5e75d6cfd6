package memory

import (
	"time"

	"github.com/riskibarqy/cricket-tournament/internal/domain/match"
	"github.com/riskibarqy/cricket-tournament/internal/domain/tournament"
	"github.com/riskibarqy/cricket-tournament/internal/domain/user"
)

const (
	TournamentIDMysuruPremier = "trn-mysuru-premier-2025"
	TournamentIDKarnatakaOpen = "trn-karnataka-open-2025"
)

func SeedTournaments() []tournament.Tournament {
	created := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	return []tournament.Tournament{
		{
			ID:                   TournamentIDMysuruPremier,
			Title:                "Mysuru Premier Cup",
			Description:          "Eight team T20 league for district clubs.",
			Venue:                "Gangothri Grounds, Mysuru",
			StartDate:            time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			EndDate:              time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC),
			RegistrationDeadline: time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
			MaxTeams:             8,
			RegisteredTeams:      5,
			RegistrationFee:      2500,
			PrizePool:            50000,
			Status:               tournament.StatusUpcoming,
			TournamentType:       tournament.TypeLeague,
			Format:               tournament.FormatT20,
			ContactPerson:        tournament.ContactPerson{Name: "Suresh Gowda", Phone: "9845012345", Email: "suresh@mysurucricket.in"},
			CreatedAt:            created,
			UpdatedAt:            created,
		},
		{
			ID:                   TournamentIDKarnatakaOpen,
			Title:                "Karnataka Open Knockout",
			Venue:                "Chinnaswamy Practice Nets, Bengaluru",
			StartDate:            time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC),
			EndDate:              time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC),
			RegistrationDeadline: time.Date(2025, 9, 28, 0, 0, 0, 0, time.UTC),
			MaxTeams:             16,
			RegisteredTeams:      16,
			RegistrationFee:      4000,
			PrizePool:            120000,
			Status:               tournament.StatusActive,
			TournamentType:       tournament.TypeKnockout,
			Format:               tournament.FormatODI,
			CreatedAt:            created.Add(time.Hour),
			UpdatedAt:            created.Add(time.Hour),
		},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:            "mch-kao-001",
			TournamentID:  TournamentIDKarnatakaOpen,
			MatchNumber:   1,
			MatchType:     match.TypeQuarterFinal,
			TeamA:         "Bengaluru Blasters",
			TeamB:         "Hubli Tigers",
			ScheduledDate: time.Date(2025, 10, 4, 9, 30, 0, 0, time.UTC),
			Venue:         "Chinnaswamy Practice Nets, Bengaluru",
			Status:        match.StatusCompleted,
			TeamAScore:    match.Score{Runs: 268, Wickets: 7, Overs: 50},
			TeamBScore:    match.Score{Runs: 241, Wickets: 10, Overs: 47.2},
			Winner:        "Bengaluru Blasters",
			Margin:        "27 runs",
			ManOfTheMatch: "K. NAIR",
			TossWinner:    "Hubli Tigers",
			TossDecision:  match.TossBowl,
		},
		{
			ID:            "mch-kao-002",
			TournamentID:  TournamentIDKarnatakaOpen,
			MatchNumber:   2,
			MatchType:     match.TypeQuarterFinal,
			TeamA:         "Mangaluru Mariners",
			TeamB:         "Mysuru Warriors",
			ScheduledDate: time.Date(2025, 10, 5, 9, 30, 0, 0, time.UTC),
			Venue:         "Chinnaswamy Practice Nets, Bengaluru",
			Status:        match.StatusUpcoming,
		},
	}
}

func SeedUsers() []user.User {
	registered := time.Date(2025, 9, 10, 6, 0, 0, 0, time.UTC)
	approved := registered.Add(48 * time.Hour)
	return []user.User{
		{
			ID:               "usr-seed-001",
			FullName:         "RAVI KUMAR",
			Email:            "ravi.kumar@example.com",
			WhatsAppNumber:   "9876543210",
			State:            "Karnataka",
			District:         "Mysuru",
			Pincode:          "570001",
			Type:             user.TypeAllRounder,
			BatsmanHanded:    user.BattingRight,
			BowlerHanded:     user.BowlingRight,
			BowlerType:       user.BowlerMedium,
			Status:           user.StatusApproved,
			RegistrationDate: registered,
			ApprovedAt:       &approved,
			CreatedAt:        registered,
			UpdatedAt:        approved,
		},
		{
			ID:               "usr-seed-002",
			FullName:         "ANIL SHETTY",
			Email:            "anil.shetty@example.com",
			WhatsAppNumber:   "9123456780",
			State:            "Karnataka",
			District:         "Udupi",
			Pincode:          "576101",
			Type:             user.TypeBatsman,
			BatsmanHanded:    user.BattingLeft,
			BowlerHanded:     user.HandNA,
			Status:           user.StatusPending,
			RegistrationDate: registered.Add(24 * time.Hour),
			CreatedAt:        registered.Add(24 * time.Hour),
			UpdatedAt:        registered.Add(24 * time.Hour),
		},
	}
}
