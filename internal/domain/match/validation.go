package match

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/cricket-tournament/internal/platform/validation"
)

const completedOnlyMessage = "can only be set on a completed match"

var messages = map[string]string{
	"tournamentId":          "Tournament is required",
	"matchNumber":           "Match number must be at least 1",
	"matchType":             "Match type must be one of league, quarter_final, semi_final, final",
	"teamA":                 "Team A is required",
	"teamB|required":        "Team B is required",
	"teamB|nefield":         "Team B must be different from Team A",
	"scheduledDate":         "Scheduled date is required",
	"venue":                 "Venue is required",
	"status":                "Status must be one of upcoming, in_progress, completed, cancelled",
	"tossDecision":          "Toss decision must be bat or bowl",
	"teamAScore.wickets":    "Team A wickets must be between 0 and 10",
	"teamBScore.wickets":    "Team B wickets must be between 0 and 10",
	"teamAScore.runs":       "Team A runs cannot be negative",
	"teamBScore.runs":       "Team B runs cannot be negative",
	"teamAScore.overs":      "Team A overs cannot be negative",
	"teamBScore.overs":      "Team B overs cannot be negative",
	"winner|completed_only": "Winner " + completedOnlyMessage,
	"margin|completed_only": "Margin " + completedOnlyMessage,
	"manOfTheMatch":         "Man of the match " + completedOnlyMessage,
}

type score struct {
	Runs    int     `json:"runs" validate:"gte=0"`
	Wickets int     `json:"wickets" validate:"gte=0,lte=10"`
	Overs   float64 `json:"overs" validate:"gte=0"`
}

type schema struct {
	TournamentID  string    `json:"tournamentId" validate:"required"`
	MatchNumber   int       `json:"matchNumber" validate:"gte=1"`
	MatchType     string    `json:"matchType" validate:"oneof=league quarter_final semi_final final"`
	TeamA         string    `json:"teamA" validate:"required"`
	TeamB         string    `json:"teamB" validate:"required,nefield=TeamA"`
	ScheduledDate time.Time `json:"scheduledDate" validate:"required"`
	Venue         string    `json:"venue" validate:"required"`
	Status        string    `json:"status" validate:"oneof=upcoming in_progress completed cancelled"`
	TossDecision  string    `json:"tossDecision" validate:"omitempty,oneof=bat bowl"`
	TeamAScore    score     `json:"teamAScore"`
	TeamBScore    score     `json:"teamBScore"`
	Winner        string    `json:"winner"`
	Margin        string    `json:"margin"`
	ManOfTheMatch string    `json:"manOfTheMatch"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validation.New()
	v.RegisterStructValidation(completionRules, schema{})
	return v
}

// completionRules rejects result details on a match that has not been completed.
func completionRules(sl validator.StructLevel) {
	s := sl.Current().Interface().(schema)
	if s.Status == StatusCompleted {
		return
	}
	if s.Winner != "" {
		sl.ReportError(s.Winner, "winner", "Winner", "completed_only", "")
	}
	if s.Margin != "" {
		sl.ReportError(s.Margin, "margin", "Margin", "completed_only", "")
	}
	if s.ManOfTheMatch != "" {
		sl.ReportError(s.ManOfTheMatch, "manOfTheMatch", "ManOfTheMatch", "completed_only", "")
	}
}

// Validate checks the schema rules and returns validation.Errors listing all violations.
func (m Match) Validate() error {
	return validation.Check(validate, schema{
		TournamentID:  m.TournamentID,
		MatchNumber:   m.MatchNumber,
		MatchType:     m.MatchType,
		TeamA:         m.TeamA,
		TeamB:         m.TeamB,
		ScheduledDate: m.ScheduledDate,
		Venue:         m.Venue,
		Status:        m.Status,
		TossDecision:  m.TossDecision,
		TeamAScore:    score(m.TeamAScore),
		TeamBScore:    score(m.TeamBScore),
		Winner:        m.Winner,
		Margin:        m.Margin,
		ManOfTheMatch: m.ManOfTheMatch,
	}, messages).OrNil()
}
