package tournament

import (
	"time"

	"github.com/riskibarqy/cricket-tournament/internal/platform/validation"
)

var messages = map[string]string{
	"title":                "Title is required",
	"venue":                "Venue is required",
	"startDate":            "Start date is required",
	"endDate|required":     "End date is required",
	"endDate|gtefield":     "End date must be on or after the start date",
	"registrationDeadline": "Registration deadline is required",
	"maxTeams":             "Max teams must be at least 2",
	"registeredTeams|gte":  "Registered teams cannot be negative",
	"registeredTeams":      "Registered teams cannot exceed max teams",
	"registrationFee":      "Registration fee cannot be negative",
	"prizePool":            "Prize pool cannot be negative",
	"status":               "Status must be one of upcoming, active, completed, cancelled",
	"tournamentType":       "Tournament type must be one of league, knockout, double-knockout, round-robin",
	"format":               "Format must be one of t20, odi, test, other",
	"contactPerson.email":  "Contact email must be a valid email address",
}

type contact struct {
	Email string `json:"email" validate:"omitempty,conventional_email"`
}

type schema struct {
	Title                string    `json:"title" validate:"required"`
	Venue                string    `json:"venue" validate:"required"`
	StartDate            time.Time `json:"startDate" validate:"required"`
	EndDate              time.Time `json:"endDate" validate:"required,gtefield=StartDate"`
	RegistrationDeadline time.Time `json:"registrationDeadline" validate:"required"`
	MaxTeams             int       `json:"maxTeams" validate:"gte=2"`
	RegisteredTeams      int       `json:"registeredTeams" validate:"gte=0,ltefield=MaxTeams"`
	RegistrationFee      float64   `json:"registrationFee" validate:"gte=0"`
	PrizePool            float64   `json:"prizePool" validate:"gte=0"`
	Status               string    `json:"status" validate:"oneof=upcoming active completed cancelled"`
	TournamentType       string    `json:"tournamentType" validate:"oneof=league knockout double-knockout round-robin"`
	Format               string    `json:"format" validate:"oneof=t20 odi test other"`
	ContactPerson        contact   `json:"contactPerson"`
}

var validate = validation.New()

// Validate checks the schema rules and returns validation.Errors listing all violations.
func (t Tournament) Validate() error {
	return validation.Check(validate, schema{
		Title:                t.Title,
		Venue:                t.Venue,
		StartDate:            t.StartDate,
		EndDate:              t.EndDate,
		RegistrationDeadline: t.RegistrationDeadline,
		MaxTeams:             t.MaxTeams,
		RegisteredTeams:      t.RegisteredTeams,
		RegistrationFee:      t.RegistrationFee,
		PrizePool:            t.PrizePool,
		Status:               t.Status,
		TournamentType:       t.TournamentType,
		Format:               t.Format,
		ContactPerson:        contact{Email: t.ContactPerson.Email},
	}, messages).OrNil()
}
