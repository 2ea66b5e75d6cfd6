package tournament

import (
	"strings"
	"time"
)

const (
	StatusUpcoming  = "upcoming"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	TypeLeague         = "league"
	TypeKnockout       = "knockout"
	TypeDoubleKnockout = "double-knockout"
	TypeRoundRobin     = "round-robin"
)

const (
	FormatT20   = "t20"
	FormatODI   = "odi"
	FormatTest  = "test"
	FormatOther = "other"
)

const dateLayout = "2006-01-02"

// ContactPerson is the organiser players reach for registration questions.
type ContactPerson struct {
	Name  string
	Phone string
	Email string
}

// Tournament is one competition players can register for.
type Tournament struct {
	ID                   string
	Title                string
	Description          string
	Venue                string
	StartDate            time.Time
	EndDate              time.Time
	RegistrationDeadline time.Time
	MaxTeams             int
	RegisteredTeams      int
	RegistrationFee      float64
	PrizePool            float64
	Status               string
	TournamentType       string
	Format               string
	Rules                string
	ContactPerson        ContactPerson
	Winner               string
	RunnerUp             string
	ManOfTheSeries       string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (t Tournament) Normalize() Tournament {
	t.Title = strings.TrimSpace(t.Title)
	t.Description = strings.TrimSpace(t.Description)
	t.Venue = strings.TrimSpace(t.Venue)
	t.Rules = strings.TrimSpace(t.Rules)
	t.ContactPerson.Name = strings.TrimSpace(t.ContactPerson.Name)
	t.ContactPerson.Phone = strings.TrimSpace(t.ContactPerson.Phone)
	t.ContactPerson.Email = strings.ToLower(strings.TrimSpace(t.ContactPerson.Email))
	t.Winner = strings.TrimSpace(t.Winner)
	t.RunnerUp = strings.TrimSpace(t.RunnerUp)
	t.ManOfTheSeries = strings.TrimSpace(t.ManOfTheSeries)
	t.Status = NormalizeStatus(t.Status)
	t.TournamentType = NormalizeType(t.TournamentType)
	t.Format = strings.ToLower(strings.TrimSpace(t.Format))
	return t
}

// IsRegistrationOpen is true while the deadline has not passed and slots remain.
func (t Tournament) IsRegistrationOpen(now time.Time) bool {
	return now.Before(t.RegistrationDeadline) && t.RegisteredTeams < t.MaxTeams
}

func (t Tournament) DateRange() string {
	return t.StartDate.Format(dateLayout) + " - " + t.EndDate.Format(dateLayout)
}

// DeadlineAfterStart reports the tolerated inconsistency of a deadline later than the start date.
func (t Tournament) DeadlineAfterStart() bool {
	return !t.RegistrationDeadline.IsZero() && !t.StartDate.IsZero() && t.RegistrationDeadline.After(t.StartDate)
}

// NormalizeStatus lower-cases value; empty means upcoming.
func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusUpcoming
	}
	return status
}

func IsValidStatus(value string) bool {
	switch value {
	case StatusUpcoming, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func NormalizeType(value string) string {
	kind := strings.ToLower(strings.TrimSpace(value))
	return strings.NewReplacer("_", "-", " ", "-").Replace(kind)
}
