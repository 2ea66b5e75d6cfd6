package postgres

import (
	"time"

	"github.com/riskibarqy/cricket-tournament/internal/domain/tournament"
)

type tournamentTableModel struct {
	ID                   int64     `db:"id"`
	PublicID             string    `db:"public_id"`
	Title                string    `db:"title"`
	Description          string    `db:"description"`
	Venue                string    `db:"venue"`
	StartDate            time.Time `db:"start_date"`
	EndDate              time.Time `db:"end_date"`
	RegistrationDeadline time.Time `db:"registration_deadline"`
	MaxTeams             int       `db:"max_teams"`
	RegisteredTeams      int       `db:"registered_teams"`
	RegistrationFee      float64   `db:"registration_fee"`
	PrizePool            float64   `db:"prize_pool"`
	Status               string    `db:"status"`
	TournamentType       string    `db:"tournament_type"`
	Format               string    `db:"format"`
	Rules                string    `db:"rules"`
	ContactPerson        []byte    `db:"contact_person"`
	Winner               string    `db:"winner"`
	RunnerUp             string    `db:"runner_up"`
	ManOfTheSeries       string    `db:"man_of_the_series"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

type tournamentInsertModel struct {
	PublicID             string    `db:"public_id"`
	Title                string    `db:"title"`
	Description          string    `db:"description"`
	Venue                string    `db:"venue"`
	StartDate            time.Time `db:"start_date"`
	EndDate              time.Time `db:"end_date"`
	RegistrationDeadline time.Time `db:"registration_deadline"`
	MaxTeams             int       `db:"max_teams"`
	RegisteredTeams      int       `db:"registered_teams"`
	RegistrationFee      float64   `db:"registration_fee"`
	PrizePool            float64   `db:"prize_pool"`
	Status               string    `db:"status"`
	TournamentType       string    `db:"tournament_type"`
	Format               string    `db:"format"`
	Rules                string    `db:"rules"`
	ContactPerson        string    `db:"contact_person"`
	Winner               string    `db:"winner"`
	RunnerUp             string    `db:"runner_up"`
	ManOfTheSeries       string    `db:"man_of_the_series"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

type contactPersonDocument struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

func tournamentFromRow(row tournamentTableModel) (tournament.Tournament, error) {
	var contact contactPersonDocument
	if err := decodeDocument(row.ContactPerson, &contact); err != nil {
		return tournament.Tournament{}, err
	}

	return tournament.Tournament{
		ID:                   row.PublicID,
		Title:                row.Title,
		Description:          row.Description,
		Venue:                row.Venue,
		StartDate:            row.StartDate,
		EndDate:              row.EndDate,
		RegistrationDeadline: row.RegistrationDeadline,
		MaxTeams:             row.MaxTeams,
		RegisteredTeams:      row.RegisteredTeams,
		RegistrationFee:      row.RegistrationFee,
		PrizePool:            row.PrizePool,
		Status:               row.Status,
		TournamentType:       row.TournamentType,
		Format:               row.Format,
		Rules:                row.Rules,
		ContactPerson:        tournament.ContactPerson(contact),
		Winner:               row.Winner,
		RunnerUp:             row.RunnerUp,
		ManOfTheSeries:       row.ManOfTheSeries,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}, nil
}

func tournamentToInsertModel(item tournament.Tournament) (tournamentInsertModel, error) {
	contact, err := encodeDocument(contactPersonDocument(item.ContactPerson))
	if err != nil {
		return tournamentInsertModel{}, err
	}

	return tournamentInsertModel{
		PublicID:             item.ID,
		Title:                item.Title,
		Description:          item.Description,
		Venue:                item.Venue,
		StartDate:            item.StartDate,
		EndDate:              item.EndDate,
		RegistrationDeadline: item.RegistrationDeadline,
		MaxTeams:             item.MaxTeams,
		RegisteredTeams:      item.RegisteredTeams,
		RegistrationFee:      item.RegistrationFee,
		PrizePool:            item.PrizePool,
		Status:               item.Status,
		TournamentType:       item.TournamentType,
		Format:               item.Format,
		Rules:                item.Rules,
		ContactPerson:        contact,
		Winner:               item.Winner,
		RunnerUp:             item.RunnerUp,
		ManOfTheSeries:       item.ManOfTheSeries,
		CreatedAt:            item.CreatedAt,
		UpdatedAt:            item.UpdatedAt,
	}, nil
}
