package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/riskibarqy/cricket-tournament/internal/domain/match"
)

type matchTableModel struct {
	ID            int64          `db:"id"`
	PublicID      string         `db:"public_id"`
	TournamentID  string         `db:"tournament_public_id"`
	MatchNumber   int            `db:"match_number"`
	MatchType     string         `db:"match_type"`
	TeamA         string         `db:"team_a"`
	TeamB         string         `db:"team_b"`
	ScheduledDate time.Time      `db:"scheduled_date"`
	Venue         string         `db:"venue"`
	Status        string         `db:"status"`
	TeamAScore    []byte         `db:"team_a_score"`
	TeamBScore    []byte         `db:"team_b_score"`
	Winner        string         `db:"winner"`
	Margin        string         `db:"margin"`
	ManOfTheMatch string         `db:"man_of_the_match"`
	TossWinner    string         `db:"toss_winner"`
	TossDecision  string         `db:"toss_decision"`
	Umpires       []byte         `db:"umpires"`
	Referee       string         `db:"referee"`
	MatchReport   string         `db:"match_report"`
	Highlights    pq.StringArray `db:"highlights"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type matchInsertModel struct {
	PublicID      string         `db:"public_id"`
	TournamentID  string         `db:"tournament_public_id"`
	MatchNumber   int            `db:"match_number"`
	MatchType     string         `db:"match_type"`
	TeamA         string         `db:"team_a"`
	TeamB         string         `db:"team_b"`
	ScheduledDate time.Time      `db:"scheduled_date"`
	Venue         string         `db:"venue"`
	Status        string         `db:"status"`
	TeamAScore    string         `db:"team_a_score"`
	TeamBScore    string         `db:"team_b_score"`
	Winner        string         `db:"winner"`
	Margin        string         `db:"margin"`
	ManOfTheMatch string         `db:"man_of_the_match"`
	TossWinner    string         `db:"toss_winner"`
	TossDecision  string         `db:"toss_decision"`
	Umpires       string         `db:"umpires"`
	Referee       string         `db:"referee"`
	MatchReport   string         `db:"match_report"`
	Highlights    pq.StringArray `db:"highlights"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type scoreDocument struct {
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
	Overs   float64 `json:"overs"`
}

type umpiresDocument struct {
	Umpire1     string `json:"umpire1,omitempty"`
	Umpire2     string `json:"umpire2,omitempty"`
	ThirdUmpire string `json:"thirdUmpire,omitempty"`
}

func matchFromRow(row matchTableModel) (match.Match, error) {
	var teamA, teamB scoreDocument
	var umpires umpiresDocument
	if err := decodeDocument(row.TeamAScore, &teamA); err != nil {
		return match.Match{}, err
	}
	if err := decodeDocument(row.TeamBScore, &teamB); err != nil {
		return match.Match{}, err
	}
	if err := decodeDocument(row.Umpires, &umpires); err != nil {
		return match.Match{}, err
	}

	return match.Match{
		ID:            row.PublicID,
		TournamentID:  row.TournamentID,
		MatchNumber:   row.MatchNumber,
		MatchType:     row.MatchType,
		TeamA:         row.TeamA,
		TeamB:         row.TeamB,
		ScheduledDate: row.ScheduledDate,
		Venue:         row.Venue,
		Status:        row.Status,
		TeamAScore:    match.Score(teamA),
		TeamBScore:    match.Score(teamB),
		Winner:        row.Winner,
		Margin:        row.Margin,
		ManOfTheMatch: row.ManOfTheMatch,
		TossWinner:    row.TossWinner,
		TossDecision:  row.TossDecision,
		Umpires:       match.Umpires(umpires),
		Referee:       row.Referee,
		MatchReport:   row.MatchReport,
		Highlights:    append([]string(nil), row.Highlights...),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

func matchToInsertModel(item match.Match) (matchInsertModel, error) {
	teamA, err := encodeDocument(scoreDocument(item.TeamAScore))
	if err != nil {
		return matchInsertModel{}, err
	}
	teamB, err := encodeDocument(scoreDocument(item.TeamBScore))
	if err != nil {
		return matchInsertModel{}, err
	}
	umpires, err := encodeDocument(umpiresDocument(item.Umpires))
	if err != nil {
		return matchInsertModel{}, err
	}

	highlights := item.Highlights
	if highlights == nil {
		highlights = []string{}
	}

	return matchInsertModel{
		PublicID:      item.ID,
		TournamentID:  item.TournamentID,
		MatchNumber:   item.MatchNumber,
		MatchType:     item.MatchType,
		TeamA:         item.TeamA,
		TeamB:         item.TeamB,
		ScheduledDate: item.ScheduledDate,
		Venue:         item.Venue,
		Status:        item.Status,
		TeamAScore:    teamA,
		TeamBScore:    teamB,
		Winner:        item.Winner,
		Margin:        item.Margin,
		ManOfTheMatch: item.ManOfTheMatch,
		TossWinner:    item.TossWinner,
		TossDecision:  item.TossDecision,
		Umpires:       umpires,
		Referee:       item.Referee,
		MatchReport:   item.MatchReport,
		Highlights:    pq.StringArray(highlights),
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}, nil
}
