package match

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	StatusUpcoming   = "upcoming"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

const (
	TypeLeague       = "league"
	TypeQuarterFinal = "quarter_final"
	TypeSemiFinal    = "semi_final"
	TypeFinal        = "final"
)

const (
	TossBat  = "bat"
	TossBowl = "bowl"
)

// Score is one innings total as entered by an admin.
type Score struct {
	Runs    int
	Wickets int
	Overs   float64
}

// Format renders the score as "120/4 (20 ov)".
func (s Score) Format() string {
	return fmt.Sprintf("%d/%d (%s ov)", s.Runs, s.Wickets, strconv.FormatFloat(s.Overs, 'f', -1, 64))
}

type Umpires struct {
	Umpire1     string
	Umpire2     string
	ThirdUmpire string
}

// Match is one fixture inside a tournament.
type Match struct {
	ID            string
	TournamentID  string
	MatchNumber   int
	MatchType     string
	TeamA         string
	TeamB         string
	ScheduledDate time.Time
	Venue         string
	Status        string
	TeamAScore    Score
	TeamBScore    Score
	Winner        string
	Margin        string
	ManOfTheMatch string
	TossWinner    string
	TossDecision  string
	Umpires       Umpires
	Referee       string
	MatchReport   string
	Highlights    []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (m Match) Normalize() Match {
	m.TournamentID = strings.TrimSpace(m.TournamentID)
	m.TeamA = strings.TrimSpace(m.TeamA)
	m.TeamB = strings.TrimSpace(m.TeamB)
	m.Venue = strings.TrimSpace(m.Venue)
	m.Winner = strings.TrimSpace(m.Winner)
	m.Margin = strings.TrimSpace(m.Margin)
	m.ManOfTheMatch = strings.TrimSpace(m.ManOfTheMatch)
	m.TossWinner = strings.TrimSpace(m.TossWinner)
	m.TossDecision = strings.ToLower(strings.TrimSpace(m.TossDecision))
	m.Umpires.Umpire1 = strings.TrimSpace(m.Umpires.Umpire1)
	m.Umpires.Umpire2 = strings.TrimSpace(m.Umpires.Umpire2)
	m.Umpires.ThirdUmpire = strings.TrimSpace(m.Umpires.ThirdUmpire)
	m.Referee = strings.TrimSpace(m.Referee)
	m.MatchReport = strings.TrimSpace(m.MatchReport)
	m.Status = NormalizeStatus(m.Status)
	m.MatchType = NormalizeType(m.MatchType)

	highlights := make([]string, 0, len(m.Highlights))
	for _, item := range m.Highlights {
		if item = strings.TrimSpace(item); item != "" {
			highlights = append(highlights, item)
		}
	}
	m.Highlights = highlights
	return m
}

// Result is "<winner> won by <margin>" once the match is completed with a winner.
func (m Match) Result() string {
	if m.Status == StatusCompleted && m.Winner != "" {
		return fmt.Sprintf("%s won by %s", m.Winner, m.Margin)
	}
	return "Match not completed"
}

func (m Match) HasResultDetails() bool {
	return m.Winner != "" || m.Margin != "" || m.ManOfTheMatch != ""
}

// NormalizeStatus lower-cases value and folds "in progress"/"in-progress"; empty means upcoming.
func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusUpcoming
	}
	return strings.NewReplacer(" ", "_", "-", "_").Replace(status)
}

func IsValidStatus(value string) bool {
	switch value {
	case StatusUpcoming, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// NormalizeType folds separators; empty means a league match.
func NormalizeType(value string) string {
	kind := strings.ToLower(strings.TrimSpace(value))
	if kind == "" {
		return TypeLeague
	}
	return strings.NewReplacer(" ", "_", "-", "_").Replace(kind)
}
