package httpapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-tournament/internal/domain/match"
	"github.com/riskibarqy/cricket-tournament/internal/domain/tournament"
	"github.com/riskibarqy/cricket-tournament/internal/domain/user"
	"github.com/riskibarqy/cricket-tournament/internal/usecase"
)

var acceptedDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04",
	"2006-01-02",
}

// flexibleTime accepts RFC 3339 timestamps, HTML datetime-local values and plain dates.
type flexibleTime struct {
	time.Time
}

func (t *flexibleTime) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range acceptedDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", raw)
}

func (t *flexibleTime) timePtr() *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

// readOnlyFields are echoed back by the admin forms on update and ignored.
type readOnlyFields struct {
	ID        any `json:"id,omitempty"`
	LegacyID  any `json:"_id,omitempty"`
	CreatedAt any `json:"createdAt,omitempty"`
	UpdatedAt any `json:"updatedAt,omitempty"`
	Version   any `json:"__v,omitempty"`
}

type registerUserRequest struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	WhatsAppNumber string `json:"whatsappNumber"`
	State          string `json:"state"`
	District       string `json:"district"`
	Pincode        string `json:"pincode"`
	Type           string `json:"type"`
	BatsmanHanded  string `json:"batsmanHanded"`
	BowlerHanded   string `json:"bowlerHanded"`
	BowlerType     string `json:"bowlerType"`
}

func (r registerUserRequest) toInput() usecase.RegisterUserInput {
	return usecase.RegisterUserInput{
		FullName:       r.FullName,
		Email:          r.Email,
		WhatsAppNumber: r.WhatsAppNumber,
		State:          r.State,
		District:       r.District,
		Pincode:        r.Pincode,
		Type:           r.Type,
		BatsmanHanded:  r.BatsmanHanded,
		BowlerHanded:   r.BowlerHanded,
		BowlerType:     r.BowlerType,
	}
}

type updateUserRequest struct {
	readOnlyFields
	FullName         *string `json:"fullName"`
	Email            *string `json:"email"`
	WhatsAppNumber   *string `json:"whatsappNumber"`
	State            *string `json:"state"`
	District         *string `json:"district"`
	Pincode          *string `json:"pincode"`
	Type             *string `json:"type"`
	BatsmanHanded    *string `json:"batsmanHanded"`
	BowlerHanded     *string `json:"bowlerHanded"`
	BowlerType       *string `json:"bowlerType"`
	Status           *string `json:"status"`
	RejectionReason  *string `json:"rejectionReason"`
	RegistrationDate any     `json:"registrationDate,omitempty"`
	ApprovedDate     any     `json:"approvedDate,omitempty"`
	RejectedDate     any     `json:"rejectedDate,omitempty"`
}

func (r updateUserRequest) toInput(userID string) usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		ID:              userID,
		FullName:        r.FullName,
		Email:           r.Email,
		WhatsAppNumber:  r.WhatsAppNumber,
		State:           r.State,
		District:        r.District,
		Pincode:         r.Pincode,
		Type:            r.Type,
		BatsmanHanded:   r.BatsmanHanded,
		BowlerHanded:    r.BowlerHanded,
		BowlerType:      r.BowlerType,
		Status:          r.Status,
		RejectionReason: r.RejectionReason,
	}
}

type updateStatusRequest struct {
	Status          string `json:"status" validate:"required"`
	RejectionReason string `json:"rejectionReason"`
}

func (r updateStatusRequest) toUserInput(userID string) usecase.UpdateUserStatusInput {
	return usecase.UpdateUserStatusInput{
		ID:              userID,
		Status:          r.Status,
		RejectionReason: r.RejectionReason,
	}
}

var statusRequestMessages = map[string]string{
	"status": "Status is required",
}

type userDTO struct {
	ID               string     `json:"id"`
	FullName         string     `json:"fullName"`
	Email            string     `json:"email"`
	WhatsAppNumber   string     `json:"whatsappNumber"`
	State            string     `json:"state"`
	District         string     `json:"district"`
	Pincode          string     `json:"pincode"`
	Type             string     `json:"type"`
	BatsmanHanded    string     `json:"batsmanHanded"`
	BowlerHanded     string     `json:"bowlerHanded"`
	BowlerType       string     `json:"bowlerType"`
	Status           string     `json:"status"`
	RejectionReason  string     `json:"rejectionReason,omitempty"`
	RegistrationDate time.Time  `json:"registrationDate"`
	ApprovedDate     *time.Time `json:"approvedDate,omitempty"`
	RejectedDate     *time.Time `json:"rejectedDate,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func userToDTO(v user.User) userDTO {
	return userDTO{
		ID:               v.ID,
		FullName:         v.FullName,
		Email:            v.Email,
		WhatsAppNumber:   v.WhatsAppNumber,
		State:            v.State,
		District:         v.District,
		Pincode:          v.Pincode,
		Type:             v.Type,
		BatsmanHanded:    v.BatsmanHanded,
		BowlerHanded:     v.BowlerHanded,
		BowlerType:       v.BowlerType,
		Status:           v.Status,
		RejectionReason:  v.RejectionReason,
		RegistrationDate: v.RegistrationDate,
		ApprovedDate:     v.ApprovedAt,
		RejectedDate:     v.RejectedAt,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

type contactPersonDTO struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (c *contactPersonDTO) toDomain() *tournament.ContactPerson {
	if c == nil {
		return nil
	}
	return &tournament.ContactPerson{Name: c.Name, Phone: c.Phone, Email: c.Email}
}

type tournamentRequest struct {
	readOnlyFields
	Title                *string           `json:"title"`
	Description          *string           `json:"description"`
	Venue                *string           `json:"venue"`
	StartDate            *flexibleTime     `json:"startDate"`
	EndDate              *flexibleTime     `json:"endDate"`
	RegistrationDeadline *flexibleTime     `json:"registrationDeadline"`
	MaxTeams             *int              `json:"maxTeams"`
	RegisteredTeams      *int              `json:"registeredTeams"`
	RegistrationFee      *float64          `json:"registrationFee"`
	PrizePool            *float64          `json:"prizePool"`
	Status               *string           `json:"status"`
	TournamentType       *string           `json:"tournamentType"`
	Format               *string           `json:"format"`
	Rules                *string           `json:"rules"`
	ContactPerson        *contactPersonDTO `json:"contactPerson"`
	Winner               *string           `json:"winner"`
	RunnerUp             *string           `json:"runnerUp"`
	ManOfTheSeries       *string           `json:"manOfTheSeries"`
	IsRegistrationOpen   any               `json:"isRegistrationOpen,omitempty"`
	DateRange            any               `json:"dateRange,omitempty"`
}

func (r tournamentRequest) toUpdateInput(tournamentID string) usecase.UpdateTournamentInput {
	return usecase.UpdateTournamentInput{
		ID:                   tournamentID,
		Title:                r.Title,
		Description:          r.Description,
		Venue:                r.Venue,
		StartDate:            r.StartDate.timePtr(),
		EndDate:              r.EndDate.timePtr(),
		RegistrationDeadline: r.RegistrationDeadline.timePtr(),
		MaxTeams:             r.MaxTeams,
		RegisteredTeams:      r.RegisteredTeams,
		RegistrationFee:      r.RegistrationFee,
		PrizePool:            r.PrizePool,
		Status:               r.Status,
		TournamentType:       r.TournamentType,
		Format:               r.Format,
		Rules:                r.Rules,
		ContactPerson:        r.ContactPerson.toDomain(),
		Winner:               r.Winner,
		RunnerUp:             r.RunnerUp,
		ManOfTheSeries:       r.ManOfTheSeries,
	}
}

// toDomain builds a new tournament; absent fields stay zero and are caught by validation.
func (r tournamentRequest) toDomain() tournament.Tournament {
	var out tournament.Tournament
	in := r.toUpdateInput("")
	assignValue(&out.Title, in.Title)
	assignValue(&out.Description, in.Description)
	assignValue(&out.Venue, in.Venue)
	assignValue(&out.StartDate, in.StartDate)
	assignValue(&out.EndDate, in.EndDate)
	assignValue(&out.RegistrationDeadline, in.RegistrationDeadline)
	assignValue(&out.MaxTeams, in.MaxTeams)
	assignValue(&out.RegisteredTeams, in.RegisteredTeams)
	assignValue(&out.RegistrationFee, in.RegistrationFee)
	assignValue(&out.PrizePool, in.PrizePool)
	assignValue(&out.Status, in.Status)
	assignValue(&out.TournamentType, in.TournamentType)
	assignValue(&out.Format, in.Format)
	assignValue(&out.Rules, in.Rules)
	assignValue(&out.ContactPerson, in.ContactPerson)
	assignValue(&out.Winner, in.Winner)
	assignValue(&out.RunnerUp, in.RunnerUp)
	assignValue(&out.ManOfTheSeries, in.ManOfTheSeries)
	return out
}

type tournamentDTO struct {
	ID                   string           `json:"id"`
	Title                string           `json:"title"`
	Description          string           `json:"description"`
	Venue                string           `json:"venue"`
	StartDate            time.Time        `json:"startDate"`
	EndDate              time.Time        `json:"endDate"`
	RegistrationDeadline time.Time        `json:"registrationDeadline"`
	MaxTeams             int              `json:"maxTeams"`
	RegisteredTeams      int              `json:"registeredTeams"`
	RegistrationFee      float64          `json:"registrationFee"`
	PrizePool            float64          `json:"prizePool"`
	Status               string           `json:"status"`
	TournamentType       string           `json:"tournamentType"`
	Format               string           `json:"format"`
	Rules                string           `json:"rules"`
	ContactPerson        contactPersonDTO `json:"contactPerson"`
	Winner               string           `json:"winner,omitempty"`
	RunnerUp             string           `json:"runnerUp,omitempty"`
	ManOfTheSeries       string           `json:"manOfTheSeries,omitempty"`
	IsRegistrationOpen   bool             `json:"isRegistrationOpen"`
	DateRange            string           `json:"dateRange"`
	CreatedAt            time.Time        `json:"createdAt"`
	UpdatedAt            time.Time        `json:"updatedAt"`
}

func tournamentToDTO(v tournament.Tournament, now time.Time) tournamentDTO {
	return tournamentDTO{
		ID:                   v.ID,
		Title:                v.Title,
		Description:          v.Description,
		Venue:                v.Venue,
		StartDate:            v.StartDate,
		EndDate:              v.EndDate,
		RegistrationDeadline: v.RegistrationDeadline,
		MaxTeams:             v.MaxTeams,
		RegisteredTeams:      v.RegisteredTeams,
		RegistrationFee:      v.RegistrationFee,
		PrizePool:            v.PrizePool,
		Status:               v.Status,
		TournamentType:       v.TournamentType,
		Format:               v.Format,
		Rules:                v.Rules,
		ContactPerson: contactPersonDTO{
			Name:  v.ContactPerson.Name,
			Phone: v.ContactPerson.Phone,
			Email: v.ContactPerson.Email,
		},
		Winner:             v.Winner,
		RunnerUp:           v.RunnerUp,
		ManOfTheSeries:     v.ManOfTheSeries,
		IsRegistrationOpen: v.IsRegistrationOpen(now),
		DateRange:          v.DateRange(),
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

type scoreDTO struct {
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
	Overs   float64 `json:"overs"`
}

func (s *scoreDTO) toDomain() *match.Score {
	if s == nil {
		return nil
	}
	return &match.Score{Runs: s.Runs, Wickets: s.Wickets, Overs: s.Overs}
}

type umpiresDTO struct {
	Umpire1     string `json:"umpire1"`
	Umpire2     string `json:"umpire2"`
	ThirdUmpire string `json:"thirdUmpire"`
}

func (u *umpiresDTO) toDomain() *match.Umpires {
	if u == nil {
		return nil
	}
	return &match.Umpires{Umpire1: u.Umpire1, Umpire2: u.Umpire2, ThirdUmpire: u.ThirdUmpire}
}

type matchRequest struct {
	readOnlyFields
	TournamentID        *string       `json:"tournamentId"`
	MatchNumber         *int          `json:"matchNumber"`
	MatchType           *string       `json:"matchType"`
	TeamA               *string       `json:"teamA"`
	TeamB               *string       `json:"teamB"`
	ScheduledDate       *flexibleTime `json:"scheduledDate"`
	Venue               *string       `json:"venue"`
	Status              *string       `json:"status"`
	TeamAScore          *scoreDTO     `json:"teamAScore"`
	TeamBScore          *scoreDTO     `json:"teamBScore"`
	Winner              *string       `json:"winner"`
	Margin              *string       `json:"margin"`
	ManOfTheMatch       *string       `json:"manOfTheMatch"`
	TossWinner          *string       `json:"tossWinner"`
	TossDecision        *string       `json:"tossDecision"`
	Umpires             *umpiresDTO   `json:"umpires"`
	Referee             *string       `json:"referee"`
	MatchReport         *string       `json:"matchReport"`
	Highlights          *[]string     `json:"highlights"`
	TeamAScoreFormatted any           `json:"teamAScoreFormatted,omitempty"`
	TeamBScoreFormatted any           `json:"teamBScoreFormatted,omitempty"`
	Result              any           `json:"result,omitempty"`
}

func (r matchRequest) toUpdateInput(matchID string) usecase.UpdateMatchInput {
	return usecase.UpdateMatchInput{
		ID:            matchID,
		TournamentID:  r.TournamentID,
		MatchNumber:   r.MatchNumber,
		MatchType:     r.MatchType,
		TeamA:         r.TeamA,
		TeamB:         r.TeamB,
		ScheduledDate: r.ScheduledDate.timePtr(),
		Venue:         r.Venue,
		Status:        r.Status,
		TeamAScore:    r.TeamAScore.toDomain(),
		TeamBScore:    r.TeamBScore.toDomain(),
		Winner:        r.Winner,
		Margin:        r.Margin,
		ManOfTheMatch: r.ManOfTheMatch,
		TossWinner:    r.TossWinner,
		TossDecision:  r.TossDecision,
		Umpires:       r.Umpires.toDomain(),
		Referee:       r.Referee,
		MatchReport:   r.MatchReport,
		Highlights:    r.Highlights,
	}
}

func (r matchRequest) toDomain() match.Match {
	var out match.Match
	in := r.toUpdateInput("")
	assignValue(&out.TournamentID, in.TournamentID)
	assignValue(&out.MatchNumber, in.MatchNumber)
	assignValue(&out.MatchType, in.MatchType)
	assignValue(&out.TeamA, in.TeamA)
	assignValue(&out.TeamB, in.TeamB)
	assignValue(&out.ScheduledDate, in.ScheduledDate)
	assignValue(&out.Venue, in.Venue)
	assignValue(&out.Status, in.Status)
	assignValue(&out.TeamAScore, in.TeamAScore)
	assignValue(&out.TeamBScore, in.TeamBScore)
	assignValue(&out.Winner, in.Winner)
	assignValue(&out.Margin, in.Margin)
	assignValue(&out.ManOfTheMatch, in.ManOfTheMatch)
	assignValue(&out.TossWinner, in.TossWinner)
	assignValue(&out.TossDecision, in.TossDecision)
	assignValue(&out.Umpires, in.Umpires)
	assignValue(&out.Referee, in.Referee)
	assignValue(&out.MatchReport, in.MatchReport)
	assignValue(&out.Highlights, in.Highlights)
	return out
}

type matchDTO struct {
	ID                  string     `json:"id"`
	TournamentID        string     `json:"tournamentId"`
	MatchNumber         int        `json:"matchNumber"`
	MatchType           string     `json:"matchType"`
	TeamA               string     `json:"teamA"`
	TeamB               string     `json:"teamB"`
	ScheduledDate       time.Time  `json:"scheduledDate"`
	Venue               string     `json:"venue"`
	Status              string     `json:"status"`
	TeamAScore          scoreDTO   `json:"teamAScore"`
	TeamBScore          scoreDTO   `json:"teamBScore"`
	TeamAScoreFormatted string     `json:"teamAScoreFormatted"`
	TeamBScoreFormatted string     `json:"teamBScoreFormatted"`
	Result              string     `json:"result"`
	Winner              string     `json:"winner,omitempty"`
	Margin              string     `json:"margin,omitempty"`
	ManOfTheMatch       string     `json:"manOfTheMatch,omitempty"`
	TossWinner          string     `json:"tossWinner,omitempty"`
	TossDecision        string     `json:"tossDecision,omitempty"`
	Umpires             umpiresDTO `json:"umpires"`
	Referee             string     `json:"referee,omitempty"`
	MatchReport         string     `json:"matchReport,omitempty"`
	Highlights          []string   `json:"highlights"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

func matchToDTO(v match.Match) matchDTO {
	highlights := v.Highlights
	if highlights == nil {
		highlights = []string{}
	}
	return matchDTO{
		ID:                  v.ID,
		TournamentID:        v.TournamentID,
		MatchNumber:         v.MatchNumber,
		MatchType:           v.MatchType,
		TeamA:               v.TeamA,
		TeamB:               v.TeamB,
		ScheduledDate:       v.ScheduledDate,
		Venue:               v.Venue,
		Status:              v.Status,
		TeamAScore:          scoreDTO{Runs: v.TeamAScore.Runs, Wickets: v.TeamAScore.Wickets, Overs: v.TeamAScore.Overs},
		TeamBScore:          scoreDTO{Runs: v.TeamBScore.Runs, Wickets: v.TeamBScore.Wickets, Overs: v.TeamBScore.Overs},
		TeamAScoreFormatted: v.TeamAScore.Format(),
		TeamBScoreFormatted: v.TeamBScore.Format(),
		Result:              v.Result(),
		Winner:              v.Winner,
		Margin:              v.Margin,
		ManOfTheMatch:       v.ManOfTheMatch,
		TossWinner:          v.TossWinner,
		TossDecision:        v.TossDecision,
		Umpires:             umpiresDTO{Umpire1: v.Umpires.Umpire1, Umpire2: v.Umpires.Umpire2, ThirdUmpire: v.Umpires.ThirdUmpire},
		Referee:             v.Referee,
		MatchReport:         v.MatchReport,
		Highlights:          highlights,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
}

type dashboardStatsDTO struct {
	TotalUsers        int `json:"totalUsers"`
	PendingUsers      int `json:"pendingUsers"`
	ApprovedUsers     int `json:"approvedUsers"`
	TotalTournaments  int `json:"totalTournaments"`
	ActiveTournaments int `json:"activeTournaments"`
	TotalMatches      int `json:"totalMatches"`
}

func mapSlice[T, D any](items []T, fn func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

func assignValue[T any](dst *T, value *T) {
	if value != nil {
		*dst = *value
	}
}
