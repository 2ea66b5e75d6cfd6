package cricketapi

import "time"

type Health struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Time    string `json:"time"`
}

type Registration struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	WhatsAppNumber string `json:"whatsappNumber"`
	State          string `json:"state"`
	District       string `json:"district"`
	Pincode        string `json:"pincode"`
	Type           string `json:"type"`
	BatsmanHanded  string `json:"batsmanHanded,omitempty"`
	BowlerHanded   string `json:"bowlerHanded,omitempty"`
	BowlerType     string `json:"bowlerType,omitempty"`
}

type User struct {
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
}

type StatusChange struct {
	Status          string `json:"status"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

type ContactPerson struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type Tournament struct {
	ID                   string        `json:"id,omitempty"`
	Title                string        `json:"title"`
	Description          string        `json:"description"`
	Venue                string        `json:"venue"`
	StartDate            time.Time     `json:"startDate"`
	EndDate              time.Time     `json:"endDate"`
	RegistrationDeadline time.Time     `json:"registrationDeadline"`
	MaxTeams             int           `json:"maxTeams"`
	RegisteredTeams      int           `json:"registeredTeams"`
	RegistrationFee      float64       `json:"registrationFee"`
	PrizePool            float64       `json:"prizePool"`
	Status               string        `json:"status,omitempty"`
	TournamentType       string        `json:"tournamentType,omitempty"`
	Format               string        `json:"format,omitempty"`
	Rules                string        `json:"rules,omitempty"`
	ContactPerson        ContactPerson `json:"contactPerson"`
	Winner               string        `json:"winner,omitempty"`
	RunnerUp             string        `json:"runnerUp,omitempty"`
	ManOfTheSeries       string        `json:"manOfTheSeries,omitempty"`
	IsRegistrationOpen   bool          `json:"isRegistrationOpen,omitempty"`
	DateRange            string        `json:"dateRange,omitempty"`
}

type Score struct {
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
	Overs   float64 `json:"overs"`
}

type Match struct {
	ID                  string    `json:"id,omitempty"`
	TournamentID        string    `json:"tournamentId"`
	MatchNumber         int       `json:"matchNumber"`
	MatchType           string    `json:"matchType,omitempty"`
	TeamA               string    `json:"teamA"`
	TeamB               string    `json:"teamB"`
	ScheduledDate       time.Time `json:"scheduledDate"`
	Venue               string    `json:"venue"`
	Status              string    `json:"status,omitempty"`
	TeamAScore          *Score    `json:"teamAScore,omitempty"`
	TeamBScore          *Score    `json:"teamBScore,omitempty"`
	TeamAScoreFormatted string    `json:"teamAScoreFormatted,omitempty"`
	TeamBScoreFormatted string    `json:"teamBScoreFormatted,omitempty"`
	Result              string    `json:"result,omitempty"`
	Winner              string    `json:"winner,omitempty"`
	Margin              string    `json:"margin,omitempty"`
}

type DashboardStats struct {
	TotalUsers        int `json:"totalUsers"`
	PendingUsers      int `json:"pendingUsers"`
	ApprovedUsers     int `json:"approvedUsers"`
	TotalTournaments  int `json:"totalTournaments"`
	ActiveTournaments int `json:"activeTournaments"`
	TotalMatches      int `json:"totalMatches"`
}
