package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-tournament/internal/domain/match"
	"github.com/riskibarqy/cricket-tournament/internal/domain/tournament"
	idgen "github.com/riskibarqy/cricket-tournament/internal/platform/id"
	"github.com/riskibarqy/cricket-tournament/internal/platform/logging"
)

// UpdateMatchInput carries the fields supplied on a full update; nil keeps the stored value.
type UpdateMatchInput struct {
	ID            string
	TournamentID  *string
	MatchNumber   *int
	MatchType     *string
	TeamA         *string
	TeamB         *string
	ScheduledDate *time.Time
	Venue         *string
	Status        *string
	TeamAScore    *match.Score
	TeamBScore    *match.Score
	Winner        *string
	Margin        *string
	ManOfTheMatch *string
	TossWinner    *string
	TossDecision  *string
	Umpires       *match.Umpires
	Referee       *string
	MatchReport   *string
	Highlights    *[]string
}

type MatchService struct {
	matchRepo      match.Repository
	tournamentRepo tournament.Repository
	idGen          idgen.Generator
	logger         *logging.Logger
	now            func() time.Time
}

func NewMatchService(
	matchRepo match.Repository,
	tournamentRepo tournament.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		matchRepo:      matchRepo,
		tournamentRepo: tournamentRepo,
		idGen:          idGen,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *MatchService) Create(ctx context.Context, input match.Match) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	item := input.Normalize()
	if err := item.Validate(); err != nil {
		return match.Match{}, invalidInput(err)
	}
	if err := s.ensureTournament(ctx, item.TournamentID); err != nil {
		return match.Match{}, err
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	now := s.now().UTC()
	item.ID = matchID
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := s.matchRepo.Create(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	s.logger.InfoContext(ctx, "match created",
		"match_id", item.ID,
		"tournament_id", item.TournamentID,
		"match_number", item.MatchNumber,
	)
	return item, nil
}

func (s *MatchService) List(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	items, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

// ListByTournament does not require the tournament to exist, so orphaned matches stay reachable.
func (s *MatchService) ListByTournament(ctx context.Context, tournamentID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByTournament")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	items, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list matches by tournament: %w", err)
	}
	return items, nil
}

func (s *MatchService) ListByStatus(ctx context.Context, status string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByStatus")
	defer span.End()

	status = match.NormalizeStatus(status)
	if !match.IsValidStatus(status) {
		return nil, invalidField("status", "Status must be one of upcoming, in_progress, completed, cancelled")
	}

	items, err := s.matchRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list matches by status: %w", err)
	}
	return items, nil
}

func (s *MatchService) Get(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	return s.get(ctx, matchID)
}

func (s *MatchService) get(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return item, nil
}

func (s *MatchService) Update(ctx context.Context, input UpdateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	current, err := s.get(ctx, input.ID)
	if err != nil {
		return match.Match{}, err
	}

	merged := current
	assign(&merged.TournamentID, input.TournamentID)
	assign(&merged.MatchNumber, input.MatchNumber)
	assign(&merged.MatchType, input.MatchType)
	assign(&merged.TeamA, input.TeamA)
	assign(&merged.TeamB, input.TeamB)
	assign(&merged.ScheduledDate, input.ScheduledDate)
	assign(&merged.Venue, input.Venue)
	assign(&merged.Status, input.Status)
	assign(&merged.TeamAScore, input.TeamAScore)
	assign(&merged.TeamBScore, input.TeamBScore)
	assign(&merged.Winner, input.Winner)
	assign(&merged.Margin, input.Margin)
	assign(&merged.ManOfTheMatch, input.ManOfTheMatch)
	assign(&merged.TossWinner, input.TossWinner)
	assign(&merged.TossDecision, input.TossDecision)
	assign(&merged.Umpires, input.Umpires)
	assign(&merged.Referee, input.Referee)
	assign(&merged.MatchReport, input.MatchReport)
	assign(&merged.Highlights, input.Highlights)

	merged = merged.Normalize()
	if err := merged.Validate(); err != nil {
		return match.Match{}, invalidInput(err)
	}
	if merged.TournamentID != current.TournamentID {
		if err := s.ensureTournament(ctx, merged.TournamentID); err != nil {
			return match.Match{}, err
		}
	}

	merged.UpdatedAt = s.now().UTC()
	if err := s.save(ctx, merged); err != nil {
		return match.Match{}, err
	}
	return merged, nil
}

// UpdateStatus backs the admin start/end match actions.
func (s *MatchService) UpdateStatus(ctx context.Context, matchID, status string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateStatus")
	defer span.End()

	status = match.NormalizeStatus(status)
	if !match.IsValidStatus(status) {
		return match.Match{}, invalidField("status", "Status must be one of upcoming, in_progress, completed, cancelled")
	}

	current, err := s.get(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}

	updated := current
	updated.Status = status
	if status != match.StatusCompleted {
		// Result details belong to a completed match; reopening or cancelling drops them.
		updated.Winner = ""
		updated.Margin = ""
		updated.ManOfTheMatch = ""
	}
	if err := updated.Validate(); err != nil {
		return match.Match{}, invalidInput(err)
	}
	updated.UpdatedAt = s.now().UTC()
	if err := s.save(ctx, updated); err != nil {
		return match.Match{}, err
	}

	s.logger.InfoContext(ctx, "match status updated",
		"match_id", updated.ID,
		"from", current.Status,
		"to", updated.Status,
	)
	return updated, nil
}

func (s *MatchService) Delete(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		if errors.Is(err, match.ErrNotFound) {
			return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
		}
		return fmt.Errorf("delete match: %w", err)
	}
	return nil
}

func (s *MatchService) ensureTournament(ctx context.Context, tournamentID string) error {
	_, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return invalidField("tournamentId", "Tournament not found")
	}
	return nil
}

func (s *MatchService) save(ctx context.Context, item match.Match) error {
	if err := s.matchRepo.Update(ctx, item); err != nil {
		if errors.Is(err, match.ErrNotFound) {
			return fmt.Errorf("%w: match=%s", ErrNotFound, item.ID)
		}
		return fmt.Errorf("update match: %w", err)
	}
	return nil
}
