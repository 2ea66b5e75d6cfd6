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

// UpdateTournamentInput carries the fields supplied on a full update; nil keeps the stored value.
type UpdateTournamentInput struct {
	ID                   string
	Title                *string
	Description          *string
	Venue                *string
	StartDate            *time.Time
	EndDate              *time.Time
	RegistrationDeadline *time.Time
	MaxTeams             *int
	RegisteredTeams      *int
	RegistrationFee      *float64
	PrizePool            *float64
	Status               *string
	TournamentType       *string
	Format               *string
	Rules                *string
	ContactPerson        *tournament.ContactPerson
	Winner               *string
	RunnerUp             *string
	ManOfTheSeries       *string
}

type TournamentService struct {
	tournamentRepo tournament.Repository
	matchRepo      match.Repository
	idGen          idgen.Generator
	logger         *logging.Logger
	now            func() time.Time
}

func NewTournamentService(
	tournamentRepo tournament.Repository,
	matchRepo match.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *TournamentService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TournamentService{
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		idGen:          idGen,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *TournamentService) Create(ctx context.Context, input tournament.Tournament) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Create")
	defer span.End()

	item := input.Normalize()
	if err := item.Validate(); err != nil {
		return tournament.Tournament{}, invalidInput(err)
	}
	s.warnLateDeadline(ctx, item)

	tournamentID, err := s.idGen.NewID()
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("generate tournament id: %w", err)
	}

	now := s.now().UTC()
	item.ID = tournamentID
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := s.tournamentRepo.Create(ctx, item); err != nil {
		return tournament.Tournament{}, fmt.Errorf("create tournament: %w", err)
	}

	s.logger.InfoContext(ctx, "tournament created",
		"tournament_id", item.ID,
		"max_teams", item.MaxTeams,
		"status", item.Status,
	)
	return item, nil
}

func (s *TournamentService) List(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.List")
	defer span.End()

	items, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return items, nil
}

func (s *TournamentService) ListByStatus(ctx context.Context, status string) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ListByStatus")
	defer span.End()

	status = tournament.NormalizeStatus(status)
	if !tournament.IsValidStatus(status) {
		return nil, invalidField("status", "Status must be one of upcoming, active, completed, cancelled")
	}

	items, err := s.tournamentRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list tournaments by status: %w", err)
	}
	return items, nil
}

func (s *TournamentService) Get(ctx context.Context, tournamentID string) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Get")
	defer span.End()

	return s.get(ctx, tournamentID)
}

func (s *TournamentService) get(ctx context.Context, tournamentID string) (tournament.Tournament, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	item, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}
	return item, nil
}

func (s *TournamentService) Update(ctx context.Context, input UpdateTournamentInput) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Update")
	defer span.End()

	current, err := s.get(ctx, input.ID)
	if err != nil {
		return tournament.Tournament{}, err
	}

	merged := current
	assign(&merged.Title, input.Title)
	assign(&merged.Description, input.Description)
	assign(&merged.Venue, input.Venue)
	assign(&merged.StartDate, input.StartDate)
	assign(&merged.EndDate, input.EndDate)
	assign(&merged.RegistrationDeadline, input.RegistrationDeadline)
	assign(&merged.MaxTeams, input.MaxTeams)
	assign(&merged.RegisteredTeams, input.RegisteredTeams)
	assign(&merged.RegistrationFee, input.RegistrationFee)
	assign(&merged.PrizePool, input.PrizePool)
	assign(&merged.Status, input.Status)
	assign(&merged.TournamentType, input.TournamentType)
	assign(&merged.Format, input.Format)
	assign(&merged.Rules, input.Rules)
	assign(&merged.ContactPerson, input.ContactPerson)
	assign(&merged.Winner, input.Winner)
	assign(&merged.RunnerUp, input.RunnerUp)
	assign(&merged.ManOfTheSeries, input.ManOfTheSeries)

	merged = merged.Normalize()
	if err := merged.Validate(); err != nil {
		return tournament.Tournament{}, invalidInput(err)
	}
	s.warnLateDeadline(ctx, merged)

	merged.UpdatedAt = s.now().UTC()
	if err := s.save(ctx, merged); err != nil {
		return tournament.Tournament{}, err
	}
	return merged, nil
}

func (s *TournamentService) UpdateStatus(ctx context.Context, tournamentID, status string) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.UpdateStatus")
	defer span.End()

	status = strings.ToLower(strings.TrimSpace(status))
	if !tournament.IsValidStatus(status) {
		return tournament.Tournament{}, invalidField("status", "Status must be one of upcoming, active, completed, cancelled")
	}

	current, err := s.get(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, err
	}

	updated := current
	updated.Status = status
	updated.UpdatedAt = s.now().UTC()
	if err := s.save(ctx, updated); err != nil {
		return tournament.Tournament{}, err
	}

	s.logger.InfoContext(ctx, "tournament status updated",
		"tournament_id", updated.ID,
		"from", current.Status,
		"to", updated.Status,
	)
	return updated, nil
}

// Delete removes the tournament only. Matches referencing it are left in place.
func (s *TournamentService) Delete(ctx context.Context, tournamentID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Delete")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	if err := s.tournamentRepo.Delete(ctx, tournamentID); err != nil {
		if errors.Is(err, tournament.ErrNotFound) {
			return fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
		}
		return fmt.Errorf("delete tournament: %w", err)
	}

	orphaned, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		s.logger.WarnContext(ctx, "list matches of deleted tournament failed", "tournament_id", tournamentID, "error", err)
		orphaned = nil
	}
	s.logger.InfoContext(ctx, "tournament deleted",
		"tournament_id", tournamentID,
		"orphaned_matches", len(orphaned),
	)
	return nil
}

func (s *TournamentService) save(ctx context.Context, item tournament.Tournament) error {
	if err := s.tournamentRepo.Update(ctx, item); err != nil {
		if errors.Is(err, tournament.ErrNotFound) {
			return fmt.Errorf("%w: tournament=%s", ErrNotFound, item.ID)
		}
		return fmt.Errorf("update tournament: %w", err)
	}
	return nil
}

func (s *TournamentService) warnLateDeadline(ctx context.Context, item tournament.Tournament) {
	if !item.DeadlineAfterStart() {
		return
	}
	s.logger.WarnContext(ctx, "registration deadline is after tournament start",
		"tournament_id", item.ID,
		"registration_deadline", item.RegistrationDeadline,
		"start_date", item.StartDate,
	)
}
