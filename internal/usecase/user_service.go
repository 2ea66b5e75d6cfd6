package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-tournament/internal/domain/user"
	idgen "github.com/riskibarqy/cricket-tournament/internal/platform/id"
	"github.com/riskibarqy/cricket-tournament/internal/platform/logging"
)

const (
	RegistrationAccepted  = "accepted"
	RegistrationInvalid   = "invalid"
	RegistrationDuplicate = "duplicate"
	RegistrationFailed    = "error"
)

type RegisterUserInput struct {
	FullName       string
	Email          string
	WhatsAppNumber string
	State          string
	District       string
	Pincode        string
	Type           string
	BatsmanHanded  string
	BowlerHanded   string
	BowlerType     string
}

// UpdateUserInput carries the fields supplied on a full update; nil keeps the stored value.
type UpdateUserInput struct {
	ID              string
	FullName        *string
	Email           *string
	WhatsAppNumber  *string
	State           *string
	District        *string
	Pincode         *string
	Type            *string
	BatsmanHanded   *string
	BowlerHanded    *string
	BowlerType      *string
	Status          *string
	RejectionReason *string
}

type UpdateUserStatusInput struct {
	ID              string
	Status          string
	RejectionReason string
}

type registrationObserver interface {
	ObserveRegistration(outcome string)
	ObserveStatusTransition(status string)
}

type noopRegistrationObserver struct{}

func (noopRegistrationObserver) ObserveRegistration(string)     {}
func (noopRegistrationObserver) ObserveStatusTransition(string) {}

type UserService struct {
	userRepo user.Repository
	idGen    idgen.Generator
	observer registrationObserver
	logger   *logging.Logger
	now      func() time.Time
}

func NewUserService(
	userRepo user.Repository,
	idGen idgen.Generator,
	observer registrationObserver,
	logger *logging.Logger,
) *UserService {
	if observer == nil {
		observer = noopRegistrationObserver{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &UserService{
		userRepo: userRepo,
		idGen:    idGen,
		observer: observer,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *UserService) Register(ctx context.Context, input RegisterUserInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Register")
	defer span.End()

	item := user.User{
		FullName:       input.FullName,
		Email:          input.Email,
		WhatsAppNumber: input.WhatsAppNumber,
		State:          input.State,
		District:       input.District,
		Pincode:        input.Pincode,
		Type:           input.Type,
		BatsmanHanded:  input.BatsmanHanded,
		BowlerHanded:   input.BowlerHanded,
		BowlerType:     input.BowlerType,
		Status:         user.StatusPending,
	}.Normalize()
	if err := item.Validate(); err != nil {
		s.observer.ObserveRegistration(RegistrationInvalid)
		return user.User{}, invalidInput(err)
	}

	userID, err := s.idGen.NewID()
	if err != nil {
		s.observer.ObserveRegistration(RegistrationFailed)
		return user.User{}, fmt.Errorf("generate user id: %w", err)
	}

	now := s.now().UTC()
	item.ID = userID
	item.RegistrationDate = now
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := s.userRepo.Create(ctx, item); err != nil {
		var dup *user.DuplicateError
		if errors.As(err, &dup) {
			s.observer.ObserveRegistration(RegistrationDuplicate)
			return user.User{}, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		s.observer.ObserveRegistration(RegistrationFailed)
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	s.observer.ObserveRegistration(RegistrationAccepted)
	s.logger.InfoContext(ctx, "user registered",
		"user_id", item.ID,
		"player_type", item.Type,
		"district", item.District,
	)
	return item, nil
}

func (s *UserService) List(ctx context.Context) ([]user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.List")
	defer span.End()

	items, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return items, nil
}

func (s *UserService) ListByStatus(ctx context.Context, status string) ([]user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.ListByStatus")
	defer span.End()

	status = user.NormalizeStatus(status)
	if !user.IsValidStatus(status) {
		return nil, invalidField("status", "Status must be Pending, Approved, or Rejected")
	}

	items, err := s.userRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list users by status: %w", err)
	}
	return items, nil
}

func (s *UserService) Get(ctx context.Context, userID string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Get")
	defer span.End()

	return s.get(ctx, userID)
}

func (s *UserService) get(ctx context.Context, userID string) (user.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}
	return item, nil
}

// Update merges the supplied fields onto the stored registration and re-validates the result.
func (s *UserService) Update(ctx context.Context, input UpdateUserInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Update")
	defer span.End()

	current, err := s.get(ctx, input.ID)
	if err != nil {
		return user.User{}, err
	}

	merged := current
	assign(&merged.FullName, input.FullName)
	assign(&merged.Email, input.Email)
	assign(&merged.WhatsAppNumber, input.WhatsAppNumber)
	assign(&merged.State, input.State)
	assign(&merged.District, input.District)
	assign(&merged.Pincode, input.Pincode)
	assign(&merged.Type, input.Type)
	assign(&merged.BatsmanHanded, input.BatsmanHanded)
	assign(&merged.BowlerHanded, input.BowlerHanded)
	assign(&merged.BowlerType, input.BowlerType)
	assign(&merged.Status, input.Status)
	assign(&merged.RejectionReason, input.RejectionReason)

	merged = merged.Normalize()
	if err := merged.Validate(); err != nil {
		return user.User{}, invalidInput(err)
	}

	now := s.now().UTC()
	if merged.Status != current.Status {
		merged = merged.WithStatus(merged.Status, merged.RejectionReason, now)
	}
	merged.UpdatedAt = now

	if err := s.save(ctx, merged); err != nil {
		return user.User{}, err
	}
	if merged.Status != current.Status {
		s.observer.ObserveStatusTransition(merged.Status)
	}
	return merged, nil
}

// UpdateStatus performs the administrative approve/reject/reset action.
func (s *UserService) UpdateStatus(ctx context.Context, input UpdateUserStatusInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.UpdateStatus")
	defer span.End()

	status := user.NormalizeStatus(input.Status)
	if !user.IsValidStatus(status) {
		return user.User{}, invalidField("status", "Status must be Pending, Approved, or Rejected")
	}

	current, err := s.get(ctx, input.ID)
	if err != nil {
		return user.User{}, err
	}

	updated := current.WithStatus(status, input.RejectionReason, s.now().UTC())
	if err := s.save(ctx, updated); err != nil {
		return user.User{}, err
	}

	s.observer.ObserveStatusTransition(status)
	s.logger.InfoContext(ctx, "user status updated",
		"user_id", updated.ID,
		"from", current.Status,
		"to", updated.Status,
	)
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, userID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Delete")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return fmt.Errorf("%w: user=%s", ErrNotFound, userID)
		}
		return fmt.Errorf("delete user: %w", err)
	}

	s.logger.InfoContext(ctx, "user deleted", "user_id", userID)
	return nil
}

func (s *UserService) save(ctx context.Context, item user.User) error {
	err := s.userRepo.Update(ctx, item)
	if err == nil {
		return nil
	}

	var dup *user.DuplicateError
	switch {
	case errors.As(err, &dup):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, user.ErrNotFound):
		return fmt.Errorf("%w: user=%s", ErrNotFound, item.ID)
	default:
		return fmt.Errorf("update user: %w", err)
	}
}

func assign[T any](dst *T, value *T) {
	if value != nil {
		*dst = *value
	}
}
