package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/cricket-tournament/internal/domain/user"
	"github.com/riskibarqy/cricket-tournament/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/cricket-tournament/internal/platform/id"
	"github.com/riskibarqy/cricket-tournament/internal/platform/validation"
)

type recordingObserver struct {
	registrations []string
	transitions   []string
}

func (o *recordingObserver) ObserveRegistration(outcome string) {
	o.registrations = append(o.registrations, outcome)
}

func (o *recordingObserver) ObserveStatusTransition(status string) {
	o.transitions = append(o.transitions, status)
}

func newTestUserService(repo user.Repository) (*UserService, *recordingObserver) {
	observer := &recordingObserver{}
	svc := NewUserService(repo, &idgen.Sequence{Prefix: "usr-"}, observer, nil)
	svc.now = func() time.Time { return time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC) }
	return svc, observer
}

func bowlerInput() RegisterUserInput {
	return RegisterUserInput{
		FullName:       "Prasad Rao",
		Email:          "prasad.rao@example.com",
		WhatsAppNumber: "9988776655",
		State:          "Karnataka",
		District:       "Hassan",
		Pincode:        "573201",
		Type:           "Bowler",
		BowlerHanded:   "Right Handed",
		BowlerType:     "Pace/Fast",
	}
}

func TestUserService_RegisterBowlerStartsPending(t *testing.T) {
	ctx := context.Background()
	svc, observer := newTestUserService(memory.NewUserRepository())

	got, err := svc.Register(ctx, bowlerInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if got.ID != "usr-1" || got.Status != user.StatusPending {
		t.Fatalf("unexpected registration: %+v", got)
	}
	if got.FullName != "PRASAD RAO" || got.BatsmanHanded != user.HandNA {
		t.Fatalf("expected normalized registration, got %+v", got)
	}
	if !got.RegistrationDate.Equal(svc.now()) {
		t.Fatalf("expected registration date stamped, got %s", got.RegistrationDate)
	}
	if len(observer.registrations) != 1 || observer.registrations[0] != RegistrationAccepted {
		t.Fatalf("unexpected observed outcomes: %v", observer.registrations)
	}
}

func TestUserService_RegisterMissingFieldPersistsNothing(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	svc, observer := newTestUserService(repo)

	input := bowlerInput()
	input.District = "  "

	_, err := svc.Register(ctx, input)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	var verr validation.Errors
	if !errors.As(err, &verr) || !verr.Has("district") || verr[0].Message != "District is required" {
		t.Fatalf("expected district violation, got %v", err)
	}

	total, _ := repo.Count(ctx)
	if total != 0 {
		t.Fatalf("expected nothing persisted, got %d users", total)
	}
	if observer.registrations[0] != RegistrationInvalid {
		t.Fatalf("unexpected observed outcome: %v", observer.registrations)
	}
}

func TestUserService_RegisterDuplicateConflicts(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	svc, observer := newTestUserService(repo)

	first, err := svc.Register(ctx, bowlerInput())
	if err != nil {
		t.Fatalf("register first: %v", err)
	}

	sameEmail := bowlerInput()
	sameEmail.WhatsAppNumber = "9000011111"
	sameEmail.FullName = "Someone Else"
	_, err = svc.Register(ctx, sameEmail)
	var dup *user.DuplicateError
	if !errors.Is(err, ErrConflict) || !errors.As(err, &dup) || dup.Field != "email" {
		t.Fatalf("expected email conflict, got %v", err)
	}

	samePhone := bowlerInput()
	samePhone.Email = "other@example.com"
	if _, err := svc.Register(ctx, samePhone); !errors.As(err, &dup) || dup.Field != "whatsappNumber" {
		t.Fatalf("expected whatsapp conflict, got %v", err)
	}

	stored, _, _ := repo.GetByID(ctx, first.ID)
	if stored.FullName != first.FullName || stored.Email != first.Email {
		t.Fatalf("expected first record unchanged, got %+v", stored)
	}
	if observer.registrations[1] != RegistrationDuplicate {
		t.Fatalf("unexpected observed outcomes: %v", observer.registrations)
	}
}

func TestUserService_UpdateStatusApproves(t *testing.T) {
	ctx := context.Background()
	svc, observer := newTestUserService(memory.NewUserRepository())

	registered, _ := svc.Register(ctx, bowlerInput())

	approved, err := svc.UpdateStatus(ctx, UpdateUserStatusInput{ID: registered.ID, Status: "confirmed"})
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if approved.Status != user.StatusApproved || approved.ApprovedAt == nil {
		t.Fatalf("unexpected approved user: %+v", approved)
	}

	got, _ := svc.Get(ctx, registered.ID)
	if got.Status != user.StatusApproved {
		t.Fatalf("expected stored status Approved, got %q", got.Status)
	}
	if len(observer.transitions) != 1 || observer.transitions[0] != user.StatusApproved {
		t.Fatalf("unexpected transitions: %v", observer.transitions)
	}

	if _, err := svc.UpdateStatus(ctx, UpdateUserStatusInput{ID: registered.ID, Status: "archived"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, UpdateUserStatusInput{ID: "missing", Status: "Approved"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserService_UpdateMergesAndRevalidates(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUserService(memory.NewUserRepository())
	registered, _ := svc.Register(ctx, bowlerInput())

	allRounder := "All Rounder"
	if _, err := svc.Update(ctx, UpdateUserInput{ID: registered.ID, Type: &allRounder}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected batting hand requirement after type change, got %v", err)
	}

	right := "Right"
	district := "Mandya"
	updated, err := svc.Update(ctx, UpdateUserInput{ID: registered.ID, Type: &allRounder, BatsmanHanded: &right, District: &district})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Type != user.TypeAllRounder || updated.BatsmanHanded != user.BattingRight || updated.District != "Mandya" {
		t.Fatalf("unexpected merged user: %+v", updated)
	}
	if updated.Email != registered.Email || updated.Status != user.StatusPending {
		t.Fatalf("expected untouched fields preserved, got %+v", updated)
	}

	rejected := "Rejected"
	reason := "duplicate team entry"
	updated, err = svc.Update(ctx, UpdateUserInput{ID: registered.ID, Status: &rejected, RejectionReason: &reason})
	if err != nil {
		t.Fatalf("status-only update: %v", err)
	}
	if updated.RejectedAt == nil || updated.RejectionReason != reason {
		t.Fatalf("expected rejection stamped, got %+v", updated)
	}
}

func TestUserService_ListByStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUserService(memory.NewUserRepository(memory.SeedUsers()...))

	items, err := svc.ListByStatus(ctx, "approved")
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if len(items) != 1 || items[0].ID != "usr-seed-001" {
		t.Fatalf("unexpected approved users: %+v", items)
	}

	if _, err := svc.ListByStatus(ctx, "waiting"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUserService(memory.NewUserRepository(memory.SeedUsers()...))

	if err := svc.Delete(ctx, "usr-seed-002"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, "usr-seed-002"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, "usr-seed-002"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
