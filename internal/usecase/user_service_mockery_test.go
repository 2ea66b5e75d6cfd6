package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/cricket-tournament/internal/domain/user"
	usermock "github.com/riskibarqy/cricket-tournament/internal/mocks/domain/user"
	idgen "github.com/riskibarqy/cricket-tournament/internal/platform/id"
)

func TestUserService_Register_StoreFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), "trace_id", "trace-123")
	repo := usermock.NewRepository(t)
	observer := &recordingObserver{}
	svc := NewUserService(repo, &idgen.Sequence{Prefix: "usr-"}, observer, nil)

	repo.
		On("Create", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), mock.MatchedBy(func(item user.User) bool {
			return item.ID == "usr-1" && item.Status == user.StatusPending
		})).
		Return(errors.New("connection reset")).
		Once()

	_, err := svc.Register(ctx, bowlerInput())
	if err == nil || errors.Is(err, ErrConflict) || errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected plain store error, got %v", err)
	}
	if observer.registrations[0] != RegistrationFailed {
		t.Fatalf("unexpected observed outcome: %v", observer.registrations)
	}
}

func TestUserService_UpdateStatus_NotFoundOnWriteUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := usermock.NewRepository(t)
	svc := NewUserService(repo, &idgen.Sequence{}, nil, nil)

	stored := user.User{ID: "usr-9", Status: user.StatusPending}
	repo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "usr-9").
		Return(stored, true, nil).
		Once()
	repo.
		On("Update", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), mock.AnythingOfType("user.User")).
		Return(user.ErrNotFound).
		Once()

	_, err := svc.UpdateStatus(ctx, UpdateUserStatusInput{ID: "usr-9", Status: "Rejected"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserService_Get_RequiresIDUsingMockery(t *testing.T) {
	t.Parallel()

	repo := usermock.NewRepository(t)
	svc := NewUserService(repo, &idgen.Sequence{}, nil, nil)

	if _, err := svc.Get(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
