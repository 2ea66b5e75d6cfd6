package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/cricket-tournament/internal/domain/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	items map[string]user.User
}

func NewUserRepository(seed ...user.User) *UserRepository {
	items := make(map[string]user.User, len(seed))
	for _, item := range seed {
		items[item.ID] = cloneUser(item)
	}
	return &UserRepository{items: items}
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	return r.filter(func(user.User) bool { return true }), nil
}

func (r *UserRepository) ListByStatus(_ context.Context, status string) ([]user.User, error) {
	return r.filter(func(item user.User) bool { return item.Status == status }), nil
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[userID]
	if !ok {
		return user.User{}, false, nil
	}
	return cloneUser(item), true, nil
}

func (r *UserRepository) Create(_ context.Context, item user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkUniqueLocked(item); err != nil {
		return err
	}
	r.items[item.ID] = cloneUser(item)
	return nil
}

func (r *UserRepository) Update(_ context.Context, item user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return user.ErrNotFound
	}
	if err := r.checkUniqueLocked(item); err != nil {
		return err
	}
	r.items[item.ID] = cloneUser(item)
	return nil
}

func (r *UserRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[userID]; !ok {
		return user.ErrNotFound
	}
	delete(r.items, userID)
	return nil
}

func (r *UserRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

func (r *UserRepository) CountByStatus(_ context.Context, status string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, item := range r.items {
		if item.Status == status {
			total++
		}
	}
	return total, nil
}

// checkUniqueLocked mirrors the unique indexes on email and whatsapp_number.
func (r *UserRepository) checkUniqueLocked(candidate user.User) error {
	for id, item := range r.items {
		if id == candidate.ID {
			continue
		}
		if item.Email == candidate.Email {
			return &user.DuplicateError{Field: "email"}
		}
		if item.WhatsAppNumber == candidate.WhatsAppNumber {
			return &user.DuplicateError{Field: "whatsappNumber"}
		}
	}
	return nil
}

func (r *UserRepository) filter(keep func(user.User) bool) []user.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(r.items))
	for _, item := range r.items {
		if keep(item) {
			out = append(out, cloneUser(item))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].RegistrationDate.Equal(out[j].RegistrationDate) {
			return out[i].RegistrationDate.After(out[j].RegistrationDate)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func cloneUser(item user.User) user.User {
	copied := item
	if item.ApprovedAt != nil {
		approvedAt := *item.ApprovedAt
		copied.ApprovedAt = &approvedAt
	}
	if item.RejectedAt != nil {
		rejectedAt := *item.RejectedAt
		copied.RejectedAt = &rejectedAt
	}
	return copied
}
