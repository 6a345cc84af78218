package api_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/service/auth"
	"github.com/taskwell/taskwell-api/internal/store"
)

// fakeUserStore is an in-memory store.UserStore.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
	err   error // forced error for failure-path tests
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// fakeTaskStore is an in-memory store.TaskStore with the same owner-scoped
// lookup and filter semantics as the SQL implementation.
type fakeTaskStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*domain.Task
	err   error
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[uuid.UUID]*domain.Task)}
}

func (f *fakeTaskStore) Create(ctx context.Context, task *domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	copied := *task
	f.tasks[task.ID] = &copied
	return nil
}

func (f *fakeTaskStore) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	task, ok := f.tasks[id]
	if !ok || task.UserID != userID {
		return nil, store.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (f *fakeTaskStore) List(
	ctx context.Context,
	userID uuid.UUID,
	params store.ListParams,
) ([]*domain.Task, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, 0, f.err
	}
	params = params.Normalize()

	var matched []*domain.Task
	for _, task := range f.tasks {
		if task.UserID != userID {
			continue
		}
		if params.Search != "" {
			needle := strings.ToLower(params.Search)
			if !strings.Contains(strings.ToLower(task.Title), needle) &&
				!strings.Contains(strings.ToLower(task.Description), needle) {
				continue
			}
		}
		if params.HasStatusFilter() && string(task.Status) != params.Status {
			continue
		}
		copied := *task
		matched = append(matched, &copied)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.String() > matched[j].ID.String()
	})

	total := len(matched)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (f *fakeTaskStore) Update(ctx context.Context, task *domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	existing, ok := f.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return store.ErrTaskNotFound
	}
	copied := *task
	f.tasks[task.ID] = &copied
	return nil
}

func (f *fakeTaskStore) Delete(ctx context.Context, id, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	task, ok := f.tasks[id]
	if !ok || task.UserID != userID {
		return store.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

// stubJWTService issues a fixed token and resolves any token to a fixed
// user ID.
type stubJWTService struct {
	token  string
	userID uuid.UUID
	err    error
}

func (s *stubJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.token, nil
}

func (s *stubJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &auth.Claims{UserID: s.userID, Subject: s.userID.String()}, nil
}
