package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/datathon/handouts-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu     sync.Mutex
	byID   map[uint]*domain.User
	nextID uint
	err    error // if set, every call returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[uint]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.byID {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := *user
	clone.ID = r.nextID
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.byID {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.byID)), nil
}

type stubPostRepo struct {
	mu     sync.Mutex
	byID   map[uint]*domain.Post
	nextID uint
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{byID: make(map[uint]*domain.Post)}
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	clone := *post
	clone.ID = r.nextID
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id uint) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) List(_ context.Context) ([]domain.Post, error) {
	return r.filter(func(domain.Post) bool { return true }), nil
}

func (r *stubPostRepo) ListByAuthor(_ context.Context, authorID uint) ([]domain.Post, error) {
	return r.filter(func(p domain.Post) bool { return p.AuthorID == authorID }), nil
}

func (r *stubPostRepo) MarkRequested(_ context.Context, id uint) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	p.Requested = true
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) filter(keep func(domain.Post) bool) []domain.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Post, 0, len(r.byID))
	for _, p := range r.byID {
		if keep(*p) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// fakeVerifier "hashes" by prefixing, so tests stay fast and deterministic.
type fakeVerifier struct {
	mu       sync.Mutex
	verified []string // hashes passed to Verify, in order
}

func (v *fakeVerifier) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (v *fakeVerifier) Verify(hash, password string) bool {
	v.mu.Lock()
	v.verified = append(v.verified, hash)
	v.mu.Unlock()
	return strings.TrimPrefix(hash, "hashed:") == password && strings.HasPrefix(hash, "hashed:")
}

type stubThrottle struct {
	locked   bool
	failures map[string]int
	resets   map[string]int
	err      error
}

func newStubThrottle() *stubThrottle {
	return &stubThrottle{failures: map[string]int{}, resets: map[string]int{}}
}

func (t *stubThrottle) Locked(_ context.Context, _ string) (bool, error) {
	return t.locked, t.err
}

func (t *stubThrottle) RecordFailure(_ context.Context, username string) error {
	t.failures[username]++
	return t.err
}

func (t *stubThrottle) Reset(_ context.Context, username string) error {
	t.resets[username]++
	return t.err
}
