package user

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	errRecordNotFound = errors.New("user record not found")
	errDuplicateEmail = errors.New("user email already exists")
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindAll(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}

// memoryRepository is the admin panel's user list. It lives only as long as the process.
type memoryRepository struct {
	mu      sync.RWMutex
	users   []User
	byID    map[string]int
	byEmail map[string]int
}

func NewRepository() Repository {
	return &memoryRepository{
		byID:    make(map[string]int),
		byEmail: make(map[string]int),
	}
}

func (r *memoryRepository) Create(ctx context.Context, u *User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(u.Email)
	if _, exists := r.byEmail[email]; exists {
		return errDuplicateEmail
	}

	r.users = append(r.users, *u)
	idx := len(r.users) - 1
	r.byID[u.ID.String()] = idx
	r.byEmail[email] = idx
	return nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, errRecordNotFound
	}
	u := r.users[idx]
	return &u, nil
}
