package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"Buildcalc/internal/repo"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrUserExists         = errors.New("user already exists")
)

// Provider registers and authenticates users. Handlers only see this, so the
// database-backed provider and the static one are interchangeable.
type Provider interface {
	Register(ctx context.Context, login, email, password string) (repo.User, error)
	Authenticate(ctx context.Context, login, password string) (repo.User, error)
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// RepoProvider stores bcrypt hashes in a user repository.
type RepoProvider struct {
	Repo repo.Repository
}

func (p *RepoProvider) Register(ctx context.Context, login, email, password string) (repo.User, error) {
	if _, _, err := p.Repo.GetByLogin(ctx, login); err == nil {
		return repo.User{}, ErrUserExists
	} else if !errors.Is(err, repo.ErrNotFound) {
		return repo.User{}, err
	}
	hashed, err := HashPassword(password)
	if err != nil {
		return repo.User{}, fmt.Errorf("hash password: %w", err)
	}
	id, err := p.Repo.CreateUser(ctx, login, email, hashed)
	if err != nil {
		return repo.User{}, err
	}
	return repo.User{ID: id, Login: login, Email: email}, nil
}

func (p *RepoProvider) Authenticate(ctx context.Context, login, password string) (repo.User, error) {
	id, storedHash, err := p.Repo.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return repo.User{}, ErrInvalidCredentials
		}
		return repo.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)); err != nil {
		return repo.User{}, ErrInvalidCredentials
	}
	return p.Repo.GetByID(ctx, id)
}

// StaticProvider keeps users in memory with plain passwords. It is for
// local development and tests only.
type StaticProvider struct {
	mu     sync.Mutex
	users  map[string]staticUser
	nextID int
}

type staticUser struct {
	repo.User
	password string
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{users: make(map[string]staticUser), nextID: 1}
}

func (p *StaticProvider) Register(ctx context.Context, login, email, password string) (repo.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := strings.ToLower(login)
	if _, ok := p.users[key]; ok {
		return repo.User{}, ErrUserExists
	}
	u := repo.User{ID: p.nextID, Login: login, Email: email}
	p.nextID++
	p.users[key] = staticUser{User: u, password: password}
	return u, nil
}

func (p *StaticProvider) Authenticate(ctx context.Context, login, password string) (repo.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	u, ok := p.users[strings.ToLower(login)]
	if !ok || u.password != password {
		return repo.User{}, ErrInvalidCredentials
	}
	return u.User, nil
}
