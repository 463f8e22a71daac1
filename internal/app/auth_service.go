package app

import (
	"errors"
	"strings"
	"time"

	"mural-api/internal/model"
	"mural-api/internal/pkg/jwtutil"
	"mural-api/internal/pkg/password"
	"mural-api/internal/repository"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrEmailExists       = errors.New("email may already be registered")
	ErrInvalidCredential = errors.New("invalid email or password")
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	Create(user *model.User) error
	GetByEmail(email string) (*model.User, error)
	List() ([]model.User, error)
}

type AuthService struct {
	users    UserStore
	hasher   password.Hasher
	secret   string
	tokenTTL time.Duration
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  *model.User
}

func NewAuthService(users UserStore, hasher password.Hasher, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Register creates an account. There is no lookup-before-insert: two
// concurrent registrations for the same email both reach the store and
// the unique index decides which one wins.
func (s *AuthService) Register(input RegisterInput) (*model.User, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	plain := strings.TrimSpace(input.Password)
	if name == "" || email == "" || plain == "" {
		return nil, ErrInvalidInput
	}

	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and mints a bearer token. Unknown email
// and wrong password return the same error so callers cannot probe
// which addresses are registered.
func (s *AuthService) Login(input LoginInput) (*LoginResult, error) {
	email := normalizeEmail(input.Email)
	plain := strings.TrimSpace(input.Password)
	if email == "" || plain == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredential
	}
	if !s.hasher.Verify(plain, user.PasswordHash) {
		return nil, ErrInvalidCredential
	}

	token, err := jwtutil.GenerateToken(s.secret, s.tokenTTL, user.ID, user.Name, user.Email)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}

func (s *AuthService) ListUsers() ([]model.User, error) {
	return s.users.List()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
