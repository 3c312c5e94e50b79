package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lana-app/backend/internal/model"
	"github.com/lana-app/backend/internal/repository"
)

// Service-level errors for registration and login.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already taken")
)

// UserRepositoryInterface defines the contract for user data access.
// Implementations must be safe for concurrent use.
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserService handles registration, login and user profile management.
type UserService struct {
	repo UserRepositoryInterface
}

func NewUserService(repo UserRepositoryInterface) *UserService {
	return &UserService{repo: repo}
}

type RegisterInput struct {
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Password string  `json:"password"`
	Verified bool    `json:"verified"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new user account. The plaintext credential is hashed
// with bcrypt before storage and is never persisted or echoed back.
// Returns ErrEmailTaken if the email is already registered; only the new
// identifier is returned, never the stored row.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (uuid.UUID, error) {
	if input.FullName == "" || input.Email == "" || input.Password == "" {
		return uuid.Nil, fmt.Errorf("%w: full name, email and password are required", ErrValidation)
	}

	exists, err := s.repo.EmailExists(ctx, input.Email)
	if err != nil {
		return uuid.Nil, fmt.Errorf("checking email existence: %w", err)
	}
	if exists {
		return uuid.Nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		Verified:     input.Verified,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return uuid.Nil, fmt.Errorf("creating user: %w", err)
	}

	return user.ID, nil
}

// Login authenticates a user with email and password. An unknown email
// surfaces repository.ErrUserNotFound; a hash mismatch surfaces
// ErrInvalidCredentials. On success the public profile projection is
// returned, never the stored hash.
func (s *UserService) Login(ctx context.Context, input LoginInput) (*model.PublicProfile, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("fetching user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	profile := user.PublicProfile()
	return &profile, nil
}

// GetByID retrieves a user by their ID.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting user %s: %w", id, err)
	}
	return user, nil
}

// List retrieves all users, newest first.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

type UpdateUserInput struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Verified *bool   `json:"verified"`
}

// Update applies a partial update: only fields present in the input
// overwrite stored values.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching user %s for update: %w", id, err)
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.Verified != nil {
		user.Verified = *input.Verified
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating user %s: %w", id, err)
	}

	return user, nil
}

// Delete removes a user. Owned rows are removed by the store's cascade rules.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting user %s: %w", id, err)
	}
	return nil
}
