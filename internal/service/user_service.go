package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"user_dashboard/internal/model"
	"user_dashboard/internal/repository"

	"go.uber.org/zap"
)

var (
	ErrDuplicateUser = errors.New("user with this email already exists")
	ErrUserNotFound  = errors.New("user not found")
)

// UserService encapsulates the rules for creating, listing, and updating
// user records, isolating the HTTP layer from storage mechanics.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	CreateUser(ctx context.Context, name, email, phone, address string) (*model.User, error)
	UpdateUser(ctx context.Context, id, name, email, phone, address string) error
}

type userService struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

// ListUsers returns every user in the store's natural order.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns the user with the given id, or ErrUserNotFound. Not found
// is a normal outcome here, never a default record.
func (s *userService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// CreateUser trims all four fields and inserts a new record unless the email
// is already taken. The existence check runs first as a cheap early answer;
// the unique index on email is the authoritative signal, so a losing racer
// still gets ErrDuplicateUser from the insert itself.
func (s *userService) CreateUser(ctx context.Context, name, email, phone, address string) (*model.User, error) {
	email = strings.TrimSpace(email)

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateUser
	}

	user := &model.User{
		Name:    strings.TrimSpace(name),
		Email:   email,
		Phone:   strings.TrimSpace(phone),
		Address: strings.TrimSpace(address),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	s.logger.Info("user created", zap.String("user_id", user.ID), zap.String("email", user.Email))
	return user, nil
}

// UpdateUser unconditionally overwrites all four text fields on the matching
// record. No email uniqueness re-check is performed. An unknown id yields
// ErrUserNotFound rather than a silent no-op.
func (s *userService) UpdateUser(ctx context.Context, id, name, email, phone, address string) error {
	user := &model.User{
		ID:      id,
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Phone:   strings.TrimSpace(phone),
		Address: strings.TrimSpace(address),
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update user in repository: %w", err)
	}

	s.logger.Info("user updated", zap.String("user_id", id))
	return nil
}
