// Package services contains application services layered over the
// repositories: validated authentication, dashboard statistics, and
// calendar annotation.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/models"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/app/repositories/users"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/common"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/logging"
)

// signupInput mirrors the checks the signup form performs before anything
// reaches the store. The store itself enforces none of this.
type signupInput struct {
	Username string `validate:"required,min=3"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type loginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// AuthService wraps the user repository with input validation and session
// handling for the front end.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (models.User, error)
}

type authService struct {
	users    users.Repository
	validate *validator.Validate
	log      logging.Logger
}

// NewAuthService constructs an AuthService over the given user repository.
func NewAuthService(users users.Repository, log logging.Logger) AuthService {
	return &authService{
		users:    users,
		validate: validator.New(),
		log:      log,
	}
}

// Register validates the signup fields and creates the account. Validation
// failures are reported as common.ErrValidation and never reach the store.
func (s *authService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	in := signupInput{Username: username, Email: email, Password: password}
	if err := s.validate.Struct(in); err != nil {
		return models.User{}, fmt.Errorf("%w: %s", common.ErrValidation, err)
	}

	user, err := s.users.Create(ctx, username, email, password)
	if err != nil {
		return models.User{}, err
	}
	s.log.Info(ctx, "user registered", "id", user.ID, "username", user.Username)
	return user, nil
}

// Login validates the credentials are present and authenticates. A failed
// match surfaces as common.ErrUnauthorized.
func (s *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	in := loginInput{Username: username, Password: password}
	if err := s.validate.Struct(in); err != nil {
		return models.User{}, fmt.Errorf("%w: %s", common.ErrValidation, err)
	}

	user, err := s.users.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.User{}, common.ErrUnauthorized
		}
		return models.User{}, err
	}
	s.log.Info(ctx, "user logged in", "id", user.ID)
	return user, nil
}

// Logout clears the session.
func (s *authService) Logout(ctx context.Context) error {
	if err := s.users.Logout(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "user logged out")
	return nil
}

// Current resolves the logged-in user, passing common.ErrNotFound through.
func (s *authService) Current(ctx context.Context) (models.User, error) {
	return s.users.Current(ctx)
}
