// Package account handles registration, login, and the current user's
// profile.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/pkg/ctxutil"
)

const minPasswordLength = 8

type userRepo interface {
	Create(ctx context.Context, email, passwordHash, displayName string) (domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

type tokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
}

// Service exposes account operations.
type Service struct {
	users      userRepo
	tokens     tokenIssuer
	bcryptCost int
	log        *slog.Logger
}

// NewService creates a new account service.
func NewService(log *slog.Logger, users userRepo, tokens tokenIssuer, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		log:        log.With("service", "account"),
	}
}

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

// Validate checks the input.
func (i RegisterInput) Validate() error {
	var fieldErrors []domain.FieldError

	email := strings.TrimSpace(i.Email)
	if email == "" {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "email",
			Message: "is required",
		})
	} else if _, err := mail.ParseAddress(email); err != nil {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "email",
			Message: "is not a valid email address",
		})
	}

	if len(i.Password) < minPasswordLength {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", minPasswordLength),
		})
	}

	if len(fieldErrors) > 0 {
		return domain.NewValidationErrors(fieldErrors)
	}

	return nil
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks the input.
func (i LoginInput) Validate() error {
	var fieldErrors []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "email",
			Message: "is required",
		})
	}
	if i.Password == "" {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "password",
			Message: "is required",
		})
	}

	if len(fieldErrors) > 0 {
		return domain.NewValidationErrors(fieldErrors)
	}

	return nil
}

// AuthResult is a logged-in user with their access token.
type AuthResult struct {
	User        domain.User
	AccessToken string
}

// Register creates a new account and logs it in.
func (s *Service) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	if err := input.Validate(); err != nil {
		return AuthResult{}, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, email, string(hash), strings.TrimSpace(input.DisplayName))
	if err != nil {
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		"user_id", user.ID,
		"email", user.Email,
	)

	return AuthResult{User: user, AccessToken: token}, nil
}

// Login verifies credentials and issues an access token. Wrong email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	if err := input.Validate(); err != nil {
		return AuthResult{}, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return AuthResult{}, domain.ErrUnauthorized
		}
		return AuthResult{}, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return AuthResult{}, domain.ErrUnauthorized
	}

	token, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", "user_id", user.ID)

	return AuthResult{User: user, AccessToken: token}, nil
}

// Me returns the current user's profile.
func (s *Service) Me(ctx context.Context) (domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}
