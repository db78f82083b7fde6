package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/internal/service/account"
)

// accountServiceMock is a mock implementation of accountService.
type accountServiceMock struct {
	RegisterFunc func(ctx context.Context, input account.RegisterInput) (account.AuthResult, error)
	LoginFunc    func(ctx context.Context, input account.LoginInput) (account.AuthResult, error)
	MeFunc       func(ctx context.Context) (domain.User, error)
}

var _ accountService = (*accountServiceMock)(nil)

func (m *accountServiceMock) Register(ctx context.Context, input account.RegisterInput) (account.AuthResult, error) {
	if m.RegisterFunc == nil {
		panic("accountServiceMock.RegisterFunc: method is nil but accountService.Register was just called")
	}
	return m.RegisterFunc(ctx, input)
}

func (m *accountServiceMock) Login(ctx context.Context, input account.LoginInput) (account.AuthResult, error) {
	if m.LoginFunc == nil {
		panic("accountServiceMock.LoginFunc: method is nil but accountService.Login was just called")
	}
	return m.LoginFunc(ctx, input)
}

func (m *accountServiceMock) Me(ctx context.Context) (domain.User, error) {
	if m.MeFunc == nil {
		panic("accountServiceMock.MeFunc: method is nil but accountService.Me was just called")
	}
	return m.MeFunc(ctx)
}

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	mock := &accountServiceMock{
		RegisterFunc: func(ctx context.Context, input account.RegisterInput) (account.AuthResult, error) {
			if input.Email != "new@example.com" {
				t.Errorf("email = %q, want new@example.com", input.Email)
			}
			return account.AuthResult{
				User:        domain.User{ID: userID, Email: input.Email},
				AccessToken: "signed-token",
			}, nil
		},
	}
	h := NewAuthHandler(mock, slog.Default())

	body := `{"email":"new@example.com","password":"long-enough","displayName":"New"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}

	var resp authResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.AccessToken != "signed-token" {
		t.Errorf("accessToken = %q, want signed-token", resp.AccessToken)
	}
	if resp.User.ID != userID.String() {
		t.Errorf("user id = %q, want %s", resp.User.ID, userID)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	t.Parallel()

	mock := &accountServiceMock{
		RegisterFunc: func(ctx context.Context, input account.RegisterInput) (account.AuthResult, error) {
			return account.AuthResult{}, domain.ErrAlreadyExists
		},
	}
	h := NewAuthHandler(mock, slog.Default())

	body := `{"email":"taken@example.com","password":"long-enough"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	t.Parallel()

	mock := &accountServiceMock{
		LoginFunc: func(ctx context.Context, input account.LoginInput) (account.AuthResult, error) {
			return account.AuthResult{}, domain.ErrUnauthorized
		},
	}
	h := NewAuthHandler(mock, slog.Default())

	body := `{"email":"user@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	mock := &accountServiceMock{
		MeFunc: func(ctx context.Context) (domain.User, error) {
			return domain.User{ID: userID, Email: "user@example.com", DisplayName: "User"}, nil
		},
	}
	h := NewAuthHandler(mock, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()

	h.Me(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp userResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Email != "user@example.com" {
		t.Errorf("email = %q, want user@example.com", resp.Email)
	}
}

func TestAuthHandler_Me_Anonymous(t *testing.T) {
	t.Parallel()

	mock := &accountServiceMock{
		MeFunc: func(ctx context.Context) (domain.User, error) {
			return domain.User{}, domain.ErrUnauthorized
		},
	}
	h := NewAuthHandler(mock, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()

	h.Me(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
