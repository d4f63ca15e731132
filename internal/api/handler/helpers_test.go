package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/datathon/handouts-api/internal/core/domain"
	"github.com/datathon/handouts-api/internal/core/ports"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func newJSONContext(e *echo.Echo, method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v (%q)", err, rec.Body.String())
	}
	return resp
}

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

type stubPostService struct {
	createFn        func(ctx context.Context, title string, authorID uint) (*domain.Post, error)
	listFn          func(ctx context.Context) ([]domain.Post, error)
	markRequestedFn func(ctx context.Context, id uint) (*domain.Post, error)
}

func (s *stubPostService) Create(ctx context.Context, title string, authorID uint) (*domain.Post, error) {
	return s.createFn(ctx, title, authorID)
}

func (s *stubPostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.listFn(ctx)
}

func (s *stubPostService) MarkRequested(ctx context.Context, id uint) (*domain.Post, error) {
	return s.markRequestedFn(ctx, id)
}

type stubProfileService struct {
	getFn func(ctx context.Context, userID uint) (*ports.Profile, error)
}

func (s *stubProfileService) GetProfile(ctx context.Context, userID uint) (*ports.Profile, error) {
	return s.getFn(ctx, userID)
}
