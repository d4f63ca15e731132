package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/datathon/handouts-api/internal/core/domain"
	"github.com/datathon/handouts-api/internal/core/ports"
)

func TestUserHandler_Profile(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubProfileService{
		getFn: func(ctx context.Context, userID uint) (*ports.Profile, error) {
			return &ports.Profile{
				User:  &domain.User{ID: userID, Username: "alice"},
				Posts: []domain.Post{{ID: 4, Title: "Hello", AuthorID: userID, Requested: true}},
			}, nil
		},
	})

	c, rec := newJSONContext(e, http.MethodGet, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues("2")
	if err := handler.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decodeBody(t, rec)
	profile, ok := resp["profile"].(map[string]any)
	if !ok || profile["id"] != float64(2) || profile["username"] != "alice" {
		t.Fatalf("unexpected profile: %v", resp)
	}
	posts := profile["posts"].([]any)
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	post := posts[0].(map[string]any)
	if post["title"] != "Hello" || len(post) != 2 {
		t.Fatalf("profile posts must only carry id and title: %v", post)
	}
}

func TestUserHandler_Profile_NotFound(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubProfileService{
		getFn: func(ctx context.Context, userID uint) (*ports.Profile, error) {
			return nil, domain.ErrUserNotFound
		},
	})

	c, _ := newJSONContext(e, http.MethodGet, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues("99")
	if err := handler.Profile(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_Profile_BadID(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubProfileService{})

	c, _ := newJSONContext(e, http.MethodGet, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues("alice")
	if err := handler.Profile(c); !errors.Is(err, domain.ErrMalformedRequest) {
		t.Fatalf("expected ErrMalformedRequest, got %v", err)
	}
}

func TestUserHandler_Profile_ZeroID(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubProfileService{
		getFn: func(ctx context.Context, userID uint) (*ports.Profile, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	c, _ := newJSONContext(e, http.MethodGet, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues("0")
	if err := handler.Profile(c); !errors.Is(err, domain.ErrMalformedRequest) {
		t.Fatalf("expected ErrMalformedRequest, got %v", err)
	}
}
