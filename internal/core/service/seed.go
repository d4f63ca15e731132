package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/datathon/handouts-api/internal/core/domain"
	"github.com/datathon/handouts-api/internal/core/ports"
)

const (
	demoUsername = "Gabriel"
	demoPassword = "test123"
)

var demoPostTitles = []string{"First Demo Post", "Second Demo Post"}

// Seeder fills an empty store with a demo user and two posts.
type Seeder struct {
	users    ports.UserRepository
	posts    ports.PostRepository
	verifier ports.CredentialVerifier
	log      zerolog.Logger
}

func NewSeeder(users ports.UserRepository, posts ports.PostRepository, verifier ports.CredentialVerifier, log zerolog.Logger) *Seeder {
	return &Seeder{users: users, posts: posts, verifier: verifier, log: log}
}

// Seed inserts the demo data when no user exists yet. It reports whether
// anything was written.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	n, err := s.users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	hash, err := s.verifier.Hash(demoPassword)
	if err != nil {
		return false, fmt.Errorf("hash demo password: %w", err)
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{Username: demoUsername, PasswordHash: hash, CreatedAt: now})
	if err != nil {
		return false, fmt.Errorf("seed user: %w", err)
	}

	for _, title := range demoPostTitles {
		if _, err := s.posts.Create(ctx, &domain.Post{Title: title, AuthorID: user.ID, CreatedAt: now}); err != nil {
			return false, fmt.Errorf("seed post %q: %w", title, err)
		}
	}

	s.log.Info().Uint("user_id", user.ID).Int("posts", len(demoPostTitles)).Msg("seeded demo user and posts")
	return true, nil
}
