package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/datathon/handouts-api/internal/core/domain"
	"github.com/datathon/handouts-api/internal/core/ports"
)

type PostService struct {
	posts  ports.PostRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, logger: logger}
}

// Create stores a new post with requested=false after checking that the
// author exists.
func (s *PostService) Create(ctx context.Context, title string, authorID uint) (*domain.Post, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.Malformed("title is required")
	}
	if authorID == 0 {
		return nil, domain.Malformed("author_id is required")
	}

	if _, err := s.users.FindByID(ctx, authorID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("lookup author: %w", err)
	}

	post, err := s.posts.Create(ctx, &domain.Post{
		Title:     title,
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Uint("author_id", authorID).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Uint("post_id", post.ID).Uint("author_id", authorID).Msg("post created")
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

// MarkRequested flags the post as requested. Repeating it is a no-op.
func (s *PostService) MarkRequested(ctx context.Context, id uint) (*domain.Post, error) {
	post, err := s.posts.MarkRequested(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("post_id", post.ID).Msg("post requested")
	return post, nil
}
