package ports

import (
	"context"

	"github.com/datathon/handouts-api/internal/core/domain"
)

// PostService defines use-case operations for posts.
type PostService interface {
	Create(ctx context.Context, title string, authorID uint) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	MarkRequested(ctx context.Context, id uint) (*domain.Post, error)
}

// Profile is a user together with the posts they authored.
type Profile struct {
	User  *domain.User
	Posts []domain.Post
}

// ProfileService resolves user profiles.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uint) (*Profile, error)
}
