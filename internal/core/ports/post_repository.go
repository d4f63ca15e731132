package ports

import (
	"context"

	"github.com/datathon/handouts-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id uint) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]domain.Post, error)
	// MarkRequested sets requested=true and returns the stored post.
	// Returns domain.ErrPostNotFound when no post has the given id.
	MarkRequested(ctx context.Context, id uint) (*domain.Post, error)
}
