package service

import (
	"context"
	"fmt"

	"github.com/datathon/handouts-api/internal/core/ports"
)

type ProfileService struct {
	users ports.UserRepository
	posts ports.PostRepository
}

func NewProfileService(users ports.UserRepository, posts ports.PostRepository) *ProfileService {
	return &ProfileService{users: users, posts: posts}
}

// GetProfile returns the user and exactly the posts they authored.
func (s *ProfileService) GetProfile(ctx context.Context, userID uint) (*ports.Profile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.ListByAuthor(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list posts for user %d: %w", user.ID, err)
	}

	return &ports.Profile{User: user, Posts: posts}, nil
}
