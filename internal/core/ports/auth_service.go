package ports

import (
	"context"

	"github.com/datathon/handouts-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// CredentialVerifier hashes and checks passwords. Implementations must salt,
// and Verify must compare in constant time.
type CredentialVerifier interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// LoginThrottle limits repeated failed logins per username.
type LoginThrottle interface {
	// Locked reports whether the username is currently locked out.
	Locked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}
