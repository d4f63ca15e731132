package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/datathon/handouts-api/internal/core/domain"
	"github.com/datathon/handouts-api/internal/core/ports"
)

// timingGuard is hashed once so logins for unknown usernames cost the same
// as a wrong password.
const timingGuard = "handouts-timing-guard"

// maxPasswordBytes is bcrypt's input limit. It counts bytes, not characters.
const maxPasswordBytes = 72

// AuthService implements registration and login.
type AuthService struct {
	repo      ports.UserRepository
	verifier  ports.CredentialVerifier
	throttle  ports.LoginThrottle
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
	dummyHash string
}

// NewAuthService wires the service. A nil throttle disables lockouts.
func NewAuthService(
	repo ports.UserRepository,
	verifier ports.CredentialVerifier,
	throttle ports.LoginThrottle,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if throttle == nil {
		throttle = noopThrottle{}
	}
	dummy, err := verifier.Hash(timingGuard)
	if err != nil {
		log.Warn().Err(err).Msg("could not prepare timing guard hash")
	}
	return &AuthService{
		repo:      repo,
		verifier:  verifier,
		throttle:  throttle,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
		dummyHash: dummy,
	}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.Malformed("username is required")
	}
	if password == "" {
		return nil, domain.Malformed("password is required")
	}
	if len(password) > maxPasswordBytes {
		return nil, domain.Malformed(fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}

	hash, err := s.verifier.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and returns a signed token. Unknown
// usernames and wrong passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	locked, err := s.throttle.Locked(ctx, username)
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("throttle check failed, continuing")
	} else if locked {
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, err
		}
		s.verifier.Verify(s.dummyHash, password)
		s.recordFailure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	if !s.verifier.Verify(user.PasswordHash, password) {
		s.recordFailure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := s.throttle.Reset(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("throttle reset failed")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return token, user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("throttle record failed")
	}
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(user.ID), 10),
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

type noopThrottle struct{}

func (noopThrottle) Locked(context.Context, string) (bool, error) { return false, nil }
func (noopThrottle) RecordFailure(context.Context, string) error  { return nil }
func (noopThrottle) Reset(context.Context, string) error          { return nil }
