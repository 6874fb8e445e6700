package auth

import (
	"context"
	"time"

	"github.com/storserv/storserv/internal/server/secrets"
)

// Service binds token issuance and validation to the externally sourced
// signing secret. The secret is fetched through the provider on every call;
// the provider caches it, so only the first call pays for the round trip.
type Service struct {
	secrets  secrets.Provider
	validity time.Duration
}

func NewService(provider secrets.Provider, validity time.Duration) *Service {
	return &Service{secrets: provider, validity: validity}
}

// Issue creates a signed token scoped to the given namespace. Fails with
// common.ErrorSecretUnavailable when the signing secret cannot be obtained.
func (s *Service) Issue(ctx context.Context, namespace string) (string, error) {
	secret, err := s.secrets.Secret(ctx)
	if err != nil {
		return "", err
	}
	return GenerateToken(namespace, secret, s.validity)
}

// Validate checks the token signature and expiry and returns the namespace
// claim. Expired tokens fail with common.ErrTokenExpired, anything else that
// does not verify with common.ErrInvalidToken.
func (s *Service) Validate(ctx context.Context, token string) (string, error) {
	secret, err := s.secrets.Secret(ctx)
	if err != nil {
		return "", err
	}
	return GetNamespaceFromToken(token, secret)
}
