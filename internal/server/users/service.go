// Package users glues the login flow together: credential verification,
// namespace resolution and token issuance.
package users

import (
	"context"
	"fmt"

	"github.com/storserv/storserv/internal/common"
	"github.com/storserv/storserv/internal/server/auth"
	"github.com/storserv/storserv/internal/server/creds"
	"github.com/storserv/storserv/internal/server/namespace"
)

type Service struct {
	creds    *creds.Service
	resolver *namespace.Resolver
	tokens   *auth.Service
}

func NewService(creds *creds.Service, resolver *namespace.Resolver, tokens *auth.Service) *Service {
	return &Service{
		creds:    creds,
		resolver: resolver,
		tokens:   tokens,
	}
}

// Login verifies the credentials and returns a signed token scoped to the
// user's namespace. Bad credentials fail with common.ErrorUnauthorized;
// common.ErrorSecretUnavailable propagates when the signing secret cannot be
// fetched.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	ok, err := s.creds.Verify(ctx, username, password)
	if err != nil {
		return "", fmt.Errorf("verifying credentials: %w", err)
	}
	if !ok {
		return "", common.ErrorUnauthorized
	}

	token, err := s.tokens.Issue(ctx, s.resolver.NamespaceFor(username))
	if err != nil {
		return "", err
	}

	return token, nil
}
