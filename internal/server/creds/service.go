package creds

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/storserv/storserv/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Verify reports whether password matches the stored hash for username.
// An unknown username and a wrong password are indistinguishable to the
// caller, so responses carry no user-enumeration signal. The password and
// hash are never logged or returned.
func (s *Service) Verify(ctx context.Context, username, password string) (bool, error) {
	hash, err := s.repo.GetHash(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("fetching credential record: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return false, nil
	}

	return true, nil
}
