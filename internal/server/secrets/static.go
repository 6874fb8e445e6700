package secrets

import (
	"context"

	"github.com/storserv/storserv/internal/common"
)

// StaticProvider serves a secret configured directly (development setups and
// tests). An empty value counts as unavailable, same as a failed fetch.
type StaticProvider struct {
	secret []byte
}

func NewStaticProvider(secret string) *StaticProvider {
	return &StaticProvider{secret: []byte(secret)}
}

func (p *StaticProvider) Secret(ctx context.Context) ([]byte, error) {
	if len(p.secret) == 0 {
		return nil, common.ErrorSecretUnavailable
	}
	return p.secret, nil
}
