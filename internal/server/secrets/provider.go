// Package secrets supplies the process-wide JWT signing secret. The secret
// lives in an external parameter store; it is fetched lazily on first use and
// cached for the lifetime of the process.
package secrets

import "context"

// Provider returns the signing secret used to issue and validate tokens.
// Implementations must return common.ErrorSecretUnavailable when no usable
// secret can be obtained.
type Provider interface {
	Secret(ctx context.Context) ([]byte, error)
}
