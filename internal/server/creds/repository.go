// Package creds verifies submitted username/password pairs against the
// externally provisioned credential store.
package creds

import "context"

// Repository fetches credential records. Records are provisioned by an
// external process; this system only ever reads them.
type Repository interface {
	// GetHash returns the stored bcrypt hash for username, or
	// common.ErrorNotFound when no record exists.
	GetHash(ctx context.Context, username string) ([]byte, error)
}
