package creds

import (
	"context"

	"github.com/storserv/storserv/internal/server/blob"
)

// S3Repository reads credential records from the fixed users bucket: one
// object per username whose body is the bcrypt hash. This is the well-known
// credential namespace, distinct from every per-user data namespace.
type S3Repository struct {
	store  blob.Store
	bucket string
}

func NewS3Repository(store blob.Store, bucket string) *S3Repository {
	return &S3Repository{store: store, bucket: bucket}
}

func (r *S3Repository) GetHash(ctx context.Context, username string) ([]byte, error) {
	value, err := r.store.Get(ctx, r.bucket, username)
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}
