package creds

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/storserv/storserv/internal/common"
	"github.com/storserv/storserv/internal/server/migrations"
)

// PostgresRepository reads credential records from a users table, for
// deployments that provision accounts in PostgreSQL instead of the users
// bucket.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetHash(ctx context.Context, username string) ([]byte, error) {
	query :=
		`SELECT password_hash FROM users
		 WHERE username = $1
		 `

	var hash []byte
	err := r.db.QueryRowContext(ctx, query, username).Scan(&hash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return hash, nil
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
