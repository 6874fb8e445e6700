package creds

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/storserv/storserv/internal/common"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestPostgresGetHash_Found(t *testing.T) {
	db, mock, repo := postgresRepoFixture(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT password_hash FROM users")).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"password_hash"}).AddRow([]byte("$2a$10$hash")))

	hash, err := repo.GetHash(context.Background(), "admin")
	if err != nil {
		t.Fatalf("GetHash error: %v", err)
	}
	if string(hash) != "$2a$10$hash" {
		t.Fatalf("hash mismatch: got %q", hash)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresGetHash_NotFound(t *testing.T) {
	db, mock, repo := postgresRepoFixture(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT password_hash FROM users")).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetHash(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestPostgresGetHash_QueryError(t *testing.T) {
	db, mock, repo := postgresRepoFixture(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT password_hash FROM users")).
		WithArgs("admin").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetHash(context.Background(), "admin")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("transport failure must not look like a missing record")
	}
}

func postgresRepoFixture(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresRepository) {
	t.Helper()
	db, mock := newSQLMockDB(t)
	return db, mock, NewPostgresRepository(db)
}
