package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
)

func TestPostgresRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("anas", "anas@blackos.example", "hashed").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow("u1", now))

	repo := NewPostgresRepository(mock)
	user, err := repo.Create(context.Background(), "anas", "anas@blackos.example", "hashed")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID != "u1" || user.Username != "anas" {
		t.Errorf("unexpected user %+v", user)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresRepository_CreateDuplicateEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("anas", "anas@blackos.example", "hashed").
		WillReturnError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_email_idx"})

	repo := NewPostgresRepository(mock)
	if _, err := repo.Create(context.Background(), "anas", "anas@blackos.example", "hashed"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresRepository_FindByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at`).
		WithArgs("anas@blackos.example").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
			AddRow("u1", "anas", "anas@blackos.example", "hashed", now))

	repo := NewPostgresRepository(mock)
	user, err := repo.FindByEmail(context.Background(), "anas@blackos.example")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if user.PasswordHash != "hashed" {
		t.Errorf("unexpected user %+v", user)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresRepository_FindByEmailNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at`).
		WithArgs("ghost@blackos.example").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}))

	repo := NewPostgresRepository(mock)
	if _, err := repo.FindByEmail(context.Background(), "ghost@blackos.example"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
