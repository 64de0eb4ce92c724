package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/passmint/passmint-go/internal/model"
)

func TestUserCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("a@example.com", "$argon2id$...").
		WillReturnResult(sqlmock.NewResult(5, 1))

	user := &model.User{Email: "a@example.com", AuthHash: "$argon2id$..."}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if user.ID != 5 {
		t.Fatalf("expected generated ID 5, got %d", user.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("a@example.com", "hash").
		WillReturnError(errors.New("Error 1062: Duplicate entry 'a@example.com' for key 'users.email'"))

	err = repo.Create(context.Background(), &model.User{Email: "a@example.com", AuthHash: "hash"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserGetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	repo := NewUserRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT id, email, auth_hash, created_at, updated_at FROM users WHERE email = \?`).
		WithArgs("a@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "auth_hash", "created_at", "updated_at"}).
			AddRow(5, "a@example.com", "hash", now, now))

	user, err := repo.GetByEmail(context.Background(), "a@example.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if user.ID != 5 || user.AuthHash != "hash" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT id, email, auth_hash, created_at, updated_at FROM users WHERE id = \?`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "auth_hash", "created_at", "updated_at"}))

	_, err = repo.GetByID(context.Background(), 99)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	if isDuplicateEntryError(nil) {
		t.Fatal("nil error should not be a duplicate entry error")
	}
	if isDuplicateEntryError(ErrUserNotFound) {
		t.Fatal("ErrUserNotFound should not be a duplicate entry error")
	}
	if !isDuplicateEntryError(errors.New("Error 1062: Duplicate entry 'x'")) {
		t.Fatal("expected duplicate entry error to be detected")
	}
}
