package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/models"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &sessionRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveSession_Upsert(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	session := models.Session{
		PlayerID: "3f2c9a0e-1b4d-4d2e-8f6a-0c9b8a7d6e5f",
		Username: "john_doe",
		Token:    "deadbeef",
	}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(session.PlayerID, session.Username, session.Token, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SaveSession(context.Background(), session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveSession_ExecError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sessions").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.SaveSession(context.Background(), models.Session{PlayerID: "id", Username: "u", Token: "t"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Errorf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestGetSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	savedAt := time.Now()
	rows := sqlmock.
		NewRows([]string{"player_id", "username", "token", "saved_at"}).
		AddRow("3f2c9a0e-1b4d-4d2e-8f6a-0c9b8a7d6e5f", "john_doe", "deadbeef", savedAt)

	mock.ExpectQuery("SELECT(.|\\s)+FROM sessions").WillReturnRows(rows)

	session, err := repo.GetSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Username != "john_doe" {
		t.Errorf("expected Username=john_doe, got %s", session.Username)
	}
	if session.Token != "deadbeef" {
		t.Errorf("expected Token=deadbeef, got %s", session.Token)
	}
	if !session.SavedAt.Equal(savedAt) {
		t.Errorf("expected SavedAt=%v, got %v", savedAt, session.SavedAt)
	}
}

func TestGetSession_NotFound(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	empty := sqlmock.NewRows([]string{"player_id", "username", "token", "saved_at"})
	mock.ExpectQuery("SELECT(.|\\s)+FROM sessions").WillReturnRows(empty)

	_, err := repo.GetSession(context.Background())
	if !errors.Is(err, ErrLocalSessionNotFound) {
		t.Errorf("expected ErrLocalSessionNotFound, got %v", err)
	}
}

func TestDeleteSession_NoRowIsNoError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteSession(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
