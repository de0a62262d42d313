package meetings

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func meetingRows(ids ...string) *pgxmock.Rows {
	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{
		"id", "lead_id", "datetime", "completed", "notes", "created_at", "updated_at",
	})
	for _, id := range ids {
		rows.AddRow(id, "6e7c2a38-90a7-4ba4-a2a4-d0fbd7a60d9d", now, false, "", now, now)
	}
	return rows
}

func TestPostgresCreateMeeting(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO meetings").
		WithArgs("6e7c2a38-90a7-4ba4-a2a4-d0fbd7a60d9d", at, "intro").
		WillReturnRows(meetingRows("11111111-1111-1111-1111-111111111111"))

	m, err := repo.Create(context.Background(), &CreateMeetingRequest{
		LeadID:   "6e7c2a38-90a7-4ba4-a2a4-d0fbd7a60d9d",
		Datetime: "2025-03-01T09:30:00Z",
		Notes:    "intro",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.ID != "11111111-1111-1111-1111-111111111111" {
		t.Errorf("unexpected id %s", m.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresCreateMeetingSoftLeadReference(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	// lead_id is a text column, so any non-empty reference inserts
	// unchanged instead of tripping a uuid cast.
	mock.ExpectQuery("INSERT INTO meetings").
		WithArgs("L1", at, "").
		WillReturnRows(meetingRows("11111111-1111-1111-1111-111111111111"))

	if _, err := repo.Create(context.Background(), &CreateMeetingRequest{
		LeadID:   "L1",
		Datetime: "2025-03-01T09:30:00Z",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresPatchWithFollowUpIsTransactional(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	completed := true
	next := time.Date(2025, 3, 8, 9, 30, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE meetings SET").
		WithArgs(completed, "22222222-2222-2222-2222-222222222222").
		WillReturnRows(meetingRows("22222222-2222-2222-2222-222222222222"))
	mock.ExpectQuery("INSERT INTO meetings").
		WithArgs("6e7c2a38-90a7-4ba4-a2a4-d0fbd7a60d9d", next).
		WillReturnRows(meetingRows("33333333-3333-3333-3333-333333333333"))
	mock.ExpectCommit()

	updated, followUp, err := repo.Patch(context.Background(), "22222222-2222-2222-2222-222222222222", &PatchMeetingRequest{
		Completed:           &completed,
		NextMeetingDatetime: &next,
	})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if updated == nil || followUp == nil {
		t.Fatal("expected both meetings back")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresPatchNotFoundRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	completed := true

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE meetings SET").
		WithArgs(completed, "22222222-2222-2222-2222-222222222222").
		WillReturnRows(meetingRows()) // no rows
	mock.ExpectRollback()

	_, _, err = repo.Patch(context.Background(), "22222222-2222-2222-2222-222222222222", &PatchMeetingRequest{
		Completed: &completed,
	})
	if !errors.Is(err, ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresDeleteMeetingNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	mock.ExpectExec("DELETE FROM meetings").
		WithArgs("22222222-2222-2222-2222-222222222222").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	if err := repo.Delete(context.Background(), "22222222-2222-2222-2222-222222222222"); !errors.Is(err, ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}
}
