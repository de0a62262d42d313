package meetings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the subset of pgxpool.Pool the repository needs. The patch
// path begins a transaction so the update and the follow-up insert commit
// or roll back together.
type PgxPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores meetings in Postgres.
type PostgresRepository struct {
	pool PgxPool
}

// NewPostgresRepository initializes a repo backed by a pgx pool.
func NewPostgresRepository(pool PgxPool) *PostgresRepository {
	if pool == nil {
		panic("meetings: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

const meetingColumns = "id, lead_id, datetime, completed, notes, created_at, updated_at"

func scanMeeting(row pgx.Row) (*Meeting, error) {
	var m Meeting
	err := row.Scan(
		&m.ID,
		&m.LeadID,
		&m.Datetime,
		&m.Completed,
		&m.Notes,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns every meeting ordered by ascending datetime.
func (r *PostgresRepository) List(ctx context.Context) ([]*Meeting, error) {
	query := fmt.Sprintf("SELECT %s FROM meetings ORDER BY datetime ASC", meetingColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("meetings: list failed: %w", err)
	}
	defer rows.Close()

	var out []*Meeting
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, fmt.Errorf("meetings: scan failed: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("meetings: list failed: %w", err)
	}
	return out, nil
}

// Create inserts a new meeting with completed=false.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateMeetingRequest) (*Meeting, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	at, err := req.Resolve()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		INSERT INTO meetings (lead_id, datetime, completed, notes)
		VALUES ($1, $2, FALSE, $3)
		RETURNING %s
	`, meetingColumns)
	m, err := scanMeeting(r.pool.QueryRow(ctx, query, req.LeadID, at, req.Notes))
	if err != nil {
		return nil, fmt.Errorf("meetings: insert failed: %w", err)
	}
	return m, nil
}

// Patch updates the supplied fields and, when NextMeetingDatetime is set,
// inserts the follow-up meeting inside the same transaction.
func (r *PostgresRepository) Patch(ctx context.Context, id string, req *PatchMeetingRequest) (*Meeting, *Meeting, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("meetings: begin failed: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	set := make([]string, 0, 4)
	args := make([]any, 0, 4)
	if req.Datetime != nil {
		args = append(args, req.Datetime.UTC())
		set = append(set, fmt.Sprintf("datetime = $%d", len(args)))
	}
	if req.Notes != nil {
		args = append(args, *req.Notes)
		set = append(set, fmt.Sprintf("notes = $%d", len(args)))
	}
	if req.Completed != nil {
		args = append(args, *req.Completed)
		set = append(set, fmt.Sprintf("completed = $%d", len(args)))
	}
	set = append(set, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE meetings SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), meetingColumns)
	updated, err := scanMeeting(tx.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrMeetingNotFound
		}
		return nil, nil, fmt.Errorf("meetings: update failed: %w", err)
	}

	var next *Meeting
	if req.NextMeetingDatetime != nil {
		insert := fmt.Sprintf(`
			INSERT INTO meetings (lead_id, datetime, completed)
			VALUES ($1, $2, FALSE)
			RETURNING %s
		`, meetingColumns)
		next, err = scanMeeting(tx.QueryRow(ctx, insert, updated.LeadID, req.NextMeetingDatetime.UTC()))
		if err != nil {
			return nil, nil, fmt.Errorf("meetings: insert follow-up failed: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("meetings: commit failed: %w", err)
	}
	return updated, next, nil
}

// Delete removes the matching row.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM meetings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("meetings: delete failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMeetingNotFound
	}
	return nil
}
