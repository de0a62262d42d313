package leads

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores leads in Postgres.
type PostgresRepository struct {
	pool PgxPool
}

// NewPostgresRepository initializes a repo backed by a pgx pool.
func NewPostgresRepository(pool PgxPool) *PostgresRepository {
	if pool == nil {
		panic("leads: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

// List returns every lead, newest-created first.
func (r *PostgresRepository) List(ctx context.Context) ([]*Lead, error) {
	query := `
		SELECT id, name, phone, description, source, handler, status,
		       follow_up, sow, meeting_schedule, price, terms,
		       created_at, updated_at
		FROM leads
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("leads: list failed: %w", err)
	}
	defer rows.Close()

	var out []*Lead
	for rows.Next() {
		var lead Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.Name,
			&lead.Phone,
			&lead.Description,
			&lead.Source,
			&lead.Handler,
			&lead.Status,
			&lead.FollowUp,
			&lead.SOW,
			&lead.MeetingSchedule,
			&lead.Price,
			&lead.Terms,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("leads: scan failed: %w", err)
		}
		out = append(out, &lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leads: list failed: %w", err)
	}
	return out, nil
}

// Create inserts a new row and returns it with store-assigned id and
// timestamps.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	terms := req.Terms
	if terms == nil {
		terms = map[string]string{}
	}

	query := `
		INSERT INTO leads (name, phone, description, source, handler,
		                   status, follow_up, sow, meeting_schedule, price, terms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`
	var (
		id                   string
		createdAt, updatedAt time.Time
	)
	if err := r.pool.QueryRow(ctx, query,
		req.Name,
		req.Phone,
		req.Description,
		req.Source,
		req.Handler,
		req.Status,
		req.FollowUp,
		req.SOW,
		req.MeetingSchedule,
		req.Price,
		terms,
	).Scan(&id, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("leads: insert failed: %w", err)
	}

	return &Lead{
		ID:              id,
		Name:            req.Name,
		Phone:           req.Phone,
		Description:     req.Description,
		Source:          req.Source,
		Handler:         req.Handler,
		Status:          req.Status,
		FollowUp:        req.FollowUp,
		SOW:             req.SOW,
		MeetingSchedule: req.MeetingSchedule,
		Price:           req.Price,
		Terms:           req.Terms,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}, nil
}

// Update applies a partial merge and stamps updated_at. The SET clause is
// built from the patch-column whitelist in deterministic order.
func (r *PostgresRepository) Update(ctx context.Context, id string, patch map[string]any) error {
	patch = sanitizePatch(patch)

	fields := make([]string, 0, len(patch))
	for k := range patch {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	set := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+1)
	for i, f := range fields {
		set = append(set, fmt.Sprintf("%s = $%d", patchColumns[f], i+1))
		args = append(args, patch[f])
	}
	set = append(set, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE leads SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("leads: update failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeadNotFound
	}
	return nil
}

// Delete removes the matching row.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("leads: delete failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeadNotFound
	}
	return nil
}
