package meetings

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for meeting storage.
type Repository interface {
	// List returns all meetings ordered by ascending datetime.
	List(ctx context.Context) ([]*Meeting, error)
	Create(ctx context.Context, req *CreateMeetingRequest) (*Meeting, error)
	// Patch applies the supplied fields and, when NextMeetingDatetime is
	// set, creates the follow-up meeting in the same operation. It
	// returns the updated meeting and the follow-up (nil if none).
	Patch(ctx context.Context, id string, req *PatchMeetingRequest) (*Meeting, *Meeting, error)
	Delete(ctx context.Context, id string) error
}

// InMemoryRepository keeps meetings in a map for tests and local runs.
type InMemoryRepository struct {
	mu       sync.RWMutex
	meetings map[string]*Meeting
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{meetings: make(map[string]*Meeting)}
}

// List returns all meetings ordered by ascending datetime.
func (r *InMemoryRepository) List(ctx context.Context) ([]*Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Meeting, 0, len(r.meetings))
	for _, m := range r.meetings {
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Datetime.Before(out[j].Datetime)
	})
	return out, nil
}

// Create validates and stores a new meeting with completed=false.
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateMeetingRequest) (*Meeting, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	at, err := req.Resolve()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	m := &Meeting{
		ID:        uuid.New().String(),
		LeadID:    req.LeadID,
		Datetime:  at,
		Completed: false,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	r.meetings[m.ID] = m
	r.mu.Unlock()

	return m, nil
}

// Patch applies the supplied fields and optionally creates a follow-up.
func (r *InMemoryRepository) Patch(ctx context.Context, id string, req *PatchMeetingRequest) (*Meeting, *Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.meetings[id]
	if !ok {
		return nil, nil, ErrMeetingNotFound
	}

	if req.Datetime != nil {
		m.Datetime = req.Datetime.UTC()
	}
	if req.Notes != nil {
		m.Notes = *req.Notes
	}
	if req.Completed != nil {
		m.Completed = *req.Completed
	}
	m.UpdatedAt = time.Now().UTC()

	var next *Meeting
	if req.NextMeetingDatetime != nil {
		now := time.Now().UTC()
		next = &Meeting{
			ID:        uuid.New().String(),
			LeadID:    m.LeadID,
			Datetime:  req.NextMeetingDatetime.UTC(),
			Completed: false,
			CreatedAt: now,
			UpdatedAt: now,
		}
		r.meetings[next.ID] = next
	}

	updated := *m
	return &updated, next, nil
}

// Delete removes a meeting by id.
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.meetings[id]; !ok {
		return ErrMeetingNotFound
	}
	delete(r.meetings, id)
	return nil
}
