package leads

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for lead storage.
type Repository interface {
	// List returns all leads, newest-created first.
	List(ctx context.Context) ([]*Lead, error)
	Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error)
	// Update applies a partial merge. The patch never carries an
	// identifier; unknown fields are ignored.
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) error
}

// InMemoryRepository keeps leads in a map. Used by tests and local runs
// without a database.
type InMemoryRepository struct {
	mu    sync.RWMutex
	leads map[string]*Lead
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{leads: make(map[string]*Lead)}
}

// List returns all leads ordered newest-created first.
func (r *InMemoryRepository) List(ctx context.Context) ([]*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Lead, 0, len(r.leads))
	for _, l := range r.leads {
		cp := *l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Create validates and stores a new lead.
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	lead := &Lead{
		ID:              uuid.New().String(),
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
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	r.mu.Lock()
	r.leads[lead.ID] = lead
	r.mu.Unlock()

	return lead, nil
}

// Update merges the patch into the stored lead and stamps UpdatedAt.
func (r *InMemoryRepository) Update(ctx context.Context, id string, patch map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lead, ok := r.leads[id]
	if !ok {
		return ErrLeadNotFound
	}

	for k, v := range sanitizePatch(patch) {
		applyField(lead, k, v)
	}
	lead.UpdatedAt = time.Now().UTC()
	return nil
}

// Delete removes a lead by id.
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.leads[id]; !ok {
		return ErrLeadNotFound
	}
	delete(r.leads, id)
	return nil
}

func applyField(lead *Lead, field string, value any) {
	switch field {
	case "meetingSchedule":
		switch v := value.(type) {
		case nil:
			lead.MeetingSchedule = nil
		case string:
			if t, err := time.Parse(time.RFC3339, v); err == nil {
				lead.MeetingSchedule = &t
			}
		case time.Time:
			lead.MeetingSchedule = &v
		}
	case "terms":
		if m, ok := value.(map[string]any); ok {
			terms := make(map[string]string, len(m))
			for k, v := range m {
				if s, ok := v.(string); ok {
					terms[k] = s
				}
			}
			lead.Terms = terms
		} else if m, ok := value.(map[string]string); ok {
			lead.Terms = m
		}
	default:
		s, ok := value.(string)
		if !ok {
			return
		}
		switch field {
		case "name":
			lead.Name = s
		case "phone":
			lead.Phone = s
		case "description":
			lead.Description = s
		case "source":
			lead.Source = s
		case "handler":
			lead.Handler = s
		case "status":
			lead.Status = s
		case "followUp":
			lead.FollowUp = s
		case "sow":
			lead.SOW = s
		case "price":
			lead.Price = s
		}
	}
}
