package meetings

import (
	"strings"
	"time"
)

// Meeting is a scheduled appointment with a lead. LeadID is a soft
// reference: the lead may have been deleted, in which case the UI renders
// it as "Unknown".
type Meeting struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"leadId"`
	Datetime  time.Time `json:"datetime"`
	Completed bool      `json:"completed"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateMeetingRequest is the request body for scheduling a meeting. The
// time is supplied either as an absolute RFC3339 datetime or as the
// 12-hour split form.
type CreateMeetingRequest struct {
	LeadID   string     `json:"leadId"`
	Datetime string     `json:"datetime"`
	Schedule *SplitTime `json:"schedule"`
	Notes    string     `json:"notes"`
}

// Validate checks the request shape without touching the store.
func (r *CreateMeetingRequest) Validate() error {
	if strings.TrimSpace(r.LeadID) == "" {
		return ErrMissingLead
	}
	_, err := r.Resolve()
	return err
}

// Resolve produces the absolute instant for the meeting.
func (r *CreateMeetingRequest) Resolve() (time.Time, error) {
	if r.Datetime != "" {
		t, err := time.Parse(time.RFC3339, r.Datetime)
		if err != nil {
			return time.Time{}, ErrMissingDatetime
		}
		return t.UTC(), nil
	}
	if r.Schedule != nil {
		return r.Schedule.Instant()
	}
	return time.Time{}, ErrMissingDatetime
}

// PatchMeetingRequest carries a partial update. Nil fields are left
// untouched. NextMeetingDatetime additionally schedules a follow-up
// meeting for the same lead in the same call.
type PatchMeetingRequest struct {
	Datetime            *time.Time `json:"datetime"`
	Notes               *string    `json:"notes"`
	Completed           *bool      `json:"completed"`
	NextMeetingDatetime *time.Time `json:"nextMeetingDatetime"`
}

// PatchResponse is returned by the patch endpoint; NextMeeting is set only
// when a follow-up was created.
type PatchResponse struct {
	Meeting     *Meeting `json:"meeting"`
	NextMeeting *Meeting `json:"nextMeeting,omitempty"`
}

// Upcoming filters to non-completed meetings ordered by ascending time.
// Overdue meetings stay in the list until someone marks them completed;
// the admin view renders the same subsequence.
func Upcoming(all []*Meeting) []*Meeting {
	out := make([]*Meeting, 0, len(all))
	for _, m := range all {
		if !m.Completed {
			out = append(out, m)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Datetime.Before(out[j-1].Datetime); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
