package leads

import (
	"strings"
	"time"
)

// Sources enumerates where a lead came from.
var Sources = []string{"Justdial", "Personal", "Other"}

// Handlers enumerates the staff members a lead can be assigned to.
var Handlers = []string{"Anas", "Aman"}

// Lead is a sales lead tracked by the back-office.
type Lead struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Phone           string            `json:"phone"`
	Description     string            `json:"description,omitempty"`
	Source          string            `json:"source,omitempty"`
	Handler         string            `json:"handler,omitempty"`
	Status          string            `json:"status,omitempty"`
	FollowUp        string            `json:"followUp,omitempty"`
	SOW             string            `json:"sow,omitempty"`
	MeetingSchedule *time.Time        `json:"meetingSchedule,omitempty"`
	Price           string            `json:"price,omitempty"`
	Terms           map[string]string `json:"terms,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// CreateLeadRequest is the request body for creating a lead.
type CreateLeadRequest struct {
	Name            string            `json:"name"`
	Phone           string            `json:"phone"`
	Description     string            `json:"description"`
	Source          string            `json:"source"`
	Handler         string            `json:"handler"`
	Status          string            `json:"status"`
	FollowUp        string            `json:"followUp"`
	SOW             string            `json:"sow"`
	MeetingSchedule *time.Time        `json:"meetingSchedule"`
	Price           string            `json:"price"`
	Terms           map[string]string `json:"terms"`
}

// Validate checks the create request. Name and phone are the only hard
// requirements; enumerated fields are checked when supplied.
func (r *CreateLeadRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidName
	}
	if digitCount(r.Phone) < 10 {
		return ErrInvalidPhone
	}
	if r.Source != "" && !contains(Sources, r.Source) {
		return ErrInvalidSource
	}
	if r.Handler != "" && !contains(Handlers, r.Handler) {
		return ErrInvalidHandler
	}
	if r.SOW != "" && r.SOW != "Yes" && r.SOW != "No" {
		return ErrInvalidSOW
	}
	return nil
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// patchColumns maps JSON field names accepted in a partial update to their
// database columns. Anything outside this map, identifiers included, is
// dropped from the patch.
var patchColumns = map[string]string{
	"name":            "name",
	"phone":           "phone",
	"description":     "description",
	"source":          "source",
	"handler":         "handler",
	"status":          "status",
	"followUp":        "follow_up",
	"sow":             "sow",
	"meetingSchedule": "meeting_schedule",
	"price":           "price",
	"terms":           "terms",
}

// sanitizePatch keeps only known fields and normalizes empty timestamps to
// NULL so the store never sees an unparseable instant.
func sanitizePatch(patch map[string]any) map[string]any {
	out := make(map[string]any, len(patch))
	for k, v := range patch {
		if _, ok := patchColumns[k]; !ok {
			continue
		}
		if k == "meetingSchedule" {
			if s, ok := v.(string); ok && s == "" {
				v = nil
			}
		}
		out[k] = v
	}
	return out
}
