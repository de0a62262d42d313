package meetings

import "errors"

var (
	// ErrMissingLead is returned when a meeting has no lead reference.
	ErrMissingLead = errors.New("leadId is required")

	// ErrMissingDatetime is returned when neither an absolute datetime nor
	// a 12-hour schedule is supplied.
	ErrMissingDatetime = errors.New("datetime is required")

	// ErrBadSplitTime is returned when the 12-hour split fields do not
	// form a valid clock time.
	ErrBadSplitTime = errors.New("invalid 12-hour time")

	// ErrMeetingNotFound is returned when no meeting matches the identifier.
	ErrMeetingNotFound = errors.New("meeting not found")
)
