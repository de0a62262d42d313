package leads

import "errors"

var (
	// ErrInvalidName is returned when the name is missing or blank.
	ErrInvalidName = errors.New("name is required")

	// ErrInvalidPhone is returned when the phone has fewer than 10 digits.
	ErrInvalidPhone = errors.New("phone must be at least 10 digits")

	// ErrInvalidSource is returned for a source outside the enumeration.
	ErrInvalidSource = errors.New("unknown lead source")

	// ErrInvalidHandler is returned for a handler outside the staff list.
	ErrInvalidHandler = errors.New("unknown lead handler")

	// ErrInvalidSOW is returned when sow is neither "Yes" nor "No".
	ErrInvalidSOW = errors.New(`sow must be "Yes" or "No"`)

	// ErrLeadNotFound is returned when no lead matches the identifier.
	ErrLeadNotFound = errors.New("lead not found")
)
