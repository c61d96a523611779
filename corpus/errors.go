package corpus

import "errors"

var (
	// ErrMalformedHeader is returned when a recognized header line cannot be parsed.
	ErrMalformedHeader = errors.New("corpus: malformed header line")

	// ErrBadPath is returned when a path does not follow the dataset layout.
	ErrBadPath = errors.New("corpus: path outside dataset layout")

	// ErrUnknownStyle is returned for an unknown description style.
	ErrUnknownStyle = errors.New("corpus: unknown description style")

	// ErrNoPlaceholder is returned when a prompt template lacks the <GDL> marker.
	ErrNoPlaceholder = errors.New("corpus: template has no <GDL> placeholder")
)
