package property

import "errors"

var (
	// ErrGraphNil is returned by NewExtractor for a nil graph.
	ErrGraphNil = errors.New("property: graph is nil")

	// ErrNeedRandSource is returned by NewExtractor for a nil rng.
	ErrNeedRandSource = errors.New("property: rand source required")

	// ErrUnknownName is returned by ParseName.
	ErrUnknownName = errors.New("property: unknown property name")

	// ErrReservedName is returned when a reserved name is requested or stored.
	ErrReservedName = errors.New("property: reserved property is never populated")

	// ErrDuplicateProperty is returned when a property is added twice.
	ErrDuplicateProperty = errors.New("property: property already extracted")

	// ErrFrozen is returned when adding to a record that was already returned.
	ErrFrozen = errors.New("property: record is frozen")
)
