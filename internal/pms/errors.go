package pms

import "errors"

// Domain-specific errors for the pms package.
var (
	// ErrNotFound is the documented "no such record" sentinel for all lookups.
	ErrNotFound = errors.New("record not found")

	ErrInvalidDates    = errors.New("invalid or reversed stay dates")
	ErrUnknownRoomType = errors.New("unknown room type")
	ErrNoAvailability  = errors.New("no availability for the requested stay")
	ErrCapacityExceeded = errors.New("party size exceeds room capacity")
)
