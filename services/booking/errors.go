// File: services/booking/errors.go
package booking

import "errors"

// ErrSessionNotFound is returned when a session has expired or never existed.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ErrInvalidDate is returned when a supplied date is not "YYYY-MM-DD".
var ErrInvalidDate = errors.New("invalid date")

// ErrNoDateSelected is returned when a slot operation runs before any date
// has been selected.
var ErrNoDateSelected = errors.New("no date selected")

// ErrNoSlotChosen is returned when confirmation runs without a chosen slot.
var ErrNoSlotChosen = errors.New("no slot chosen")

// ErrSlotNotInList is returned when the chosen slot is not part of the
// currently resolved list, e.g. after the date changed underneath it.
var ErrSlotNotInList = errors.New("slot not present in resolved list")
