package booking

import "errors"

var (
	// ErrUnknownTreatment is returned when a booking names no catalog service.
	ErrUnknownTreatment = errors.New("unknown treatment")
	// ErrUnknownSlot is returned when a booking's time slot is not one of the service's slots.
	ErrUnknownSlot = errors.New("time slot not offered by treatment")
)
