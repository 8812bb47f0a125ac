package booking

import "errors"

var (
	// ErrSessionNotFound covers both unknown and expired wizard sessions.
	ErrSessionNotFound = errors.New("booking session not found or expired")

	// ErrStylistUnknown is returned when the selected stylist does not exist.
	ErrStylistUnknown = errors.New("selected stylist does not exist")

	// ErrInvalidSlot is returned for labels outside the canonical grid.
	ErrInvalidSlot = errors.New("selected time is not a valid slot")

	// ErrSlotTaken is the stale-selection conflict: the slot was bookable
	// when displayed but is no longer. The session is moved back to the
	// date/time step; the customer must pick again.
	ErrSlotTaken = errors.New("selected slot is no longer available")

	// ErrInvalidDetails is returned when contact details fail validation.
	ErrInvalidDetails = errors.New("contact details are incomplete or invalid")

	// ErrNotReadyToConfirm is returned when Confirm is called before the
	// wizard reached the review step with all selections in place.
	ErrNotReadyToConfirm = errors.New("booking session is not ready to confirm")

	// ErrInvalidStep is returned for out-of-range or forward step jumps.
	ErrInvalidStep = errors.New("invalid wizard step")
)
