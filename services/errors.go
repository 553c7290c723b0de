package services

import "errors"

// Booking error taxonomy. The first three are user-input/state errors
// recovered by re-prompting; WriteFailed and ReadFailed are I/O errors
// surfaced to the caller as retryable failures, never swallowed.
var (
	ErrNotAuthenticated = errors.New("not_authenticated")
	ErrInvalidDateRange = errors.New("invalid_date_range")
	ErrInvalidRoomCount = errors.New("invalid_room_count")
	ErrWriteFailed      = errors.New("write_failed")
	ErrReadFailed       = errors.New("read_failed")
	ErrHotelNotFound    = errors.New("hotel_not_found")
	ErrInvalidReview    = errors.New("invalid_review")
)
