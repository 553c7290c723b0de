package services

import (
	"strconv"
	"strings"
	"time"
)

// BookingRequest is the ephemeral, client-constructed booking attempt.
// Rooms stays a raw string until validation: a count that does not
// parse as a positive integer is rejected, never defaulted.
type BookingRequest struct {
	HotelID  string
	CheckIn  time.Time
	CheckOut time.Time
	Rooms    string
	UserID   uint
}

// ValidateBooking enforces the acceptance invariants and reports the
// first violation. Checks run in order: authentication, then the date
// range (check-out must be strictly after check-in), then the room
// count. On success it returns the parsed room count.
func ValidateBooking(req BookingRequest, authenticated bool) (int, error) {
	if !authenticated {
		return 0, ErrNotAuthenticated
	}
	if !req.CheckOut.After(req.CheckIn) {
		return 0, ErrInvalidDateRange
	}
	rooms, err := strconv.Atoi(strings.TrimSpace(req.Rooms))
	if err != nil || rooms < 1 {
		return 0, ErrInvalidRoomCount
	}
	return rooms, nil
}
