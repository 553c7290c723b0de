package services

import (
	"math"
	"time"
)

// Nights returns the whole-day ceiling of the stay duration, floored
// at 0 so an inverted range never produces a negative count.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 0 {
		return 0
	}
	return nights
}

// ComputeTotal is the pricing engine: nights * nightlyRate * rooms.
// Pure and side-effect free, so it is safe to call on every input
// change to drive a live-updating quote.
func ComputeTotal(checkIn, checkOut time.Time, rooms int, nightlyRate float64) float64 {
	return float64(Nights(checkIn, checkOut)) * nightlyRate * float64(rooms)
}
