package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNights(t *testing.T) {
	assert.Equal(t, 2, Nights(day("2024-01-01"), day("2024-01-03")))
	assert.Equal(t, 1, Nights(day("2024-01-01"), day("2024-01-02")))

	// Same instant yields zero nights.
	assert.Equal(t, 0, Nights(day("2024-01-01"), day("2024-01-01")))

	// Inverted ranges clamp to zero, never negative.
	assert.Equal(t, 0, Nights(day("2024-01-05"), day("2024-01-01")))
}

func TestNightsPartialDaysRoundUp(t *testing.T) {
	checkIn := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)

	// 20 hours still counts as one night.
	assert.Equal(t, 1, Nights(checkIn, time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)))

	// 26 hours rounds up to two.
	assert.Equal(t, 2, Nights(checkIn, time.Date(2024, 3, 11, 16, 0, 0, 0, time.UTC)))
}

func TestComputeTotal(t *testing.T) {
	total := ComputeTotal(day("2024-01-01"), day("2024-01-03"), 2, 120)
	assert.Equal(t, 480.0, total)

	// Zero-night stays cost nothing regardless of rooms or rate.
	assert.Equal(t, 0.0, ComputeTotal(day("2024-01-01"), day("2024-01-01"), 3, 250))
	assert.Equal(t, 0.0, ComputeTotal(day("2024-01-05"), day("2024-01-01"), 1, 120))
}

func TestComputeTotalScalesLinearly(t *testing.T) {
	checkIn, checkOut := day("2024-06-01"), day("2024-06-04")

	base := ComputeTotal(checkIn, checkOut, 1, 95)
	assert.Equal(t, 285.0, base)
	assert.Equal(t, base*4, ComputeTotal(checkIn, checkOut, 4, 95))
	assert.Equal(t, base*2, ComputeTotal(checkIn, checkOut, 1, 190))
}
