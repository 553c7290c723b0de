package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"staybook-backend/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Hotel{}, &models.Review{}, &models.Booking{}))
	return db
}

func seedTestHotel(t *testing.T, db *gorm.DB) models.Hotel {
	t.Helper()
	hotel := models.Hotel{
		ID:       "1",
		Name:     "Seaside Paradise Resort",
		Location: "Cape Town, South Africa",
		Rating:   4.8,
		Price:    120,
		Source:   "seed",
	}
	require.NoError(t, db.Create(&hotel).Error)
	return hotel
}

func TestBookingSubmitAndList(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db)
	hotel := seedTestHotel(t, db)
	ctx := context.Background()

	req := BookingRequest{
		HotelID:  hotel.ID,
		CheckIn:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		UserID:   42,
	}
	total := ComputeTotal(req.CheckIn, req.CheckOut, 2, hotel.Price)

	id, err := svc.Submit(ctx, req, hotel, 2, total)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	bookings, err := svc.ListBookings(ctx, 42)
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	got := bookings[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, uint(42), got.UserID)
	assert.Equal(t, hotel.ID, got.HotelID)
	assert.Equal(t, hotel.Name, got.HotelName)
	assert.Equal(t, 480.0, got.Total)
	assert.Equal(t, 2, got.Rooms)
	assert.Equal(t, models.BookingStatusConfirmed, got.Status)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestListBookingsEmptyIsNotAnError(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db)

	bookings, err := svc.ListBookings(context.Background(), 999)
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestListBookingsScopedToUser(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db)
	hotel := seedTestHotel(t, db)
	ctx := context.Background()

	req := BookingRequest{
		CheckIn:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC),
	}

	req.UserID = 1
	_, err := svc.Submit(ctx, req, hotel, 1, hotel.Price)
	require.NoError(t, err)

	req.UserID = 2
	_, err = svc.Submit(ctx, req, hotel, 1, hotel.Price)
	require.NoError(t, err)

	mine, err := svc.ListBookings(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, uint(1), mine[0].UserID)
}

func TestListBookingsSortedNewestFirst(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db)
	ctx := context.Background()

	// Insert out of chronological order to prove the listing re-sorts
	// rather than trusting insertion order.
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, offset := range []time.Duration{2 * time.Hour, 0, 5 * time.Hour, time.Hour} {
		record := models.Booking{
			ID:        fmt.Sprintf("b-%d", offset/time.Hour),
			UserID:    7,
			HotelID:   "1",
			Rooms:     1,
			Status:    models.BookingStatusConfirmed,
			CreatedAt: base.Add(offset),
		}
		require.NoError(t, db.Create(&record).Error)
	}

	bookings, err := svc.ListBookings(ctx, 7)
	require.NoError(t, err)
	require.Len(t, bookings, 4)
	for i := 1; i < len(bookings); i++ {
		assert.False(t, bookings[i].CreatedAt.After(bookings[i-1].CreatedAt),
			"bookings[%d] is newer than bookings[%d]", i, i-1)
	}
	assert.Equal(t, "b-5", bookings[0].ID)
	assert.Equal(t, "b-0", bookings[3].ID)
}

func TestBookingSnapshotIsFrozen(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db)
	hotel := seedTestHotel(t, db)
	ctx := context.Background()

	req := BookingRequest{
		CheckIn:  time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 4, 4, 0, 0, 0, 0, time.UTC),
		UserID:   5,
	}
	_, err := svc.Submit(ctx, req, hotel, 1, ComputeTotal(req.CheckIn, req.CheckOut, 1, hotel.Price))
	require.NoError(t, err)

	// Raising the hotel's rate afterwards must not touch the record.
	require.NoError(t, db.Model(&models.Hotel{}).Where("id = ?", hotel.ID).Update("price", 999).Error)

	bookings, err := svc.ListBookings(ctx, 5)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, 120.0, bookings[0].HotelPrice)
	assert.Equal(t, 360.0, bookings[0].Total)
}

func TestGetHotelNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db)

	_, err := svc.GetHotel(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestMoreRecent(t *testing.T) {
	earlier := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Minute)

	a := models.Booking{ID: "a", CreatedAt: later}
	b := models.Booking{ID: "b", CreatedAt: earlier}
	assert.True(t, moreRecent(a, b))
	assert.False(t, moreRecent(b, a))

	// Equal timestamps fall back to the id so ordering stays stable.
	b.CreatedAt = later
	assert.True(t, moreRecent(b, a))
	assert.False(t, moreRecent(a, b))
}
