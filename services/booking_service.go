package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"staybook-backend/models"

	"gorm.io/gorm"
)

// BookingService wraps *gorm.DB and owns the booking persistence
// contract: records are written once, user-scoped, and never mutated.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// GetHotel loads the referenced hotel so the nightly rate used for the
// total is the server's, never the caller's.
func (s *BookingService) GetHotel(ctx context.Context, hotelID string) (models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.WithContext(ctx).First(&hotel, "id = ?", hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hotel, ErrHotelNotFound
		}
		return hotel, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	return hotel, nil
}

// Submit persists a validated booking as a single row under the
// caller's user id and returns the generated record id.
// Preconditions: the request passed ValidateBooking and total came from
// ComputeTotal. The total is frozen exactly as passed; creation time
// and status are set here, not by the caller. The insert is a single
// atomic row creation, so a failure leaves no partial write.
func (s *BookingService) Submit(ctx context.Context, req BookingRequest, hotel models.Hotel, rooms int, total float64) (string, error) {
	record := models.Booking{
		UserID:        req.UserID,
		HotelID:       hotel.ID,
		HotelName:     hotel.Name,
		HotelLocation: hotel.Location,
		HotelPrice:    hotel.Price,
		CheckIn:       req.CheckIn.UTC(),
		CheckOut:      req.CheckOut.UTC(),
		Rooms:         rooms,
		Total:         total,
		Status:        models.BookingStatusConfirmed,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return record.ID, nil
}

// moreRecent is the one ordering guarantee the listing provides:
// creation timestamp descending, record id as a tie-break so the order
// stays stable across refreshes.
func moreRecent(a, b models.Booking) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// ListBookings fetches every record under the user scope and re-sorts
// explicitly; the gateway's native query order is never trusted. A user
// with zero bookings gets an empty slice, not an error. Idempotent and
// side-effect free, so safe to call on every screen focus.
func (s *BookingService) ListBookings(ctx context.Context, userID uint) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return moreRecent(bookings[i], bookings[j])
	})
	return bookings, nil
}
