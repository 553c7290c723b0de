package controllers

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"staybook-backend/middleware"
	"staybook-backend/services"
	"staybook-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// bookingPayload accepts the room count as either a JSON string or a
// number; it is kept raw so validation decides whether it parses.
type bookingPayload struct {
	HotelID  string `json:"hotel_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	Rooms    any    `json:"rooms"`
}

func roomsAsString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

// parseBookingDate accepts a plain date or an RFC3339 instant; either
// way the result is compared and stored as UTC.
func parseBookingDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", raw)
}

// QuoteBooking computes the live total for the current inputs. No
// validation beyond date parsing: a quote is display feedback, not an
// acceptance. An unparseable room count falls back to 1 for display
// only; acceptance still rejects it.
func (ctrl *BookingController) QuoteBooking(c *gin.Context) {
	var payload bookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "hotel_id, check_in and check_out are required")
		return
	}

	checkIn, err := parseBookingDate(payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", "check_in must be YYYY-MM-DD or RFC3339")
		return
	}
	checkOut, err := parseBookingDate(payload.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", "check_out must be YYYY-MM-DD or RFC3339")
		return
	}

	rooms, err := strconv.Atoi(roomsAsString(payload.Rooms))
	if err != nil || rooms < 1 {
		rooms = 1
	}

	hotel, err := ctrl.BookingSvc.GetHotel(c.Request.Context(), payload.HotelID)
	if err != nil {
		if errors.Is(err, services.ErrHotelNotFound) {
			utils.JSONError(c, http.StatusNotFound, "error.hotelNotFound", "hotel not found")
			return
		}
		utils.JSONRetryable(c, http.StatusInternalServerError, "error.internal", "failed to load hotel")
		return
	}

	nights := services.Nights(checkIn, checkOut)
	total := services.ComputeTotal(checkIn, checkOut, rooms, hotel.Price)

	c.JSON(http.StatusOK, gin.H{
		"nights": nights,
		"rooms":  rooms,
		"rate":   hotel.Price,
		"total":  total,
	})
}

// CreateBooking runs the acceptance pipeline: validate, price against
// the server's nightly rate, submit. The route carries OptionalAuth so
// the validator owns the not-authenticated answer.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	userID, authenticated := middleware.UserIDFromContext(c)

	var payload bookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "hotel_id, check_in, check_out and rooms are required")
		return
	}

	checkIn, err := parseBookingDate(payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", "check_in must be YYYY-MM-DD or RFC3339")
		return
	}
	checkOut, err := parseBookingDate(payload.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", "check_out must be YYYY-MM-DD or RFC3339")
		return
	}

	req := services.BookingRequest{
		HotelID:  payload.HotelID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Rooms:    roomsAsString(payload.Rooms),
		UserID:   userID,
	}

	rooms, err := services.ValidateBooking(req, authenticated)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthenticated):
			utils.JSONError(c, http.StatusUnauthorized, "error.notAuthenticated", "Please sign in to make a booking.")
		case errors.Is(err, services.ErrInvalidDateRange):
			utils.JSONError(c, http.StatusBadRequest, "error.invalidDateRange", "Check-out date must be after check-in date.")
		case errors.Is(err, services.ErrInvalidRoomCount):
			utils.JSONError(c, http.StatusBadRequest, "error.invalidRoomCount", "Please select at least 1 room.")
		default:
			utils.JSONError(c, http.StatusBadRequest, "error.invalidBooking", err.Error())
		}
		return
	}

	hotel, err := ctrl.BookingSvc.GetHotel(c.Request.Context(), req.HotelID)
	if err != nil {
		if errors.Is(err, services.ErrHotelNotFound) {
			utils.JSONError(c, http.StatusNotFound, "error.hotelNotFound", "hotel not found")
			return
		}
		log.Printf("CreateBooking hotel lookup error: %v", err)
		utils.JSONRetryable(c, http.StatusInternalServerError, "error.internal", "failed to load hotel")
		return
	}

	total := services.ComputeTotal(checkIn, checkOut, rooms, hotel.Price)

	bookingID, err := ctrl.BookingSvc.Submit(c.Request.Context(), req, hotel, rooms, total)
	if err != nil {
		log.Printf("CreateBooking submit error (user=%d hotel=%s): %v", userID, hotel.ID, err)
		utils.JSONRetryable(c, http.StatusInternalServerError, "error.bookingFailed",
			"There was an error processing your booking. Please try again.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     bookingID,
		"total":  total,
		"status": "confirmed",
	})
}

// GetMyBookings lists the caller's records, most recent first.
func (ctrl *BookingController) GetMyBookings(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.notAuthenticated", "Please sign in to continue.")
		return
	}

	bookings, err := ctrl.BookingSvc.ListBookings(c.Request.Context(), userID)
	if err != nil {
		log.Printf("GetMyBookings error (user=%d): %v", userID, err)
		utils.JSONRetryable(c, http.StatusInternalServerError, "error.fetchBookings",
			"Could not load your bookings. Please try again.")
		return
	}

	c.JSON(http.StatusOK, bookings)
}
