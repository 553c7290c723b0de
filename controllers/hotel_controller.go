package controllers

import (
	"errors"
	"log"
	"net/http"

	"staybook-backend/middleware"
	"staybook-backend/services"
	"staybook-backend/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	HotelSvc   *services.HotelService
	WeatherSvc *services.WeatherService
}

func NewHotelController(hotelSvc *services.HotelService, weatherSvc *services.WeatherService) *HotelController {
	return &HotelController{HotelSvc: hotelSvc, WeatherSvc: weatherSvc}
}

type reviewPayload struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// GetHotels lists the catalog; ?sort=price|rating selects the order.
func (ctrl *HotelController) GetHotels(c *gin.Context) {
	hotels, err := ctrl.HotelSvc.List(c.Request.Context(), c.Query("sort"))
	if err != nil {
		log.Printf("GetHotels error: %v", err)
		utils.JSONRetryable(c, http.StatusInternalServerError, "error.fetchHotels", "Could not load hotels. Please try again.")
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GetHotelDetails returns the hotel, its reviews (newest first) and a
// weather snapshot for the hotel's city. Weather never fails the
// request: the service degrades to fallback data on its own.
func (ctrl *HotelController) GetHotelDetails(c *gin.Context) {
	hotel, err := ctrl.HotelSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrHotelNotFound) {
			utils.JSONError(c, http.StatusNotFound, "error.hotelNotFound", "hotel not found")
			return
		}
		log.Printf("GetHotelDetails error: %v", err)
		utils.JSONRetryable(c, http.StatusInternalServerError, "error.fetchHotel", "Could not load hotel. Please try again.")
		return
	}

	reviews, err := ctrl.HotelSvc.ListReviews(c.Request.Context(), hotel.ID)
	if err != nil {
		log.Printf("GetHotelDetails reviews error: %v", err)
		reviews = nil
	}

	weather := ctrl.WeatherSvc.Fetch(c.Request.Context(), services.CityFromLocation(hotel.Location))

	c.JSON(http.StatusOK, gin.H{
		"hotel":   hotel,
		"reviews": reviews,
		"weather": weather,
	})
}

func (ctrl *HotelController) GetHotelReviews(c *gin.Context) {
	reviews, err := ctrl.HotelSvc.ListReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("GetHotelReviews error: %v", err)
		utils.JSONRetryable(c, http.StatusInternalServerError, "error.fetchReviews", "Could not load reviews. Please try again.")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (ctrl *HotelController) CreateReview(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.notAuthenticated", "Please sign in to continue.")
		return
	}

	var payload reviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "rating and text are required")
		return
	}

	review, err := ctrl.HotelSvc.AddReview(c.Request.Context(), c.Param("id"), userID, payload.Rating, payload.Text)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHotelNotFound):
			utils.JSONError(c, http.StatusNotFound, "error.hotelNotFound", "hotel not found")
		case errors.Is(err, services.ErrInvalidReview):
			utils.JSONError(c, http.StatusBadRequest, "error.incompleteReview", "Please provide a rating and comment.")
		default:
			log.Printf("CreateReview error: %v", err)
			utils.JSONRetryable(c, http.StatusInternalServerError, "error.reviewFailed", "Could not save your review. Please try again.")
		}
		return
	}

	c.JSON(http.StatusCreated, review)
}
