package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"staybook-backend/models"

	"gorm.io/gorm"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// List returns the catalog, optionally sorted by nightly price
// ascending or rating descending. Any other sort value returns the
// catalog unsorted.
func (s *HotelService) List(ctx context.Context, sortBy string) ([]models.Hotel, error) {
	q := s.DB.WithContext(ctx)
	switch sortBy {
	case "price":
		q = q.Order("price ASC")
	case "rating":
		q = q.Order("rating DESC")
	}
	hotels := make([]models.Hotel, 0)
	if err := q.Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

func (s *HotelService) GetByID(ctx context.Context, id string) (models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.WithContext(ctx).First(&hotel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hotel, ErrHotelNotFound
		}
		return hotel, fmt.Errorf("failed to load hotel %s: %w", id, err)
	}
	return hotel, nil
}

// AddReview stores a review under the reviewer's display name. Rating
// must be 1..5 and the text non-empty; callers surface violations as
// an incomplete-review prompt.
func (s *HotelService) AddReview(ctx context.Context, hotelID string, userID uint, rating int, text string) (models.Review, error) {
	var review models.Review

	if rating < 1 || rating > 5 || strings.TrimSpace(text) == "" {
		return review, fmt.Errorf("%w: rating must be 1-5 and comment non-empty", ErrInvalidReview)
	}

	if _, err := s.GetByID(ctx, hotelID); err != nil {
		return review, err
	}

	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		return review, fmt.Errorf("failed to load reviewer: %w", err)
	}

	review = models.Review{
		HotelID: hotelID,
		UserID:  userID,
		Name:    user.FullName,
		Rating:  rating,
		Text:    strings.TrimSpace(text),
	}
	if err := s.DB.WithContext(ctx).Create(&review).Error; err != nil {
		return review, fmt.Errorf("failed to save review: %w", err)
	}
	return review, nil
}

// ListReviews returns a hotel's reviews newest first.
func (s *HotelService) ListReviews(ctx context.Context, hotelID string) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	if err := s.DB.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
