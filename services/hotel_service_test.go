package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"staybook-backend/models"
)

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	hotels := []models.Hotel{
		{ID: "1", Name: "Seaside Paradise Resort", Location: "Cape Town, South Africa", Rating: 4.8, Price: 120, Source: "seed"},
		{ID: "2", Name: "Mountain Escape Lodge", Location: "Drakensberg, South Africa", Rating: 4.5, Price: 95, Source: "seed"},
		{ID: "3", Name: "Urban Luxury Suites", Location: "Johannesburg, South Africa", Rating: 4.7, Price: 150, Source: "seed"},
	}
	require.NoError(t, db.Create(&hotels).Error)
}

func TestHotelListSorting(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	svc := NewHotelService(db)
	ctx := context.Background()

	byPrice, err := svc.List(ctx, "price")
	require.NoError(t, err)
	require.Len(t, byPrice, 3)
	assert.Equal(t, "2", byPrice[0].ID)
	assert.Equal(t, "3", byPrice[2].ID)

	byRating, err := svc.List(ctx, "rating")
	require.NoError(t, err)
	assert.Equal(t, "1", byRating[0].ID)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestHotelGetByID(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	svc := NewHotelService(db)

	hotel, err := svc.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Seaside Paradise Resort", hotel.Name)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestAddReview(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	user := models.User{FullName: "Jessica P.", Email: "jessica@example.com", Password: "hash"}
	require.NoError(t, db.Create(&user).Error)
	svc := NewHotelService(db)
	ctx := context.Background()

	review, err := svc.AddReview(ctx, "1", user.ID, 5, "  Amazing stay!  ")
	require.NoError(t, err)
	assert.Equal(t, "Jessica P.", review.Name)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "Amazing stay!", review.Text)
	assert.NotZero(t, review.ID)

	reviews, err := svc.ListReviews(ctx, "1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
}

func TestAddReviewValidation(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	svc := NewHotelService(db)
	ctx := context.Background()

	_, err := svc.AddReview(ctx, "1", 1, 0, "text")
	assert.ErrorIs(t, err, ErrInvalidReview)

	_, err = svc.AddReview(ctx, "1", 1, 6, "text")
	assert.ErrorIs(t, err, ErrInvalidReview)

	_, err = svc.AddReview(ctx, "1", 1, 4, "   ")
	assert.ErrorIs(t, err, ErrInvalidReview)

	_, err = svc.AddReview(ctx, "missing", 1, 4, "text")
	assert.ErrorIs(t, err, ErrHotelNotFound)
}
