package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"net/http"
	"time"

	"staybook-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultCatalogBaseURL = "https://fakestoreapi.com"

// dealLocations drives the deterministic round-robin location
// assignment for mapped catalog products.
var dealLocations = []string{
	"Cape Town, SA",
	"Johannesburg, SA",
	"Durban, SA",
	"Pretoria, SA",
	"Port Elizabeth, SA",
}

type catalogProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// DealsService consumes the product catalog and reshapes it into
// hotel records. Display data only: failures are retryable, never
// fatal to the process.
type DealsService struct {
	DB      *gorm.DB
	BaseURL string
	Client  *http.Client
}

func NewDealsService(db *gorm.DB, baseURL string) *DealsService {
	if baseURL == "" {
		baseURL = defaultCatalogBaseURL
	}
	return &DealsService{
		DB:      db,
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// productToHotel maps a catalog product into a hotel-shaped record:
// synthesized id prefix, round-robin location, one-decimal rating in
// [4.0, 5.0) and the price scaled up to a realistic nightly rate.
// The rating is truncated, not rounded, so 5.0 is never emitted.
func productToHotel(p catalogProduct, index int) models.Hotel {
	return models.Hotel{
		ID:          fmt.Sprintf("api-%d", p.ID),
		Name:        p.Title + " Stay",
		Location:    dealLocations[index%len(dealLocations)],
		Rating:      math.Floor((rand.Float64()+4)*10) / 10,
		Price:       math.Round(p.Price * 10),
		Image:       p.Image,
		Description: p.Description,
		Category:    p.Category,
		Source:      "catalog",
	}
}

// FetchRecommended pulls up to five catalog products and maps them to
// hotels. Mapped hotels are upserted into the hotels table so they can
// be booked like the seeded ones.
func (s *DealsService) FetchRecommended(ctx context.Context) ([]models.Hotel, error) {
	endpoint := s.BaseURL + "/products?limit=5"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot build request: %w", err)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("catalog HTTP error %d: %s", resp.StatusCode, string(body))
	}

	var products []catalogProduct
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("catalog JSON parse error: %w", err)
	}

	hotels := make([]models.Hotel, 0, len(products))
	for i, p := range products {
		hotels = append(hotels, productToHotel(p, i))
	}

	// Best-effort cache: ratings stay as first assigned, volatile
	// catalog fields are refreshed.
	if len(hotels) > 0 && s.DB != nil {
		if err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "location", "price", "image", "description", "category"}),
		}).Create(&hotels).Error; err != nil {
			log.Printf("warning: failed to cache catalog hotels: %v", err)
		}
	}

	return hotels, nil
}
