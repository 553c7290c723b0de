package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultWeatherBaseURL = "https://api.openweathermap.org/data/2.5"
	weatherCacheTTL       = 10 * time.Minute
)

// WeatherSnapshot is the display-only weather summary for a city.
type WeatherSnapshot struct {
	Temperature int     `json:"temperature"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	City        string  `json:"city"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Fallback    bool    `json:"fallback,omitempty"`
}

// fallbackTemperatures is the fixed table substituted on missing
// credentials or any gateway failure. Cities not listed get 20.
var fallbackTemperatures = map[string]int{
	"Cape Town":      22,
	"Johannesburg":   18,
	"Durban":         25,
	"Pretoria":       19,
	"Port Elizabeth": 21,
}

type openWeatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// WeatherService fetches current conditions for a city, with a Redis
// snapshot cache and the fixed fallback table as offline mode.
type WeatherService struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	Cache   *redis.Client // nil disables caching

	mu  sync.Mutex
	seq map[string]uint64 // per-city request sequence; only the newest settles into the cache
}

func NewWeatherService(baseURL, apiKey string, cache *redis.Client) *WeatherService {
	if baseURL == "" {
		baseURL = defaultWeatherBaseURL
	}
	return &WeatherService{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 15 * time.Second},
		Cache:   cache,
		seq:     make(map[string]uint64),
	}
}

// FallbackSnapshot returns the fixed mock snapshot for a city.
func FallbackSnapshot(city string) WeatherSnapshot {
	temp, ok := fallbackTemperatures[city]
	if !ok {
		temp = 20
	}
	return WeatherSnapshot{
		Temperature: temp,
		Description: "Partly cloudy",
		Icon:        "02d",
		City:        city,
		Humidity:    65,
		WindSpeed:   15,
		Fallback:    true,
	}
}

// CityFromLocation extracts the city from a "City, Region" string,
// e.g. "Cape Town, South Africa" -> "Cape Town".
func CityFromLocation(location string) string {
	return strings.TrimSpace(strings.SplitN(location, ",", 2)[0])
}

// Fetch returns the current snapshot for a city. It never returns an
// error: a missing API key or any gateway failure degrades to the
// fallback table. Overlapping fetches for the same city may settle in
// arbitrary order; only the newest issued request updates the cache,
// so a stale response is returned to its own caller but discarded as
// shared state.
func (s *WeatherService) Fetch(ctx context.Context, city string) WeatherSnapshot {
	if s.APIKey == "" {
		return FallbackSnapshot(city)
	}

	if snap, ok := s.cachedSnapshot(ctx, city); ok {
		return snap
	}

	mySeq := s.nextSeq(city)

	endpoint := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric",
		s.BaseURL, url.QueryEscape(city), url.QueryEscape(s.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return FallbackSnapshot(city)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		log.Printf("weather request failed for %s: %v", city, err)
		return FallbackSnapshot(city)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("weather HTTP error %d for %s", resp.StatusCode, city)
		return FallbackSnapshot(city)
	}

	var ow openWeatherResponse
	if err := json.Unmarshal(body, &ow); err != nil || len(ow.Weather) == 0 {
		log.Printf("weather response parse failed for %s", city)
		return FallbackSnapshot(city)
	}

	snap := WeatherSnapshot{
		Temperature: int(math.Round(ow.Main.Temp)),
		Description: ow.Weather[0].Description,
		Icon:        ow.Weather[0].Icon,
		City:        ow.Name,
		Humidity:    ow.Main.Humidity,
		WindSpeed:   ow.Wind.Speed,
	}
	if s.isLatest(city, mySeq) {
		s.storeSnapshot(ctx, city, snap)
	}
	return snap
}

func (s *WeatherService) nextSeq(city string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[city]++
	return s.seq[city]
}

func (s *WeatherService) isLatest(city string, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq[city] == seq
}

func weatherCacheKey(city string) string {
	return "weather:" + strings.ToLower(city)
}

func (s *WeatherService) cachedSnapshot(ctx context.Context, city string) (WeatherSnapshot, bool) {
	if s.Cache == nil {
		return WeatherSnapshot{}, false
	}
	raw, err := s.Cache.Get(ctx, weatherCacheKey(city)).Bytes()
	if err != nil {
		return WeatherSnapshot{}, false
	}
	var snap WeatherSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return WeatherSnapshot{}, false
	}
	return snap, true
}

func (s *WeatherService) storeSnapshot(ctx context.Context, city string, snap WeatherSnapshot) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, weatherCacheKey(city), raw, weatherCacheTTL).Err(); err != nil {
		log.Printf("warning: failed to cache weather for %s: %v", city, err)
	}
}
