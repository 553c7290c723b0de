package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"staybook-backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := os.Getenv("DB_PASS")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "staybook_db")

	// Bookings are stored and compared as UTC instants.
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

// seedHotels is the built-in catalog shown before any deals are
// fetched.
var seedHotels = []models.Hotel{
	{
		ID:        "1",
		Name:      "Seaside Paradise Resort",
		Location:  "Cape Town, South Africa",
		Rating:    4.8,
		Price:     120,
		Image:     "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=400",
		Amenities: []byte(`["wifi","pool","sea view"]`),
		Source:    "seed",
	},
	{
		ID:        "2",
		Name:      "Mountain Escape Lodge",
		Location:  "Drakensberg, South Africa",
		Rating:    4.5,
		Price:     95,
		Image:     "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=400",
		Amenities: []byte(`["wifi","hiking","fireplace"]`),
		Source:    "seed",
	},
	{
		ID:        "3",
		Name:      "Urban Luxury Suites",
		Location:  "Johannesburg, South Africa",
		Rating:    4.7,
		Price:     150,
		Image:     "https://images.unsplash.com/photo-1611892440504-42a792e24d32?w=400",
		Amenities: []byte(`["wifi","gym","rooftop bar"]`),
		Source:    "seed",
	},
}

func SeedDatabase() {
	var hotelCount int64
	DB.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount == 0 {
		if err := DB.Create(&seedHotels).Error; err != nil {
			log.Printf("warning: failed to seed hotels: %v", err)
		} else {
			log.Println("Hotels seeded")
		}
	}

	var reviewCount int64
	DB.Model(&models.Review{}).Count(&reviewCount)
	if reviewCount == 0 {
		reviews := make([]models.Review, 0, len(seedHotels)*2)
		for _, h := range seedHotels {
			reviews = append(reviews,
				models.Review{HotelID: h.ID, Name: "Jessica P.", Rating: 5, Text: "Amazing stay! Beautiful view and great staff."},
				models.Review{HotelID: h.ID, Name: "Thabo M.", Rating: 4, Text: "Comfortable rooms and excellent service."},
			)
		}
		if err := DB.Create(&reviews).Error; err != nil {
			log.Printf("warning: failed to seed reviews: %v", err)
		} else {
			log.Println("Reviews seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Review{},
		&models.Booking{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
