package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"staybook-backend/config"
	"staybook-backend/controllers"
	"staybook-backend/routes"
	"staybook-backend/services"
	"staybook-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set.")
	}

	// Weather key is optional: the gateway has a defined offline mode.
	weatherKey := os.Getenv("WEATHER_API_KEY")
	if weatherKey == "" {
		log.Println("⚠️  WEATHER_API_KEY not set — serving fallback weather data")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	redisClient := config.NewRedisClient()
	if redisClient == nil {
		log.Println("⚠️  Redis unavailable — weather snapshots will not be cached")
	} else {
		log.Println("✅ Redis connected.")
	}

	jwtSvc := utils.NewJWTService(jwtSecret, 24*time.Hour)

	// Initialize services
	hotelService := services.NewHotelService(db)
	bookingService := services.NewBookingService(db)
	dealsService := services.NewDealsService(db, os.Getenv("FAKESTORE_BASE_URL"))
	weatherService := services.NewWeatherService(os.Getenv("WEATHER_BASE_URL"), weatherKey, redisClient)

	// Initialize controllers
	authController := controllers.NewAuthController(db, jwtSvc)
	hotelController := controllers.NewHotelController(hotelService, weatherService)
	dealsController := controllers.NewDealsController(dealsService)
	weatherController := controllers.NewWeatherController(weatherService)
	bookingController := controllers.NewBookingController(bookingService)

	// Build router
	router := routes.SetupRouter(authController, hotelController, dealsController, weatherController, bookingController, jwtSvc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
