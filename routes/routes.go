package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"staybook-backend/controllers"
	"staybook-backend/middleware"
	"staybook-backend/utils"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ac *controllers.AuthController,
	hc *controllers.HotelController,
	dc *controllers.DealsController,
	wc *controllers.WeatherController,
	bc *controllers.BookingController,
	jwtSvc *utils.JWTService,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.POST("/forgot", ac.ForgotPassword)
			auth.GET("/me", middleware.RequireAuth(jwtSvc), ac.Me)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.GetHotels)
			hotels.GET("/:id", hc.GetHotelDetails)
			hotels.GET("/:id/reviews", hc.GetHotelReviews)
			hotels.POST("/:id/reviews", middleware.RequireAuth(jwtSvc), hc.CreateReview)
		}

		api.GET("/deals", dc.GetDeals)
		api.GET("/weather/:city", wc.GetWeather)

		bookings := api.Group("/bookings")
		{
			bookings.POST("/quote", bc.QuoteBooking)
			// OptionalAuth: the booking validator owns the
			// not-authenticated answer, first among its checks.
			bookings.POST("", middleware.OptionalAuth(jwtSvc), bc.CreateBooking)
			bookings.GET("", middleware.RequireAuth(jwtSvc), bc.GetMyBookings)
		}
	}

	return r
}
