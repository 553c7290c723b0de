package controllers

import (
	"net/http"
	"strings"

	"staybook-backend/services"

	"github.com/gin-gonic/gin"
)

type WeatherController struct {
	WeatherSvc *services.WeatherService
}

func NewWeatherController(svc *services.WeatherService) *WeatherController {
	return &WeatherController{WeatherSvc: svc}
}

// GetWeather returns the snapshot for a city. Always 200: the service
// substitutes fallback data on any failure.
func (ctrl *WeatherController) GetWeather(c *gin.Context) {
	city := strings.TrimSpace(c.Param("city"))
	if city == "" {
		city = "Cape Town"
	}
	c.JSON(http.StatusOK, ctrl.WeatherSvc.Fetch(c.Request.Context(), city))
}
