package controllers

import (
	"log"
	"net/http"

	"staybook-backend/services"
	"staybook-backend/utils"

	"github.com/gin-gonic/gin"
)

type DealsController struct {
	DealsSvc *services.DealsService
}

func NewDealsController(svc *services.DealsService) *DealsController {
	return &DealsController{DealsSvc: svc}
}

// GetDeals returns the recommended hotels mapped from the product
// catalog. A gateway failure is degraded-but-non-fatal: the caller
// gets a retry prompt, never a crash.
func (ctrl *DealsController) GetDeals(c *gin.Context) {
	hotels, err := ctrl.DealsSvc.FetchRecommended(c.Request.Context())
	if err != nil {
		log.Printf("GetDeals error: %v", err)
		utils.JSONRetryable(c, http.StatusBadGateway, "error.dealsUnavailable",
			"Failed to load recommended hotels. Please try again.")
		return
	}
	c.JSON(http.StatusOK, hotels)
}
