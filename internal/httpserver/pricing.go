package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pricingsvc "nexusai-site/internal/service/pricing"
)

func quotesHandler(svc PricingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		period, err := pricingsvc.ParsePeriod(c.Query("billing"))
		if err != nil {
			badRequest(c, "billing must be monthly or yearly")
			return
		}
		quotes, err := svc.Quotes(c.Request.Context(), period)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"billing": period, "plans": quotes})
	}
}

func addOnsHandler(svc PricingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		addOns, err := svc.AddOns(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, addOns)
	}
}
