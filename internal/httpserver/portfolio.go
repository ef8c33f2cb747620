package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nexusai-site/internal/domain"
)

func listCaseStudiesHandler(svc PortfolioService) gin.HandlerFunc {
	return listHandler(func(c *gin.Context, state domain.FilterState) ([]domain.CaseStudy, error) {
		return svc.List(c.Request.Context(), state)
	})
}

func getCaseStudyHandler(svc PortfolioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			badRequest(c, "invalid case study id")
			return
		}
		cs, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cs)
	}
}

func caseStudyCategoriesHandler(svc PortfolioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats, err := svc.Categories(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cats)
	}
}
