package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nexusai-site/internal/domain"
)

func listJobsHandler(svc CareersService) gin.HandlerFunc {
	return listHandler(func(c *gin.Context, state domain.FilterState) ([]domain.JobListing, error) {
		return svc.List(c.Request.Context(), state)
	})
}

func getJobHandler(svc CareersService) gin.HandlerFunc {
	return func(c *gin.Context) {
		job, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, job)
	}
}

func departmentsHandler(svc CareersService) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps, err := svc.Departments(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, deps)
	}
}
