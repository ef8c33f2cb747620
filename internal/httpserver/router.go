package httpserver

import (
	"context"
	"errors"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"nexusai-site/internal/domain"
	contactsvc "nexusai-site/internal/service/contact"
	pricingsvc "nexusai-site/internal/service/pricing"
)

type BlogService interface {
	List(ctx context.Context, state domain.FilterState) ([]domain.Post, error)
	Get(ctx context.Context, slug string) (*domain.Post, error)
	Recent(ctx context.Context, n int) ([]domain.Post, error)
	Related(ctx context.Context, slug string, n int) ([]domain.Post, error)
	Categories(ctx context.Context) ([]string, error)
	Tags(ctx context.Context) ([]string, error)
}

type PortfolioService interface {
	List(ctx context.Context, state domain.FilterState) ([]domain.CaseStudy, error)
	Get(ctx context.Context, id int) (*domain.CaseStudy, error)
	Categories(ctx context.Context) ([]domain.CaseStudyCategory, error)
}

type CareersService interface {
	List(ctx context.Context, state domain.FilterState) ([]domain.JobListing, error)
	Get(ctx context.Context, id string) (*domain.JobListing, error)
	Departments(ctx context.Context) ([]string, error)
}

type PricingService interface {
	Quotes(ctx context.Context, period domain.BillingPeriod) ([]pricingsvc.Quote, error)
	AddOns(ctx context.Context) ([]domain.AddOnService, error)
}

type ContactService interface {
	Submit(ctx context.Context, in contactsvc.Input) (*contactsvc.Result, error)
}

// Deps holds the services the router dispatches to.
type Deps struct {
	BlogSvc      BlogService
	PortfolioSvc PortfolioService
	CareersSvc   CareersService
	PricingSvc   PricingService
	ContactSvc   ContactService
}

func (d Deps) validate() error {
	switch {
	case d.BlogSvc == nil:
		return errors.New("blog service is required")
	case d.PortfolioSvc == nil:
		return errors.New("portfolio service is required")
	case d.CareersSvc == nil:
		return errors.New("careers service is required")
	case d.PricingSvc == nil:
		return errors.New("pricing service is required")
	case d.ContactSvc == nil:
		return errors.New("contact service is required")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, db *pgxpool.Pool, deps Deps, allowedOrigins []string) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery(), cors.New(corsConfig(allowedOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	blog := api.Group("/blog")
	blog.GET("", listPostsHandler(deps.BlogSvc))
	blog.GET("/categories", postCategoriesHandler(deps.BlogSvc))
	blog.GET("/tags", postTagsHandler(deps.BlogSvc))
	blog.GET("/recent", recentPostsHandler(deps.BlogSvc))
	blog.GET("/:slug", getPostHandler(deps.BlogSvc))
	blog.GET("/:slug/related", relatedPostsHandler(deps.BlogSvc))

	portfolio := api.Group("/portfolio")
	portfolio.GET("", listCaseStudiesHandler(deps.PortfolioSvc))
	portfolio.GET("/categories", caseStudyCategoriesHandler(deps.PortfolioSvc))
	portfolio.GET("/:id", getCaseStudyHandler(deps.PortfolioSvc))

	careers := api.Group("/careers")
	careers.GET("", listJobsHandler(deps.CareersSvc))
	careers.GET("/departments", departmentsHandler(deps.CareersSvc))
	careers.GET("/:id", getJobHandler(deps.CareersSvc))

	api.GET("/pricing", quotesHandler(deps.PricingSvc))
	api.GET("/pricing/add-ons", addOnsHandler(deps.PricingSvc))

	api.POST("/contact", contactHandler(deps.ContactSvc))

	return router, nil
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = allowedOrigins
	return cfg
}
