package v1

import (
	"net/http"
	"time"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC     domain.ContactUsecase
	TestimonialUC domain.TestimonialUsecase
	ProjectUC     domain.ProjectUsecase
	ServiceUC     domain.ServiceUsecase
	AboutUC       domain.AboutUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// One counter shared by the two public write endpoints
	submitLimiter := middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitSubmitThreshold,
		Window:    time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:submit:",
	})

	// Public routes - everything on this site is public
	NewContactHandler(v1, submitLimiter, deps.ContactUC)
	NewTestimonialHandler(v1, submitLimiter, deps.TestimonialUC)
	NewProjectHandler(v1, deps.ProjectUC)
	NewServiceHandler(v1, deps.ServiceUC)
	NewAboutHandler(v1, deps.AboutUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
