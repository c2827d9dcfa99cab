package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"viang-solution-backend/config"
	"viang-solution-backend/internal/delivery/http/middleware"
	"viang-solution-backend/internal/delivery/http/response"
	"viang-solution-backend/internal/domain"
)

type RouterDeps struct {
	ContactUC      domain.ContactUsecase
	ContactLimiter gin.HandlerFunc
	Config         *config.Config
	// WebDir holds the static site assets; empty disables static serving
	// (handy in tests).
	WebDir string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Contact form + public config (no auth required)
	NewContactHandler(api, deps.ContactUC, deps.Config.TurnstileSiteKey, deps.ContactLimiter)

	// Static site: the contact page hosts the form controller.
	if deps.WebDir != "" {
		r.StaticFile("/", deps.WebDir+"/contact.html")
		r.StaticFile("/contact", deps.WebDir+"/contact.html")
		r.Static("/assets", deps.WebDir+"/assets")
	}

	return r
}
