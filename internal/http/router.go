package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the public API and the JWT-protected admin surface.
func NewRouter(h *Handler, authMiddleware gin.HandlerFunc, environment string, allowedOrigins []string) *gin.Engine {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(allowedOrigins))

	api := router.Group("/api")
	api.GET("/health", h.health)
	api.POST("/contact", h.createContact)
	api.POST("/file-uploads", h.createFileUpload)
	api.POST("/testimonials", h.createTestimonial)
	api.GET("/testimonials", h.listTestimonials)
	api.POST("/quote", h.estimateQuote)
	api.POST("/quote/pdf", h.quoteDocument)

	admin := router.Group("/admin")
	admin.Use(authMiddleware)
	admin.GET("/contact-submissions", h.adminListContacts)
	admin.GET("/file-uploads", h.adminListFileUploads)
	admin.GET("/submissions/export", h.adminExportSubmissions)

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cors.New(cfg)
}
