package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"glamourstudio/internal/config"
	"glamourstudio/internal/database"
	"glamourstudio/internal/middleware"
	"glamourstudio/internal/modules/booking"
	"glamourstudio/internal/modules/catalog"
	"glamourstudio/internal/modules/contact"
	"glamourstudio/internal/pkg/logger"
	"glamourstudio/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(cfg.LogLevel)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := database.Init(db); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	bookingRepo := repository.NewBookingRepository(db)
	contactRepo := repository.NewContactRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)

	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo))
	contactHandler := contact.NewHandler(contact.NewService(contactRepo))
	catalogHandler := catalog.NewHandler(catalog.NewService(serviceRepo, galleryRepo, testimonialRepo))

	r := gin.New()
	r.Use(middleware.Recovery(), middleware.RequestLogger(), middleware.CORS())

	api := r.Group("/api")
	{
		bookingHandler.RegisterRoutes(api)
		contactHandler.RegisterRoutes(api)
		catalogHandler.RegisterRoutes(api)

		api.GET("/health", health)
	}

	// In production the compiled front-end is served from StaticDir, with
	// every unmatched path falling back to the SPA entry document.
	if cfg.IsProduction() {
		r.NoRoute(spaFallback(cfg.StaticDir))
	}

	log.Info().Str("port", cfg.Port).Str("env", cfg.AppEnv).Msg("Glamour Studio API listening")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Glamour Studio API is running",
	})
}

func spaFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := filepath.Join(staticDir, filepath.Clean("/"+strings.TrimPrefix(c.Request.URL.Path, "/")))
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			c.File(p)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	}
}
