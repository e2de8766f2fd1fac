package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"glamourstudio/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	// /services/categories must be registered before /services/:id so the
	// literal segment wins.
	rg.GET("/services", h.ListServices)
	rg.GET("/services/categories", h.ServiceCategories)
	rg.GET("/services/:id", h.GetService)
	rg.GET("/gallery", h.ListGallery)
	rg.GET("/gallery/categories", h.GalleryCategories)
	rg.GET("/testimonials", h.ListTestimonials)
}

// ListServices handles GET /api/services.
func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.Services(c.Request.Context(), c.Query("category"))
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch services")
		response.Internal(c, "Failed to fetch services", err)
		return
	}

	response.OK(c, services)
}

// ServiceCategories handles GET /api/services/categories.
func (h *Handler) ServiceCategories(c *gin.Context) {
	cats, err := h.service.ServiceCategories(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch service categories")
		response.Internal(c, "Failed to fetch categories", err)
		return
	}

	response.OK(c, cats)
}

// GetService handles GET /api/services/:id. A non-numeric id matches no
// row and is a plain not-found.
func (h *Handler) GetService(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	svc, err := h.service.ServiceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Service not found")
			return
		}
		log.Error().Err(err).Int64("service_id", id).Msg("failed to fetch service")
		response.Internal(c, "Failed to fetch service", err)
		return
	}

	response.OK(c, svc)
}

// ListGallery handles GET /api/gallery.
func (h *Handler) ListGallery(c *gin.Context) {
	items, err := h.service.Gallery(c.Request.Context(), c.Query("category"))
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch gallery")
		response.Internal(c, "Failed to fetch gallery images", err)
		return
	}

	response.OK(c, items)
}

// GalleryCategories handles GET /api/gallery/categories.
func (h *Handler) GalleryCategories(c *gin.Context) {
	cats, err := h.service.GalleryCategories(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch gallery categories")
		response.Internal(c, "Failed to fetch categories", err)
		return
	}

	response.OK(c, cats)
}

// ListTestimonials handles GET /api/testimonials. A non-numeric limit is
// ignored.
func (h *Handler) ListTestimonials(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	testimonials, err := h.service.Testimonials(c.Request.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch testimonials")
		response.Internal(c, "Failed to fetch testimonials", err)
		return
	}

	response.OK(c, testimonials)
}
