package booking

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"glamourstudio/internal/domain"
	"glamourstudio/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.PUT("/bookings/:id/status", h.UpdateStatus)
}

// CreateBooking handles POST /api/bookings.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			response.ValidationFailed(c, vErr.Messages)
			return
		}
		log.Error().Err(err).Msg("failed to create booking")
		response.Internal(c, "Failed to create booking. Please try again.", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Booking created successfully! We will contact you shortly to confirm.",
		"bookingId": b.ID,
	})
}

// ListBookings handles GET /api/bookings (admin).
func (h *Handler) ListBookings(c *gin.Context) {
	rows, total, err := h.service.ListBookings(c.Request.Context(), c.Query("status"))
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch bookings")
		response.Internal(c, "Failed to fetch bookings", err)
		return
	}

	response.List(c, rows, total)
}

// UpdateStatus handles PUT /api/bookings/:id/status. A malformed or
// unknown id matches no row and still succeeds.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req UpdateStatusRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.service.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.Error(c, http.StatusBadRequest, "Invalid status. Must be one of: "+allowedStatuses())
			return
		}
		log.Error().Err(err).Int64("booking_id", id).Msg("failed to update booking status")
		response.Internal(c, "Failed to update booking status", err)
		return
	}

	response.Message(c, http.StatusOK, "Booking status updated successfully")
}

func allowedStatuses() string {
	out := make([]string, 0, len(domain.BookingStatuses))
	for _, s := range domain.BookingStatuses {
		out = append(out, string(s))
	}
	return strings.Join(out, ", ")
}
