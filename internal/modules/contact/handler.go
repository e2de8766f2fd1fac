package contact

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
	rg.POST("/contact", h.SubmitMessage)
	rg.GET("/contact", h.ListMessages)
	rg.PUT("/contact/:id/status", h.UpdateStatus)
}

// SubmitMessage handles POST /api/contact.
func (h *Handler) SubmitMessage(c *gin.Context) {
	var req SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	m, err := h.service.SubmitMessage(c.Request.Context(), req)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			response.ValidationFailed(c, vErr.Messages)
			return
		}
		log.Error().Err(err).Msg("failed to submit contact message")
		response.Internal(c, "Failed to submit your message. Please try again.", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Thank you for reaching out! We will get back to you within 24 hours.",
		"messageId": m.ID,
	})
}

// ListMessages handles GET /api/contact (admin).
func (h *Handler) ListMessages(c *gin.Context) {
	rows, total, err := h.service.ListMessages(c.Request.Context(), c.Query("status"))
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch contact messages")
		response.Internal(c, "Failed to fetch messages", err)
		return
	}

	response.List(c, rows, total)
}

// UpdateStatus handles PUT /api/contact/:id/status.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req UpdateStatusRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.service.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.Error(c, http.StatusBadRequest, "Invalid status. Must be one of: "+allowedStatuses())
			return
		}
		log.Error().Err(err).Int64("message_id", id).Msg("failed to update message status")
		response.Internal(c, "Failed to update message status", err)
		return
	}

	response.Message(c, http.StatusOK, "Message status updated successfully")
}

func allowedStatuses() string {
	out := make([]string, 0, len(domain.ContactStatuses))
	for _, s := range domain.ContactStatuses {
		out = append(out, string(s))
	}
	return strings.Join(out, ", ")
}
