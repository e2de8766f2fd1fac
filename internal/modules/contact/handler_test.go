package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"glamourstudio/internal/database"
	"glamourstudio/internal/domain"
	"glamourstudio/internal/repository"
)

type envelope struct {
	Success   bool                    `json:"success"`
	Message   string                  `json:"message"`
	Errors    []string                `json:"errors"`
	Data      []domain.ContactMessage `json:"data"`
	Total     int64                   `json:"total"`
	MessageID int64                   `json:"messageId"`
}

func setupRouter(t *testing.T) (*gin.Engine, *repository.ContactRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	repo := repository.NewContactRepository(db)
	handler := NewHandler(NewService(repo))

	router := gin.New()
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	return router, repo
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decode(t *testing.T, resp *httptest.ResponseRecorder) envelope {
	t.Helper()
	var out envelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

func TestSubmitMessage(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/contact", gin.H{
		"name":    "Ravi",
		"email":   "ravi@example.com",
		"message": "Do you take walk-ins?",
	})

	require.Equal(t, http.StatusCreated, resp.Code)
	out := decode(t, resp)
	require.True(t, out.Success)
	require.NotZero(t, out.MessageID)

	list := decode(t, performRequest(router, http.MethodGet, "/api/contact?status=unread", nil))
	require.Len(t, list.Data, 1)
	require.Equal(t, domain.ContactUnread, list.Data[0].Status)
}

func TestSubmitMessage_InvalidEmail(t *testing.T) {
	router, repo := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/contact", gin.H{
		"name":    "Ravi",
		"email":   "not-an-email",
		"message": "Hi",
	})

	require.Equal(t, http.StatusBadRequest, resp.Code)
	out := decode(t, resp)
	require.Contains(t, out.Errors, "Valid email is required")

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
}

// Unlike the booking form, the contact form never validates phone format.
func TestSubmitMessage_PhoneNotValidated(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/contact", gin.H{
		"name":    "Ravi",
		"email":   "ravi@example.com",
		"phone":   "call me maybe",
		"message": "Hi",
	})

	require.Equal(t, http.StatusCreated, resp.Code)

	list := decode(t, performRequest(router, http.MethodGet, "/api/contact", nil))
	require.Equal(t, "call me maybe", list.Data[0].Phone)
}

func TestSubmitMessage_MissingFields(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/contact", gin.H{})

	require.Equal(t, http.StatusBadRequest, resp.Code)
	out := decode(t, resp)
	require.Equal(t, []string{
		"Name is required",
		"Valid email is required",
		"Message is required",
	}, out.Errors)
}

func TestUpdateStatus(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/contact", gin.H{
		"name":    "Ravi",
		"email":   "ravi@example.com",
		"message": "Hi",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	for _, status := range []string{"read", "replied", "unread"} {
		upd := performRequest(router, http.MethodPut, "/api/contact/1/status", gin.H{"status": status})
		require.Equal(t, http.StatusOK, upd.Code)

		list := decode(t, performRequest(router, http.MethodGet, "/api/contact", nil))
		require.Equal(t, domain.ContactStatus(status), list.Data[0].Status)
	}

	upd := performRequest(router, http.MethodPut, "/api/contact/1/status", gin.H{"status": "spam"})
	require.Equal(t, http.StatusBadRequest, upd.Code)
	require.Contains(t, decode(t, upd).Message, "unread, read, replied")
}
