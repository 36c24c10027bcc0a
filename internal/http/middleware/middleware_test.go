package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/jovial-backend/internal/logger"
	"github.com/ignatzorin/jovial-backend/internal/models"
	"github.com/ignatzorin/jovial-backend/internal/pkg/apperror"
)

type stubTokens map[string]models.Actor

func (s stubTokens) ParseAccess(token string) (models.Actor, error) {
	actor, ok := s[token]
	if !ok {
		return models.Actor{}, errors.New("invalid token")
	}
	return actor, nil
}

var (
	ownerActor    = models.Actor{UserID: uuid.New(), Role: models.RoleOwner}
	customerActor = models.Actor{UserID: uuid.New(), Role: models.RoleCustomer}
	tokens        = stubTokens{"owner-token": ownerActor, "customer-token": customerActor}
)

func serve(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_AnonymousAndBearer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authenticate(tokens))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, string(CurrentActor(c).Role))
	})

	w := serve(r, http.MethodGet, "/whoami", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", w.Body.String())

	w = serve(r, http.MethodGet, "/whoami", "owner-token")
	assert.Equal(t, "owner", w.Body.String())

	w = serve(r, http.MethodGet, "/whoami", "forged")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Basic abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authenticate(tokens))
	r.DELETE("/owner", RequireRole(models.RoleOwner), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodDelete, "/owner", "").Code)
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodDelete, "/owner", "customer-token").Code)
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodDelete, "/owner", "owner-token").Code)
}

func TestErrorHandler_MapsAppErrors(t *testing.T) {
	logger.Discard()
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err     error
		status  int
		message string
	}{
		{apperror.ErrSourceUnavailable, http.StatusServiceUnavailable, "портфолио временно недоступно"},
		{apperror.New(apperror.ErrCodeValidation, "title: обязательное поле"), http.StatusBadRequest, "title: обязательное поле"},
		{apperror.Wrap(errors.New("pq: no rows"), apperror.ErrCodeNotFound, "видео не найдено"), http.StatusNotFound, "видео не найдено"},
		{apperror.Wrap(errors.New("disk"), apperror.ErrCodeUploadFailed, "не удалось загрузить видео"), http.StatusBadGateway, "не удалось загрузить видео"},
		{errors.New("sql: connection reset"), http.StatusInternalServerError, "внутренняя ошибка сервера"},
	}

	for _, tc := range cases {
		r := gin.New()
		r.Use(ErrorHandler())
		err := tc.err
		r.GET("/", func(c *gin.Context) { _ = c.Error(err) })

		w := serve(r, http.MethodGet, "/", "")
		assert.Equal(t, tc.status, w.Code, tc.message)
		assert.JSONEq(t, `{"error":"`+tc.message+`"}`, w.Body.String())
	}
}

func TestErrorHandler_DoesNotOverwriteResponse(t *testing.T) {
	logger.Discard()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/", func(c *gin.Context) {
		_ = c.Error(apperror.ErrSourceUnavailable)
		c.JSON(http.StatusServiceUnavailable, gin.H{"state": "failed"})
	})

	w := serve(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"state":"failed"}`, w.Body.String())
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://jovial.studio"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://jovial.studio")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://jovial.studio", w.Header().Get("Access-Control-Allow-Origin"))

	req, _ = http.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req, _ = http.NewRequest(http.MethodOptions, "/", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	logger.Discard()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/contact", RateLimitMiddleware("contact", 2, time.Minute), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/contact", "").Code)
	w := serve(r, http.MethodPost, "/contact", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost, "/contact", "").Code)
}

func TestUUIDValidator(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/videos/:id", UUIDValidator("id"), func(c *gin.Context) {
		id, ok := ParamUUID(c, "id")
		assert.True(t, ok)
		c.String(http.StatusOK, id.String())
	})

	id := uuid.New()
	w := serve(r, http.MethodGet, "/videos/"+id.String(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id.String(), w.Body.String())

	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/videos/not-a-uuid", "").Code)
}
