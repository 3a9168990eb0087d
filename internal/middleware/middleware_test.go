package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Ziyadh-ali/workwave-client-sub001/internal/middleware"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/shared/apperror"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestContextLogger(t *testing.T) {
	t.Run("keeps incoming request id", func(t *testing.T) {
		r := setupRouter()
		var seen string
		r.GET("/ping", middleware.ContextLogger(zap.NewNop()), func(c *gin.Context) {
			seen = contextutil.GetRequestID(c.Request.Context())
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "REQ-42")
		r.ServeHTTP(w, req)

		assert.Equal(t, "REQ-42", seen)
		assert.Equal(t, "REQ-42", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("generates request id", func(t *testing.T) {
		r := setupRouter()
		r.GET("/ping", middleware.ContextLogger(zap.NewNop()), func(c *gin.Context) {
			assert.NotNil(t, contextutil.GetLogger(c.Request.Context(), nil))
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRateLimitByIP(t *testing.T) {
	r := setupRouter()
	r.POST("/users", middleware.RateLimitByIP(0.001, 2), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		r.ServeHTTP(last, httptest.NewRequest(http.MethodPost, "/users", nil))
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
	assert.Contains(t, last.Body.String(), apperror.CodeTooManyRequests)
	assert.Contains(t, last.Body.String(), apperror.ErrTooManyRequests.Message)
}

func TestIdempotency(t *testing.T) {
	const (
		cacheKey = "idemp:/users:key-1"
		lockKey  = cacheKey + ":lock"
	)

	t.Run("first request stores response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, []byte(`{"status":201,"body":{"ok":true}}`), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		calls := 0
		r := setupRouter()
		r.POST("/users", middleware.Idempotency(rdb), func(c *gin.Context) {
			calls++
			c.Data(http.StatusCreated, "application/json", []byte(`{"ok":true}`))
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{}`))
		req.Header.Set(middleware.IdempotencyHeader, "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat replays cached response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"ok":true}}`)

		r := setupRouter()
		r.POST("/users", middleware.Idempotency(rdb), func(c *gin.Context) {
			t.Fatal("handler must not run on replay")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{}`))
		req.Header.Set(middleware.IdempotencyHeader, "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in-flight duplicate rejected", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		r := setupRouter()
		r.POST("/users", middleware.Idempotency(rdb), func(c *gin.Context) {
			t.Fatal("handler must not run while locked")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{}`))
		req.Header.Set(middleware.IdempotencyHeader, "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed submit is not cached", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectDel(lockKey).SetVal(1)

		r := setupRouter()
		r.POST("/users", middleware.Idempotency(rdb), func(c *gin.Context) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{}`))
		req.Header.Set(middleware.IdempotencyHeader, "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no header passes through", func(t *testing.T) {
		r := setupRouter()
		r.POST("/users", middleware.Idempotency(nil), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}
