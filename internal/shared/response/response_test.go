package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ziyadh-ali/workwave-client-sub001/internal/shared/apperror"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestNewPaginationMeta(t *testing.T) {
	meta := response.NewPaginationMeta(21, 2, 10)
	assert.Equal(t, response.PaginationMeta{Total: 21, TotalPages: 3, Page: 2, PageSize: 10}, meta)

	assert.Equal(t, 0, response.NewPaginationMeta(5, 1, 0).TotalPages)
}

func TestPageParams(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		wantPage     int
		wantPageSize int
	}{
		{"defaults", "/users", 1, response.DefaultPageSize},
		{"explicit", "/users?page=3&page_size=25", 3, 25},
		{"invalid falls back", "/users?page=-1&page_size=abc", 1, response.DefaultPageSize},
		{"capped", "/users?page_size=1000", 1, response.MaxPageSize},
		{"page capped", "/users?page=92233720368547759&page_size=100", response.MaxPage, response.MaxPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(tt.target)
			page, size := response.PageParams(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, size)
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got, meta := response.Paginate(items, 2, 2)
	assert.Equal(t, []int{3, 4}, got)
	assert.Equal(t, 3, meta.TotalPages)

	got, _ = response.Paginate(items, 9, 2)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	got, _ = response.Paginate(items, 1, 10)
	assert.Equal(t, items, got)
}

func TestPaginate_HugePageDoesNotPanic(t *testing.T) {
	items := []int{1, 2, 3}
	const maxInt = int(^uint(0) >> 1)

	assert.NotPanics(t, func() {
		got, meta := response.Paginate(items, maxInt/50+1, 100)
		assert.Empty(t, got)
		assert.Equal(t, int64(3), meta.Total)
	})

	assert.NotPanics(t, func() {
		got, _ := response.Paginate(items, maxInt, maxInt)
		assert.Empty(t, got)
	})
}

func TestFromError(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		c, w := newContext("/users")
		details := map[string]string{"email": "Invalid email address"}

		validationErr := apperror.New(apperror.CodeValidationFailed, "Input is invalid", http.StatusUnprocessableEntity)
		httpErr := response.FromError(c, validationErr.WithDetails(details))

		assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var env struct {
			Ok    bool `json:"ok"`
			Error struct {
				Code    string            `json:"code"`
				Details map[string]string `json:"details"`
			} `json:"error"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
		assert.Equal(t, apperror.CodeValidationFailed, env.Error.Code)
		assert.Equal(t, details, env.Error.Details)
	})

	t.Run("unknown error hides internals", func(t *testing.T) {
		c, w := newContext("/users")

		response.FromError(c, errors.New("db exploded"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "db exploded")
	})
}
