package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func ok(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestIPRateLimit(t *testing.T) {
	e := echo.New()
	e.GET("/", ok, IPRateLimit(0.001, 2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRealIP, "10.0.0.1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.2")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

type denyAfter struct {
	remaining int
	calls     []string
}

func (d *denyAfter) Allow(userID, action string) (bool, time.Duration) {
	d.calls = append(d.calls, userID+":"+action)
	if d.remaining == 0 {
		return false, 12 * time.Second
	}
	d.remaining--
	return true, 0
}

func TestUserActionLimit(t *testing.T) {
	limiter := &denyAfter{remaining: 1}
	mw := UserActionLimit(limiter, "search")
	e := echo.New()

	call := func(uid string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		if uid != "" {
			c.Set("uid", uid)
		}
		assert.NoError(t, mw(ok)(c))
		return rec
	}

	assert.Equal(t, http.StatusNoContent, call("u1").Code)

	rec := call("u1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "retry in 12s")

	assert.Equal(t, http.StatusNoContent, call("").Code)
	assert.Equal(t, []string{"u1:search", "u1:search"}, limiter.calls)
}

type reportingLimiter struct {
	denyAfter
}

func (r *reportingLimiter) GetStatus(userID, action string) (int, int) {
	return r.remaining, 3
}

func TestUserActionLimit_ReportsBudget(t *testing.T) {
	e := echo.New()
	e.GET("/", ok, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("uid", "u1")
			return next(c)
		}
	}, UserActionLimit(&reportingLimiter{denyAfter{remaining: 2}}, "search"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))

	// Plain limiters leave the headers off.
	e = echo.New()
	e.GET("/", ok, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("uid", "u1")
			return next(c)
		}
	}, UserActionLimit(&denyAfter{remaining: 2}, "search"))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, rec.Header().Get("X-RateLimit-Remaining"))
}
