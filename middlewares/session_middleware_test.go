package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/caas-platform/vendorguard/middlewares"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSessionMiddleware(t *testing.T) {
	e := echo.New()

	t.Run("should reject requests without a user identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		handler := middlewares.SessionMiddleware()(func(ctx echo.Context) error {
			t.Fatal("handler should not be reached")
			return nil
		})

		err := handler(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 401, httpErr.Code)
	})

	t.Run("should set the session for identified requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-ID", "user-123")
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		handler := middlewares.SessionMiddleware()(func(ctx echo.Context) error {
			assert.Equal(t, "user-123", shared.GetSession(ctx).GetUserID())
			return nil
		})

		assert.NoError(t, handler(ctx))
	})
}
