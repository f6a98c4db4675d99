package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/caas-platform/vendorguard/controllers"
	"github.com/caas-platform/vendorguard/database/models"
	"github.com/caas-platform/vendorguard/mocks"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTemplateCreateContext(e *echo.Echo, body string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	shared.SetOrg(ctx, models.Org{ID: uuid.New(), Name: "St. Mary Clinic"})
	shared.SetSession(ctx, shared.NewUserSession("user-123"))
	return ctx
}

func TestTemplateCreate(t *testing.T) {
	e := echo.New()

	t.Run("should surface duplicate template names as a conflict", func(t *testing.T) {
		templateRepository := mocks.NewAssessmentTemplateRepository(t)
		templateRepository.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23505"})

		controller := controllers.NewAssessmentTemplateController(templateRepository)

		err := controller.Create(newTemplateCreateContext(e, `{"name":"HIPAA Security Baseline"}`))

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 409, httpErr.Code)
	})

	t.Run("should keep other database errors internal", func(t *testing.T) {
		templateRepository := mocks.NewAssessmentTemplateRepository(t)
		templateRepository.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "53300"})

		controller := controllers.NewAssessmentTemplateController(templateRepository)

		err := controller.Create(newTemplateCreateContext(e, `{"name":"HIPAA Security Baseline"}`))

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 500, httpErr.Code)
	})
}
