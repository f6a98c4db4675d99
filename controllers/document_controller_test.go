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
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDocumentCreateContext(e *echo.Echo, body string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	shared.SetVendor(ctx, models.Vendor{ID: uuid.New(), OrganizationID: uuid.New()})
	shared.SetSession(ctx, shared.NewUserSession("user-123"))
	return ctx
}

func TestDocumentCreate(t *testing.T) {
	e := echo.New()

	t.Run("should attach the requested tags to the uploaded document", func(t *testing.T) {
		tagIDs := []uuid.UUID{uuid.New(), uuid.New()}
		tags := []models.DocumentTag{
			{ID: tagIDs[0], Name: "urgent"},
			{ID: tagIDs[1], Name: "expires-soon"},
		}

		tagRepository := mocks.NewDocumentTagRepository(t)
		tagRepository.On("List", tagIDs).Return(tags, nil)

		documentService := mocks.NewDocumentService(t)
		documentService.On("CreateDocument", mock.MatchedBy(func(document *models.Document) bool {
			return len(document.Tags) == 2 && document.Tags[0].Name == "urgent"
		}), "user-123", mock.Anything).Return(nil)

		controller := controllers.NewDocumentController(documentService, mocks.NewDocumentRepository(t), tagRepository, mocks.NewAccessLogService(t))

		body := `{"name":"BAA","documentType":"baa","fileRef":"vendors/acme/baa.pdf","documentDate":"2026-01-15T00:00:00Z","tagIds":["` + tagIDs[0].String() + `","` + tagIDs[1].String() + `"]}`

		assert.NoError(t, controller.Create(newDocumentCreateContext(e, body)))
	})

	t.Run("should reject uploads referencing unknown tags", func(t *testing.T) {
		tagIDs := []uuid.UUID{uuid.New(), uuid.New()}

		tagRepository := mocks.NewDocumentTagRepository(t)
		// only one of the two requested tags exists
		tagRepository.On("List", tagIDs).Return([]models.DocumentTag{{ID: tagIDs[0], Name: "urgent"}}, nil)

		controller := controllers.NewDocumentController(mocks.NewDocumentService(t), mocks.NewDocumentRepository(t), tagRepository, mocks.NewAccessLogService(t))

		body := `{"name":"BAA","documentType":"baa","fileRef":"vendors/acme/baa.pdf","documentDate":"2026-01-15T00:00:00Z","tagIds":["` + tagIDs[0].String() + `","` + tagIDs[1].String() + `"]}`

		err := controller.Create(newDocumentCreateContext(e, body))

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})
}
