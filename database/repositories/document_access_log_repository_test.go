package repositories_test

import (
	"testing"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/caas-platform/vendorguard/database/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// the ledger is append-only: mutation attempts must fail before ever touching
// the database, which is why these tests run against a nil connection.
func TestAccessLogImmutability(t *testing.T) {
	repository := repositories.NewDocumentAccessLogRepository(nil)

	t.Run("should refuse updates", func(t *testing.T) {
		err := repository.Update(nil, &models.DocumentAccessLog{ID: uuid.New()})

		assert.ErrorIs(t, err, repositories.ErrImmutableAccessLog)
	})

	t.Run("should refuse deletes", func(t *testing.T) {
		err := repository.Delete(nil, uuid.New())

		assert.ErrorIs(t, err, repositories.ErrImmutableAccessLog)
	})
}
