// service/attribute_service_test.go
package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"

	apperrors "github.com/scoutdesk/backoffice/errors"
	logger "github.com/scoutdesk/backoffice/logging"
	"github.com/scoutdesk/backoffice/service"
	"github.com/scoutdesk/backoffice/test/mock"
	"github.com/scoutdesk/backoffice/util"
)

func TestAttributeServiceDelete(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	ctx := context.Background()

	newService := func(store *mock.MockAttributeDAO, guard *mock.MockIntegrityGuard, cache *mock.MockCacheService) *service.AttributeService {
		return service.NewAttributeService(store, guard, util.NewValidationUtil(), cache, util.NewNotificationService(), util.NewEventBus())
	}

	t.Run("refuses while user types still bind the attribute", func(t *testing.T) {
		store := new(mock.MockAttributeDAO)
		guard := new(mock.MockIntegrityGuard)
		cache := new(mock.MockCacheService)
		guard.On("AttributeInUse", tmock.Anything, "skills").Return(&service.ReferenceCheck{
			InUse:     true,
			Count:     2,
			Referrers: []string{"model", "actor"},
		}, nil)

		err := newService(store, guard, cache).DeleteAttribute(ctx, "skills")

		conflict, ok := apperrors.AsConflictError(err)
		assert.True(t, ok)
		assert.Equal(t, 2, conflict.Count)
		assert.Equal(t, "user type", conflict.BlockedBy)
		store.AssertNotCalled(t, "DeleteAttribute", tmock.Anything, "skills")
	})

	t.Run("deletes when nothing references the attribute", func(t *testing.T) {
		store := new(mock.MockAttributeDAO)
		guard := new(mock.MockIntegrityGuard)
		cache := new(mock.MockCacheService)
		guard.On("AttributeInUse", tmock.Anything, "skills").Return(&service.ReferenceCheck{}, nil)
		store.On("DeleteAttribute", tmock.Anything, "skills").Return(nil)
		cache.On("DeleteAttribute", tmock.Anything, "skills").Return(nil)

		err := newService(store, guard, cache).DeleteAttribute(ctx, "skills")

		assert.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("surfaces a conflict raised by the store at delete time", func(t *testing.T) {
		// The store re-checks references inside the delete transaction, so a
		// binding created after the guard answered still blocks the delete.
		store := new(mock.MockAttributeDAO)
		guard := new(mock.MockIntegrityGuard)
		cache := new(mock.MockCacheService)
		guard.On("AttributeInUse", tmock.Anything, "skills").Return(&service.ReferenceCheck{}, nil)
		store.On("DeleteAttribute", tmock.Anything, "skills").Return(&apperrors.ConflictError{
			Resource:  "attribute",
			Slug:      "skills",
			BlockedBy: "user type",
			Count:     1,
		})

		err := newService(store, guard, cache).DeleteAttribute(ctx, "skills")

		conflict, ok := apperrors.AsConflictError(err)
		assert.True(t, ok)
		assert.Equal(t, 1, conflict.Count)
		cache.AssertNotCalled(t, "DeleteAttribute", tmock.Anything, "skills")
	})

	t.Run("fails closed when the reference check errors", func(t *testing.T) {
		store := new(mock.MockAttributeDAO)
		guard := new(mock.MockIntegrityGuard)
		cache := new(mock.MockCacheService)
		checkErr := errors.New("connection refused")
		guard.On("AttributeInUse", tmock.Anything, "skills").Return(nil, checkErr)

		err := newService(store, guard, cache).DeleteAttribute(ctx, "skills")

		assert.ErrorIs(t, err, checkErr)
		store.AssertNotCalled(t, "DeleteAttribute", tmock.Anything, "skills")
	})
}
