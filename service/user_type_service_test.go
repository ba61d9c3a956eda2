// service/user_type_service_test.go
package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"

	apperrors "github.com/scoutdesk/backoffice/errors"
	logger "github.com/scoutdesk/backoffice/logging"
	"github.com/scoutdesk/backoffice/service"
	"github.com/scoutdesk/backoffice/test/mock"
	"github.com/scoutdesk/backoffice/util"
)

func TestUserTypeServiceDelete(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	ctx := context.Background()

	newService := func(store *mock.MockUserTypeDAO, guard *mock.MockIntegrityGuard, cache *mock.MockCacheService) *service.UserTypeService {
		return service.NewUserTypeService(store, new(mock.MockAttributeDAO), guard, util.NewValidationUtil(), cache, util.NewNotificationService(), util.NewEventBus())
	}

	t.Run("refuses while profiles still carry the user type", func(t *testing.T) {
		store := new(mock.MockUserTypeDAO)
		guard := new(mock.MockIntegrityGuard)
		cache := new(mock.MockCacheService)
		guard.On("UserTypeInUse", tmock.Anything, "model").Return(&service.ReferenceCheck{
			InUse: true,
			Count: 3,
		}, nil)

		err := newService(store, guard, cache).DeleteUserType(ctx, "model")

		conflict, ok := apperrors.AsConflictError(err)
		assert.True(t, ok)
		assert.Equal(t, 3, conflict.Count)
		assert.Equal(t, "profile", conflict.BlockedBy)
		store.AssertNotCalled(t, "DeleteUserType", tmock.Anything, "model")
	})

	t.Run("deletes when no profile carries the user type", func(t *testing.T) {
		store := new(mock.MockUserTypeDAO)
		guard := new(mock.MockIntegrityGuard)
		cache := new(mock.MockCacheService)
		guard.On("UserTypeInUse", tmock.Anything, "model").Return(&service.ReferenceCheck{}, nil)
		store.On("DeleteUserType", tmock.Anything, "model").Return(nil)
		cache.On("DeleteUserType", tmock.Anything, "model").Return(nil)

		err := newService(store, guard, cache).DeleteUserType(ctx, "model")

		assert.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("surfaces a conflict raised by the store at delete time", func(t *testing.T) {
		// A profile registered between the guard answer and the delete is
		// caught inside the store transaction and blocks the delete.
		store := new(mock.MockUserTypeDAO)
		guard := new(mock.MockIntegrityGuard)
		cache := new(mock.MockCacheService)
		guard.On("UserTypeInUse", tmock.Anything, "model").Return(&service.ReferenceCheck{}, nil)
		store.On("DeleteUserType", tmock.Anything, "model").Return(&apperrors.ConflictError{
			Resource:  "user type",
			Slug:      "model",
			BlockedBy: "profile",
			Count:     1,
		})

		err := newService(store, guard, cache).DeleteUserType(ctx, "model")

		conflict, ok := apperrors.AsConflictError(err)
		assert.True(t, ok)
		assert.Equal(t, "profile", conflict.BlockedBy)
		cache.AssertNotCalled(t, "DeleteUserType", tmock.Anything, "model")
	})
}
