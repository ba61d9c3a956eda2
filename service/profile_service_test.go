// service/profile_service_test.go
package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"

	logger "github.com/scoutdesk/backoffice/logging"
	"github.com/scoutdesk/backoffice/model"
	"github.com/scoutdesk/backoffice/service"
	"github.com/scoutdesk/backoffice/test/mock"
	"github.com/scoutdesk/backoffice/util"
)

func storedPhotographer() *model.Profile {
	return &model.Profile{
		ID:               "p1",
		Email:            "iris@example.com",
		FirstName:        "Iris",
		LastName:         "Blanc",
		Country:          "FR",
		UserType:         model.ParentCollaborator,
		CollaboratorType: "photographer",
		Attributes: map[string]any{
			"bio":       "Editorial photographer",
			"portfolio": []any{map[string]any{"path": "/media/p1/cover.jpg"}},
		},
	}
}

func TestProfileServiceWrites(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	ctx := context.Background()

	newService := func(store *mock.MockProfileDAO, userTypes *mock.MockUserTypeService, attrs *mock.MockAttributeService, staticData *mock.MockStaticDataService, cache *mock.MockCacheService) *service.ProfileService {
		return service.NewProfileService(store, userTypes, attrs, staticData, cache, util.NewNotificationService(), util.NewEventBus())
	}

	t.Run("edit cannot overwrite a stored file array", func(t *testing.T) {
		store := new(mock.MockProfileDAO)
		userTypes := new(mock.MockUserTypeService)
		attrs := new(mock.MockAttributeService)
		staticData := new(mock.MockStaticDataService)
		cache := new(mock.MockCacheService)

		stored := storedPhotographer()
		originalPortfolio := []any{map[string]any{"path": "/media/p1/cover.jpg"}}

		store.On("GetProfile", tmock.Anything, "p1").Return(stored, nil)
		userTypes.On("GetUserType", tmock.Anything, "photographer").Return(photographerConfig(), nil)
		attrs.On("GetAttributesBySlugs", tmock.Anything, []string{"bio", "portfolio"}).Return(photographerAttrs(), nil)
		staticData.On("Lists", tmock.Anything).Return(model.StaticLists{}, nil)
		store.On("UpdateProfile", tmock.Anything, tmock.MatchedBy(func(p model.Profile) bool {
			return assert.ObjectsAreEqual(originalPortfolio, p.Attributes["portfolio"]) &&
				p.Attributes["bio"] == "Now booking studio work"
		})).Return(stored, nil)
		cache.On("SetProfile", tmock.Anything, tmock.Anything).Return(nil)

		svc := newService(store, userTypes, attrs, staticData, cache)
		_, err := svc.UpdateProfile(ctx, "p1", map[string]any{
			"bio":       "Now booking studio work",
			"portfolio": "not-a-file-array",
		})

		assert.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("create accepts the file array field", func(t *testing.T) {
		store := new(mock.MockProfileDAO)
		userTypes := new(mock.MockUserTypeService)
		attrs := new(mock.MockAttributeService)
		staticData := new(mock.MockStaticDataService)
		cache := new(mock.MockCacheService)

		submitted := []any{map[string]any{"path": "/media/new/first.jpg"}}

		userTypes.On("GetUserType", tmock.Anything, "photographer").Return(photographerConfig(), nil)
		attrs.On("GetAttributesBySlugs", tmock.Anything, []string{"bio", "portfolio"}).Return(photographerAttrs(), nil)
		staticData.On("Lists", tmock.Anything).Return(model.StaticLists{}, nil)
		store.On("CreateProfile", tmock.Anything, tmock.MatchedBy(func(p model.Profile) bool {
			return assert.ObjectsAreEqual(submitted, p.Attributes["portfolio"])
		})).Return(nil)
		cache.On("SetProfile", tmock.Anything, tmock.Anything).Return(nil)

		svc := newService(store, userTypes, attrs, staticData, cache)
		created, err := svc.CreateProfile(ctx, map[string]any{
			"userType":         "Collaborator",
			"collaboratorType": "photographer",
			"email":            "noa@example.com",
			"first_name":       "Noa",
			"last_name":        "Marchand",
			"country":          "FR",
			"password":         "long-enough",
			"bio":              "Portraits and product shots",
			"portfolio":        submitted,
		})

		assert.NoError(t, err)
		assert.Equal(t, submitted, created.Attributes["portfolio"])
		assert.NotEmpty(t, created.PasswordHash)
		store.AssertExpectations(t)
	})

	t.Run("edit drops unbound keys without failing", func(t *testing.T) {
		store := new(mock.MockProfileDAO)
		userTypes := new(mock.MockUserTypeService)
		attrs := new(mock.MockAttributeService)
		staticData := new(mock.MockStaticDataService)
		cache := new(mock.MockCacheService)

		stored := storedPhotographer()

		store.On("GetProfile", tmock.Anything, "p1").Return(stored, nil)
		userTypes.On("GetUserType", tmock.Anything, "photographer").Return(photographerConfig(), nil)
		attrs.On("GetAttributesBySlugs", tmock.Anything, []string{"bio", "portfolio"}).Return(photographerAttrs(), nil)
		staticData.On("Lists", tmock.Anything).Return(model.StaticLists{}, nil)
		store.On("UpdateProfile", tmock.Anything, tmock.MatchedBy(func(p model.Profile) bool {
			_, present := p.Attributes["day_rate"]
			return !present
		})).Return(stored, nil)
		cache.On("SetProfile", tmock.Anything, tmock.Anything).Return(nil)

		svc := newService(store, userTypes, attrs, staticData, cache)
		_, err := svc.UpdateProfile(ctx, "p1", map[string]any{"day_rate": 450})

		assert.NoError(t, err)
		store.AssertExpectations(t)
	})
}
