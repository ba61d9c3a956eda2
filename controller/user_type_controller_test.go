// controller/user_type_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"

	"github.com/scoutdesk/backoffice/controller"
	"github.com/scoutdesk/backoffice/dynamicform"
	apperrors "github.com/scoutdesk/backoffice/errors"
	logger "github.com/scoutdesk/backoffice/logging"
	"github.com/scoutdesk/backoffice/model"
	"github.com/scoutdesk/backoffice/service"
	"github.com/scoutdesk/backoffice/test/mock"
)

func TestUserTypeController(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	mockUserTypes := new(mock.MockUserTypeService)
	mockForms := new(mock.MockFormService)
	userTypeController := controller.NewUserTypeController(mockUserTypes, mockForms)
	router := setupRouter()
	api := router.Group("/")
	userTypeController.RegisterRoutes(api)

	t.Run("CreateUserType_Success", func(t *testing.T) {
		mockUserTypes.On("CreateUserType", tmock.Anything, tmock.Anything).
			Return(&model.UserTypeConfig{Slug: "photographer", Name: "Photographer"}, nil).Once()

		body := strings.NewReader(`{"slug":"photographer","name":"Photographer","parentType":"Collaborator","fields":[{"attributeSlug":"bio","label":"Bio","section":"About"}]}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/user-types", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("CreateUserType_UnknownBindingSlug", func(t *testing.T) {
		mockUserTypes.On("CreateUserType", tmock.Anything, tmock.Anything).
			Return(nil, apperrors.NewValidationError("fields[0].attributeSlug", `unknown attribute "ghost"`)).Once()

		body := strings.NewReader(`{"slug":"photographer","name":"Photographer","parentType":"Collaborator","fields":[{"attributeSlug":"ghost","label":"Ghost","section":"About"}]}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/user-types", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response["message"], "ghost")
	})

	t.Run("DeleteUserType_BlockedByProfiles", func(t *testing.T) {
		mockUserTypes.On("DeleteUserType", tmock.Anything, "photographer").
			Return(&apperrors.ConflictError{Resource: "user type", Slug: "photographer", BlockedBy: "profile", Count: 4}).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/user-types/photographer", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("GetForm_DefaultsToCreateMode", func(t *testing.T) {
		result := &service.FormResult{
			Form:  &dynamicform.Form{UserType: "photographer", Mode: dynamicform.ModeCreate},
			Rules: dynamicform.Ruleset{Mode: dynamicform.ModeCreate},
		}
		mockForms.On("BuildForm", tmock.Anything, "photographer", dynamicform.ModeCreate, "").
			Return(result, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/user-types/photographer/form", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GetForm_EditModeWithProfile", func(t *testing.T) {
		result := &service.FormResult{
			Form:  &dynamicform.Form{UserType: "photographer", Mode: dynamicform.ModeEdit},
			Rules: dynamicform.Ruleset{Mode: dynamicform.ModeEdit},
		}
		mockForms.On("BuildForm", tmock.Anything, "photographer", dynamicform.ModeEdit, "p-1").
			Return(result, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/user-types/photographer/form?mode=edit&profile=p-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GetForm_InvalidMode", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/user-types/photographer/form?mode=preview", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetForm_SchemaIntegrityViolation", func(t *testing.T) {
		mockForms.On("BuildForm", tmock.Anything, "photographer", dynamicform.ModeCreate, "").
			Return(nil, apperrors.ErrSchemaIntegrity).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/user-types/photographer/form", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("GetForm_UserTypeNotFound", func(t *testing.T) {
		mockForms.On("BuildForm", tmock.Anything, "ghost", dynamicform.ModeCreate, "").
			Return(nil, apperrors.ErrUserTypeNotFound).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/user-types/ghost/form", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	mockUserTypes.AssertExpectations(t)
	mockForms.AssertExpectations(t)
}
