// controller/attribute_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"

	"github.com/scoutdesk/backoffice/controller"
	apperrors "github.com/scoutdesk/backoffice/errors"
	logger "github.com/scoutdesk/backoffice/logging"
	"github.com/scoutdesk/backoffice/model"
	"github.com/scoutdesk/backoffice/test/mock"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAttributeController(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	mockService := new(mock.MockAttributeService)
	attributeController := controller.NewAttributeController(mockService)
	router := setupRouter()
	api := router.Group("/")
	attributeController.RegisterRoutes(api)

	t.Run("CreateAttribute_Success", func(t *testing.T) {
		mockService.On("CreateAttribute", tmock.Anything, tmock.Anything).
			Return(&model.Attribute{Slug: "bio", Name: "Bio", FieldType: model.FieldTypeText}, nil).Once()

		body := strings.NewReader(`{"slug":"bio","name":"Bio","fieldType":"text"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/attributes", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("CreateAttribute_ValidationFailure", func(t *testing.T) {
		mockService.On("CreateAttribute", tmock.Anything, tmock.Anything).
			Return(nil, apperrors.NewValidationError("fieldType", `"richtext" is not a known field type`)).Once()

		body := strings.NewReader(`{"slug":"bio","name":"Bio","fieldType":"richtext"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/attributes", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response["message"], "fieldType")
	})

	t.Run("CreateAttribute_MalformedOptionShape", func(t *testing.T) {
		// The Option decoder rejects the shape before the service is reached.
		body := strings.NewReader(`{"slug":"bio","name":"Bio","fieldType":"select","defaultOptions":[[1,2]]}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/attributes", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("CreateAttribute_Conflict", func(t *testing.T) {
		mockService.On("CreateAttribute", tmock.Anything, tmock.Anything).
			Return(nil, &apperrors.ConflictError{Resource: "attribute", Slug: "bio"}).Once()

		body := strings.NewReader(`{"slug":"bio","name":"Bio","fieldType":"text"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/attributes", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("UpdateAttribute_NotFound", func(t *testing.T) {
		mockService.On("UpdateAttribute", tmock.Anything, "ghost", tmock.Anything).
			Return(nil, apperrors.ErrAttributeNotFound).Once()

		body := strings.NewReader(`{"name":"Ghost","fieldType":"text"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/attributes/ghost", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DeleteAttribute_BlockedByReference", func(t *testing.T) {
		mockService.On("DeleteAttribute", tmock.Anything, "bio").
			Return(&apperrors.ConflictError{Resource: "attribute", Slug: "bio", BlockedBy: "user type", Count: 2}).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/attributes/bio", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)

		var response map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response["message"], "referenced by 2 user type(s)")
	})

	t.Run("DeleteAttribute_Success", func(t *testing.T) {
		mockService.On("DeleteAttribute", tmock.Anything, "bio").
			Return(nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/attributes/bio", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("GetAttribute_NotFound", func(t *testing.T) {
		mockService.On("GetAttribute", tmock.Anything, "ghost").
			Return(nil, apperrors.ErrAttributeNotFound).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/attributes/ghost", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ListAttributes_EmptyIsJSONArray", func(t *testing.T) {
		mockService.On("ListAttributes", tmock.Anything, 10, 0).
			Return([]*model.Attribute(nil), nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/attributes", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	mockService.AssertExpectations(t)
}
