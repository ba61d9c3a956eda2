// controller/user_type_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scoutdesk/backoffice/dynamicform"
	apperrors "github.com/scoutdesk/backoffice/errors"
	"github.com/scoutdesk/backoffice/model"
	"github.com/scoutdesk/backoffice/service"
	"github.com/scoutdesk/backoffice/util"
	helper_util "github.com/scoutdesk/backoffice/util/helper"
)

type UserTypeController struct {
	userTypeService service.IUserTypeService
	formService     service.IFormService
}

func NewUserTypeController(userTypeService service.IUserTypeService, formService service.IFormService) *UserTypeController {
	return &UserTypeController{
		userTypeService: userTypeService,
		formService:     formService,
	}
}

// RegisterRoutes registers the schema composer routes
func (utc *UserTypeController) RegisterRoutes(r *gin.RouterGroup) {
	userTypes := r.Group("/user-types")
	{
		userTypes.POST("", utc.CreateUserType)
		userTypes.PUT("/:slug", utc.UpdateUserType)
		userTypes.DELETE("/:slug", utc.DeleteUserType)
		userTypes.GET("/:slug", utc.GetUserType)
		userTypes.GET("", utc.ListUserTypes)
		userTypes.GET("/:slug/form", utc.GetForm)
	}
}

// CreateUserType endpoint
func (utc *UserTypeController) CreateUserType(c *gin.Context) {
	var userType model.UserTypeConfig
	if err := c.ShouldBindJSON(&userType); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user type data", err)
		return
	}

	createdUserType, err := utc.userTypeService.CreateUserType(c, userType)
	if err != nil {
		if ve, ok := apperrors.AsValidationError(err); ok {
			util.RespondWithError(c, http.StatusBadRequest, ve.Error(), err)
			return
		}
		if ce, ok := apperrors.AsConflictError(err); ok {
			util.RespondWithError(c, http.StatusConflict, ce.Error(), err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to create user type", err)
		return
	}

	c.JSON(http.StatusCreated, createdUserType)
}

// UpdateUserType endpoint
func (utc *UserTypeController) UpdateUserType(c *gin.Context) {
	slug := c.Param("slug")
	var userType model.UserTypeConfig
	if err := c.ShouldBindJSON(&userType); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user type data", err)
		return
	}

	updatedUserType, err := utc.userTypeService.UpdateUserType(c, slug, userType)
	if err != nil {
		if ve, ok := apperrors.AsValidationError(err); ok {
			util.RespondWithError(c, http.StatusBadRequest, ve.Error(), err)
			return
		}
		if errors.Is(err, apperrors.ErrUserTypeNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User type not found", err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to update user type", err)
		return
	}

	c.JSON(http.StatusOK, updatedUserType)
}

// DeleteUserType endpoint
func (utc *UserTypeController) DeleteUserType(c *gin.Context) {
	slug := c.Param("slug")

	if err := utc.userTypeService.DeleteUserType(c, slug); err != nil {
		if ce, ok := apperrors.AsConflictError(err); ok {
			util.RespondWithError(c, http.StatusConflict, ce.Error(), err)
			return
		}
		if errors.Is(err, apperrors.ErrUserTypeNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User type not found", err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user type", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetUserType endpoint
func (utc *UserTypeController) GetUserType(c *gin.Context) {
	slug := c.Param("slug")

	userType, err := utc.userTypeService.GetUserType(c, slug)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserTypeNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User type not found", err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve user type", err)
		return
	}

	c.JSON(http.StatusOK, userType)
}

// ListUserTypes endpoint
func (utc *UserTypeController) ListUserTypes(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", apperrors.ErrInvalidPagination)
		return
	}

	userTypes, err := utc.userTypeService.ListUserTypes(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list user types", err)
		return
	}
	if userTypes == nil {
		userTypes = []*model.UserTypeConfig{}
	}

	c.JSON(http.StatusOK, userTypes)
}

// GetForm endpoint. Generates the render descriptor and validation ruleset
// for a user type. ?mode=edit&profile=<id> seeds initial values from the
// profile's stored record.
func (utc *UserTypeController) GetForm(c *gin.Context) {
	slug := c.Param("slug")

	mode := dynamicform.Mode(c.DefaultQuery("mode", string(dynamicform.ModeCreate)))
	if mode != dynamicform.ModeCreate && mode != dynamicform.ModeEdit {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid form mode", apperrors.ErrInvalidUserTypeData)
		return
	}
	profileID := c.Query("profile")

	form, err := utc.formService.BuildForm(c, slug, mode, profileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserTypeNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User type not found", err)
			return
		}
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Profile not found", err)
			return
		}
		if errors.Is(err, apperrors.ErrSchemaIntegrity) {
			util.RespondWithError(c, http.StatusInternalServerError, "Schema integrity violation", err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to generate form", err)
		return
	}

	c.JSON(http.StatusOK, form)
}
