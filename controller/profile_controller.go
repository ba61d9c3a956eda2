// controller/profile_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/scoutdesk/backoffice/errors"
	"github.com/scoutdesk/backoffice/model"
	"github.com/scoutdesk/backoffice/service"
	"github.com/scoutdesk/backoffice/util"
	helper_util "github.com/scoutdesk/backoffice/util/helper"
)

type ProfileController struct {
	profileService service.IProfileService
}

func NewProfileController(profileService service.IProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// RegisterRoutes registers the profile store routes
func (pc *ProfileController) RegisterRoutes(r *gin.RouterGroup) {
	profiles := r.Group("/profiles")
	{
		profiles.POST("", pc.CreateProfile)
		profiles.PUT("/:id", pc.UpdateProfile)
		profiles.DELETE("/:id", pc.DeleteProfile)
		profiles.GET("/:id", pc.GetProfile)
		profiles.GET("/:id/view", pc.GetMergedView)
		profiles.GET("", pc.ListProfiles)
	}
}

// CreateProfile endpoint. The payload is a flat map of core fields, dynamic
// fields, and the user type discriminator; the service splits it.
func (pc *ProfileController) CreateProfile(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid profile data", err)
		return
	}

	createdProfile, err := pc.profileService.CreateProfile(c, payload)
	if err != nil {
		if ve, ok := apperrors.AsValidationError(err); ok {
			util.RespondWithError(c, http.StatusBadRequest, ve.Error(), err)
			return
		}
		if ce, ok := apperrors.AsConflictError(err); ok {
			util.RespondWithError(c, http.StatusConflict, ce.Error(), err)
			return
		}
		if errors.Is(err, apperrors.ErrSchemaIntegrity) {
			util.RespondWithError(c, http.StatusInternalServerError, "Schema integrity violation", err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to create profile", err)
		return
	}

	c.JSON(http.StatusCreated, createdProfile)
}

// UpdateProfile endpoint
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	profileID := c.Param("id")
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid profile data", err)
		return
	}

	updatedProfile, err := pc.profileService.UpdateProfile(c, profileID, payload)
	if err != nil {
		if ve, ok := apperrors.AsValidationError(err); ok {
			util.RespondWithError(c, http.StatusBadRequest, ve.Error(), err)
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
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile", err)
		return
	}

	c.JSON(http.StatusOK, updatedProfile)
}

// DeleteProfile endpoint
func (pc *ProfileController) DeleteProfile(c *gin.Context) {
	profileID := c.Param("id")

	if err := pc.profileService.DeleteProfile(c, profileID); err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Profile not found", err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete profile", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetProfile endpoint
func (pc *ProfileController) GetProfile(c *gin.Context) {
	profileID := c.Param("id")

	profile, err := pc.profileService.GetProfile(c, profileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Profile not found", err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve profile", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetMergedView endpoint. Returns the profile flattened into a single map,
// core fields winning over the dynamic bag on key collisions.
func (pc *ProfileController) GetMergedView(c *gin.Context) {
	profileID := c.Param("id")

	view, err := pc.profileService.GetMergedView(c, profileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Profile not found", err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve profile", err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// ListProfiles endpoint
func (pc *ProfileController) ListProfiles(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", apperrors.ErrInvalidPagination)
		return
	}

	profiles, err := pc.profileService.ListProfiles(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list profiles", err)
		return
	}
	if profiles == nil {
		profiles = []*model.Profile{}
	}

	c.JSON(http.StatusOK, profiles)
}
