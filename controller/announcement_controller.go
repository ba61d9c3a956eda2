// controller/announcement_controller.go
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

type AnnouncementController struct {
	announcementService service.IAnnouncementService
}

func NewAnnouncementController(announcementService service.IAnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
	}
}

// RegisterRoutes registers the announcement routes
func (anc *AnnouncementController) RegisterRoutes(r *gin.RouterGroup) {
	announcements := r.Group("/announcements")
	{
		announcements.POST("", anc.CreateAnnouncement)
		announcements.PUT("/:id", anc.UpdateAnnouncement)
		announcements.POST("/:id/publish", anc.PublishAnnouncement)
		announcements.DELETE("/:id", anc.DeleteAnnouncement)
		announcements.GET("/:id", anc.GetAnnouncement)
		announcements.GET("", anc.ListAnnouncements)
	}
}

// CreateAnnouncement endpoint
func (anc *AnnouncementController) CreateAnnouncement(c *gin.Context) {
	var announcement model.Announcement
	if err := c.ShouldBindJSON(&announcement); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid announcement data", err)
		return
	}

	createdAnnouncement, err := anc.announcementService.CreateAnnouncement(c, announcement)
	if err != nil {
		if ve, ok := apperrors.AsValidationError(err); ok {
			util.RespondWithError(c, http.StatusBadRequest, ve.Error(), err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to create announcement", err)
		return
	}

	c.JSON(http.StatusCreated, createdAnnouncement)
}

// UpdateAnnouncement endpoint
func (anc *AnnouncementController) UpdateAnnouncement(c *gin.Context) {
	announcementID := c.Param("id")
	var announcement model.Announcement
	if err := c.ShouldBindJSON(&announcement); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid announcement data", err)
		return
	}

	updatedAnnouncement, err := anc.announcementService.UpdateAnnouncement(c, announcementID, announcement)
	if err != nil {
		if ve, ok := apperrors.AsValidationError(err); ok {
			util.RespondWithError(c, http.StatusBadRequest, ve.Error(), err)
			return
		}
		if errors.Is(err, apperrors.ErrAnnouncementNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Announcement not found", err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to update announcement", err)
		return
	}

	c.JSON(http.StatusOK, updatedAnnouncement)
}

// PublishAnnouncement endpoint
func (anc *AnnouncementController) PublishAnnouncement(c *gin.Context) {
	announcementID := c.Param("id")

	publishedAnnouncement, err := anc.announcementService.PublishAnnouncement(c, announcementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAnnouncementNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Announcement not found", err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to publish announcement", err)
		return
	}

	c.JSON(http.StatusOK, publishedAnnouncement)
}

// DeleteAnnouncement endpoint
func (anc *AnnouncementController) DeleteAnnouncement(c *gin.Context) {
	announcementID := c.Param("id")

	if err := anc.announcementService.DeleteAnnouncement(c, announcementID); err != nil {
		if errors.Is(err, apperrors.ErrAnnouncementNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Announcement not found", err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete announcement", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAnnouncement endpoint
func (anc *AnnouncementController) GetAnnouncement(c *gin.Context) {
	announcementID := c.Param("id")

	announcement, err := anc.announcementService.GetAnnouncement(c, announcementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAnnouncementNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Announcement not found", err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve announcement", err)
		return
	}

	c.JSON(http.StatusOK, announcement)
}

// ListAnnouncements endpoint
func (anc *AnnouncementController) ListAnnouncements(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", apperrors.ErrInvalidPagination)
		return
	}

	announcements, err := anc.announcementService.ListAnnouncements(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list announcements", err)
		return
	}
	if announcements == nil {
		announcements = []*model.Announcement{}
	}

	c.JSON(http.StatusOK, announcements)
}
