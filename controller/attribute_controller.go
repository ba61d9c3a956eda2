// controller/attribute_controller.go
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

type AttributeController struct {
	attributeService service.IAttributeService
}

func NewAttributeController(attributeService service.IAttributeService) *AttributeController {
	return &AttributeController{
		attributeService: attributeService,
	}
}

// RegisterRoutes registers the attribute registry routes
func (ac *AttributeController) RegisterRoutes(r *gin.RouterGroup) {
	attributes := r.Group("/attributes")
	{
		attributes.POST("", ac.CreateAttribute)
		attributes.PUT("/:slug", ac.UpdateAttribute)
		attributes.DELETE("/:slug", ac.DeleteAttribute)
		attributes.GET("/:slug", ac.GetAttribute)
		attributes.GET("", ac.ListAttributes)
	}
}

// CreateAttribute endpoint
func (ac *AttributeController) CreateAttribute(c *gin.Context) {
	var attribute model.Attribute
	if err := c.ShouldBindJSON(&attribute); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid attribute data", err)
		return
	}

	createdAttribute, err := ac.attributeService.CreateAttribute(c, attribute)
	if err != nil {
		if ve, ok := apperrors.AsValidationError(err); ok {
			util.RespondWithError(c, http.StatusBadRequest, ve.Error(), err)
			return
		}
		if ce, ok := apperrors.AsConflictError(err); ok {
			util.RespondWithError(c, http.StatusConflict, ce.Error(), err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to create attribute", err)
		return
	}

	c.JSON(http.StatusCreated, createdAttribute)
}

// UpdateAttribute endpoint
func (ac *AttributeController) UpdateAttribute(c *gin.Context) {
	slug := c.Param("slug")
	var attribute model.Attribute
	if err := c.ShouldBindJSON(&attribute); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid attribute data", err)
		return
	}

	updatedAttribute, err := ac.attributeService.UpdateAttribute(c, slug, attribute)
	if err != nil {
		if ve, ok := apperrors.AsValidationError(err); ok {
			util.RespondWithError(c, http.StatusBadRequest, ve.Error(), err)
			return
		}
		if errors.Is(err, apperrors.ErrAttributeNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Attribute not found", err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to update attribute", err)
		return
	}

	c.JSON(http.StatusOK, updatedAttribute)
}

// DeleteAttribute endpoint
func (ac *AttributeController) DeleteAttribute(c *gin.Context) {
	slug := c.Param("slug")

	if err := ac.attributeService.DeleteAttribute(c, slug); err != nil {
		if ce, ok := apperrors.AsConflictError(err); ok {
			util.RespondWithError(c, http.StatusConflict, ce.Error(), err)
			return
		}
		if errors.Is(err, apperrors.ErrAttributeNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Attribute not found", err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete attribute", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAttribute endpoint
func (ac *AttributeController) GetAttribute(c *gin.Context) {
	slug := c.Param("slug")

	attribute, err := ac.attributeService.GetAttribute(c, slug)
	if err != nil {
		if errors.Is(err, apperrors.ErrAttributeNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Attribute not found", err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve attribute", err)
		return
	}

	c.JSON(http.StatusOK, attribute)
}

// ListAttributes endpoint
func (ac *AttributeController) ListAttributes(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", apperrors.ErrInvalidPagination)
		return
	}

	attributes, err := ac.attributeService.ListAttributes(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list attributes", err)
		return
	}
	if attributes == nil {
		attributes = []*model.Attribute{}
	}

	c.JSON(http.StatusOK, attributes)
}
