// controller/static_data_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scoutdesk/backoffice/service"
	"github.com/scoutdesk/backoffice/util"
)

type StaticDataController struct {
	staticDataService service.IStaticDataService
}

func NewStaticDataController(staticDataService service.IStaticDataService) *StaticDataController {
	return &StaticDataController{
		staticDataService: staticDataService,
	}
}

// RegisterRoutes registers the global dictionary routes
func (sdc *StaticDataController) RegisterRoutes(r *gin.RouterGroup) {
	data := r.Group("/data")
	{
		data.GET("/static-lists", sdc.GetStaticLists)
		data.POST("/static-lists/refresh", sdc.RefreshStaticLists)
	}
}

// GetStaticLists endpoint
func (sdc *StaticDataController) GetStaticLists(c *gin.Context) {
	lists, err := sdc.staticDataService.Lists(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to load static lists", err)
		return
	}

	c.JSON(http.StatusOK, lists)
}

// RefreshStaticLists endpoint. Reloads the dictionary from configuration.
func (sdc *StaticDataController) RefreshStaticLists(c *gin.Context) {
	if err := sdc.staticDataService.Refresh(c); err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to refresh static lists", err)
		return
	}

	lists, err := sdc.staticDataService.Lists(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to load static lists", err)
		return
	}

	c.JSON(http.StatusOK, lists)
}
