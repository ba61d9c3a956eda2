// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scoutdesk/backoffice/controller"
	"github.com/scoutdesk/backoffice/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))
	router.Use(middleware.OperatorAuth())

	api := router.Group("/api/v1")

	controllers.Attribute.RegisterRoutes(api)
	controllers.UserType.RegisterRoutes(api)
	controllers.Profile.RegisterRoutes(api)
	controllers.StaticData.RegisterRoutes(api)
	controllers.Job.RegisterRoutes(api)
	controllers.Announcement.RegisterRoutes(api)

	return router
}
