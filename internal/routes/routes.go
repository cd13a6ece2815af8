package routes

import (
	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/handlers"
)

// RegisterRoutes registers every HTTP route.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.JobPostingHandler.RegisterRoutes(api)
		appHandlers.OrganizationHandler.RegisterRoutes(api)
		appHandlers.FieldOptionsHandler.RegisterRoutes(api)
	}
}
