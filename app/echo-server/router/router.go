package router

import (
	"shopreco/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/recommendations")
	reco.GET("", handler.Recommend)
	reco.POST("/click", handler.Click)
}

func SetExperimentAdminRoutes(api *echo.Group, handler *rest.ExperimentAdminHandler) {
	admin := api.Group("/admin/experiments")
	admin.GET("", handler.GetExperiment)
	admin.PUT("", handler.UpsertExperiment)
}
