package rest

import (
	"net/http"

	"shopreco/business/reco"
	"shopreco/domain"

	"github.com/labstack/echo/v4"
)

type ExperimentAdminHandler struct {
	experimentRepo reco.ExperimentAdminRepository
}

func NewExperimentAdminHandler(experimentRepo reco.ExperimentAdminRepository) *ExperimentAdminHandler {
	return &ExperimentAdminHandler{
		experimentRepo: experimentRepo,
	}
}

// GET /api/v1/admin/experiments?name=reco_ranking_v1
func (h *ExperimentAdminHandler) GetExperiment(c echo.Context) error {
	ctx := c.Request().Context()
	name := c.QueryParam("name")

	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "name is required",
		})
	}

	exp, ok, err := h.experimentRepo.GetByName(ctx, name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "experiment not found",
		})
	}

	return c.JSON(http.StatusOK, exp)
}

// PUT /api/v1/admin/experiments
// body: Experiment JSON
func (h *ExperimentAdminHandler) UpsertExperiment(c echo.Context) error {
	ctx := c.Request().Context()

	var body domain.Experiment
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}
	if body.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "name is required",
		})
	}

	if err := h.experimentRepo.Upsert(ctx, body); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}
