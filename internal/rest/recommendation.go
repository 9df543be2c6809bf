package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"shopreco/business/reco"
	"shopreco/domain"
	"shopreco/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ResponseError struct {
	Message string `json:"message"`
}

type (
	RecommendationHandler struct {
		validate    *validator.Validate
		recoService RecommendationService
	}

	RecommendationService interface {
		Recommend(ctx context.Context, req reco.Request) (*domain.RecommendationResult, error)
		LogClick(ctx context.Context, userID uint, productID uint64) error
	}

	RecommendQuery struct {
		UserID          uint   `query:"user_id" validate:"required"`
		ViewedProductID uint64 `query:"viewed_product_id"`
		Type            string `query:"type" validate:"omitempty,oneof=general cross_sell trending similar_users"`
		Limit           int    `query:"limit"`
	}

	ClickRequest struct {
		UserID    uint   `json:"user_id" validate:"required"`
		ProductID uint64 `json:"product_id" validate:"required"`
	}
)

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:    validator.New(),
		recoService: svc,
	}
}

// GET /api/v1/recommendations?user_id=42&type=general&limit=10
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	start := time.Now()
	result, err := h.recoService.Recommend(c.Request().Context(), reco.Request{
		UserID:          q.UserID,
		ViewedProductID: q.ViewedProductID,
		Type:            q.Type,
		Limit:           q.Limit,
	})
	if err != nil {
		switch {
		case errors.Is(err, reco.ErrUnknownUser):
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		case errors.Is(err, reco.ErrUserRequired), errors.Is(err, reco.ErrInvalidType):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		}
	}

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	metrics.RecommendRequests.WithLabelValues(result.Metadata.RecommendationType, result.Metadata.ABTestGroup).Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// POST /api/v1/recommendations/click
func (h *RecommendationHandler) Click(c echo.Context) error {
	var req ClickRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.recoService.LogClick(c.Request().Context(), req.UserID, req.ProductID); err != nil {
		switch {
		case errors.Is(err, reco.ErrUserRequired), errors.Is(err, reco.ErrProductRequired):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		}
	}

	metrics.ClickEventsTotal.Inc()

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("click recorded"))
}
