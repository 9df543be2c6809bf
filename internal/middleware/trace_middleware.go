package middleware

import (
	"context"

	"shopreco/business/reco"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceMiddleware stamps every request with a trace id so engine logs can be
// correlated with the response. An incoming X-Trace-Id header is honored.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get("X-Trace-Id")
			if traceID == "" {
				traceID = uuid.NewString()
			}

			ctx := context.WithValue(c.Request().Context(), reco.TraceIDKey, traceID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("X-Trace-Id", traceID)

			return next(c)
		}
	}
}
