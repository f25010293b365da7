package http

import (
	"context"
	"net/http"
	"time"

	"shipdesk/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// HealthCheck checks one dependency for the readiness endpoint.
type HealthCheck func(ctx context.Context) error

// RouterConfig carries what the router needs besides the handlers.
type RouterConfig struct {
	Verifier *TokenVerifier
	Forward  TokenForwarder
	Contract *api.Contract
	Checks   map[string]HealthCheck
	Logger   *zap.Logger
}

// NewRouter builds the echo instance serving server.
func NewRouter(server *Server, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(requestLogger(cfg.Logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/health/ready", ready(cfg.Checks))

	if cfg.Contract != nil {
		contract := cfg.Contract
		e.GET("/openapi.json", func(c echo.Context) error {
			return c.JSONBlob(http.StatusOK, contract.JSON())
		})
		contract.RegisterSwagger()
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	auth := Authenticate(cfg.Verifier, cfg.Forward, cfg.Logger)
	v1 := e.Group("/api/v1")

	v1.GET("/statuses/:status/presentation", server.GetStatusPresentation)

	v1.POST("/desks", server.OpenDesk, auth)
	v1.GET("/desks/:deskId", server.GetDesk, auth)
	v1.DELETE("/desks/:deskId", server.CloseDesk, auth)
	v1.POST("/desks/:deskId/refresh", server.RefreshDesk, auth)

	v1.POST("/desks/:deskId/cancellation", server.RequestCancellation, auth)
	v1.DELETE("/desks/:deskId/cancellation", server.AbortCancellation, auth)
	v1.POST("/desks/:deskId/cancellation/confirm", server.ConfirmCancellation, auth)

	v1.POST("/desks/:deskId/assignment", server.OpenAssignment, auth)
	v1.DELETE("/desks/:deskId/assignment", server.CloseAssignment, auth)
	v1.PUT("/desks/:deskId/assignment/courier", server.SelectCourier, auth)
	v1.POST("/desks/:deskId/assignment/confirm", server.ConfirmAssignment, auth)

	v1.GET("/dashboard", server.GetDashboard, auth)
	v1.GET("/shipments/:shipmentId/actions", server.GetShipmentActions, auth)

	return e
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	logger = logger.With(zap.String("component", "http"))
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				logger.Warn("request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}

func ready(checks map[string]HealthCheck) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		result := make(map[string]string, len(checks))
		code := http.StatusOK
		for name, check := range checks {
			if err := check(ctx); err != nil {
				result[name] = err.Error()
				code = http.StatusServiceUnavailable
				continue
			}
			result[name] = "ok"
		}
		return c.JSON(code, result)
	}
}
