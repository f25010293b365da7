package http

import (
	"errors"
	"net/http"

	"shipdesk/internal/core/application/desk"
	"shipdesk/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusOf maps application errors onto HTTP statuses. The second result is
// the message shown to the caller.
func statusOf(err error) (int, string) {
	var (
		action     *desk.ActionError
		remote     *errs.RemoteError
		validation validator.ValidationErrors
	)

	switch {
	case errors.As(err, &action):
		return http.StatusBadGateway, action.Message
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.As(err, &validation),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, desk.ErrAssignmentNotPermitted):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, desk.ErrShipmentNotCancellable),
		errors.Is(err, desk.ErrConfirmationRequired),
		errors.Is(err, desk.ErrAssignmentNotOpen),
		errors.Is(err, desk.ErrSelectionIncomplete),
		errors.Is(err, desk.ErrSubmissionInFlight):
		return http.StatusConflict, err.Error()
	case errors.As(err, &remote):
		if errs.IsAuthorization(err) {
			return remote.StatusCode, http.StatusText(remote.StatusCode)
		}
		if remote.Message != "" {
			return http.StatusBadGateway, remote.Message
		}
		return http.StatusBadGateway, "Upstream service unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func (s *Server) writeError(c echo.Context, err error) error {
	code, message := statusOf(err)
	if code >= http.StatusInternalServerError {
		s.logger.Error("request error",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err))
	}
	return writeJSONError(c, code, message)
}

func writeJSONError(c echo.Context, code int, message string) error {
	return c.JSON(code, Error{Code: code, Message: message})
}
