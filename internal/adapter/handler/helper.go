package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetingflow-team/meeting-publisher/errors"
	"github.com/meetingflow-team/meeting-publisher/internal/adapter/dto/common"
)

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleSuccess writes the payload and logs the outcome
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}
	return c.JSON(status, data)
}

// HandleError centralizes error handling and logging. AppError values map to
// their HTTP code and taxonomy name; anything else degrades to a 500. The
// response body always carries the `error` field, so no handler leaks a raw
// failure to the client.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.String("app_code", appErr.Code.String()),
				zap.Error(err),
			)
		}
		return c.JSON(appErr.HTTPCode, common.ErrorResponse{
			Error:   appErr.Message,
			Code:    appErr.Code.String(),
			Details: appErr.Details,
		})
	}

	// Non-AppError => internal server error
	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Error: "Internal server error",
		Code:  errors.ErrorCode_INTERNAL.String(),
	})
}

// bindAndValidate decodes the request body and runs struct validation,
// normalizing both failure modes into the validation taxonomy.
func bindAndValidate(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		return errors.ErrValidation("Invalid request payload")
	}
	if err := c.Validate(v); err != nil {
		return errors.ErrValidation(err.Error())
	}
	return nil
}
