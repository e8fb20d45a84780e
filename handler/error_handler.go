package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/chatbridge/leadcapture/binder"
	"github.com/chatbridge/leadcapture/pkg/logger"
	"github.com/chatbridge/leadcapture/pkg/validator"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	HTTPError HTTPError
	Fields    []FieldError
	LogLevel  slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// fieldErrors keeps the validation order of the collected errors.
func fieldErrors(errs validator.ValidationErrors) []FieldError {
	fields := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, FieldError{Field: e.Field, Message: e.Message})
	}
	return fields
}

// classifyError maps an error to the response envelope. Anything that is
// not a known client error becomes a generic 500 so internals never leak.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{HTTPError: ErrInternalServerError}

	var httpErr HTTPError
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		info.HTTPError = ErrValidation
		info.Fields = fieldErrors(validationErrs)
	case errors.Is(err, binder.ErrInvalidJSON), errors.Is(err, binder.ErrUnsupportedMediaType):
		info.HTTPError = ErrInvalidJSON
	case errors.As(err, &httpErr):
		info.HTTPError = httpErr
	}

	info.LogLevel = determineLogLevel(info.HTTPError.Code)
	return info
}

// NewErrorHandler creates the JSON error handler used by every endpoint.
// Client errors are logged at warn level and the rest at error level with
// the original error attached; the response only carries the generic envelope.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			logger.StatusCode(info.HTTPError.Code),
			slog.String("code", info.HTTPError.Key),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if renderErr := JSONError(info.HTTPError, info.Fields).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error_response"),
			)
		}
	}
}
