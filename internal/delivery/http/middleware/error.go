package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"silverwork/internal/pkg/response"
)

// AppError carries an HTTP status, a stable machine-readable error kind and
// a user-facing message across the handler boundary.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, code, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Code: code, Message: message, Cause: cause}
}

type ErrorMiddleware struct {
	logger *zap.Logger
}

func NewErrorMiddleware(logger *zap.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered", zap.Any("panic", r), zap.String("path", c.Path()))
				err = response.Fail(c, fiber.StatusInternalServerError, response.CodeInternal, "")
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, code, msg := m.normalize(err)
		return response.Fail(c, status, code, msg)
	}
}

func (m *ErrorMiddleware) normalize(err error) (int, string, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= 500 {
			m.logger.Error("request failed", zap.Error(appErr))
			return fiber.StatusInternalServerError, response.CodeInternal, ""
		}
		return status, appErr.Code, appErr.Message
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code > 0 && fiberErr.Code < 500 {
		code := response.CodeValidationFailed
		if fiberErr.Code == fiber.StatusNotFound {
			code = response.CodeNotFound
		}
		return fiberErr.Code, code, fiberErr.Message
	}

	m.logger.Error("request failed", zap.Error(err))
	return fiber.StatusInternalServerError, response.CodeInternal, ""
}
