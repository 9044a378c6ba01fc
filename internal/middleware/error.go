package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campus-lostfound/internal/domain"
	"campus-lostfound/internal/service"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	errorCode := "INTERNAL_ERROR"

	var fiberErr *fiber.Error
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
		errorCode = codeFor(code)
	case errors.As(err, &validationErr):
		code = fiber.StatusBadRequest
		message = validationErr.Error()
		errorCode = "VALIDATION_ERROR"
	case errors.Is(err, domain.ErrStatusConflict):
		code = fiber.StatusConflict
		message = "Entity status changed concurrently, please retry"
		errorCode = "STATUS_CONFLICT"
	case errors.Is(err, domain.ErrInvalidTransition):
		code = fiber.StatusConflict
		message = "Operation not allowed in the entity's current status"
		errorCode = "INVALID_TRANSITION"
	case errors.Is(err, service.ErrLostItemNotFound),
		errors.Is(err, service.ErrFoundItemNotFound),
		errors.Is(err, service.ErrMatchNotFound),
		errors.Is(err, service.ErrOfficeNotFound),
		errors.Is(err, service.ErrUserNotFound):
		code = fiber.StatusNotFound
		message = err.Error()
		errorCode = "NOT_FOUND"
	case errors.Is(err, service.ErrMatchNotConfirmed):
		code = fiber.StatusConflict
		message = err.Error()
		errorCode = "MATCH_NOT_CONFIRMED"
	case errors.Is(err, service.ErrEmailExists), errors.Is(err, service.ErrOfficeExists):
		code = fiber.StatusConflict
		message = err.Error()
		errorCode = "CONFLICT"
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		code = fiber.StatusUnauthorized
		message = err.Error()
		errorCode = "UNAUTHORIZED"
	}

	traceID := uuid.New().String()[:8]

	return c.Status(code).JSON(ErrorResponse{
		Code:    errorCode,
		Message: message,
		TraceID: traceID,
	})
}

func codeFor(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

func NewError(code int, message string) *fiber.Error {
	return fiber.NewError(code, message)
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusForbidden, message)
}

func NotFound(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

func Conflict(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusConflict, message)
}
