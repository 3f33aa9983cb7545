package response

import "github.com/gofiber/fiber/v3"

// Error kinds are stable, machine-readable strings carried in the "error"
// field of failure envelopes; "message" stays a human-readable string.
const (
	CodeUnauthorized      = "unauthorized"
	CodeDuplicateID       = "duplicate_id"
	CodeValidationFailed  = "validation_failed"
	CodeNotFound          = "not_found"
	CodeInvalidStatus     = "invalid_status"
	CodeIllegalTransition = "illegal_transition"
	CodeInternal          = "internal_error"
)

// OK writes a success envelope: {"success": true} merged with extra payload
// keys ("user", "job", "application", "profile", ...).
func OK(c fiber.Ctx, extra fiber.Map) error {
	payload := fiber.Map{"success": true}
	for k, v := range extra {
		payload[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(payload)
}

// Fail writes a failure envelope: {"success": false, "error": code,
// "message": message}.
func Fail(c fiber.Ctx, status int, code, message string) error {
	if status < 100 || status > 599 {
		status = fiber.StatusInternalServerError
	}
	if code == "" {
		code = CodeInternal
	}
	if message == "" {
		message = DefaultMessage(code)
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   code,
		"message": message,
	})
}

func DefaultMessage(code string) string {
	switch code {
	case CodeUnauthorized:
		return "invalid id or password"
	case CodeDuplicateID:
		return "id already exists"
	case CodeValidationFailed:
		return "invalid request payload"
	case CodeNotFound:
		return "not found"
	case CodeInvalidStatus:
		return "unknown status"
	case CodeIllegalTransition:
		return "status transition not allowed"
	default:
		return "internal server error"
	}
}
