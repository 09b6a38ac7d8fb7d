package server

import "github.com/gofiber/fiber/v3"

// Envelope wraps every API response body.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageNotFound            = "not found"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

func success(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Status: fiber.StatusOK, Message: MessageOK, Data: data})
}

func fail(c fiber.Ctx, status int, message string) error {
	if status < 100 || status > 599 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = defaultMessage(status)
	}
	return c.Status(status).JSON(Envelope{Status: status, Message: message, Data: nil})
}

func defaultMessage(status int) string {
	switch {
	case status == fiber.StatusOK:
		return MessageOK
	case status == fiber.StatusBadRequest:
		return MessageBadRequest
	case status == fiber.StatusNotFound:
		return MessageNotFound
	case status >= 500:
		return MessageInternalServerError
	default:
		return MessageError
	}
}
