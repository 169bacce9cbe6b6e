package errors

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"video-guestbook/pkg/errors/i18n"
)

// HandleError converts a service error into the single retry-oriented JSON
// banner the client renders. Field errors carry the field name so the
// client can route the user back to the right step.
func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if se, ok := err.(*SubmissionError); ok {
		if se.Err != nil {
			log.Printf("submission error [%s]: %v", se.Code, se.Err)
		}

		var status int
		switch se.Code {
		case "not_found", "session_not_found":
			status = fiber.StatusNotFound
		case "invalid_type", "invalid_chunk", "missing_name", "horizontal_not_confirmed", "missing_draft", "capture_unavailable":
			status = fiber.StatusBadRequest
		case "too_large":
			status = fiber.StatusRequestEntityTooLarge
		case "probe_failed":
			status = fiber.StatusUnprocessableEntity
		case "invalid_step":
			status = fiber.StatusConflict
		case "contributor_write_failed", "upload_failed", "video_write_failed", "note_write_failed", "read_failed":
			status = fiber.StatusBadGateway
		default:
			status = fiber.StatusInternalServerError
		}

		body := fiber.Map{
			"error":   se.Code,
			"message": i18n.T(se.Code, se.Message),
		}
		if se.Field != "" {
			body["field"] = se.Field
		}
		return c.Status(status).JSON(body)
	}

	log.Printf("unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal_error",
		"message": i18n.T("internal_error", "unexpected server error"),
	})
}
