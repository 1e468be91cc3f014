package courseValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateThread validates a new discussion thread payload
func CreateThread() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title string `json:"title"`
			Body  string `json:"body"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Body = strings.TrimSpace(reqData.Body)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Body == "" {
			errors["body"] = "Body is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedThread", reqData)
		return c.Next()
	}
}

// ReplyToThread validates a thread reply payload
func ReplyToThread() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Body string `json:"body"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Body = strings.TrimSpace(reqData.Body)
		if reqData.Body == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"body": "Body is required!",
			})
		}

		c.Locals("validatedReply", reqData)
		return c.Next()
	}
}

// ModerateThread validates the admin pin/close payload
func ModerateThread() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			IsPinned *bool `json:"is_pinned"`
			IsClosed *bool `json:"is_closed"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.IsPinned == nil && reqData.IsClosed == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"is_pinned": "Nothing to moderate, provide is_pinned or is_closed!",
			})
		}

		c.Locals("validatedModeration", reqData)
		return c.Next()
	}
}

// RejectCertificate validates the rejection payload
func RejectCertificate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Reason string `json:"reason"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Reason = strings.TrimSpace(reqData.Reason)
		if reqData.Reason == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"reason": "Rejection reason is required!",
			})
		}

		c.Locals("validatedRejection", reqData)
		return c.Next()
	}
}
