package courseValidator

import (
	"strings"

	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// ReviewEnrollment validates the admin approve/reject payload
func ReviewEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Approve bool `json:"approve"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedEnrollmentReview", reqData)
		return c.Next()
	}
}

// EnrollmentStatusFilter validates the optional status query parameter
func EnrollmentStatusFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := strings.TrimSpace(c.Query("status"))
		if status != "" &&
			status != courseModels.EnrollmentPending &&
			status != courseModels.EnrollmentApproved &&
			status != courseModels.EnrollmentRejected {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Status must be PENDING, APPROVED or REJECTED!", nil)
		}
		return c.Next()
	}
}

// Completion validates the lesson/module completion toggle payload. An empty
// body means marking as completed.
func Completion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Completed *bool `json:"completed"`
		})

		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		c.Locals("validatedCompletion", reqData)
		return c.Next()
	}
}
