package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// idParam validates a positive integer route parameter and stores it in Locals
func idParam(param, local, label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(param))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" is required!", nil)
		}

		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
		}

		c.Locals(local, id)
		return c.Next()
	}
}

func CourseID() fiber.Handler     { return idParam("courseId", "courseID", "Course ID") }
func ModuleID() fiber.Handler     { return idParam("moduleId", "moduleID", "Module ID") }
func MaterialID() fiber.Handler   { return idParam("materialId", "materialID", "Material ID") }
func EnrollmentID() fiber.Handler { return idParam("enrollmentId", "enrollmentID", "Enrollment ID") }
func AssignmentID() fiber.Handler { return idParam("assignmentId", "assignmentID", "Assignment ID") }
func SubmissionID() fiber.Handler { return idParam("submissionId", "submissionID", "Submission ID") }
func ThreadID() fiber.Handler     { return idParam("threadId", "threadID", "Thread ID") }
func RequestID() fiber.Handler    { return idParam("requestId", "requestID", "Request ID") }
func StudentID() fiber.Handler    { return idParam("studentId", "studentID", "Student ID") }
func ModuleOrder() fiber.Handler  { return idParam("moduleOrder", "moduleOrder", "Module order") }
