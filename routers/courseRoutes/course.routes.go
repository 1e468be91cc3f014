package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all student-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	userGroup := app.Group("/course")

	// Course listing and details (published courses only)
	userGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	userGroup.Get("/:courseId", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment
	userGroup.Post("/:courseId/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.RequestEnrollment)

	// Progress tracking
	userGroup.Post("/:courseId/material/:materialId/complete", middleware.JWTMiddleware, validators.CourseID(), validators.MaterialID(), validators.Completion(), controllers.MarkLessonComplete)
	userGroup.Post("/:courseId/module/:moduleOrder/complete", middleware.JWTMiddleware, validators.CourseID(), validators.ModuleOrder(), validators.Completion(), controllers.MarkModuleComplete)
	userGroup.Get("/:courseId/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetMyProgress)

	// Assignments
	userGroup.Get("/:courseId/assignments", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseAssignments)
	userGroup.Post("/:courseId/assignment/:assignmentId/submit", middleware.JWTMiddleware, validators.CourseID(), validators.AssignmentID(), validators.SubmitAssignment(), controllers.SubmitAssignment)

	// Discussions
	userGroup.Post("/:courseId/thread", middleware.JWTMiddleware, validators.CourseID(), validators.CreateThread(), controllers.CreateThread)
	userGroup.Get("/:courseId/threads", middleware.JWTMiddleware, validators.CourseID(), controllers.ListThreads)
	userGroup.Get("/:courseId/thread/:threadId", middleware.JWTMiddleware, validators.CourseID(), validators.ThreadID(), controllers.GetThread)
	userGroup.Post("/:courseId/thread/:threadId/reply", middleware.JWTMiddleware, validators.CourseID(), validators.ThreadID(), validators.ReplyToThread(), controllers.ReplyToThread)

	// Certificate request
	userGroup.Post("/:courseId/certificate/request", middleware.JWTMiddleware, validators.CourseID(), controllers.RequestCertificate)

	// User enrollments and certificates
	userEnrollGroup := app.Group("/user")
	userEnrollGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetMyEnrollments)
	userEnrollGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetMyCertificates)
}
