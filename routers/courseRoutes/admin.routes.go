package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes. The
// admin groups carry the role check as group middleware; controllers verify
// the acting user again before mutating anything.
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	// Course CRUD
	adminGroup.Post("/create", validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Get("/list", validators.CourseList(), controllers.AdminGetAllCourses)
	adminGroup.Put("/:courseId", validators.CourseID(), validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	adminGroup.Post("/:courseId/publish", validators.CourseID(), controllers.AdminPublishCourse)
	adminGroup.Delete("/:courseId", validators.CourseID(), controllers.AdminDeleteCourse)

	// Module management
	adminGroup.Post("/:courseId/module", validators.CourseID(), validators.CreateModule(), controllers.AdminCreateModule)
	adminGroup.Get("/:courseId/modules", validators.CourseID(), controllers.AdminListModules)
	adminGroup.Put("/:courseId/module/:moduleId", validators.CourseID(), validators.ModuleID(), validators.UpdateModule(), controllers.AdminUpdateModule)
	adminGroup.Delete("/:courseId/module/:moduleId", validators.CourseID(), validators.ModuleID(), controllers.AdminDeleteModule)

	// Material management
	adminGroup.Post("/:courseId/module/:moduleId/material", validators.CourseID(), validators.ModuleID(), validators.CreateMaterial(), controllers.AdminCreateMaterial)
	materialGroup := app.Group("/admin/material", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	materialGroup.Put("/:materialId", validators.MaterialID(), validators.UpdateMaterial(), controllers.AdminUpdateMaterial)
	materialGroup.Delete("/:materialId", validators.MaterialID(), controllers.AdminDeleteMaterial)

	// Enrollment review
	adminGroup.Get("/:courseId/enrollments", validators.CourseID(), validators.EnrollmentStatusFilter(), controllers.AdminGetCourseEnrollments)
	enrollmentGroup := app.Group("/admin/enrollment", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	enrollmentGroup.Put("/:enrollmentId/review", validators.EnrollmentID(), validators.ReviewEnrollment(), controllers.AdminReviewEnrollment)

	// Assignments and grading
	adminGroup.Post("/:courseId/assignment", validators.CourseID(), validators.CreateAssignment(), controllers.AdminCreateAssignment)
	assignmentGroup := app.Group("/admin/assignment", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	assignmentGroup.Get("/:assignmentId/submissions", validators.AssignmentID(), controllers.AdminListSubmissions)
	submissionGroup := app.Group("/admin/submission", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	submissionGroup.Put("/:submissionId/grade", validators.SubmissionID(), validators.GradeSubmission(), controllers.AdminGradeSubmission)

	// Discussion moderation
	adminGroup.Put("/:courseId/thread/:threadId/moderate", validators.CourseID(), validators.ThreadID(), validators.ModerateThread(), controllers.AdminModerateThread)

	// Student progress
	studentGroup := app.Group("/admin/student", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	studentGroup.Get("/:studentId/progress", validators.StudentID(), controllers.AdminGetStudentProgress)

	// Certificate review
	certificateGroup := app.Group("/admin/certificate", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	certificateGroup.Get("/pending", controllers.AdminGetPendingCertificates)
	certificateGroup.Post("/:requestId/approve", validators.RequestID(), controllers.AdminApproveCertificate)
	certificateGroup.Post("/:requestId/reject", validators.RequestID(), validators.RejectCertificate(), controllers.AdminRejectCertificate)

	// Dashboard
	dashboardGroup := app.Group("/admin/dashboard", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	dashboardGroup.Get("/stats", controllers.AdminDashboardStats)
}
