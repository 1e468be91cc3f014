package jobRoutes

import (
	controllers "lms/controllers/job"
	"lms/middleware"
	validators "lms/validators/job"

	"github.com/gofiber/fiber/v2"
)

// SetupJobRoutes sets up job posting routes
func SetupJobRoutes(app *fiber.App) {
	jobGroup := app.Group("/job")

	jobGroup.Get("/list", middleware.JWTMiddleware, validators.JobList(), controllers.GetActiveJobPostings)
	jobGroup.Get("/:jobId", middleware.JWTMiddleware, validators.JobID(), controllers.GetJobPostingDetails)

	adminGroup := app.Group("/admin/job", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	adminGroup.Post("/create", validators.CreateJob(), controllers.AdminCreateJobPosting)
	adminGroup.Put("/:jobId", validators.JobID(), validators.UpdateJob(), controllers.AdminUpdateJobPosting)
	adminGroup.Delete("/:jobId", validators.JobID(), controllers.AdminDeleteJobPosting)
}
