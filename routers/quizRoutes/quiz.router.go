package quizRoutes

import (
	controllers "lms/controllers/quiz"
	"lms/middleware"
	validators "lms/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up student-facing and admin quiz routes
func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quiz")

	// Student-facing quiz access
	quizGroup.Get("/course/:courseId", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseQuizzes)
	quizGroup.Post("/:quizId/start", middleware.JWTMiddleware, validators.QuizID(), controllers.StartQuizAttempt)
	quizGroup.Post("/:quizId/submit", middleware.JWTMiddleware, validators.QuizID(), validators.SubmitAnswers(), controllers.SubmitQuizAttempt)
	quizGroup.Get("/:quizId/attempts", middleware.JWTMiddleware, validators.QuizID(), controllers.GetMyAttempts)

	// Statistics (admins and course owners)
	quizGroup.Get("/:quizId/statistics", middleware.JWTMiddleware, validators.QuizID(), controllers.GetQuizStatistics)

	// Quiz management
	adminGroup := app.Group("/admin/quiz", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	adminGroup.Post("/course/:courseId", validators.CourseID(), validators.CreateQuiz(), controllers.AdminCreateQuiz)
	adminGroup.Get("/course/:courseId/list", validators.CourseID(), controllers.AdminListQuizzes)
	adminGroup.Put("/:quizId", validators.QuizID(), validators.UpdateQuiz(), controllers.AdminUpdateQuiz)
	adminGroup.Delete("/:quizId", validators.QuizID(), controllers.AdminDeleteQuiz)

	// Question management
	adminGroup.Post("/:quizId/question", validators.QuizID(), validators.CreateQuestion(), controllers.AdminAddQuestion)
	adminGroup.Put("/question/:questionId", validators.QuestionID(), validators.UpdateQuestion(), controllers.AdminUpdateQuestion)
	adminGroup.Delete("/question/:questionId", validators.QuestionID(), controllers.AdminDeleteQuestion)
}
