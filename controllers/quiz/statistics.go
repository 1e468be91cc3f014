package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	quizModels "lms/models/quiz"
	"lms/services/grading"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetQuizStatistics reports pass rate, average score and per-question
// difficulty for a quiz. Restricted to admins and the course owner.
func GetQuizStatistics(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	quizID := c.Locals("quizID").(int)

	var quiz quizModels.Quiz
	err := database.Database.Db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("order_index asc")
		}).
		Preload("Attempts", "is_deleted = ?", false).
		Where("id = ? AND is_deleted = ?", quizID, false).
		First(&quiz).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quiz.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if user.Role != "ADMIN" && course.CreatedBy != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	stats := grading.ComputeStatistics(&quiz)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz statistics fetched successfully!", stats)
}
