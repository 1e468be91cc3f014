package controllers

import (
	"errors"
	"fmt"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	quizModels "lms/models/quiz"
	"lms/services/grading"
	"lms/services/progress"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// loadCourseAggregate loads a published course with the associations the
// progress and grading services operate on
func loadCourseAggregate(courseID uint) (*courseModels.Course, error) {
	var course courseModels.Course
	err := database.Database.Db.
		Preload("Modules", "is_deleted = ?", false).
		Preload("Modules.Materials", "is_deleted = ? AND is_published = ?", false, true).
		Preload("Quizzes", "is_deleted = ?", false).
		Preload("Enrollments", "is_deleted = ?", false).
		Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// loadQuizForUser loads a quiz with its questions in authored order and the
// given user's attempts
func loadQuizForUser(quizID int, userID uint) (*quizModels.Quiz, error) {
	var quiz quizModels.Quiz
	err := database.Database.Db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("order_index asc")
		}).
		Preload("Attempts", "user_id = ? AND is_deleted = ?", userID, false).
		Where("id = ? AND is_deleted = ?", quizID, false).
		First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// gradingErrorResponse maps grading service errors to API responses
func gradingErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, progress.ErrNotEnrolled):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	case errors.Is(err, grading.ErrQuizInactive):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz is not active!", nil)
	case errors.Is(err, grading.ErrNoActiveAttempt):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No active attempt, start the quiz first!", nil)
	case errors.Is(err, grading.ErrAlreadyCompleted):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Quiz already completed!", nil)
	case errors.Is(err, grading.ErrInvalidAnswerSet):
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Answer set does not match quiz questions!", nil)
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process quiz attempt!", nil)
	}
}

// GetCourseQuizzes lists a course's active quizzes for an enrolled student.
// Answer keys are stripped before the payload leaves the server.
func GetCourseQuizzes(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND status = ? AND is_deleted = ?", userID, courseID, courseModels.EnrollmentApproved, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var quizzes []quizModels.Quiz
	err := database.Database.Db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("order_index asc")
		}).
		Where("course_id = ? AND is_active = ? AND is_deleted = ?", courseID, true, false).
		Order("created_at asc").
		Find(&quizzes).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	for i := range quizzes {
		for j := range quizzes[i].Questions {
			quizzes[i].Questions[j].Sanitize()
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", quizzes)
}

// StartQuizAttempt opens (or resumes) the acting user's attempt at a quiz
func StartQuizAttempt(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	quizID := c.Locals("quizID").(int)

	quiz, err := loadQuizForUser(quizID, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	course, err := loadCourseAggregate(quiz.CourseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	attempt, resumed, err := grading.StartAttempt(quiz, course, userID, time.Now())
	if err != nil {
		return gradingErrorResponse(c, err)
	}

	if !resumed {
		if err := database.Database.Db.Create(attempt).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start quiz attempt!", nil)
		}
	}

	for i := range quiz.Questions {
		quiz.Questions[i].Sanitize()
	}

	message := "Quiz attempt started successfully!"
	if resumed {
		message = "Quiz attempt resumed!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"attempt":   attempt,
		"questions": quiz.Questions,
	})
}

// SubmitQuizAttempt grades and finalizes the acting user's in-progress attempt
func SubmitQuizAttempt(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	quizID := c.Locals("quizID").(int)

	reqData, ok := c.Locals("validatedAnswers").(*struct {
		Answers []grading.GivenAnswer `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz, err := loadQuizForUser(quizID, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	course, err := loadCourseAggregate(quiz.CourseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	attempt, summary, err := grading.SubmitAttempt(quiz, course, userID, reqData.Answers, time.Now())
	if err != nil {
		return gradingErrorResponse(c, err)
	}

	tx := database.Database.Db.Begin()
	if err := tx.Save(attempt).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save quiz attempt!", nil)
	}
	if summary.Passed {
		enrollment, enrErr := progress.FindApprovedEnrollment(course, userID)
		if enrErr != nil {
			tx.Rollback()
			return gradingErrorResponse(c, enrErr)
		}
		if err := tx.Save(enrollment).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
		}
	}
	tx.Commit()

	if summary.Passed {
		utils.NotifyUser(userID, models.NotifyQuizPassed,
			"Quiz passed",
			fmt.Sprintf("You passed \"%s\" with %d/%d (%d%%).", quiz.Title, summary.Score, summary.MaxScore, summary.Percentage))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully!", fiber.Map{
		"attempt": attempt,
		"summary": summary,
	})
}

// GetMyAttempts lists the acting user's attempts at a quiz
func GetMyAttempts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)

	var attempts []quizModels.Attempt
	err := database.Database.Db.
		Where("quiz_id = ? AND user_id = ? AND is_deleted = ?", quizID, userID, false).
		Order("started_at desc").
		Find(&attempts).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", attempts)
}
