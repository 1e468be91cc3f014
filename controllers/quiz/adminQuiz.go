package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	quizModels "lms/models/quiz"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// requireAdmin loads the acting user and rejects non-admins. On failure the
// response has already been written and nil is returned.
func requireAdmin(c *fiber.Ctx) *models.User {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		return nil
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		return nil
	}

	if user.Role != "ADMIN" {
		middleware.JsonResponse(c, fiber.StatusForbidden, false, "Admin access required!", nil)
		return nil
	}

	return &user
}

// validateAnswerKey checks that a question carries the answer key its type
// requires. Returns an empty string when the question is well formed.
func validateAnswerKey(questionType string, options []string, correctIndex *int, correctText *string) string {
	switch questionType {
	case quizModels.QuestionMultipleChoice:
		if len(options) < 2 {
			return "Multiple choice questions need at least two options!"
		}
		if correctIndex == nil || *correctIndex < 0 || *correctIndex >= len(options) {
			return "Correct index must reference one of the options!"
		}
	case quizModels.QuestionTrueFalse:
		if correctIndex == nil || (*correctIndex != 0 && *correctIndex != 1) {
			return "True/false questions need a correct index of 0 or 1!"
		}
	case quizModels.QuestionShortAnswer:
		if correctText == nil || *correctText == "" {
			return "Short answer questions need a correct text!"
		}
	default:
		return "Unknown question type!"
	}
	return ""
}

// AdminCreateQuiz creates a quiz under a course. New quizzes start inactive.
func AdminCreateQuiz(c *fiber.Ctx) error {
	user := requireAdmin(c)
	if user == nil {
		return nil
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedQuiz").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		PassingScore *int   `json:"passing_score"`
		TimeLimit    *int   `json:"time_limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	quiz := quizModels.Quiz{
		CourseID:    uint(courseID),
		Title:       reqData.Title,
		Description: reqData.Description,
	}
	if reqData.PassingScore != nil {
		if *reqData.PassingScore < 0 || *reqData.PassingScore > 100 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Passing score must be between 0 and 100!", nil)
		}
		quiz.PassingScore = *reqData.PassingScore
	} else {
		quiz.PassingScore = 60
	}
	if reqData.TimeLimit != nil {
		quiz.TimeLimit = *reqData.TimeLimit
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&quiz).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// AdminUpdateQuiz updates quiz settings, including activation
func AdminUpdateQuiz(c *fiber.Ctx) error {
	user := requireAdmin(c)
	if user == nil {
		return nil
	}

	quizID := c.Locals("quizID").(int)

	reqData, ok := c.Locals("validatedQuizUpdate").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		PassingScore *int   `json:"passing_score"`
		TimeLimit    *int   `json:"time_limit"`
		IsActive     *bool  `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var quiz quizModels.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if reqData.Title != "" {
		quiz.Title = reqData.Title
	}
	if reqData.Description != "" {
		quiz.Description = reqData.Description
	}
	if reqData.PassingScore != nil {
		if *reqData.PassingScore < 0 || *reqData.PassingScore > 100 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Passing score must be between 0 and 100!", nil)
		}
		quiz.PassingScore = *reqData.PassingScore
	}
	if reqData.TimeLimit != nil {
		quiz.TimeLimit = *reqData.TimeLimit
	}
	if reqData.IsActive != nil {
		if *reqData.IsActive {
			var questionCount int64
			database.Database.Db.Model(&quizModels.Question{}).Where("quiz_id = ? AND is_deleted = ?", quizID, false).Count(&questionCount)
			if questionCount == 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cannot activate a quiz without questions!", nil)
			}
		}
		quiz.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", quiz)
}

// AdminDeleteQuiz soft deletes a quiz
func AdminDeleteQuiz(c *fiber.Ctx) error {
	user := requireAdmin(c)
	if user == nil {
		return nil
	}

	quizID := c.Locals("quizID").(int)

	var quiz quizModels.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	quiz.IsDeleted = true
	quiz.IsActive = false
	if err := database.Database.Db.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully!", nil)
}

// AdminListQuizzes lists a course's quizzes with their questions (keys included)
func AdminListQuizzes(c *fiber.Ctx) error {
	user := requireAdmin(c)
	if user == nil {
		return nil
	}

	courseID := c.Locals("courseID").(int)

	var quizzes []quizModels.Quiz
	err := database.Database.Db.
		Preload("Questions", "is_deleted = ?", false).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("created_at asc").
		Find(&quizzes).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", quizzes)
}

// AdminAddQuestion appends a question to a quiz
func AdminAddQuestion(c *fiber.Ctx) error {
	user := requireAdmin(c)
	if user == nil {
		return nil
	}

	quizID := c.Locals("quizID").(int)

	reqData, ok := c.Locals("validatedQuestion").(*struct {
		Prompt       string   `json:"prompt"`
		QuestionType string   `json:"question_type"`
		Options      []string `json:"options"`
		CorrectIndex *int     `json:"correct_index"`
		CorrectText  *string  `json:"correct_text"`
		Points       int      `json:"points"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var quiz quizModels.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	options := reqData.Options
	if reqData.QuestionType == quizModels.QuestionTrueFalse {
		options = []string{"True", "False"}
	}
	if msg := validateAnswerKey(reqData.QuestionType, options, reqData.CorrectIndex, reqData.CorrectText); msg != "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, msg, nil)
	}

	points := reqData.Points
	if points <= 0 {
		points = 1
	}

	var maxOrder int
	database.Database.Db.Model(&quizModels.Question{}).
		Where("quiz_id = ? AND is_deleted = ?", quizID, false).
		Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	question := quizModels.Question{
		QuizID:       uint(quizID),
		Prompt:       reqData.Prompt,
		QuestionType: reqData.QuestionType,
		Options:      datatypes.NewJSONSlice(options),
		CorrectIndex: reqData.CorrectIndex,
		CorrectText:  reqData.CorrectText,
		Points:       points,
		OrderIndex:   maxOrder + 1,
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question added successfully!", question)
}

// AdminUpdateQuestion updates a question's prompt, options, key or points
func AdminUpdateQuestion(c *fiber.Ctx) error {
	user := requireAdmin(c)
	if user == nil {
		return nil
	}

	questionID := c.Locals("questionID").(int)

	reqData, ok := c.Locals("validatedQuestionUpdate").(*struct {
		Prompt       string   `json:"prompt"`
		Options      []string `json:"options"`
		CorrectIndex *int     `json:"correct_index"`
		CorrectText  *string  `json:"correct_text"`
		Points       *int     `json:"points"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var question quizModels.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	if reqData.Prompt != "" {
		question.Prompt = reqData.Prompt
	}
	if reqData.Options != nil && question.QuestionType != quizModels.QuestionTrueFalse {
		question.Options = datatypes.NewJSONSlice(reqData.Options)
	}
	if reqData.CorrectIndex != nil {
		question.CorrectIndex = reqData.CorrectIndex
	}
	if reqData.CorrectText != nil {
		question.CorrectText = reqData.CorrectText
	}
	if reqData.Points != nil {
		if *reqData.Points <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Points must be positive!", nil)
		}
		question.Points = *reqData.Points
	}

	if msg := validateAnswerKey(question.QuestionType, question.Options, question.CorrectIndex, question.CorrectText); msg != "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, msg, nil)
	}

	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

// AdminDeleteQuestion soft deletes a question
func AdminDeleteQuestion(c *fiber.Ctx) error {
	user := requireAdmin(c)
	if user == nil {
		return nil
	}

	questionID := c.Locals("questionID").(int)

	var question quizModels.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	question.IsDeleted = true
	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
