package quizValidator

import (
	"strconv"
	"strings"

	"lms/middleware"
	quizModels "lms/models/quiz"
	"lms/services/grading"

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

func CourseID() fiber.Handler   { return idParam("courseId", "courseID", "Course ID") }
func QuizID() fiber.Handler     { return idParam("quizId", "quizID", "Quiz ID") }
func QuestionID() fiber.Handler { return idParam("questionId", "questionID", "Question ID") }

// CreateQuiz validates admin quiz creation request
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			PassingScore *int   `json:"passing_score"`
			TimeLimit    *int   `json:"time_limit"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.PassingScore != nil && (*reqData.PassingScore < 0 || *reqData.PassingScore > 100) {
			errors["passing_score"] = "Passing score must be between 0 and 100!"
		}

		if reqData.TimeLimit != nil && *reqData.TimeLimit < 0 {
			errors["time_limit"] = "Time limit must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// UpdateQuiz validates admin quiz update request
func UpdateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			PassingScore *int   `json:"passing_score"`
			TimeLimit    *int   `json:"time_limit"`
			IsActive     *bool  `json:"is_active"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.PassingScore != nil && (*reqData.PassingScore < 0 || *reqData.PassingScore > 100) {
			errors["passing_score"] = "Passing score must be between 0 and 100!"
		}

		if reqData.TimeLimit != nil && *reqData.TimeLimit < 0 {
			errors["time_limit"] = "Time limit must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizUpdate", reqData)
		return c.Next()
	}
}

func validQuestionType(questionType string) bool {
	switch questionType {
	case quizModels.QuestionMultipleChoice, quizModels.QuestionTrueFalse, quizModels.QuestionShortAnswer:
		return true
	}
	return false
}

// CreateQuestion validates a new quiz question payload. The answer key itself
// is checked against the question type in the controller.
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Prompt       string   `json:"prompt"`
			QuestionType string   `json:"question_type"`
			Options      []string `json:"options"`
			CorrectIndex *int     `json:"correct_index"`
			CorrectText  *string  `json:"correct_text"`
			Points       int      `json:"points"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Prompt = strings.TrimSpace(reqData.Prompt)
		reqData.QuestionType = strings.TrimSpace(reqData.QuestionType)

		if reqData.Prompt == "" {
			errors["prompt"] = "Prompt is required!"
		}

		if !validQuestionType(reqData.QuestionType) {
			errors["question_type"] = "Question type must be MULTIPLE_CHOICE, TRUE_FALSE or SHORT_ANSWER!"
		}

		if reqData.Points < 0 {
			errors["points"] = "Points must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// UpdateQuestion validates a question update payload
func UpdateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Prompt       string   `json:"prompt"`
			Options      []string `json:"options"`
			CorrectIndex *int     `json:"correct_index"`
			CorrectText  *string  `json:"correct_text"`
			Points       *int     `json:"points"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Prompt = strings.TrimSpace(reqData.Prompt)

		c.Locals("validatedQuestionUpdate", reqData)
		return c.Next()
	}
}

// SubmitAnswers validates the attempt submission payload
func SubmitAnswers() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers []grading.GivenAnswer `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		for i, ans := range reqData.Answers {
			if ans.SelectedIndex == nil && ans.Text == nil {
				errors["answers"] = "Answer " + strconv.Itoa(i+1) + " must carry a selected index or a text!"
				break
			}
			if ans.SelectedIndex != nil && *ans.SelectedIndex < 0 {
				errors["answers"] = "Answer " + strconv.Itoa(i+1) + " has a negative option index!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAnswers", reqData)
		return c.Next()
	}
}
