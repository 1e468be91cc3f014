package courseValidator

import (
	"strings"
	"time"

	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateAssignment validates admin assignment creation request
func CreateAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string     `json:"title" validate:"required,min=3"`
			Description string     `json:"description" validate:"required,min=5"`
			DueDate     *time.Time `json:"due_date"`
			MaxPoints   int        `json:"max_points" validate:"omitempty,gt=0"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Title":
					errors["title"] = "Title is required and must be at least 3 characters long!"
				case "Description":
					errors["description"] = "Description is required and must be at least 5 characters long!"
				case "MaxPoints":
					errors["max_points"] = "Max points must be a positive number!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		if reqData.DueDate != nil && reqData.DueDate.Before(time.Now()) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"due_date": "Due date must be in the future!",
			})
		}

		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}

// SubmitAssignment validates a student's submission payload
func SubmitAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Content       string `json:"content"`
			AttachmentURL string `json:"attachment_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Content) == "" && strings.TrimSpace(reqData.AttachmentURL) == "" {
			errors["content"] = "Submission needs content or an attachment!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

// GradeSubmission validates the grading payload
func GradeSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Grade    *int   `json:"grade"`
			Feedback string `json:"feedback"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Grade == nil {
			errors["grade"] = "Grade is required!"
		} else if *reqData.Grade < 0 {
			errors["grade"] = "Grade must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGrade", reqData)
		return c.Next()
	}
}
