package jobValidator

import (
	"strconv"
	"strings"
	"time"

	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// JobID validates the job posting route parameter
func JobID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("jobId"))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Job ID is required!", nil)
		}

		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Job ID!", nil)
		}

		c.Locals("jobID", id)
		return c.Next()
	}
}

// JobList validates optional pagination query parameters
func JobList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		if reqData.Limit != nil && (*reqData.Limit < 1 || *reqData.Limit > 100) {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// CreateJob validates admin job posting creation request
func CreateJob() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string     `json:"title" validate:"required,min=3"`
			Company     string     `json:"company" validate:"required"`
			Location    string     `json:"location"`
			Description string     `json:"description" validate:"required,min=10"`
			SalaryRange string     `json:"salary_range"`
			ApplyURL    string     `json:"apply_url" validate:"omitempty,url"`
			ExpiresAt   *time.Time `json:"expires_at"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Company = strings.TrimSpace(reqData.Company)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Title":
					errors["title"] = "Title is required and must be at least 3 characters long!"
				case "Company":
					errors["company"] = "Company is required!"
				case "Description":
					errors["description"] = "Description is required and must be at least 10 characters long!"
				case "ApplyURL":
					errors["apply_url"] = "Apply URL must be a valid URL!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJob", reqData)
		return c.Next()
	}
}

// UpdateJob validates admin job posting update request
func UpdateJob() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string     `json:"title"`
			Company     string     `json:"company"`
			Location    string     `json:"location"`
			Description string     `json:"description"`
			SalaryRange string     `json:"salary_range"`
			ApplyURL    string     `json:"apply_url"`
			ExpiresAt   *time.Time `json:"expires_at"`
			IsActive    *bool      `json:"is_active"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Company = strings.TrimSpace(reqData.Company)
		reqData.Description = strings.TrimSpace(reqData.Description)

		c.Locals("validatedJobUpdate", reqData)
		return c.Next()
	}
}
