package courseValidator

import (
	"strings"

	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

func validModuleBody(title, description string, required bool) map[string]string {
	errors := make(map[string]string)

	if required && title == "" {
		errors["title"] = "Title is required!"
	} else if title != "" && len(title) < 3 {
		errors["title"] = "Title must be at least 3 characters long!"
	}

	if description != "" && len(description) < 5 {
		errors["description"] = "Description must be at least 5 characters long!"
	}

	return errors
}

// CreateModule validates module creation request
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		errors := validModuleBody(reqData.Title, reqData.Description, true)
		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// UpdateModule validates module update request
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		errors := validModuleBody(reqData.Title, reqData.Description, false)
		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

func validMaterialType(materialType string) bool {
	switch materialType {
	case courseModels.MaterialText, courseModels.MaterialVideo, courseModels.MaterialPDF, courseModels.MaterialLink:
		return true
	}
	return false
}

// CreateMaterial validates material creation request
func CreateMaterial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			MaterialType string `json:"material_type"`
			TextContent  string `json:"text_content"`
			ContentURL   string `json:"content_url"`
			IsRequired   *bool  `json:"is_required"`
			OrderIndex   int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.MaterialType = strings.TrimSpace(reqData.MaterialType)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if !validMaterialType(reqData.MaterialType) {
			errors["material_type"] = "Material type must be TEXT, VIDEO, PDF or LINK!"
		}

		// Text materials carry inline content, the rest carry a URL
		if reqData.MaterialType == courseModels.MaterialText {
			if strings.TrimSpace(reqData.TextContent) == "" {
				errors["text_content"] = "Text content is required for text materials!"
			}
		} else if validMaterialType(reqData.MaterialType) {
			if strings.TrimSpace(reqData.ContentURL) == "" {
				errors["content_url"] = "Content URL is required for this material type!"
			}
		}

		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMaterial", reqData)
		return c.Next()
	}
}

// UpdateMaterial validates material update request
func UpdateMaterial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			MaterialType string `json:"material_type"`
			TextContent  string `json:"text_content"`
			ContentURL   string `json:"content_url"`
			IsRequired   *bool  `json:"is_required"`
			IsPublished  *bool  `json:"is_published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.MaterialType = strings.TrimSpace(reqData.MaterialType)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.MaterialType != "" && !validMaterialType(reqData.MaterialType) {
			errors["material_type"] = "Material type must be TEXT, VIDEO, PDF or LINK!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMaterialUpdate", reqData)
		return c.Next()
	}
}
