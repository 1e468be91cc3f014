package controllers

import (
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
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

// GetActiveJobPostings lists active, unexpired job postings
func GetActiveJobPostings(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page := 1
	limit := 20
	if reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	var postings []models.JobPosting
	var total int64

	query := database.Database.Db.Model(&models.JobPosting{}).
		Where("is_active = ? AND is_deleted = ?", true, false).
		Where("expires_at IS NULL OR expires_at > ?", time.Now())
	query.Count(&total)

	if err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&postings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch job postings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job postings fetched successfully!", fiber.Map{
		"job_postings": postings,
		"total":        total,
		"page":         page,
		"limit":        limit,
	})
}

// GetJobPostingDetails returns one active job posting
func GetJobPostingDetails(c *fiber.Ctx) error {
	jobID := c.Locals("jobID").(int)

	var posting models.JobPosting
	if err := database.Database.Db.Where("id = ? AND is_active = ? AND is_deleted = ?", jobID, true, false).First(&posting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job posting not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job posting fetched successfully!", posting)
}

// AdminCreateJobPosting publishes a new job posting
func AdminCreateJobPosting(c *fiber.Ctx) error {
	user := requireAdmin(c)
	if user == nil {
		return nil
	}

	reqData, ok := c.Locals("validatedJob").(*struct {
		Title       string     `json:"title" validate:"required,min=3"`
		Company     string     `json:"company" validate:"required"`
		Location    string     `json:"location"`
		Description string     `json:"description" validate:"required,min=10"`
		SalaryRange string     `json:"salary_range"`
		ApplyURL    string     `json:"apply_url" validate:"omitempty,url"`
		ExpiresAt   *time.Time `json:"expires_at"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.ExpiresAt != nil && reqData.ExpiresAt.Before(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Expiry date must be in the future!", nil)
	}

	posting := models.JobPosting{
		Title:       reqData.Title,
		Company:     reqData.Company,
		Location:    reqData.Location,
		Description: reqData.Description,
		SalaryRange: reqData.SalaryRange,
		ApplyURL:    reqData.ApplyURL,
		PostedBy:    user.ID,
		IsActive:    true,
		ExpiresAt:   reqData.ExpiresAt,
	}

	if err := database.Database.Db.Create(&posting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create job posting!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Job posting created successfully!", posting)
}

// AdminUpdateJobPosting updates an existing job posting
func AdminUpdateJobPosting(c *fiber.Ctx) error {
	user := requireAdmin(c)
	if user == nil {
		return nil
	}

	jobID := c.Locals("jobID").(int)

	reqData, ok := c.Locals("validatedJobUpdate").(*struct {
		Title       string     `json:"title"`
		Company     string     `json:"company"`
		Location    string     `json:"location"`
		Description string     `json:"description"`
		SalaryRange string     `json:"salary_range"`
		ApplyURL    string     `json:"apply_url"`
		ExpiresAt   *time.Time `json:"expires_at"`
		IsActive    *bool      `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var posting models.JobPosting
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", jobID, false).First(&posting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job posting not found!", nil)
	}

	if reqData.Title != "" {
		posting.Title = reqData.Title
	}
	if reqData.Company != "" {
		posting.Company = reqData.Company
	}
	if reqData.Location != "" {
		posting.Location = reqData.Location
	}
	if reqData.Description != "" {
		posting.Description = reqData.Description
	}
	if reqData.SalaryRange != "" {
		posting.SalaryRange = reqData.SalaryRange
	}
	if reqData.ApplyURL != "" {
		posting.ApplyURL = reqData.ApplyURL
	}
	if reqData.ExpiresAt != nil {
		posting.ExpiresAt = reqData.ExpiresAt
	}
	if reqData.IsActive != nil {
		posting.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&posting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update job posting!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job posting updated successfully!", posting)
}

// AdminDeleteJobPosting soft deletes a job posting
func AdminDeleteJobPosting(c *fiber.Ctx) error {
	user := requireAdmin(c)
	if user == nil {
		return nil
	}

	jobID := c.Locals("jobID").(int)

	var posting models.JobPosting
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", jobID, false).First(&posting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job posting not found!", nil)
	}

	posting.IsDeleted = true
	posting.IsActive = false
	if err := database.Database.Db.Save(&posting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete job posting!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job posting deleted successfully!", nil)
}
