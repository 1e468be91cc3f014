package controllers

import (
	"fmt"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateAssignment creates an assignment in a course
func AdminCreateAssignment(c *fiber.Ctx) error {
	user := requireAdmin(c)
	if user == nil {
		return nil
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedAssignment").(*struct {
		Title       string     `json:"title" validate:"required,min=3"`
		Description string     `json:"description" validate:"required,min=5"`
		DueDate     *time.Time `json:"due_date"`
		MaxPoints   int        `json:"max_points" validate:"omitempty,gt=0"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	maxPoints := reqData.MaxPoints
	if maxPoints == 0 {
		maxPoints = 100
	}

	assignment := courseModels.Assignment{
		CourseID:    uint(courseID),
		Title:       reqData.Title,
		Description: reqData.Description,
		DueDate:     reqData.DueDate,
		MaxPoints:   maxPoints,
		IsPublished: true,
	}

	if err := database.Database.Db.Create(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment created successfully!", assignment)
}

// GetCourseAssignments lists published assignments of a course for an enrolled user
func GetCourseAssignments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND status = ? AND is_deleted = ?", userID, courseID, courseModels.EnrollmentApproved, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var assignments []courseModels.Assignment
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).Order("due_date asc").Find(&assignments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully!", assignments)
}

// SubmitAssignment records a student's submission. Submissions after the due
// date are accepted but marked LATE.
func SubmitAssignment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	assignmentID := c.Locals("assignmentID").(int)

	var assignment courseModels.Assignment
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ? AND is_published = ?", assignmentID, courseID, false, true).First(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND status = ? AND is_deleted = ?", userID, courseID, courseModels.EnrollmentApproved, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	// One submission per assignment
	var existing courseModels.AssignmentSubmission
	if err := database.Database.Db.Where("assignment_id = ? AND user_id = ? AND is_deleted = ?", assignmentID, userID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Assignment already submitted!", nil)
	}

	reqData, ok := c.Locals("validatedSubmission").(*struct {
		Content       string `json:"content"`
		AttachmentURL string `json:"attachment_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	now := time.Now()
	status := courseModels.SubmissionSubmitted
	// A late submission is marked, never rejected
	if assignment.DueDate != nil && now.After(*assignment.DueDate) {
		status = courseModels.SubmissionLate
	}

	submission := courseModels.AssignmentSubmission{
		AssignmentID:  uint(assignmentID),
		CourseID:      uint(courseID),
		UserID:        userID,
		Content:       reqData.Content,
		AttachmentURL: reqData.AttachmentURL,
		SubmittedAt:   now,
		Status:        status,
	}

	if err := database.Database.Db.Create(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment submitted successfully!", submission)
}

// AdminListSubmissions lists all submissions for an assignment
func AdminListSubmissions(c *fiber.Ctx) error {
	user := requireAdmin(c)
	if user == nil {
		return nil
	}

	assignmentID := c.Locals("assignmentID").(int)

	var submissions []courseModels.AssignmentSubmission
	if err := database.Database.Db.Where("assignment_id = ? AND is_deleted = ?", assignmentID, false).Order("submitted_at asc").Find(&submissions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", submissions)
}

// AdminGradeSubmission records a grade and feedback for a submission
func AdminGradeSubmission(c *fiber.Ctx) error {
	user := requireAdmin(c)
	if user == nil {
		return nil
	}

	submissionID := c.Locals("submissionID").(int)

	var submission courseModels.AssignmentSubmission
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", submissionID, false).First(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}

	var assignment courseModels.Assignment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", submission.AssignmentID, false).First(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	reqData, ok := c.Locals("validatedGrade").(*struct {
		Grade    *int   `json:"grade"`
		Feedback string `json:"feedback"`
	})
	if !ok || reqData.Grade == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if *reqData.Grade < 0 || *reqData.Grade > assignment.MaxPoints {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Grade is out of range for this assignment!", nil)
	}

	submission.Grade = reqData.Grade
	submission.Feedback = reqData.Feedback
	submission.Status = courseModels.SubmissionGraded

	if err := database.Database.Db.Save(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grade submission!", nil)
	}

	utils.NotifyUser(submission.UserID, models.NotifyAssignmentGraded,
		"Assignment graded",
		fmt.Sprintf("Your submission for %q was graded: %d/%d.", assignment.Title, *reqData.Grade, assignment.MaxPoints))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission graded successfully!", submission)
}
