package controllers

import (
	"errors"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/services/progress"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// loadCourseAggregate loads a course with everything progress computation
// needs: modules with materials, quizzes, and enrollments.
func loadCourseAggregate(courseID int) (*courseModels.Course, error) {
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

// persistProgress writes the mutated enrollment back and fans out the course
// completion notification when this interaction crossed the 100% line
func persistProgress(c *fiber.Ctx, course *courseModels.Course, enrollment *courseModels.Enrollment, before int, message string) error {
	if err := database.Database.Db.Save(enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	if before < 100 && enrollment.Progress.CompletionPercentage == 100 {
		utils.NotifyUser(enrollment.UserID, models.NotifyCourseCompleted,
			"Course completed",
			"Congratulations! You completed \""+course.Title+"\". You can now request your certificate.")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"progress": enrollment.Progress,
	})
}

// MarkLessonComplete marks a material as completed (or not) for the acting user
func MarkLessonComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	materialID := c.Locals("materialID").(int)

	reqData, ok := c.Locals("validatedCompletion").(*struct {
		Completed *bool `json:"completed"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	completed := true
	if reqData.Completed != nil {
		completed = *reqData.Completed
	}

	course, err := loadCourseAggregate(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	// The material must belong to this course
	var material courseModels.Material
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ? AND is_published = ?", materialID, courseID, false, true).First(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}

	enrollment, err := progress.FindApprovedEnrollment(course, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}
	before := enrollment.Progress.CompletionPercentage

	if _, err := progress.RecordLessonCompletion(course, userID, uint(materialID), completed, time.Now()); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	return persistProgress(c, course, enrollment, before, "Lesson progress updated successfully!")
}

// MarkModuleComplete marks a module (by order number) as completed for the acting user
func MarkModuleComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleOrder := c.Locals("moduleOrder").(int)

	reqData, ok := c.Locals("validatedCompletion").(*struct {
		Completed *bool `json:"completed"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	completed := true
	if reqData.Completed != nil {
		completed = *reqData.Completed
	}

	course, err := loadCourseAggregate(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	enrollment, err := progress.FindApprovedEnrollment(course, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}
	before := enrollment.Progress.CompletionPercentage

	if _, err := progress.RecordModuleCompletion(course, userID, moduleOrder, completed, time.Now()); err != nil {
		if errors.Is(err, progress.ErrNotEnrolled) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return persistProgress(c, course, enrollment, before, "Module progress updated successfully!")
}

// GetMyProgress returns the acting user's progress in a course with a
// module-wise breakdown
func GetMyProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	course, err := loadCourseAggregate(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	enrollment, err := progress.FindApprovedEnrollment(course, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	completedLessons := make(map[uint]bool, len(enrollment.Progress.CompletedLessons))
	for _, id := range enrollment.Progress.CompletedLessons {
		completedLessons[id] = true
	}

	type ModuleProgress struct {
		ModuleID           uint   `json:"module_id"`
		ModuleName         string `json:"module_name"`
		OrderIndex         int    `json:"order_index"`
		TotalMaterials     int    `json:"total_materials"`
		CompletedMaterials int    `json:"completed_materials"`
		Progress           int    `json:"progress"`
	}

	moduleProgress := make([]ModuleProgress, 0, len(course.Modules))
	for _, mod := range course.Modules {
		total := 0
		done := 0
		for _, mat := range mod.Materials {
			total++
			if completedLessons[mat.ID] {
				done++
			}
		}
		moduleProgress = append(moduleProgress, ModuleProgress{
			ModuleID:           mod.ID,
			ModuleName:         mod.Title,
			OrderIndex:         mod.OrderIndex,
			TotalMaterials:     total,
			CompletedMaterials: done,
			Progress:           progress.Percentage(done, total),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment":      enrollment,
		"module_progress": moduleProgress,
	})
}

// AdminGetStudentProgress returns one student's progress across all courses
func AdminGetStudentProgress(c *fiber.Ctx) error {
	user := requireAdmin(c)
	if user == nil {
		return nil
	}

	studentID := c.Locals("studentID").(int)

	var student models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", studentID, false).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", studentID, false).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student progress fetched successfully!", fiber.Map{
		"student":     student,
		"enrollments": enrollments,
	})
}
