package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	quizModels "lms/models/quiz"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// AdminDashboardStats returns aggregate platform counts for the admin dashboard
func AdminDashboardStats(c *fiber.Ctx) error {
	user := requireAdmin(c)
	if user == nil {
		return nil
	}

	db := database.Database.Db
	dayStart := now.BeginningOfDay()
	weekStart := now.BeginningOfWeek()

	var totalStudents, totalCourses, activeCourses int64
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", "STUDENT", false).Count(&totalStudents)
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&courseModels.Course{}).Where("status = ? AND is_published = ? AND is_deleted = ?", courseModels.StatusActive, true, false).Count(&activeCourses)

	var totalEnrollments, pendingEnrollments, enrollmentsToday int64
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)
	db.Model(&courseModels.Enrollment{}).Where("status = ? AND is_deleted = ?", courseModels.EnrollmentPending, false).Count(&pendingEnrollments)
	db.Model(&courseModels.Enrollment{}).Where("created_at >= ? AND is_deleted = ?", dayStart, false).Count(&enrollmentsToday)

	var attemptsToday, attemptsThisWeek int64
	db.Model(&quizModels.Attempt{}).Where("started_at >= ?", dayStart).Count(&attemptsToday)
	db.Model(&quizModels.Attempt{}).Where("started_at >= ?", weekStart).Count(&attemptsThisWeek)

	var completedEnrollments, pendingCertificates, issuedCertificates int64
	db.Model(&courseModels.Enrollment{}).Where("progress_completion_percentage = ? AND is_deleted = ?", 100, false).Count(&completedEnrollments)
	db.Model(&courseModels.CertificateRequest{}).Where("status = ? AND is_deleted = ?", courseModels.CertificatePending, false).Count(&pendingCertificates)
	db.Model(&courseModels.Certificate{}).Where("is_deleted = ?", false).Count(&issuedCertificates)

	stats := fiber.Map{
		"total_students":        totalStudents,
		"total_courses":         totalCourses,
		"active_courses":        activeCourses,
		"total_enrollments":     totalEnrollments,
		"pending_enrollments":   pendingEnrollments,
		"enrollments_today":     enrollmentsToday,
		"attempts_today":        attemptsToday,
		"attempts_this_week":    attemptsThisWeek,
		"completed_enrollments": completedEnrollments,
		"pending_certificates":  pendingCertificates,
		"issued_certificates":   issuedCertificates,
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", stats)
}
