package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// checkDiscussionAccess verifies the user may participate in a course's
// discussions: admins always, students with an approved enrollment
func checkDiscussionAccess(userID uint, courseID int) bool {
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return false
	}
	if user.Role == "ADMIN" {
		return true
	}

	var enrollment courseModels.Enrollment
	err := database.Database.Db.Where("user_id = ? AND course_id = ? AND status = ? AND is_deleted = ?",
		userID, courseID, courseModels.EnrollmentApproved, false).First(&enrollment).Error
	return err == nil
}

// CreateThread opens a discussion thread in a course
func CreateThread(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !checkDiscussionAccess(userID, courseID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	reqData, ok := c.Locals("validatedThread").(*struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	thread := courseModels.DiscussionThread{
		CourseID: uint(courseID),
		UserID:   userID,
		Title:    reqData.Title,
		Body:     reqData.Body,
	}

	if err := database.Database.Db.Create(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create thread!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Thread created successfully!", thread)
}

// ListThreads lists a course's discussion threads, pinned first
func ListThreads(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	if !checkDiscussionAccess(userID, courseID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var threads []courseModels.DiscussionThread
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("is_pinned desc, created_at desc").Find(&threads).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch threads!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Threads fetched successfully!", threads)
}

// GetThread returns a thread with its replies
func GetThread(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	threadID := c.Locals("threadID").(int)

	if !checkDiscussionAccess(userID, courseID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var thread courseModels.DiscussionThread
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", threadID, courseID, false).
		Preload("Replies", "is_deleted = ?", false).First(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Thread not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thread fetched successfully!", thread)
}

// ReplyToThread posts a reply and notifies the thread owner
func ReplyToThread(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	threadID := c.Locals("threadID").(int)

	if !checkDiscussionAccess(userID, courseID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var thread courseModels.DiscussionThread
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", threadID, courseID, false).First(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Thread not found!", nil)
	}

	if thread.IsClosed {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Thread is closed!", nil)
	}

	reqData, ok := c.Locals("validatedReply").(*struct {
		Body string `json:"body"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reply := courseModels.DiscussionReply{
		ThreadID: uint(threadID),
		UserID:   userID,
		Body:     reqData.Body,
	}

	if err := database.Database.Db.Create(&reply).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to post reply!", nil)
	}

	if thread.UserID != userID {
		utils.NotifyUser(thread.UserID, models.NotifyDiscussionReply,
			"New reply to your thread",
			"Someone replied to \""+thread.Title+"\".")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Reply posted successfully!", reply)
}

// AdminModerateThread pins/unpins or closes a thread
func AdminModerateThread(c *fiber.Ctx) error {
	user := requireAdmin(c)
	if user == nil {
		return nil
	}

	courseID := c.Locals("courseID").(int)
	threadID := c.Locals("threadID").(int)

	var thread courseModels.DiscussionThread
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", threadID, courseID, false).First(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Thread not found!", nil)
	}

	reqData, ok := c.Locals("validatedModeration").(*struct {
		IsPinned *bool `json:"is_pinned"`
		IsClosed *bool `json:"is_closed"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.IsPinned != nil {
		thread.IsPinned = *reqData.IsPinned
	}
	if reqData.IsClosed != nil {
		thread.IsClosed = *reqData.IsClosed
	}

	if err := database.Database.Db.Save(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update thread!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thread updated successfully!", thread)
}
