package utils

import (
	"fmt"
	"log"
	"time"

	"lms/config"
	"lms/database"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REMINDER-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// sendInactivityReminders nudges students whose approved enrollments have
// seen no progress for the configured number of days
func sendInactivityReminders() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -config.AppConfig.InactivityDays)

	var enrollments []courseModels.Enrollment
	if err := db.Where(
		"status = ? AND is_deleted = ? AND progress_completion_percentage < 100 AND progress_last_accessed_at IS NOT NULL AND progress_last_accessed_at < ?",
		courseModels.EnrollmentApproved, false, cutoff,
	).Find(&enrollments).Error; err != nil {
		logScheduler("Error fetching stale enrollments: " + err.Error())
		return
	}

	for _, enr := range enrollments {
		var course courseModels.Course
		if err := db.Where("id = ? AND is_deleted = ?", enr.CourseID, false).First(&course).Error; err != nil {
			continue
		}
		NotifyUser(enr.UserID, models.NotifyInactivityReminder,
			"Keep going with "+course.Title,
			fmt.Sprintf("You are %d%% through %q. Pick up where you left off!", enr.Progress.CompletionPercentage, course.Title),
		)
	}

	if len(enrollments) > 0 {
		logScheduler(fmt.Sprintf("Sent %d inactivity reminders", len(enrollments)))
	}
}

// expireJobPostings deactivates postings whose expiry date has passed
func expireJobPostings() {
	db := database.Database.Db
	result := db.Model(&models.JobPosting{}).
		Where("is_active = ? AND is_deleted = ? AND expires_at IS NOT NULL AND expires_at < ?", true, false, time.Now()).
		Update("is_active", false)
	if result.Error != nil {
		logScheduler("Error expiring job postings: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler(fmt.Sprintf("Deactivated %d expired job postings", result.RowsAffected))
	}
}

// StartReminderScheduler starts the background cron jobs
func StartReminderScheduler() {
	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.ReminderCron, sendInactivityReminders); err != nil {
		log.Fatalf("Failed to schedule inactivity reminders: %v", err)
	}

	// Hourly sweep of expired job postings
	if _, err := c.AddFunc("@hourly", expireJobPostings); err != nil {
		log.Fatalf("Failed to schedule job posting expiry: %v", err)
	}

	c.Start()
	logScheduler("Scheduler started")
}
