package utils

import (
	"log"
	"time"

	"lms/config"
	"lms/database"
	"lms/models"

	"github.com/go-resty/resty/v2"
)

// webhookEvent is the payload posted to the configured notification sink
type webhookEvent struct {
	UserID  uint      `json:"user_id"`
	Type    string    `json:"type"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

// NotifyUser creates an in-app notification and fans it out to the optional
// webhook sink and email channel. Delivery failures are logged, never
// propagated; notifications are best-effort side effects.
func NotifyUser(userID uint, notifType, title, message string) {
	notification := models.Notification{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
	}
	if err := database.Database.Db.Create(&notification).Error; err != nil {
		log.Printf("Failed to store notification for user %d: %v", userID, err)
		return
	}

	if config.AppConfig.NotifyWebhookURL != "" {
		go postWebhook(webhookEvent{
			UserID:  userID,
			Type:    notifType,
			Title:   title,
			Message: message,
			SentAt:  time.Now(),
		})
	}

	if config.AppConfig.NotifyEmails && config.AppConfig.EmailSender != "" {
		go emailUser(userID, title, message)
	}
}

func postWebhook(event webhookEvent) {
	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		Post(config.AppConfig.NotifyWebhookURL)
	if err != nil {
		log.Printf("Notification webhook error: %v", err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Notification webhook returned status %d", resp.StatusCode())
	}
}

func emailUser(userID uint, title, message string) {
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return
	}
	body := getEmailTemplate(title, "<p>"+message+"</p>")
	if err := SendEmail([]string{user.Email}, title, body); err != nil {
		log.Printf("Failed to email notification to user %d: %v", userID, err)
	}
}
