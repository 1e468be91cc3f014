package notificationRoutes

import (
	controllers "lms/controllers/notification"
	"lms/middleware"
	validators "lms/validators/notification"

	"github.com/gofiber/fiber/v2"
)

// SetupNotificationRoutes sets up in-app notification routes
func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/notification")

	notificationGroup.Get("/list", middleware.JWTMiddleware, validators.NotificationList(), controllers.GetMyNotifications)
	notificationGroup.Put("/read-all", middleware.JWTMiddleware, controllers.MarkAllRead)
	notificationGroup.Put("/:notificationId/read", middleware.JWTMiddleware, validators.NotificationID(), controllers.MarkNotificationRead)
}
