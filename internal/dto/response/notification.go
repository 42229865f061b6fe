package response

import (
	"time"

	"beauty-go/internal/data/entity"
)

type NotificationResponse struct {
	ID        string                  `json:"id"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Type      entity.NotificationType `json:"type"`
	IsRead    bool                    `json:"isRead"`
	Data      *string                 `json:"data,omitempty"`
	CreatedAt time.Time               `json:"createdAt"`
}

// Helper converter
func NotificationToResponse(notification *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID.String(),
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      notification.Type,
		IsRead:    notification.IsRead,
		Data:      notification.Data,
		CreatedAt: notification.CreatedAt,
	}
}
