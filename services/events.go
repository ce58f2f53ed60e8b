package services

import (
	"context"
	"log"

	"filmorate/api/middleware"
	"filmorate/models"
	"filmorate/storage"
)

// recordEvent пишет событие в журнал и публикует его в шину ленты.
// Публикация best-effort: недоступный брокер не ломает операцию.
func recordEvent(ctx context.Context, userID int64, eventType models.EventType, operation models.OperationType, entityID int64) {
	event := models.Event{
		UserID:    userID,
		EventType: eventType,
		Operation: operation,
		EntityID:  entityID,
	}
	if err := storage.Active.Events.AddEvent(ctx, &event); err != nil {
		log.Println("failed to record event:", err)
		return
	}
	middleware.RecordFeedEvent(string(eventType), string(operation), "filmorate")
	if rabbitChannel != nil {
		if err := PublishFeedEvent(ctx, event); err != nil {
			log.Println("failed to publish feed event:", err)
		}
	}
}
