package dbstore

import (
	"context"
	"fmt"
	"time"

	"filmorate/db"
	"filmorate/models"
)

// EventStore - журнал ленты активности. Только вставка и чтение.
type EventStore struct{}

func NewEventStore() *EventStore {
	return &EventStore{}
}

func (s *EventStore) AddEvent(ctx context.Context, event *models.Event) error {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UnixMilli()
	}
	if err := db.GetWriteDB(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to add event: %w", err)
	}
	return nil
}

func (s *EventStore) GetEventsByUserID(ctx context.Context, userID int64) ([]models.Event, error) {
	events := []models.Event{}
	err := db.GetReadOnlyDB(ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC, id ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user events: %w", err)
	}
	return events, nil
}
