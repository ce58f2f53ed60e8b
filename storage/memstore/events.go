package memstore

import (
	"context"
	"time"

	"filmorate/models"
)

// EventStore - журнал ленты активности, события только добавляются.
type EventStore struct {
	c *core
}

func (s *EventStore) AddEvent(ctx context.Context, event *models.Event) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	s.c.nextEventID++
	event.ID = s.c.nextEventID
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UnixMilli()
	}
	s.c.events = append(s.c.events, *event)
	return nil
}

func (s *EventStore) GetEventsByUserID(ctx context.Context, userID int64) ([]models.Event, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	events := []models.Event{}
	for _, event := range s.c.events {
		if event.UserID == userID {
			events = append(events, event)
		}
	}
	return events, nil
}
