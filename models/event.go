package models

type EventType string

const (
	EventLike   EventType = "LIKE"
	EventFriend EventType = "FRIEND"
	EventReview EventType = "REVIEW"
)

type OperationType string

const (
	OperationAdd    OperationType = "ADD"
	OperationRemove OperationType = "REMOVE"
	OperationUpdate OperationType = "UPDATE"
)

// Event - запись ленты активности. Журнал только добавляется,
// записи никогда не изменяются и не удаляются.
type Event struct {
	ID        int64         `gorm:"primaryKey;autoIncrement" json:"eventId"`
	Timestamp int64         `gorm:"index" json:"timestamp"`
	UserID    int64         `gorm:"index" json:"userId"`
	EventType EventType     `gorm:"size:20" json:"eventType"`
	Operation OperationType `gorm:"size:20" json:"operation"`
	EntityID  int64         `json:"entityId"`
}

func (Event) TableName() string {
	return "events"
}
