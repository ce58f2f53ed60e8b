package models

type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email    string `gorm:"size:255" json:"email"`
	Login    string `gorm:"size:60" json:"login"`
	Name     string `gorm:"size:255" json:"name"`
	Birthday Date   `json:"birthday"`
}

func (User) TableName() string {
	return "users"
}

// Friend - направленная запись дружбы. Симметрия не поддерживается
// хранилищем: каждая сторона добавляет другую самостоятельно.
type Friend struct {
	ID       int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   int64 `gorm:"index:friend_pair_idx,unique" json:"user_id"`
	FriendID int64 `gorm:"index:friend_pair_idx,unique" json:"friend_id"`
}

func (Friend) TableName() string {
	return "friends"
}
