package models

type Director struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:255" json:"name"`
}

func (Director) TableName() string {
	return "directors"
}
