package models

// Review - отзыв пользователя на фильм. Useful = лайки - дизлайки,
// пересчитывается хранилищем при каждом изменении оценок.
type Review struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"reviewId"`
	Content    string `gorm:"type:text" json:"content"`
	IsPositive *bool  `json:"isPositive"`
	UserID     int64  `gorm:"index" json:"userId"`
	FilmID     int64  `gorm:"index" json:"filmId"`
	Useful     int64  `json:"useful"`
}

func (Review) TableName() string {
	return "reviews"
}

type ReviewRating struct {
	ID       int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ReviewID int64 `gorm:"index:review_user_idx,unique" json:"review_id"`
	UserID   int64 `gorm:"index:review_user_idx,unique" json:"user_id"`
	Liked    bool  `json:"liked"`
}

func (ReviewRating) TableName() string {
	return "review_ratings"
}
