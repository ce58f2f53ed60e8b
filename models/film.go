package models

// Film - карточка фильма. Жанры, режиссёры и рейтинг MPA хранятся в
// отдельных таблицах и собираются хранилищем при чтении.
type Film struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"size:255" json:"name"`
	Description string     `gorm:"size:200" json:"description"`
	ReleaseDate Date       `json:"releaseDate"`
	Duration    int        `json:"duration"`
	MpaID       int64      `gorm:"index" json:"-"`
	Mpa         Mpa        `gorm:"-" json:"mpa"`
	Genres      []Genre    `gorm:"-" json:"genres"`
	Directors   []Director `gorm:"-" json:"directors"`
	Likes       int64      `gorm:"-" json:"likes"`
}

func (Film) TableName() string {
	return "films"
}

type Genre struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:60" json:"name"`
}

func (Genre) TableName() string {
	return "genres"
}

// Mpa - возрастной рейтинг фильма (G, PG-13 и т.д.)
type Mpa struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:10" json:"name"`
}

func (Mpa) TableName() string {
	return "mpa_ratings"
}

type FilmGenre struct {
	ID      int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	FilmID  int64 `gorm:"index:film_genre_idx,unique" json:"film_id"`
	GenreID int64 `gorm:"index:film_genre_idx,unique" json:"genre_id"`
}

func (FilmGenre) TableName() string {
	return "film_genres"
}

type FilmDirector struct {
	ID         int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	FilmID     int64 `gorm:"index:film_director_idx,unique" json:"film_id"`
	DirectorID int64 `gorm:"index:film_director_idx,unique" json:"director_id"`
}

func (FilmDirector) TableName() string {
	return "film_director"
}

// Like - отметка "нравится" от пользователя фильму
type Like struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"index:like_pair_idx,unique" json:"user_id"`
	FilmID int64 `gorm:"index:like_pair_idx,unique" json:"film_id"`
}

func (Like) TableName() string {
	return "likes"
}
