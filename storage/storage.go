package storage

import (
	"context"

	"filmorate/models"
)

// FilmStorage хранит фильмы вместе с наборами жанров и режиссёров.
// Update полностью заменяет оба набора (delete-then-reinsert).
type FilmStorage interface {
	Add(ctx context.Context, film *models.Film) error
	Update(ctx context.Context, film *models.Film) error
	GetAll(ctx context.Context) ([]models.Film, error)
	GetByID(ctx context.Context, id int64) (*models.Film, error)
	Delete(ctx context.Context, id int64) error
	SearchByTitle(ctx context.Context, query string) ([]models.Film, error)
	SearchByDirector(ctx context.Context, query string) ([]models.Film, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type UserStorage interface {
	Add(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// FriendStorage - направленные записи дружбы, без зеркалирования.
type FriendStorage interface {
	AddFriend(ctx context.Context, userID, friendID int64) error
	DeleteFriend(ctx context.Context, userID, friendID int64) error
	FindFriends(ctx context.Context, userID int64) ([]models.User, error)
	FindSharedFriends(ctx context.Context, userID, otherID int64) ([]models.User, error)
}

// LikeStorage - лайки и построенные на них выборки.
type LikeStorage interface {
	AddLike(ctx context.Context, filmID, userID int64) error
	RemoveLike(ctx context.Context, filmID, userID int64) error
	// GetPopular: нулевые genreID и year отключают соответствующий фильтр.
	GetPopular(ctx context.Context, count int, genreID int64, year int) ([]models.Film, error)
	GetCommonFilms(ctx context.Context, userID, friendID int64) ([]models.Film, error)
	GetRecommendations(ctx context.Context, userID int64) ([]models.Film, error)
}

type DirectorStorage interface {
	Add(ctx context.Context, director *models.Director) error
	Update(ctx context.Context, director *models.Director) error
	GetAll(ctx context.Context) ([]models.Director, error)
	GetByID(ctx context.Context, id int64) (*models.Director, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	FilmsByDirectorOnYear(ctx context.Context, directorID int64) ([]models.Film, error)
	FilmsByDirectorOnLikes(ctx context.Context, directorID int64) ([]models.Film, error)
}

type GenreStorage interface {
	GetAll(ctx context.Context) ([]models.Genre, error)
	GetByID(ctx context.Context, id int64) (*models.Genre, error)
}

type MpaStorage interface {
	GetAll(ctx context.Context) ([]models.Mpa, error)
	GetByID(ctx context.Context, id int64) (*models.Mpa, error)
}

// ReviewStorage - отзывы и их оценки. Каждая мутация оценок
// пересчитывает поле useful в той же транзакции.
type ReviewStorage interface {
	Add(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	Delete(ctx context.Context, id int64) error
	// GetAll: filmID = 0 возвращает отзывы по всем фильмам.
	GetAll(ctx context.Context, filmID int64, count int) ([]models.Review, error)
	AddLike(ctx context.Context, reviewID, userID int64) error
	AddDislike(ctx context.Context, reviewID, userID int64) error
	DeleteLike(ctx context.Context, reviewID, userID int64) error
	DeleteDislike(ctx context.Context, reviewID, userID int64) error
}

type EventStorage interface {
	AddEvent(ctx context.Context, event *models.Event) error
	GetEventsByUserID(ctx context.Context, userID int64) ([]models.Event, error)
}

// Storage объединяет все репозитории одного бэкенда.
type Storage struct {
	Films     FilmStorage
	Users     UserStorage
	Friends   FriendStorage
	Likes     LikeStorage
	Directors DirectorStorage
	Genres    GenreStorage
	Mpa       MpaStorage
	Reviews   ReviewStorage
	Events    EventStorage
}

// Active - выбранный при старте бэкенд (database или memory).
var Active *Storage
