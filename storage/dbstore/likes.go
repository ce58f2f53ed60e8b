package dbstore

import (
	"context"
	"fmt"
	"log"
	"time"

	"filmorate/db"
	"filmorate/models"
	"filmorate/storage"
)

type LikeStore struct {
	films *FilmStore
	users *UserStore
}

func NewLikeStore(films *FilmStore, users *UserStore) *LikeStore {
	return &LikeStore{films: films, users: users}
}

func (s *LikeStore) AddLike(ctx context.Context, filmID, userID int64) error {
	if err := s.checkFilmAndUser(ctx, filmID, userID); err != nil {
		return err
	}
	exists, err := s.likeExists(ctx, filmID, userID)
	if err != nil {
		return err
	}
	if exists {
		// Повторный лайк - no-op, не ошибка.
		return nil
	}
	like := models.Like{UserID: userID, FilmID: filmID}
	if err := db.GetWriteDB(ctx).Create(&like).Error; err != nil {
		return fmt.Errorf("failed to add like: %w", err)
	}
	log.Printf("User id = %d add like to film id = %d", userID, filmID)
	return nil
}

func (s *LikeStore) RemoveLike(ctx context.Context, filmID, userID int64) error {
	if err := s.checkFilmAndUser(ctx, filmID, userID); err != nil {
		return err
	}
	exists, err := s.likeExists(ctx, filmID, userID)
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrLikeNotFound
	}
	err = db.GetWriteDB(ctx).
		Where("user_id = ? AND film_id = ?", userID, filmID).
		Delete(&models.Like{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return nil
}

// GetPopular сортирует по убыванию числа лайков; при равенстве - по
// возрастанию id фильма. Фильтр по году задан диапазоном дат, чтобы
// запрос одинаково работал в PostgreSQL и SQLite.
func (s *LikeStore) GetPopular(ctx context.Context, count int, genreID int64, year int) ([]models.Film, error) {
	query := db.GetReadOnlyDB(ctx).
		Table("films f").
		Select("f.*").
		Joins("LEFT JOIN likes l ON l.film_id = f.id").
		Group("f.id").
		Order("COUNT(l.id) DESC, f.id ASC").
		Limit(count)

	if genreID > 0 {
		query = query.
			Joins("JOIN film_genres fg ON fg.film_id = f.id").
			Where("fg.genre_id = ?", genreID)
	}
	if year > 0 {
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("f.release_date >= ? AND f.release_date < ?", from, from.AddDate(1, 0, 0))
	}

	films := []models.Film{}
	if err := query.Scan(&films).Error; err != nil {
		return nil, fmt.Errorf("failed to get popular films: %w", err)
	}
	if err := loadFilmsRelations(db.GetReadOnlyDB(ctx), films); err != nil {
		return nil, err
	}
	return films, nil
}

// GetCommonFilms - фильмы, которые лайкнули оба пользователя,
// по убыванию общего числа лайков.
func (s *LikeStore) GetCommonFilms(ctx context.Context, userID, friendID int64) ([]models.Film, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.checkUser(ctx, friendID); err != nil {
		return nil, err
	}

	films := []models.Film{}
	err := db.GetReadOnlyDB(ctx).
		Table("films f").
		Select("f.*").
		Joins("JOIN likes l1 ON l1.film_id = f.id AND l1.user_id = ?", userID).
		Joins("JOIN likes l2 ON l2.film_id = f.id AND l2.user_id = ?", friendID).
		Joins("LEFT JOIN likes l ON l.film_id = f.id").
		Group("f.id").
		Order("COUNT(l.id) DESC, f.id ASC").
		Scan(&films).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get common films: %w", err)
	}
	if err := loadFilmsRelations(db.GetReadOnlyDB(ctx), films); err != nil {
		return nil, err
	}
	return films, nil
}

// GetRecommendations ищет пользователя с максимальным пересечением
// лайков и возвращает его фильмы, которые userID ещё не лайкнул.
func (s *LikeStore) GetRecommendations(ctx context.Context, userID int64) ([]models.Film, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	var neighborID int64
	res := db.GetReadOnlyDB(ctx).Raw(`
		SELECT l2.user_id
		FROM likes l1
		JOIN likes l2 ON l2.film_id = l1.film_id AND l2.user_id <> l1.user_id
		WHERE l1.user_id = ?
		GROUP BY l2.user_id
		ORDER BY COUNT(*) DESC, l2.user_id ASC
		LIMIT 1`, userID).Scan(&neighborID)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to find like neighbor: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return []models.Film{}, nil
	}

	films := []models.Film{}
	err := db.GetReadOnlyDB(ctx).Raw(`
		SELECT f.*
		FROM films f
		JOIN (
			SELECT film_id FROM likes WHERE user_id = ?
			EXCEPT
			SELECT film_id FROM likes WHERE user_id = ?
		) r ON r.film_id = f.id
		ORDER BY f.id`, neighborID, userID).Scan(&films).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recommendations: %w", err)
	}
	if err := loadFilmsRelations(db.GetReadOnlyDB(ctx), films); err != nil {
		return nil, err
	}
	return films, nil
}

func (s *LikeStore) likeExists(ctx context.Context, filmID, userID int64) (bool, error) {
	var count int64
	err := db.GetReadOnlyDB(ctx).Model(&models.Like{}).
		Where("user_id = ? AND film_id = ?", userID, filmID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}
	return count > 0, nil
}

func (s *LikeStore) checkFilmAndUser(ctx context.Context, filmID, userID int64) error {
	exists, err := s.films.Exists(ctx, filmID)
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrFilmNotFound
	}
	return s.checkUser(ctx, userID)
}

func (s *LikeStore) checkUser(ctx context.Context, userID int64) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrUserNotFound
	}
	return nil
}
