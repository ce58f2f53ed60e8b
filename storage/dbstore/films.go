package dbstore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"filmorate/db"
	"filmorate/models"
	"filmorate/storage"

	"gorm.io/gorm"
)

type FilmStore struct{}

func NewFilmStore() *FilmStore {
	return &FilmStore{}
}

func (s *FilmStore) Add(ctx context.Context, film *models.Film) error {
	film.Genres = dedupGenres(film.Genres)
	film.Directors = dedupDirectors(film.Directors)

	// Фильм и его связи пишутся в одной транзакции, чтобы не оставить
	// карточку без жанров/режиссёров при частичном сбое.
	err := db.GetWriteDB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(film).Error; err != nil {
			return fmt.Errorf("failed to create film: %w", err)
		}
		return replaceFilmAssociations(tx, film)
	})
	if err != nil {
		return err
	}
	log.Printf("New film added: id=%d name=%s", film.ID, film.Name)
	return loadFilmRelations(db.GetReadOnlyDB(ctx), film)
}

func (s *FilmStore) Update(ctx context.Context, film *models.Film) error {
	exists, err := s.Exists(ctx, film.ID)
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrFilmNotFound
	}

	film.Genres = dedupGenres(film.Genres)
	film.Directors = dedupDirectors(film.Directors)

	err = db.GetWriteDB(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":         film.Name,
			"description":  film.Description,
			"release_date": film.ReleaseDate,
			"duration":     film.Duration,
			"mpa_id":       film.MpaID,
		}
		if err := tx.Model(&models.Film{}).Where("id = ?", film.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update film: %w", err)
		}
		return replaceFilmAssociations(tx, film)
	})
	if err != nil {
		return err
	}
	return loadFilmRelations(db.GetReadOnlyDB(ctx), film)
}

func (s *FilmStore) GetAll(ctx context.Context) ([]models.Film, error) {
	var films []models.Film
	if err := db.GetReadOnlyDB(ctx).Order("id").Find(&films).Error; err != nil {
		return nil, fmt.Errorf("failed to get films: %w", err)
	}
	if err := loadFilmsRelations(db.GetReadOnlyDB(ctx), films); err != nil {
		return nil, err
	}
	return films, nil
}

func (s *FilmStore) GetByID(ctx context.Context, id int64) (*models.Film, error) {
	var film models.Film
	err := db.GetReadOnlyDB(ctx).First(&film, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrFilmNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get film: %w", err)
	}
	if err := loadFilmRelations(db.GetReadOnlyDB(ctx), &film); err != nil {
		return nil, err
	}
	return &film, nil
}

func (s *FilmStore) Delete(ctx context.Context, id int64) error {
	exists, err := s.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrFilmNotFound
	}
	return db.GetWriteDB(ctx).Transaction(func(tx *gorm.DB) error {
		reviewIDs := tx.Model(&models.Review{}).Select("id").Where("film_id = ?", id)
		if err := tx.Where("review_id IN (?)", reviewIDs).Delete(&models.ReviewRating{}).Error; err != nil {
			return fmt.Errorf("failed to delete review ratings: %w", err)
		}
		for _, m := range []interface{}{&models.Review{}, &models.Like{}, &models.FilmGenre{}, &models.FilmDirector{}} {
			if err := tx.Where("film_id = ?", id).Delete(m).Error; err != nil {
				return fmt.Errorf("failed to delete film dependents: %w", err)
			}
		}
		if err := tx.Delete(&models.Film{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete film: %w", err)
		}
		return nil
	})
}

func (s *FilmStore) SearchByTitle(ctx context.Context, query string) ([]models.Film, error) {
	var films []models.Film
	pattern := "%" + strings.ToLower(query) + "%"
	err := db.GetReadOnlyDB(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("id").
		Find(&films).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search films by title: %w", err)
	}
	if err := loadFilmsRelations(db.GetReadOnlyDB(ctx), films); err != nil {
		return nil, err
	}
	return films, nil
}

func (s *FilmStore) SearchByDirector(ctx context.Context, query string) ([]models.Film, error) {
	var films []models.Film
	pattern := "%" + strings.ToLower(query) + "%"
	err := db.GetReadOnlyDB(ctx).
		Table("films f").
		Select("f.*").
		Joins("JOIN film_director fd ON fd.film_id = f.id").
		Joins("JOIN directors d ON d.id = fd.director_id").
		Where("LOWER(d.name) LIKE ?", pattern).
		Order("f.id").
		Scan(&films).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search films by director: %w", err)
	}
	if err := loadFilmsRelations(db.GetReadOnlyDB(ctx), films); err != nil {
		return nil, err
	}
	return films, nil
}

func (s *FilmStore) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := db.GetReadOnlyDB(ctx).Model(&models.Film{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check film existence: %w", err)
	}
	return count > 0, nil
}

// replaceFilmAssociations полностью заменяет наборы жанров и режиссёров
// фильма. Слияния нет: старые связи удаляются, новые вставляются.
func replaceFilmAssociations(tx *gorm.DB, film *models.Film) error {
	if film.MpaID != 0 {
		var count int64
		if err := tx.Model(&models.Mpa{}).Where("id = ?", film.MpaID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return storage.ErrMpaNotFound
		}
	}

	if err := tx.Where("film_id = ?", film.ID).Delete(&models.FilmGenre{}).Error; err != nil {
		return fmt.Errorf("failed to clear film genres: %w", err)
	}
	for _, genre := range film.Genres {
		var count int64
		if err := tx.Model(&models.Genre{}).Where("id = ?", genre.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return storage.ErrGenreNotFound
		}
		row := models.FilmGenre{FilmID: film.ID, GenreID: genre.ID}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to link genre %d: %w", genre.ID, err)
		}
	}

	if err := tx.Where("film_id = ?", film.ID).Delete(&models.FilmDirector{}).Error; err != nil {
		return fmt.Errorf("failed to clear film directors: %w", err)
	}
	for _, director := range film.Directors {
		var count int64
		if err := tx.Model(&models.Director{}).Where("id = ?", director.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return storage.ErrDirectorNotFound
		}
		row := models.FilmDirector{FilmID: film.ID, DirectorID: director.ID}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to link director %d: %w", director.ID, err)
		}
	}
	return nil
}

// loadFilmRelations дособирает фильм: рейтинг MPA, жанры, режиссёры и
// количество лайков. Пустые наборы остаются пустыми срезами, не nil.
func loadFilmRelations(database *gorm.DB, film *models.Film) error {
	database = database.Session(&gorm.Session{})
	if film.MpaID != 0 {
		var mpa models.Mpa
		err := database.First(&mpa, film.MpaID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return storage.ErrMpaNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load mpa: %w", err)
		}
		film.Mpa = mpa
	}

	genres := []models.Genre{}
	err := database.
		Table("genres g").
		Select("g.*").
		Joins("JOIN film_genres fg ON fg.genre_id = g.id").
		Where("fg.film_id = ?", film.ID).
		Order("g.id").
		Scan(&genres).Error
	if err != nil {
		return fmt.Errorf("failed to load film genres: %w", err)
	}
	film.Genres = genres

	directors := []models.Director{}
	err = database.
		Table("directors d").
		Select("d.*").
		Joins("JOIN film_director fd ON fd.director_id = d.id").
		Where("fd.film_id = ?", film.ID).
		Order("d.id").
		Scan(&directors).Error
	if err != nil {
		return fmt.Errorf("failed to load film directors: %w", err)
	}
	film.Directors = directors

	var likes int64
	if err := database.Model(&models.Like{}).Where("film_id = ?", film.ID).Count(&likes).Error; err != nil {
		return fmt.Errorf("failed to count likes: %w", err)
	}
	film.Likes = likes
	return nil
}

func loadFilmsRelations(database *gorm.DB, films []models.Film) error {
	for i := range films {
		if err := loadFilmRelations(database, &films[i]); err != nil {
			return err
		}
	}
	return nil
}

func dedupGenres(genres []models.Genre) []models.Genre {
	seen := make(map[int64]bool, len(genres))
	out := make([]models.Genre, 0, len(genres))
	for _, g := range genres {
		if !seen[g.ID] {
			seen[g.ID] = true
			out = append(out, g)
		}
	}
	return out
}

func dedupDirectors(directors []models.Director) []models.Director {
	seen := make(map[int64]bool, len(directors))
	out := make([]models.Director, 0, len(directors))
	for _, d := range directors {
		if !seen[d.ID] {
			seen[d.ID] = true
			out = append(out, d)
		}
	}
	return out
}
