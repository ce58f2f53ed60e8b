package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"filmorate/models"
	"filmorate/storage"
)

// Дата выхода первого в истории фильма, раньше неё релизов не бывает.
var earliestRelease = time.Date(1895, 12, 28, 0, 0, 0, 0, time.UTC)

const maxDescriptionLen = 200

type FilmService struct{}

func NewFilmService() *FilmService {
	return &FilmService{}
}

func (fs *FilmService) validate(film *models.Film) error {
	if strings.TrimSpace(film.Name) == "" {
		return validationErr("film name must not be blank")
	}
	if utf8.RuneCountInString(film.Description) > maxDescriptionLen {
		return validationErr("film description must be at most 200 characters")
	}
	if film.ReleaseDate.Before(earliestRelease) {
		return validationErr("film release date must not be before 1895-12-28")
	}
	if film.Duration <= 0 {
		return validationErr("film duration must be positive")
	}
	return nil
}

func (fs *FilmService) Create(ctx context.Context, film *models.Film) error {
	if err := fs.validate(film); err != nil {
		return err
	}
	film.MpaID = film.Mpa.ID
	if err := storage.Active.Films.Add(ctx, film); err != nil {
		return err
	}
	invalidatePopular(ctx)
	return nil
}

func (fs *FilmService) Update(ctx context.Context, film *models.Film) error {
	if err := fs.validate(film); err != nil {
		return err
	}
	film.MpaID = film.Mpa.ID
	if err := storage.Active.Films.Update(ctx, film); err != nil {
		return err
	}
	invalidatePopular(ctx)
	return nil
}

func (fs *FilmService) GetAll(ctx context.Context) ([]models.Film, error) {
	return storage.Active.Films.GetAll(ctx)
}

func (fs *FilmService) GetByID(ctx context.Context, id int64) (*models.Film, error) {
	return storage.Active.Films.GetByID(ctx, id)
}

func (fs *FilmService) Delete(ctx context.Context, id int64) error {
	if err := storage.Active.Films.Delete(ctx, id); err != nil {
		return err
	}
	invalidatePopular(ctx)
	return nil
}

func (fs *FilmService) AddLike(ctx context.Context, filmID, userID int64) error {
	if err := storage.Active.Likes.AddLike(ctx, filmID, userID); err != nil {
		return err
	}
	recordEvent(ctx, userID, models.EventLike, models.OperationAdd, filmID)
	invalidatePopular(ctx)
	return nil
}

func (fs *FilmService) RemoveLike(ctx context.Context, filmID, userID int64) error {
	if err := storage.Active.Likes.RemoveLike(ctx, filmID, userID); err != nil {
		return err
	}
	recordEvent(ctx, userID, models.EventLike, models.OperationRemove, filmID)
	invalidatePopular(ctx)
	return nil
}

// GetPopular отдаёт топ фильмов по лайкам, результат кешируется в Redis.
func (fs *FilmService) GetPopular(ctx context.Context, count int, genreID int64, year int) ([]models.Film, error) {
	key := popularCacheKey(count, genreID, year)
	if films, ok := cachedPopular(ctx, key); ok {
		return films, nil
	}
	films, err := storage.Active.Likes.GetPopular(ctx, count, genreID, year)
	if err != nil {
		return nil, err
	}
	storePopular(ctx, key, films)
	return films, nil
}

func (fs *FilmService) GetCommonFilms(ctx context.Context, userID, friendID int64) ([]models.Film, error) {
	return storage.Active.Likes.GetCommonFilms(ctx, userID, friendID)
}

// Search ищет по подстроке в названии и/или имени режиссёра. При поиске
// по обоим полям сперва идут совпадения по режиссёру.
func (fs *FilmService) Search(ctx context.Context, query, by string) ([]models.Film, error) {
	if strings.TrimSpace(query) == "" {
		return nil, validationErr("search query must not be blank")
	}
	byTitle, byDirector := false, false
	for _, field := range strings.Split(by, ",") {
		switch strings.TrimSpace(field) {
		case "title":
			byTitle = true
		case "director":
			byDirector = true
		default:
			return nil, validationErr("search 'by' must be title, director or both")
		}
	}

	films := []models.Film{}
	seen := make(map[int64]bool)
	if byDirector {
		found, err := storage.Active.Films.SearchByDirector(ctx, query)
		if err != nil {
			return nil, err
		}
		for _, film := range found {
			if !seen[film.ID] {
				seen[film.ID] = true
				films = append(films, film)
			}
		}
	}
	if byTitle {
		found, err := storage.Active.Films.SearchByTitle(ctx, query)
		if err != nil {
			return nil, err
		}
		for _, film := range found {
			if !seen[film.ID] {
				seen[film.ID] = true
				films = append(films, film)
			}
		}
	}
	return films, nil
}
