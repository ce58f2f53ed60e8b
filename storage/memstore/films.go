package memstore

import (
	"context"
	"sort"
	"strings"

	"filmorate/models"
	"filmorate/storage"
)

type FilmStore struct {
	c *core
}

func (s *FilmStore) Add(ctx context.Context, film *models.Film) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if err := s.c.checkFilmRefs(film); err != nil {
		return err
	}
	s.c.nextFilmID++
	film.ID = s.c.nextFilmID

	stored := *film
	stored.Genres = dedupGenres(film.Genres)
	stored.Directors = dedupDirectors(film.Directors)
	s.c.films[film.ID] = &stored

	*film = s.c.filmCopy(&stored)
	return nil
}

func (s *FilmStore) Update(ctx context.Context, film *models.Film) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if _, ok := s.c.films[film.ID]; !ok {
		return storage.ErrFilmNotFound
	}
	if err := s.c.checkFilmRefs(film); err != nil {
		return err
	}
	// Полная замена, включая наборы жанров и режиссёров.
	stored := *film
	stored.Genres = dedupGenres(film.Genres)
	stored.Directors = dedupDirectors(film.Directors)
	s.c.films[film.ID] = &stored

	*film = s.c.filmCopy(&stored)
	return nil
}

func (s *FilmStore) GetAll(ctx context.Context) ([]models.Film, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	films := make([]models.Film, 0, len(s.c.films))
	for _, film := range s.c.films {
		films = append(films, s.c.filmCopy(film))
	}
	sort.Slice(films, func(i, j int) bool { return films[i].ID < films[j].ID })
	return films, nil
}

func (s *FilmStore) GetByID(ctx context.Context, id int64) (*models.Film, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	film, ok := s.c.films[id]
	if !ok {
		return nil, storage.ErrFilmNotFound
	}
	out := s.c.filmCopy(film)
	return &out, nil
}

func (s *FilmStore) Delete(ctx context.Context, id int64) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if _, ok := s.c.films[id]; !ok {
		return storage.ErrFilmNotFound
	}
	delete(s.c.films, id)
	delete(s.c.likes, id)
	for reviewID, review := range s.c.reviews {
		if review.FilmID == id {
			delete(s.c.reviews, reviewID)
			delete(s.c.reviewVotes, reviewID)
		}
	}
	return nil
}

func (s *FilmStore) SearchByTitle(ctx context.Context, query string) ([]models.Film, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	needle := strings.ToLower(query)
	films := []models.Film{}
	for _, film := range s.c.films {
		if strings.Contains(strings.ToLower(film.Name), needle) {
			films = append(films, s.c.filmCopy(film))
		}
	}
	sort.Slice(films, func(i, j int) bool { return films[i].ID < films[j].ID })
	return films, nil
}

func (s *FilmStore) SearchByDirector(ctx context.Context, query string) ([]models.Film, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	needle := strings.ToLower(query)
	films := []models.Film{}
	for _, film := range s.c.films {
		for _, d := range film.Directors {
			director, ok := s.c.directors[d.ID]
			if ok && strings.Contains(strings.ToLower(director.Name), needle) {
				films = append(films, s.c.filmCopy(film))
				break
			}
		}
	}
	sort.Slice(films, func(i, j int) bool { return films[i].ID < films[j].ID })
	return films, nil
}

func (s *FilmStore) Exists(ctx context.Context, id int64) (bool, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()
	_, ok := s.c.films[id]
	return ok, nil
}

// checkFilmRefs проверяет ссылки фильма на справочники. Вызывается под
// write-замком.
func (c *core) checkFilmRefs(film *models.Film) error {
	if film.MpaID != 0 {
		if _, ok := c.mpa[film.MpaID]; !ok {
			return storage.ErrMpaNotFound
		}
	}
	for _, g := range film.Genres {
		if _, ok := c.genres[g.ID]; !ok {
			return storage.ErrGenreNotFound
		}
	}
	for _, d := range film.Directors {
		if _, ok := c.directors[d.ID]; !ok {
			return storage.ErrDirectorNotFound
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
