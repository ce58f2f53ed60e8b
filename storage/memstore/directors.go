package memstore

import (
	"context"
	"sort"

	"filmorate/models"
	"filmorate/storage"
)

type DirectorStore struct {
	c *core
}

func (s *DirectorStore) Add(ctx context.Context, director *models.Director) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	s.c.nextDirectorID++
	director.ID = s.c.nextDirectorID
	stored := *director
	s.c.directors[director.ID] = &stored
	return nil
}

func (s *DirectorStore) Update(ctx context.Context, director *models.Director) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if _, ok := s.c.directors[director.ID]; !ok {
		return storage.ErrDirectorNotFound
	}
	stored := *director
	s.c.directors[director.ID] = &stored
	return nil
}

func (s *DirectorStore) GetAll(ctx context.Context) ([]models.Director, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	directors := make([]models.Director, 0, len(s.c.directors))
	for _, director := range s.c.directors {
		directors = append(directors, *director)
	}
	sort.Slice(directors, func(i, j int) bool { return directors[i].ID < directors[j].ID })
	return directors, nil
}

func (s *DirectorStore) GetByID(ctx context.Context, id int64) (*models.Director, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	director, ok := s.c.directors[id]
	if !ok {
		return nil, storage.ErrDirectorNotFound
	}
	out := *director
	return &out, nil
}

func (s *DirectorStore) Delete(ctx context.Context, id int64) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if _, ok := s.c.directors[id]; !ok {
		return storage.ErrDirectorNotFound
	}
	delete(s.c.directors, id)
	// Фильмы остаются, связь с режиссёром снимается.
	for _, film := range s.c.films {
		kept := film.Directors[:0]
		for _, d := range film.Directors {
			if d.ID != id {
				kept = append(kept, d)
			}
		}
		film.Directors = kept
	}
	return nil
}

func (s *DirectorStore) Exists(ctx context.Context, id int64) (bool, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()
	_, ok := s.c.directors[id]
	return ok, nil
}

func (s *DirectorStore) FilmsByDirectorOnYear(ctx context.Context, directorID int64) ([]models.Film, error) {
	films, err := s.filmsByDirector(directorID)
	if err != nil {
		return nil, err
	}
	sort.Slice(films, func(i, j int) bool {
		ti, tj := films[i].ReleaseDate.Time, films[j].ReleaseDate.Time
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return films[i].ID < films[j].ID
	})
	return films, nil
}

func (s *DirectorStore) FilmsByDirectorOnLikes(ctx context.Context, directorID int64) ([]models.Film, error) {
	films, err := s.filmsByDirector(directorID)
	if err != nil {
		return nil, err
	}
	s.c.sortByLikesDesc(films)
	return films, nil
}

func (s *DirectorStore) filmsByDirector(directorID int64) ([]models.Film, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	if _, ok := s.c.directors[directorID]; !ok {
		return nil, storage.ErrDirectorNotFound
	}
	films := []models.Film{}
	for _, film := range s.c.films {
		for _, d := range film.Directors {
			if d.ID == directorID {
				films = append(films, s.c.filmCopy(film))
				break
			}
		}
	}
	return films, nil
}
