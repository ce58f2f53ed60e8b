package memstore

import (
	"context"
	"sort"

	"filmorate/models"
	"filmorate/storage"
)

// GenreStore и MpaStore - справочники, заполняются при создании core.
type GenreStore struct {
	c *core
}

func (s *GenreStore) GetAll(ctx context.Context) ([]models.Genre, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	genres := make([]models.Genre, 0, len(s.c.genres))
	for _, g := range s.c.genres {
		genres = append(genres, g)
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })
	return genres, nil
}

func (s *GenreStore) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	genre, ok := s.c.genres[id]
	if !ok {
		return nil, storage.ErrGenreNotFound
	}
	return &genre, nil
}

type MpaStore struct {
	c *core
}

func (s *MpaStore) GetAll(ctx context.Context) ([]models.Mpa, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	ratings := make([]models.Mpa, 0, len(s.c.mpa))
	for _, m := range s.c.mpa {
		ratings = append(ratings, m)
	}
	sort.Slice(ratings, func(i, j int) bool { return ratings[i].ID < ratings[j].ID })
	return ratings, nil
}

func (s *MpaStore) GetByID(ctx context.Context, id int64) (*models.Mpa, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	rating, ok := s.c.mpa[id]
	if !ok {
		return nil, storage.ErrMpaNotFound
	}
	return &rating, nil
}
