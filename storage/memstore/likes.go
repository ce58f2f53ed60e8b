package memstore

import (
	"context"
	"sort"

	"filmorate/models"
	"filmorate/storage"
)

type LikeStore struct {
	c *core
}

// AddLike идемпотентен: повторный лайк того же пользователя не ошибка.
func (s *LikeStore) AddLike(ctx context.Context, filmID, userID int64) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if _, ok := s.c.films[filmID]; !ok {
		return storage.ErrFilmNotFound
	}
	if _, ok := s.c.users[userID]; !ok {
		return storage.ErrUserNotFound
	}
	if s.c.likes[filmID] == nil {
		s.c.likes[filmID] = make(map[int64]bool)
	}
	s.c.likes[filmID][userID] = true
	return nil
}

func (s *LikeStore) RemoveLike(ctx context.Context, filmID, userID int64) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if _, ok := s.c.films[filmID]; !ok {
		return storage.ErrFilmNotFound
	}
	if _, ok := s.c.users[userID]; !ok {
		return storage.ErrUserNotFound
	}
	if !s.c.likes[filmID][userID] {
		return storage.ErrLikeNotFound
	}
	delete(s.c.likes[filmID], userID)
	return nil
}

func (s *LikeStore) GetPopular(ctx context.Context, count int, genreID int64, year int) ([]models.Film, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	films := []models.Film{}
	for _, film := range s.c.films {
		if genreID > 0 && !filmHasGenre(film, genreID) {
			continue
		}
		if year > 0 && film.ReleaseDate.Year() != year {
			continue
		}
		films = append(films, s.c.filmCopy(film))
	}
	s.c.sortByLikesDesc(films)
	if count > 0 && len(films) > count {
		films = films[:count]
	}
	return films, nil
}

func (s *LikeStore) GetCommonFilms(ctx context.Context, userID, friendID int64) ([]models.Film, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	if err := s.c.checkUsers(userID, friendID); err != nil {
		return nil, err
	}
	films := []models.Film{}
	for filmID, userIDs := range s.c.likes {
		if userIDs[userID] && userIDs[friendID] {
			if film, ok := s.c.films[filmID]; ok {
				films = append(films, s.c.filmCopy(film))
			}
		}
	}
	s.c.sortByLikesDesc(films)
	return films, nil
}

// GetRecommendations находит пользователя с максимальным пересечением
// лайков и отдаёт его фильмы, которых ещё нет у запрашивающего.
func (s *LikeStore) GetRecommendations(ctx context.Context, userID int64) ([]models.Film, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	if _, ok := s.c.users[userID]; !ok {
		return nil, storage.ErrUserNotFound
	}

	mine := make(map[int64]bool)
	for filmID, userIDs := range s.c.likes {
		if userIDs[userID] {
			mine[filmID] = true
		}
	}

	overlap := make(map[int64]int)
	for filmID := range mine {
		for otherID := range s.c.likes[filmID] {
			if otherID != userID {
				overlap[otherID]++
			}
		}
	}

	var neighborID int64
	best := 0
	for otherID, n := range overlap {
		if n > best || (n == best && best > 0 && otherID < neighborID) {
			neighborID = otherID
			best = n
		}
	}
	if best == 0 {
		return []models.Film{}, nil
	}

	films := []models.Film{}
	for filmID, userIDs := range s.c.likes {
		if userIDs[neighborID] && !mine[filmID] {
			if film, ok := s.c.films[filmID]; ok {
				films = append(films, s.c.filmCopy(film))
			}
		}
	}
	sort.Slice(films, func(i, j int) bool { return films[i].ID < films[j].ID })
	return films, nil
}

func filmHasGenre(film *models.Film, genreID int64) bool {
	for _, g := range film.Genres {
		if g.ID == genreID {
			return true
		}
	}
	return false
}
