// Package memstore реализует контракты storage на картах в памяти.
// Подходит для тестов и демо-запусков без базы; данные не переживают
// перезапуск процесса.
package memstore

import (
	"sort"
	"sync"

	"filmorate/models"
	"filmorate/storage"
)

// core держит все таблицы одного экземпляра хранилища. Доступ к картам
// только под mu; счётчики id инкрементируются под тем же замком.
type core struct {
	mu sync.RWMutex

	films     map[int64]*models.Film
	users     map[int64]*models.User
	directors map[int64]*models.Director
	genres    map[int64]models.Genre
	mpa       map[int64]models.Mpa
	reviews   map[int64]*models.Review

	likes       map[int64]map[int64]bool // filmID -> userID
	friends     map[int64]map[int64]bool // userID -> friendID
	reviewVotes map[int64]map[int64]bool // reviewID -> userID -> liked

	events []models.Event

	nextFilmID     int64
	nextUserID     int64
	nextDirectorID int64
	nextReviewID   int64
	nextEventID    int64
}

func newCore() *core {
	c := &core{
		films:       make(map[int64]*models.Film),
		users:       make(map[int64]*models.User),
		directors:   make(map[int64]*models.Director),
		genres:      make(map[int64]models.Genre),
		mpa:         make(map[int64]models.Mpa),
		reviews:     make(map[int64]*models.Review),
		likes:       make(map[int64]map[int64]bool),
		friends:     make(map[int64]map[int64]bool),
		reviewVotes: make(map[int64]map[int64]bool),
	}
	// Тот же справочник, что и в db.SeedReferenceData.
	for _, g := range []models.Genre{
		{ID: 1, Name: "Комедия"},
		{ID: 2, Name: "Драма"},
		{ID: 3, Name: "Мультфильм"},
		{ID: 4, Name: "Триллер"},
		{ID: 5, Name: "Документальный"},
		{ID: 6, Name: "Боевик"},
	} {
		c.genres[g.ID] = g
	}
	for _, m := range []models.Mpa{
		{ID: 1, Name: "G"},
		{ID: 2, Name: "PG"},
		{ID: 3, Name: "PG-13"},
		{ID: 4, Name: "R"},
		{ID: 5, Name: "NC-17"},
	} {
		c.mpa[m.ID] = m
	}
	return c
}

func NewStorage() *storage.Storage {
	c := newCore()
	return &storage.Storage{
		Films:     &FilmStore{c},
		Users:     &UserStore{c},
		Friends:   &FriendStore{c},
		Likes:     &LikeStore{c},
		Directors: &DirectorStore{c},
		Genres:    &GenreStore{c},
		Mpa:       &MpaStore{c},
		Reviews:   &ReviewStore{c},
		Events:    &EventStore{c},
	}
}

// filmCopy возвращает копию фильма с собранными связями. Вызывается
// под замком (достаточно RLock).
func (c *core) filmCopy(film *models.Film) models.Film {
	out := *film
	out.Mpa = c.mpa[film.MpaID]

	out.Genres = make([]models.Genre, 0, len(film.Genres))
	for _, g := range film.Genres {
		out.Genres = append(out.Genres, c.genres[g.ID])
	}
	sort.Slice(out.Genres, func(i, j int) bool { return out.Genres[i].ID < out.Genres[j].ID })

	out.Directors = make([]models.Director, 0, len(film.Directors))
	for _, d := range film.Directors {
		if stored, ok := c.directors[d.ID]; ok {
			out.Directors = append(out.Directors, *stored)
		}
	}
	sort.Slice(out.Directors, func(i, j int) bool { return out.Directors[i].ID < out.Directors[j].ID })

	out.Likes = int64(len(c.likes[film.ID]))
	return out
}

func (c *core) likeCount(filmID int64) int64 {
	return int64(len(c.likes[filmID]))
}

// sortByLikesDesc сортирует по убыванию лайков, при равенстве - по
// возрастанию id.
func (c *core) sortByLikesDesc(films []models.Film) {
	sort.Slice(films, func(i, j int) bool {
		li, lj := films[i].Likes, films[j].Likes
		if li != lj {
			return li > lj
		}
		return films[i].ID < films[j].ID
	})
}
