// Package dbstore реализует контракты storage поверх реляционной базы
// через gorm (PostgreSQL в проде, SQLite в тестах и демо).
package dbstore

import "filmorate/storage"

func NewStorage() *storage.Storage {
	films := NewFilmStore()
	users := NewUserStore()
	return &storage.Storage{
		Films:     films,
		Users:     users,
		Friends:   NewFriendStore(users),
		Likes:     NewLikeStore(films, users),
		Directors: NewDirectorStore(),
		Genres:    NewGenreStore(),
		Mpa:       NewMpaStore(),
		Reviews:   NewReviewStore(films, users),
		Events:    NewEventStore(),
	}
}
