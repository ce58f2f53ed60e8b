package dbstore

import (
	"context"
	"errors"
	"fmt"

	"filmorate/db"
	"filmorate/models"
	"filmorate/storage"

	"gorm.io/gorm"
)

// Справочники жанров и рейтингов MPA. Только чтение: строки создаются
// при миграции.

type GenreStore struct{}

func NewGenreStore() *GenreStore {
	return &GenreStore{}
}

func (s *GenreStore) GetAll(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre
	if err := db.GetReadOnlyDB(ctx).Order("id").Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("failed to get genres: %w", err)
	}
	return genres, nil
}

func (s *GenreStore) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	var genre models.Genre
	err := db.GetReadOnlyDB(ctx).First(&genre, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrGenreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}
	return &genre, nil
}

type MpaStore struct{}

func NewMpaStore() *MpaStore {
	return &MpaStore{}
}

func (s *MpaStore) GetAll(ctx context.Context) ([]models.Mpa, error) {
	var ratings []models.Mpa
	if err := db.GetReadOnlyDB(ctx).Order("id").Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("failed to get mpa ratings: %w", err)
	}
	return ratings, nil
}

func (s *MpaStore) GetByID(ctx context.Context, id int64) (*models.Mpa, error) {
	var mpa models.Mpa
	err := db.GetReadOnlyDB(ctx).First(&mpa, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrMpaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mpa rating: %w", err)
	}
	return &mpa, nil
}
