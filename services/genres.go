package services

import (
	"context"

	"filmorate/models"
	"filmorate/storage"
)

// GenreService и MpaService - справочники только для чтения.
type GenreService struct{}

func NewGenreService() *GenreService {
	return &GenreService{}
}

func (gs *GenreService) GetAll(ctx context.Context) ([]models.Genre, error) {
	return storage.Active.Genres.GetAll(ctx)
}

func (gs *GenreService) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	return storage.Active.Genres.GetByID(ctx, id)
}

type MpaService struct{}

func NewMpaService() *MpaService {
	return &MpaService{}
}

func (ms *MpaService) GetAll(ctx context.Context) ([]models.Mpa, error) {
	return storage.Active.Mpa.GetAll(ctx)
}

func (ms *MpaService) GetByID(ctx context.Context, id int64) (*models.Mpa, error) {
	return storage.Active.Mpa.GetByID(ctx, id)
}
