package services

import (
	"context"
	"strings"

	"filmorate/models"
	"filmorate/storage"
)

type DirectorService struct{}

func NewDirectorService() *DirectorService {
	return &DirectorService{}
}

func (ds *DirectorService) validate(director *models.Director) error {
	if strings.TrimSpace(director.Name) == "" {
		return validationErr("director name must not be blank")
	}
	return nil
}

func (ds *DirectorService) Create(ctx context.Context, director *models.Director) error {
	if err := ds.validate(director); err != nil {
		return err
	}
	return storage.Active.Directors.Add(ctx, director)
}

func (ds *DirectorService) Update(ctx context.Context, director *models.Director) error {
	if err := ds.validate(director); err != nil {
		return err
	}
	return storage.Active.Directors.Update(ctx, director)
}

func (ds *DirectorService) GetAll(ctx context.Context) ([]models.Director, error) {
	return storage.Active.Directors.GetAll(ctx)
}

func (ds *DirectorService) GetByID(ctx context.Context, id int64) (*models.Director, error) {
	return storage.Active.Directors.GetByID(ctx, id)
}

func (ds *DirectorService) Delete(ctx context.Context, id int64) error {
	return storage.Active.Directors.Delete(ctx, id)
}

// FilmsByDirector отдаёт фильмы режиссёра, sortBy: year или likes.
func (ds *DirectorService) FilmsByDirector(ctx context.Context, directorID int64, sortBy string) ([]models.Film, error) {
	switch sortBy {
	case "year":
		return storage.Active.Directors.FilmsByDirectorOnYear(ctx, directorID)
	case "likes":
		return storage.Active.Directors.FilmsByDirectorOnLikes(ctx, directorID)
	default:
		return nil, validationErr("sortBy must be year or likes")
	}
}
