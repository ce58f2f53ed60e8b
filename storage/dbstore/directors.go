package dbstore

import (
	"context"
	"errors"
	"fmt"
	"log"

	"filmorate/db"
	"filmorate/models"
	"filmorate/storage"

	"gorm.io/gorm"
)

type DirectorStore struct{}

func NewDirectorStore() *DirectorStore {
	return &DirectorStore{}
}

func (s *DirectorStore) Add(ctx context.Context, director *models.Director) error {
	if err := db.GetWriteDB(ctx).Create(director).Error; err != nil {
		return fmt.Errorf("failed to create director: %w", err)
	}
	log.Printf("New director added: id=%d name=%s", director.ID, director.Name)
	return nil
}

func (s *DirectorStore) Update(ctx context.Context, director *models.Director) error {
	exists, err := s.Exists(ctx, director.ID)
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrDirectorNotFound
	}
	err = db.GetWriteDB(ctx).Model(&models.Director{}).
		Where("id = ?", director.ID).
		Update("name", director.Name).Error
	if err != nil {
		return fmt.Errorf("failed to update director: %w", err)
	}
	return nil
}

func (s *DirectorStore) GetAll(ctx context.Context) ([]models.Director, error) {
	var directors []models.Director
	if err := db.GetReadOnlyDB(ctx).Order("id").Find(&directors).Error; err != nil {
		return nil, fmt.Errorf("failed to get directors: %w", err)
	}
	return directors, nil
}

func (s *DirectorStore) GetByID(ctx context.Context, id int64) (*models.Director, error) {
	var director models.Director
	err := db.GetReadOnlyDB(ctx).First(&director, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrDirectorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get director: %w", err)
	}
	return &director, nil
}

func (s *DirectorStore) Delete(ctx context.Context, id int64) error {
	exists, err := s.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrDirectorNotFound
	}
	return db.GetWriteDB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("director_id = ?", id).Delete(&models.FilmDirector{}).Error; err != nil {
			return fmt.Errorf("failed to unlink director films: %w", err)
		}
		if err := tx.Delete(&models.Director{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete director: %w", err)
		}
		return nil
	})
}

func (s *DirectorStore) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := db.GetReadOnlyDB(ctx).Model(&models.Director{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check director existence: %w", err)
	}
	return count > 0, nil
}

func (s *DirectorStore) FilmsByDirectorOnYear(ctx context.Context, directorID int64) ([]models.Film, error) {
	exists, err := s.Exists(ctx, directorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, storage.ErrDirectorNotFound
	}
	films := []models.Film{}
	err = db.GetReadOnlyDB(ctx).
		Table("films f").
		Select("f.*").
		Joins("JOIN film_director fd ON fd.film_id = f.id").
		Where("fd.director_id = ?", directorID).
		Order("f.release_date ASC, f.id ASC").
		Scan(&films).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get director films by year: %w", err)
	}
	if err := loadFilmsRelations(db.GetReadOnlyDB(ctx), films); err != nil {
		return nil, err
	}
	return films, nil
}

func (s *DirectorStore) FilmsByDirectorOnLikes(ctx context.Context, directorID int64) ([]models.Film, error) {
	exists, err := s.Exists(ctx, directorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, storage.ErrDirectorNotFound
	}
	films := []models.Film{}
	err = db.GetReadOnlyDB(ctx).
		Table("films f").
		Select("f.*").
		Joins("JOIN film_director fd ON fd.film_id = f.id").
		Joins("LEFT JOIN likes l ON l.film_id = f.id").
		Where("fd.director_id = ?", directorID).
		Group("f.id").
		Order("COUNT(l.id) DESC, f.id ASC").
		Scan(&films).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get director films by likes: %w", err)
	}
	if err := loadFilmsRelations(db.GetReadOnlyDB(ctx), films); err != nil {
		return nil, err
	}
	return films, nil
}
