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

type ReviewStore struct {
	films *FilmStore
	users *UserStore
}

func NewReviewStore(films *FilmStore, users *UserStore) *ReviewStore {
	return &ReviewStore{films: films, users: users}
}

func (s *ReviewStore) Add(ctx context.Context, review *models.Review) error {
	userExists, err := s.users.Exists(ctx, review.UserID)
	if err != nil {
		return err
	}
	if !userExists {
		return storage.ErrUserNotFound
	}
	filmExists, err := s.films.Exists(ctx, review.FilmID)
	if err != nil {
		return err
	}
	if !filmExists {
		return storage.ErrFilmNotFound
	}

	review.Useful = 0
	if err := db.GetWriteDB(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	log.Printf("New review added: id=%d film=%d user=%d", review.ID, review.FilmID, review.UserID)
	return nil
}

// Update меняет только текст и полярность. Автор, фильм и useful
// остаются как есть.
func (s *ReviewStore) Update(ctx context.Context, review *models.Review) error {
	exists, err := s.exists(ctx, review.ID)
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrReviewNotFound
	}
	updates := map[string]interface{}{
		"content":     review.Content,
		"is_positive": review.IsPositive,
	}
	err = db.GetWriteDB(ctx).Model(&models.Review{}).Where("id = ?", review.ID).Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	stored, err := s.GetByID(ctx, review.ID)
	if err != nil {
		return err
	}
	*review = *stored
	return nil
}

func (s *ReviewStore) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	var review models.Review
	err := db.GetReadOnlyDB(ctx).First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return &review, nil
}

func (s *ReviewStore) Delete(ctx context.Context, id int64) error {
	exists, err := s.exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrReviewNotFound
	}
	return db.GetWriteDB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", id).Delete(&models.ReviewRating{}).Error; err != nil {
			return fmt.Errorf("failed to delete review ratings: %w", err)
		}
		if err := tx.Delete(&models.Review{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete review: %w", err)
		}
		return nil
	})
}

func (s *ReviewStore) GetAll(ctx context.Context, filmID int64, count int) ([]models.Review, error) {
	query := db.GetReadOnlyDB(ctx).
		Order("useful DESC, id ASC").
		Limit(count)
	if filmID > 0 {
		query = query.Where("film_id = ?", filmID)
	}
	reviews := []models.Review{}
	if err := query.Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	return reviews, nil
}

// AddLike ставит лайк отзыву. Прежний голос пользователя (лайк или
// дизлайк) снимается, useful пересчитывается в той же транзакции.
func (s *ReviewStore) AddLike(ctx context.Context, reviewID, userID int64) error {
	return s.vote(ctx, reviewID, userID, true)
}

func (s *ReviewStore) AddDislike(ctx context.Context, reviewID, userID int64) error {
	return s.vote(ctx, reviewID, userID, false)
}

func (s *ReviewStore) DeleteLike(ctx context.Context, reviewID, userID int64) error {
	return s.unvote(ctx, reviewID, userID, true)
}

func (s *ReviewStore) DeleteDislike(ctx context.Context, reviewID, userID int64) error {
	return s.unvote(ctx, reviewID, userID, false)
}

func (s *ReviewStore) vote(ctx context.Context, reviewID, userID int64, liked bool) error {
	if err := s.checkReviewAndUser(ctx, reviewID, userID); err != nil {
		return err
	}
	return db.GetWriteDB(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("review_id = ? AND user_id = ?", reviewID, userID).
			Delete(&models.ReviewRating{}).Error
		if err != nil {
			return fmt.Errorf("failed to revoke prior vote: %w", err)
		}
		rating := models.ReviewRating{ReviewID: reviewID, UserID: userID, Liked: liked}
		if err := tx.Create(&rating).Error; err != nil {
			return fmt.Errorf("failed to add review vote: %w", err)
		}
		return recomputeUseful(tx, reviewID)
	})
}

func (s *ReviewStore) unvote(ctx context.Context, reviewID, userID int64, liked bool) error {
	if err := s.checkReviewAndUser(ctx, reviewID, userID); err != nil {
		return err
	}
	return db.GetWriteDB(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("review_id = ? AND user_id = ? AND liked = ?", reviewID, userID, liked).
			Delete(&models.ReviewRating{}).Error
		if err != nil {
			return fmt.Errorf("failed to delete review vote: %w", err)
		}
		return recomputeUseful(tx, reviewID)
	})
}

// recomputeUseful переписывает useful как лайки - дизлайки в той же
// транзакции, что и изменение голосов.
func recomputeUseful(tx *gorm.DB, reviewID int64) error {
	var likes, dislikes int64
	err := tx.Model(&models.ReviewRating{}).
		Where("review_id = ? AND liked = ?", reviewID, true).
		Count(&likes).Error
	if err != nil {
		return fmt.Errorf("failed to count review likes: %w", err)
	}
	err = tx.Model(&models.ReviewRating{}).
		Where("review_id = ? AND liked = ?", reviewID, false).
		Count(&dislikes).Error
	if err != nil {
		return fmt.Errorf("failed to count review dislikes: %w", err)
	}
	err = tx.Model(&models.Review{}).
		Where("id = ?", reviewID).
		Update("useful", likes-dislikes).Error
	if err != nil {
		return fmt.Errorf("failed to update review useful: %w", err)
	}
	return nil
}

func (s *ReviewStore) exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := db.GetReadOnlyDB(ctx).Model(&models.Review{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}
	return count > 0, nil
}

func (s *ReviewStore) checkReviewAndUser(ctx context.Context, reviewID, userID int64) error {
	exists, err := s.exists(ctx, reviewID)
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrReviewNotFound
	}
	userExists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !userExists {
		return storage.ErrUserNotFound
	}
	return nil
}
