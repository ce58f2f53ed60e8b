package services

import (
	"context"
	"strings"

	"filmorate/models"
	"filmorate/storage"
)

type ReviewService struct{}

func NewReviewService() *ReviewService {
	return &ReviewService{}
}

func (rs *ReviewService) validate(review *models.Review) error {
	if strings.TrimSpace(review.Content) == "" {
		return validationErr("review content must not be blank")
	}
	if review.IsPositive == nil {
		return validationErr("review isPositive is required")
	}
	if review.UserID == 0 {
		return validationErr("review userId is required")
	}
	if review.FilmID == 0 {
		return validationErr("review filmId is required")
	}
	return nil
}

func (rs *ReviewService) Create(ctx context.Context, review *models.Review) error {
	if err := rs.validate(review); err != nil {
		return err
	}
	if err := storage.Active.Reviews.Add(ctx, review); err != nil {
		return err
	}
	recordEvent(ctx, review.UserID, models.EventReview, models.OperationAdd, review.ID)
	return nil
}

func (rs *ReviewService) Update(ctx context.Context, review *models.Review) error {
	if err := rs.validate(review); err != nil {
		return err
	}
	if err := storage.Active.Reviews.Update(ctx, review); err != nil {
		return err
	}
	// Автор и фильм после обновления берутся из хранилища: менять их
	// через update нельзя.
	recordEvent(ctx, review.UserID, models.EventReview, models.OperationUpdate, review.ID)
	return nil
}

func (rs *ReviewService) Delete(ctx context.Context, id int64) error {
	// Автора нужно узнать до удаления, событие пишется от его имени.
	review, err := storage.Active.Reviews.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := storage.Active.Reviews.Delete(ctx, id); err != nil {
		return err
	}
	recordEvent(ctx, review.UserID, models.EventReview, models.OperationRemove, review.ID)
	return nil
}

func (rs *ReviewService) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	return storage.Active.Reviews.GetByID(ctx, id)
}

func (rs *ReviewService) GetAll(ctx context.Context, filmID int64, count int) ([]models.Review, error) {
	return storage.Active.Reviews.GetAll(ctx, filmID, count)
}

func (rs *ReviewService) AddLike(ctx context.Context, reviewID, userID int64) error {
	return storage.Active.Reviews.AddLike(ctx, reviewID, userID)
}

func (rs *ReviewService) AddDislike(ctx context.Context, reviewID, userID int64) error {
	return storage.Active.Reviews.AddDislike(ctx, reviewID, userID)
}

func (rs *ReviewService) DeleteLike(ctx context.Context, reviewID, userID int64) error {
	return storage.Active.Reviews.DeleteLike(ctx, reviewID, userID)
}

func (rs *ReviewService) DeleteDislike(ctx context.Context, reviewID, userID int64) error {
	return storage.Active.Reviews.DeleteDislike(ctx, reviewID, userID)
}
