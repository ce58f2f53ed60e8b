package memstore

import (
	"context"
	"sort"

	"filmorate/models"
	"filmorate/storage"
)

type ReviewStore struct {
	c *core
}

func (s *ReviewStore) Add(ctx context.Context, review *models.Review) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if _, ok := s.c.users[review.UserID]; !ok {
		return storage.ErrUserNotFound
	}
	if _, ok := s.c.films[review.FilmID]; !ok {
		return storage.ErrFilmNotFound
	}
	s.c.nextReviewID++
	review.ID = s.c.nextReviewID
	review.Useful = 0
	stored := *review
	s.c.reviews[review.ID] = &stored
	return nil
}

// Update меняет только текст и тональность, автор и фильм неизменны.
func (s *ReviewStore) Update(ctx context.Context, review *models.Review) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	stored, ok := s.c.reviews[review.ID]
	if !ok {
		return storage.ErrReviewNotFound
	}
	stored.Content = review.Content
	stored.IsPositive = review.IsPositive
	*review = *stored
	return nil
}

func (s *ReviewStore) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	review, ok := s.c.reviews[id]
	if !ok {
		return nil, storage.ErrReviewNotFound
	}
	out := *review
	return &out, nil
}

func (s *ReviewStore) Delete(ctx context.Context, id int64) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if _, ok := s.c.reviews[id]; !ok {
		return storage.ErrReviewNotFound
	}
	delete(s.c.reviews, id)
	delete(s.c.reviewVotes, id)
	return nil
}

func (s *ReviewStore) GetAll(ctx context.Context, filmID int64, count int) ([]models.Review, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	reviews := []models.Review{}
	for _, review := range s.c.reviews {
		if filmID > 0 && review.FilmID != filmID {
			continue
		}
		reviews = append(reviews, *review)
	}
	sort.Slice(reviews, func(i, j int) bool {
		if reviews[i].Useful != reviews[j].Useful {
			return reviews[i].Useful > reviews[j].Useful
		}
		return reviews[i].ID < reviews[j].ID
	})
	if count > 0 && len(reviews) > count {
		reviews = reviews[:count]
	}
	return reviews, nil
}

func (s *ReviewStore) AddLike(ctx context.Context, reviewID, userID int64) error {
	return s.vote(reviewID, userID, true)
}

func (s *ReviewStore) AddDislike(ctx context.Context, reviewID, userID int64) error {
	return s.vote(reviewID, userID, false)
}

func (s *ReviewStore) DeleteLike(ctx context.Context, reviewID, userID int64) error {
	return s.unvote(reviewID, userID, true)
}

func (s *ReviewStore) DeleteDislike(ctx context.Context, reviewID, userID int64) error {
	return s.unvote(reviewID, userID, false)
}

// vote снимает прежний голос пары (отзыв, пользователь) и ставит новый:
// у пользователя не больше одного голоса за отзыв.
func (s *ReviewStore) vote(reviewID, userID int64, liked bool) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if _, ok := s.c.reviews[reviewID]; !ok {
		return storage.ErrReviewNotFound
	}
	if _, ok := s.c.users[userID]; !ok {
		return storage.ErrUserNotFound
	}
	if s.c.reviewVotes[reviewID] == nil {
		s.c.reviewVotes[reviewID] = make(map[int64]bool)
	}
	s.c.reviewVotes[reviewID][userID] = liked
	s.c.recomputeUseful(reviewID)
	return nil
}

func (s *ReviewStore) unvote(reviewID, userID int64, liked bool) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if _, ok := s.c.reviews[reviewID]; !ok {
		return storage.ErrReviewNotFound
	}
	if _, ok := s.c.users[userID]; !ok {
		return storage.ErrUserNotFound
	}
	if got, ok := s.c.reviewVotes[reviewID][userID]; ok && got == liked {
		delete(s.c.reviewVotes[reviewID], userID)
		s.c.recomputeUseful(reviewID)
	}
	return nil
}

// recomputeUseful пересчитывает useful как лайки - дизлайки. Вызывается
// под write-замком.
func (c *core) recomputeUseful(reviewID int64) {
	review, ok := c.reviews[reviewID]
	if !ok {
		return
	}
	var useful int64
	for _, liked := range c.reviewVotes[reviewID] {
		if liked {
			useful++
		} else {
			useful--
		}
	}
	review.Useful = useful
}
