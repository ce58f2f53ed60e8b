package services

import (
	"context"
	"strings"
	"time"

	"filmorate/models"
	"filmorate/storage"
)

type UserService struct{}

func NewUserService() *UserService {
	return &UserService{}
}

func (us *UserService) validate(user *models.User) error {
	if strings.TrimSpace(user.Email) == "" || !strings.Contains(user.Email, "@") {
		return validationErr("user email must contain @")
	}
	if strings.TrimSpace(user.Login) == "" || strings.Contains(user.Login, " ") {
		return validationErr("user login must not be blank or contain spaces")
	}
	if user.Birthday.After(time.Now()) {
		return validationErr("user birthday must not be in the future")
	}
	// Пустое имя заменяется логином.
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
	return nil
}

func (us *UserService) Create(ctx context.Context, user *models.User) error {
	if err := us.validate(user); err != nil {
		return err
	}
	return storage.Active.Users.Add(ctx, user)
}

func (us *UserService) Update(ctx context.Context, user *models.User) error {
	if err := us.validate(user); err != nil {
		return err
	}
	return storage.Active.Users.Update(ctx, user)
}

func (us *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	return storage.Active.Users.GetAll(ctx)
}

func (us *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return storage.Active.Users.GetByID(ctx, id)
}

func (us *UserService) Delete(ctx context.Context, id int64) error {
	return storage.Active.Users.Delete(ctx, id)
}

func (us *UserService) AddFriend(ctx context.Context, userID, friendID int64) error {
	if err := storage.Active.Friends.AddFriend(ctx, userID, friendID); err != nil {
		return err
	}
	recordEvent(ctx, userID, models.EventFriend, models.OperationAdd, friendID)
	return nil
}

func (us *UserService) DeleteFriend(ctx context.Context, userID, friendID int64) error {
	if err := storage.Active.Friends.DeleteFriend(ctx, userID, friendID); err != nil {
		return err
	}
	recordEvent(ctx, userID, models.EventFriend, models.OperationRemove, friendID)
	return nil
}

func (us *UserService) GetFriends(ctx context.Context, userID int64) ([]models.User, error) {
	return storage.Active.Friends.FindFriends(ctx, userID)
}

func (us *UserService) GetSharedFriends(ctx context.Context, userID, otherID int64) ([]models.User, error) {
	return storage.Active.Friends.FindSharedFriends(ctx, userID, otherID)
}

// GetFeed отдаёт ленту событий пользователя в хронологическом порядке.
func (us *UserService) GetFeed(ctx context.Context, userID int64) ([]models.Event, error) {
	exists, err := storage.Active.Users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, storage.ErrUserNotFound
	}
	return storage.Active.Events.GetEventsByUserID(ctx, userID)
}

func (us *UserService) GetRecommendations(ctx context.Context, userID int64) ([]models.Film, error) {
	return storage.Active.Likes.GetRecommendations(ctx, userID)
}
