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

type UserStore struct{}

func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) Add(ctx context.Context, user *models.User) error {
	if err := db.GetWriteDB(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	log.Printf("New user added: id=%d login=%s", user.ID, user.Login)
	return nil
}

func (s *UserStore) Update(ctx context.Context, user *models.User) error {
	exists, err := s.Exists(ctx, user.ID)
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrUserNotFound
	}
	updates := map[string]interface{}{
		"email":    user.Email,
		"login":    user.Login,
		"name":     user.Name,
		"birthday": user.Birthday,
	}
	err = db.GetWriteDB(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (s *UserStore) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := db.GetReadOnlyDB(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := db.GetReadOnlyDB(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (s *UserStore) Delete(ctx context.Context, id int64) error {
	exists, err := s.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrUserNotFound
	}
	return db.GetWriteDB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? OR friend_id = ?", id, id).Delete(&models.Friend{}).Error; err != nil {
			return fmt.Errorf("failed to delete friendships: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return fmt.Errorf("failed to delete likes: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.ReviewRating{}).Error; err != nil {
			return fmt.Errorf("failed to delete review votes: %w", err)
		}
		if err := tx.Delete(&models.User{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}

func (s *UserStore) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := db.GetReadOnlyDB(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

// FriendStore хранит направленные записи дружбы. Зеркальная запись не
// создаётся: дружба симметрична только если обе стороны добавили друг
// друга.
type FriendStore struct {
	users *UserStore
}

func NewFriendStore(users *UserStore) *FriendStore {
	return &FriendStore{users: users}
}

func (s *FriendStore) AddFriend(ctx context.Context, userID, friendID int64) error {
	if err := s.checkUsers(ctx, userID, friendID); err != nil {
		return err
	}
	var count int64
	err := db.GetReadOnlyDB(ctx).Model(&models.Friend{}).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check friendship: %w", err)
	}
	if count > 0 {
		return storage.ErrFriendshipExists
	}
	friendship := models.Friend{UserID: userID, FriendID: friendID}
	if err := db.GetWriteDB(ctx).Create(&friendship).Error; err != nil {
		return fmt.Errorf("failed to create friendship: %w", err)
	}
	log.Printf("User id = %d added to friends user id = %d", userID, friendID)
	return nil
}

func (s *FriendStore) DeleteFriend(ctx context.Context, userID, friendID int64) error {
	if err := s.checkUsers(ctx, userID, friendID); err != nil {
		return err
	}
	res := db.GetWriteDB(ctx).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Delete(&models.Friend{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete friendship: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrFriendshipNotFound
	}
	return nil
}

func (s *FriendStore) FindFriends(ctx context.Context, userID int64) ([]models.User, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, storage.ErrUserNotFound
	}
	friends := []models.User{}
	err = db.GetReadOnlyDB(ctx).
		Table("users u").
		Select("u.*").
		Joins("JOIN friends f ON f.friend_id = u.id").
		Where("f.user_id = ?", userID).
		Order("u.id").
		Scan(&friends).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get friends: %w", err)
	}
	return friends, nil
}

func (s *FriendStore) FindSharedFriends(ctx context.Context, userID, otherID int64) ([]models.User, error) {
	if err := s.checkUsers(ctx, userID, otherID); err != nil {
		return nil, err
	}
	shared := []models.User{}
	err := db.GetReadOnlyDB(ctx).
		Table("users u").
		Select("u.*").
		Joins("JOIN friends f1 ON f1.friend_id = u.id AND f1.user_id = ?", userID).
		Joins("JOIN friends f2 ON f2.friend_id = u.id AND f2.user_id = ?", otherID).
		Order("u.id").
		Scan(&shared).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get shared friends: %w", err)
	}
	return shared, nil
}

func (s *FriendStore) checkUsers(ctx context.Context, ids ...int64) error {
	for _, id := range ids {
		exists, err := s.users.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return storage.ErrUserNotFound
		}
	}
	return nil
}
