package memstore

import (
	"context"
	"sort"

	"filmorate/models"
	"filmorate/storage"
)

type UserStore struct {
	c *core
}

func (s *UserStore) Add(ctx context.Context, user *models.User) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	s.c.nextUserID++
	user.ID = s.c.nextUserID
	stored := *user
	s.c.users[user.ID] = &stored
	return nil
}

func (s *UserStore) Update(ctx context.Context, user *models.User) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if _, ok := s.c.users[user.ID]; !ok {
		return storage.ErrUserNotFound
	}
	stored := *user
	s.c.users[user.ID] = &stored
	return nil
}

func (s *UserStore) GetAll(ctx context.Context) ([]models.User, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	users := make([]models.User, 0, len(s.c.users))
	for _, user := range s.c.users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	user, ok := s.c.users[id]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	out := *user
	return &out, nil
}

func (s *UserStore) Delete(ctx context.Context, id int64) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if _, ok := s.c.users[id]; !ok {
		return storage.ErrUserNotFound
	}
	delete(s.c.users, id)
	delete(s.c.friends, id)
	for _, friendIDs := range s.c.friends {
		delete(friendIDs, id)
	}
	for _, userIDs := range s.c.likes {
		delete(userIDs, id)
	}
	for reviewID, votes := range s.c.reviewVotes {
		if _, ok := votes[id]; ok {
			delete(votes, id)
			s.c.recomputeUseful(reviewID)
		}
	}
	return nil
}

func (s *UserStore) Exists(ctx context.Context, id int64) (bool, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()
	_, ok := s.c.users[id]
	return ok, nil
}

// FriendStore - направленные записи дружбы, как и в базе: зеркальная
// запись не создаётся.
type FriendStore struct {
	c *core
}

func (s *FriendStore) AddFriend(ctx context.Context, userID, friendID int64) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if err := s.c.checkUsers(userID, friendID); err != nil {
		return err
	}
	if s.c.friends[userID][friendID] {
		return storage.ErrFriendshipExists
	}
	if s.c.friends[userID] == nil {
		s.c.friends[userID] = make(map[int64]bool)
	}
	s.c.friends[userID][friendID] = true
	return nil
}

func (s *FriendStore) DeleteFriend(ctx context.Context, userID, friendID int64) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if err := s.c.checkUsers(userID, friendID); err != nil {
		return err
	}
	if !s.c.friends[userID][friendID] {
		return storage.ErrFriendshipNotFound
	}
	delete(s.c.friends[userID], friendID)
	return nil
}

func (s *FriendStore) FindFriends(ctx context.Context, userID int64) ([]models.User, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	if _, ok := s.c.users[userID]; !ok {
		return nil, storage.ErrUserNotFound
	}
	friends := []models.User{}
	for friendID := range s.c.friends[userID] {
		if user, ok := s.c.users[friendID]; ok {
			friends = append(friends, *user)
		}
	}
	sort.Slice(friends, func(i, j int) bool { return friends[i].ID < friends[j].ID })
	return friends, nil
}

func (s *FriendStore) FindSharedFriends(ctx context.Context, userID, otherID int64) ([]models.User, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	if err := s.c.checkUsers(userID, otherID); err != nil {
		return nil, err
	}
	shared := []models.User{}
	for friendID := range s.c.friends[userID] {
		if !s.c.friends[otherID][friendID] {
			continue
		}
		if user, ok := s.c.users[friendID]; ok {
			shared = append(shared, *user)
		}
	}
	sort.Slice(shared, func(i, j int) bool { return shared[i].ID < shared[j].ID })
	return shared, nil
}

func (c *core) checkUsers(ids ...int64) error {
	for _, id := range ids {
		if _, ok := c.users[id]; !ok {
			return storage.ErrUserNotFound
		}
	}
	return nil
}
