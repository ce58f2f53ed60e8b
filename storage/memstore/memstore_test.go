package memstore_test

import (
	"context"
	"testing"
	"time"

	"filmorate/models"
	"filmorate/storage"
	"filmorate/storage/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, s *storage.Storage, login string) *models.User {
	t.Helper()
	user := &models.User{Email: login + "@example.com", Login: login, Name: login}
	require.NoError(t, s.Users.Add(context.Background(), user))
	return user
}

func seedFilm(t *testing.T, s *storage.Storage, name string, year int) *models.Film {
	t.Helper()
	film := &models.Film{
		Name:        name,
		ReleaseDate: models.NewDate(year, time.January, 1),
		Duration:    100,
		MpaID:       1,
	}
	require.NoError(t, s.Films.Add(context.Background(), film))
	return film
}

func TestIDsAreSequential(t *testing.T) {
	s := memstore.NewStorage()
	f1 := seedFilm(t, s, "a", 2000)
	f2 := seedFilm(t, s, "b", 2001)
	assert.Equal(t, int64(1), f1.ID)
	assert.Equal(t, int64(2), f2.ID)
}

func TestFilmRelationsResolvedOnRead(t *testing.T) {
	s := memstore.NewStorage()
	ctx := context.Background()

	director := &models.Director{Name: "режиссёр"}
	require.NoError(t, s.Directors.Add(ctx, director))

	film := &models.Film{
		Name: "film", ReleaseDate: models.NewDate(2000, time.January, 1), Duration: 100,
		MpaID:     3,
		Genres:    []models.Genre{{ID: 4}, {ID: 4}, {ID: 1}},
		Directors: []models.Director{{ID: director.ID}},
	}
	require.NoError(t, s.Films.Add(ctx, film))

	got, err := s.Films.GetByID(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, "PG-13", got.Mpa.Name)
	require.Len(t, got.Genres, 2)
	assert.Equal(t, "Комедия", got.Genres[0].Name)
	assert.Equal(t, "Триллер", got.Genres[1].Name)
	require.Len(t, got.Directors, 1)

	// Ссылка на несуществующий справочник отклоняется.
	bad := &models.Film{Name: "bad", ReleaseDate: models.NewDate(2000, time.January, 1), Duration: 1, MpaID: 42}
	assert.ErrorIs(t, s.Films.Add(ctx, bad), storage.ErrMpaNotFound)
}

func TestPopularWithFilters(t *testing.T) {
	s := memstore.NewStorage()
	ctx := context.Background()

	comedy := &models.Film{Name: "comedy", ReleaseDate: models.NewDate(1990, time.January, 1), Duration: 90,
		MpaID: 1, Genres: []models.Genre{{ID: 1}}}
	drama := &models.Film{Name: "drama", ReleaseDate: models.NewDate(2020, time.January, 1), Duration: 90,
		MpaID: 1, Genres: []models.Genre{{ID: 2}}}
	require.NoError(t, s.Films.Add(ctx, comedy))
	require.NoError(t, s.Films.Add(ctx, drama))

	u1, u2 := seedUser(t, s, "u1"), seedUser(t, s, "u2")
	require.NoError(t, s.Likes.AddLike(ctx, drama.ID, u1.ID))
	require.NoError(t, s.Likes.AddLike(ctx, drama.ID, u2.ID))
	require.NoError(t, s.Likes.AddLike(ctx, comedy.ID, u1.ID))

	films, err := s.Likes.GetPopular(ctx, 10, 0, 0)
	require.NoError(t, err)
	require.Len(t, films, 2)
	assert.Equal(t, drama.ID, films[0].ID)

	films, err = s.Likes.GetPopular(ctx, 10, 1, 0)
	require.NoError(t, err)
	require.Len(t, films, 1)
	assert.Equal(t, comedy.ID, films[0].ID)

	films, err = s.Likes.GetPopular(ctx, 10, 0, 2020)
	require.NoError(t, err)
	require.Len(t, films, 1)
	assert.Equal(t, drama.ID, films[0].ID)

	films, err = s.Likes.GetPopular(ctx, 1, 0, 0)
	require.NoError(t, err)
	assert.Len(t, films, 1)
}

func TestRecommendationsFromClosestNeighbor(t *testing.T) {
	s := memstore.NewStorage()
	ctx := context.Background()

	f1 := seedFilm(t, s, "f1", 2000)
	f2 := seedFilm(t, s, "f2", 2001)
	f3 := seedFilm(t, s, "f3", 2002)
	me, neighbor := seedUser(t, s, "me"), seedUser(t, s, "neighbor")

	require.NoError(t, s.Likes.AddLike(ctx, f1.ID, me.ID))
	require.NoError(t, s.Likes.AddLike(ctx, f2.ID, me.ID))
	require.NoError(t, s.Likes.AddLike(ctx, f1.ID, neighbor.ID))
	require.NoError(t, s.Likes.AddLike(ctx, f2.ID, neighbor.ID))
	require.NoError(t, s.Likes.AddLike(ctx, f3.ID, neighbor.ID))

	films, err := s.Likes.GetRecommendations(ctx, me.ID)
	require.NoError(t, err)
	require.Len(t, films, 1)
	assert.Equal(t, f3.ID, films[0].ID)

	films, err = s.Likes.GetRecommendations(ctx, neighbor.ID)
	require.NoError(t, err)
	assert.Empty(t, films)
}

func TestFriendshipSemantics(t *testing.T) {
	s := memstore.NewStorage()
	ctx := context.Background()

	u1, u2, u3 := seedUser(t, s, "u1"), seedUser(t, s, "u2"), seedUser(t, s, "u3")

	require.NoError(t, s.Friends.AddFriend(ctx, u1.ID, u2.ID))
	assert.ErrorIs(t, s.Friends.AddFriend(ctx, u1.ID, u2.ID), storage.ErrFriendshipExists)
	assert.ErrorIs(t, s.Friends.DeleteFriend(ctx, u2.ID, u1.ID), storage.ErrFriendshipNotFound)

	friends, err := s.Friends.FindFriends(ctx, u2.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)

	require.NoError(t, s.Friends.AddFriend(ctx, u1.ID, u3.ID))
	require.NoError(t, s.Friends.AddFriend(ctx, u2.ID, u3.ID))
	shared, err := s.Friends.FindSharedFriends(ctx, u1.ID, u2.ID)
	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, u3.ID, shared[0].ID)
}

func TestReviewVoteReplacesPrevious(t *testing.T) {
	s := memstore.NewStorage()
	ctx := context.Background()

	film := seedFilm(t, s, "film", 2000)
	author, voter := seedUser(t, s, "author"), seedUser(t, s, "voter")

	positive := true
	review := &models.Review{Content: "ok", IsPositive: &positive, UserID: author.ID, FilmID: film.ID}
	require.NoError(t, s.Reviews.Add(ctx, review))

	require.NoError(t, s.Reviews.AddLike(ctx, review.ID, voter.ID))
	require.NoError(t, s.Reviews.AddDislike(ctx, review.ID, voter.ID))

	got, err := s.Reviews.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), got.Useful)

	// Снятие лайка, которого нет, ничего не меняет.
	require.NoError(t, s.Reviews.DeleteLike(ctx, review.ID, voter.ID))
	got, err = s.Reviews.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), got.Useful)

	require.NoError(t, s.Reviews.DeleteDislike(ctx, review.ID, voter.ID))
	got, err = s.Reviews.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Useful)
}

func TestFilmDeleteRemovesDependents(t *testing.T) {
	s := memstore.NewStorage()
	ctx := context.Background()

	film := seedFilm(t, s, "film", 2000)
	user := seedUser(t, s, "user")
	positive := true
	review := &models.Review{Content: "ok", IsPositive: &positive, UserID: user.ID, FilmID: film.ID}
	require.NoError(t, s.Reviews.Add(ctx, review))
	require.NoError(t, s.Likes.AddLike(ctx, film.ID, user.ID))

	require.NoError(t, s.Films.Delete(ctx, film.ID))

	_, err := s.Reviews.GetByID(ctx, review.ID)
	assert.ErrorIs(t, err, storage.ErrReviewNotFound)
	assert.ErrorIs(t, s.Likes.AddLike(ctx, film.ID, user.ID), storage.ErrFilmNotFound)
}

func TestEventsOrderedByInsertion(t *testing.T) {
	s := memstore.NewStorage()
	ctx := context.Background()

	user := seedUser(t, s, "user")
	for i := 0; i < 3; i++ {
		event := &models.Event{UserID: user.ID, EventType: models.EventLike, Operation: models.OperationAdd, EntityID: int64(i)}
		require.NoError(t, s.Events.AddEvent(ctx, event))
	}

	events, err := s.Events.GetEventsByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	for i, event := range events {
		assert.Equal(t, int64(i+1), event.ID)
		assert.NotZero(t, event.Timestamp)
	}
}
