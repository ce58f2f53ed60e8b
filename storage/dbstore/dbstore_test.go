package dbstore_test

import (
	"context"
	"testing"
	"time"

	"filmorate/db"
	"filmorate/models"
	"filmorate/storage"
	"filmorate/storage/dbstore"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *storage.Storage {
	t.Helper()
	require.NoError(t, db.ConnectSQLite(":memory:"))
	return dbstore.NewStorage()
}

func addUser(t *testing.T, s *storage.Storage) *models.User {
	t.Helper()
	user := &models.User{
		Email:    gofakeit.Email(),
		Login:    gofakeit.Username(),
		Name:     gofakeit.Name(),
		Birthday: models.NewDate(1990, time.May, 5),
	}
	require.NoError(t, s.Users.Add(context.Background(), user))
	return user
}

func addFilm(t *testing.T, s *storage.Storage, name string, year int) *models.Film {
	t.Helper()
	film := &models.Film{
		Name:        name,
		Description: gofakeit.Sentence(5),
		ReleaseDate: models.NewDate(year, time.June, 1),
		Duration:    120,
		MpaID:       1,
	}
	require.NoError(t, s.Films.Add(context.Background(), film))
	return film
}

func TestFilmCRUDWithRelations(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	director := &models.Director{Name: "Стэнли Кубрик"}
	require.NoError(t, s.Directors.Add(ctx, director))

	film := &models.Film{
		Name:        "Космическая одиссея",
		Description: "классика",
		ReleaseDate: models.NewDate(1968, time.April, 2),
		Duration:    149,
		MpaID:       2,
		Genres:      []models.Genre{{ID: 2}, {ID: 1}, {ID: 2}},
		Directors:   []models.Director{{ID: director.ID}},
	}
	require.NoError(t, s.Films.Add(ctx, film))
	require.NotZero(t, film.ID)

	got, err := s.Films.GetByID(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, "PG", got.Mpa.Name)
	// Дубликат жанра схлопывается, порядок по id.
	require.Len(t, got.Genres, 2)
	assert.Equal(t, int64(1), got.Genres[0].ID)
	assert.Equal(t, int64(2), got.Genres[1].ID)
	require.Len(t, got.Directors, 1)
	assert.Equal(t, "Стэнли Кубрик", got.Directors[0].Name)

	// Обновление полностью заменяет наборы связей.
	got.Genres = []models.Genre{{ID: 6}}
	got.Directors = nil
	require.NoError(t, s.Films.Update(ctx, got))

	got, err = s.Films.GetByID(ctx, film.ID)
	require.NoError(t, err)
	require.Len(t, got.Genres, 1)
	assert.Equal(t, "Боевик", got.Genres[0].Name)
	assert.Empty(t, got.Directors)

	require.NoError(t, s.Films.Delete(ctx, film.ID))
	_, err = s.Films.GetByID(ctx, film.ID)
	assert.ErrorIs(t, err, storage.ErrFilmNotFound)
}

func TestFilmAddUnknownReferences(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	film := &models.Film{Name: "x", ReleaseDate: models.NewDate(2000, 1, 1), Duration: 10, MpaID: 1,
		Genres: []models.Genre{{ID: 999}}}
	assert.ErrorIs(t, s.Films.Add(ctx, film), storage.ErrGenreNotFound)

	film = &models.Film{Name: "x", ReleaseDate: models.NewDate(2000, 1, 1), Duration: 10, MpaID: 1,
		Directors: []models.Director{{ID: 999}}}
	assert.ErrorIs(t, s.Films.Add(ctx, film), storage.ErrDirectorNotFound)
}

func TestLikesIdempotentAddAndRemove(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	film := addFilm(t, s, "film", 2000)
	user := addUser(t, s)

	require.NoError(t, s.Likes.AddLike(ctx, film.ID, user.ID))
	// Повторный лайк не ошибка и не второй голос.
	require.NoError(t, s.Likes.AddLike(ctx, film.ID, user.ID))

	got, err := s.Films.GetByID(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Likes)

	require.NoError(t, s.Likes.RemoveLike(ctx, film.ID, user.ID))
	assert.ErrorIs(t, s.Likes.RemoveLike(ctx, film.ID, user.ID), storage.ErrLikeNotFound)

	assert.ErrorIs(t, s.Likes.AddLike(ctx, 999, user.ID), storage.ErrFilmNotFound)
	assert.ErrorIs(t, s.Likes.AddLike(ctx, film.ID, 999), storage.ErrUserNotFound)
}

func TestGetPopularOrderingAndFilters(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	old := addFilm(t, s, "old comedy", 1990)
	fresh := addFilm(t, s, "fresh drama", 2020)
	hit := addFilm(t, s, "hit comedy", 2020)

	require.NoError(t, s.Films.Update(ctx, &models.Film{ID: old.ID, Name: old.Name, ReleaseDate: old.ReleaseDate,
		Duration: old.Duration, MpaID: 1, Genres: []models.Genre{{ID: 1}}}))
	require.NoError(t, s.Films.Update(ctx, &models.Film{ID: fresh.ID, Name: fresh.Name, ReleaseDate: fresh.ReleaseDate,
		Duration: fresh.Duration, MpaID: 1, Genres: []models.Genre{{ID: 2}}}))
	require.NoError(t, s.Films.Update(ctx, &models.Film{ID: hit.ID, Name: hit.Name, ReleaseDate: hit.ReleaseDate,
		Duration: hit.Duration, MpaID: 1, Genres: []models.Genre{{ID: 1}}}))

	u1, u2 := addUser(t, s), addUser(t, s)
	require.NoError(t, s.Likes.AddLike(ctx, hit.ID, u1.ID))
	require.NoError(t, s.Likes.AddLike(ctx, hit.ID, u2.ID))
	require.NoError(t, s.Likes.AddLike(ctx, fresh.ID, u1.ID))

	popular, err := s.Likes.GetPopular(ctx, 10, 0, 0)
	require.NoError(t, err)
	require.Len(t, popular, 3)
	assert.Equal(t, hit.ID, popular[0].ID)
	assert.Equal(t, fresh.ID, popular[1].ID)
	assert.Equal(t, old.ID, popular[2].ID)
	assert.Equal(t, int64(2), popular[0].Likes)

	popular, err = s.Likes.GetPopular(ctx, 1, 0, 0)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, hit.ID, popular[0].ID)

	// Фильтр по жанру.
	popular, err = s.Likes.GetPopular(ctx, 10, 1, 0)
	require.NoError(t, err)
	require.Len(t, popular, 2)
	assert.Equal(t, hit.ID, popular[0].ID)
	assert.Equal(t, old.ID, popular[1].ID)

	// Фильтр по году.
	popular, err = s.Likes.GetPopular(ctx, 10, 0, 1990)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, old.ID, popular[0].ID)

	// Оба фильтра сразу.
	popular, err = s.Likes.GetPopular(ctx, 10, 1, 2020)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, hit.ID, popular[0].ID)
}

func TestGetCommonFilms(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	shared := addFilm(t, s, "both liked", 2000)
	mineOnly := addFilm(t, s, "mine only", 2001)
	u1, u2, u3 := addUser(t, s), addUser(t, s), addUser(t, s)

	require.NoError(t, s.Likes.AddLike(ctx, shared.ID, u1.ID))
	require.NoError(t, s.Likes.AddLike(ctx, shared.ID, u2.ID))
	require.NoError(t, s.Likes.AddLike(ctx, shared.ID, u3.ID))
	require.NoError(t, s.Likes.AddLike(ctx, mineOnly.ID, u1.ID))

	films, err := s.Likes.GetCommonFilms(ctx, u1.ID, u2.ID)
	require.NoError(t, err)
	require.Len(t, films, 1)
	assert.Equal(t, shared.ID, films[0].ID)
	assert.Equal(t, int64(3), films[0].Likes)

	films, err = s.Likes.GetCommonFilms(ctx, u2.ID, u3.ID)
	require.NoError(t, err)
	require.Len(t, films, 1)

	_, err = s.Likes.GetCommonFilms(ctx, u1.ID, 999)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestGetRecommendations(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	f1 := addFilm(t, s, "f1", 2000)
	f2 := addFilm(t, s, "f2", 2001)
	f3 := addFilm(t, s, "f3", 2002)
	me, neighbor, stranger := addUser(t, s), addUser(t, s), addUser(t, s)

	require.NoError(t, s.Likes.AddLike(ctx, f1.ID, me.ID))
	require.NoError(t, s.Likes.AddLike(ctx, f2.ID, me.ID))
	require.NoError(t, s.Likes.AddLike(ctx, f1.ID, neighbor.ID))
	require.NoError(t, s.Likes.AddLike(ctx, f2.ID, neighbor.ID))
	require.NoError(t, s.Likes.AddLike(ctx, f3.ID, neighbor.ID))
	require.NoError(t, s.Likes.AddLike(ctx, f1.ID, stranger.ID))

	films, err := s.Likes.GetRecommendations(ctx, me.ID)
	require.NoError(t, err)
	require.Len(t, films, 1)
	assert.Equal(t, f3.ID, films[0].ID)

	// У соседа нет фильмов, которых нет у меня.
	films, err = s.Likes.GetRecommendations(ctx, neighbor.ID)
	require.NoError(t, err)
	assert.Empty(t, films)

	// Без лайков рекомендовать нечего.
	lonely := addUser(t, s)
	films, err = s.Likes.GetRecommendations(ctx, lonely.ID)
	require.NoError(t, err)
	assert.Empty(t, films)
}

func TestSearchFilms(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	director := &models.Director{Name: "Andrey Kravchuk"}
	require.NoError(t, s.Directors.Add(ctx, director))

	addFilm(t, s, "Crouching Tiger", 2000)
	withDirector := &models.Film{
		Name: "Admiral", ReleaseDate: models.NewDate(2008, 1, 1), Duration: 100, MpaID: 1,
		Directors: []models.Director{{ID: director.ID}},
	}
	require.NoError(t, s.Films.Add(ctx, withDirector))

	films, err := s.Films.SearchByTitle(ctx, "CROUCH")
	require.NoError(t, err)
	require.Len(t, films, 1)
	assert.Equal(t, "Crouching Tiger", films[0].Name)

	films, err = s.Films.SearchByDirector(ctx, "krav")
	require.NoError(t, err)
	require.Len(t, films, 1)
	assert.Equal(t, "Admiral", films[0].Name)

	films, err = s.Films.SearchByTitle(ctx, "нет такого")
	require.NoError(t, err)
	assert.Empty(t, films)
}

func TestDirectorFilmsSorting(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	director := &models.Director{Name: "режиссёр"}
	require.NoError(t, s.Directors.Add(ctx, director))

	late := &models.Film{Name: "late", ReleaseDate: models.NewDate(2015, 1, 1), Duration: 90, MpaID: 1,
		Directors: []models.Director{{ID: director.ID}}}
	early := &models.Film{Name: "early", ReleaseDate: models.NewDate(1995, 1, 1), Duration: 90, MpaID: 1,
		Directors: []models.Director{{ID: director.ID}}}
	require.NoError(t, s.Films.Add(ctx, late))
	require.NoError(t, s.Films.Add(ctx, early))

	user := addUser(t, s)
	require.NoError(t, s.Likes.AddLike(ctx, late.ID, user.ID))

	films, err := s.Directors.FilmsByDirectorOnYear(ctx, director.ID)
	require.NoError(t, err)
	require.Len(t, films, 2)
	assert.Equal(t, early.ID, films[0].ID)
	assert.Equal(t, late.ID, films[1].ID)

	films, err = s.Directors.FilmsByDirectorOnLikes(ctx, director.ID)
	require.NoError(t, err)
	require.Len(t, films, 2)
	assert.Equal(t, late.ID, films[0].ID)

	_, err = s.Directors.FilmsByDirectorOnYear(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrDirectorNotFound)
}

func TestFriendshipIsAsymmetric(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	u1, u2, u3 := addUser(t, s), addUser(t, s), addUser(t, s)

	require.NoError(t, s.Friends.AddFriend(ctx, u1.ID, u2.ID))

	friends, err := s.Friends.FindFriends(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, u2.ID, friends[0].ID)

	// Обратной записи нет.
	friends, err = s.Friends.FindFriends(ctx, u2.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)

	assert.ErrorIs(t, s.Friends.AddFriend(ctx, u1.ID, u2.ID), storage.ErrFriendshipExists)
	assert.ErrorIs(t, s.Friends.DeleteFriend(ctx, u2.ID, u1.ID), storage.ErrFriendshipNotFound)
	assert.ErrorIs(t, s.Friends.AddFriend(ctx, u1.ID, 999), storage.ErrUserNotFound)

	// Общие друзья.
	require.NoError(t, s.Friends.AddFriend(ctx, u1.ID, u3.ID))
	require.NoError(t, s.Friends.AddFriend(ctx, u2.ID, u3.ID))
	shared, err := s.Friends.FindSharedFriends(ctx, u1.ID, u2.ID)
	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, u3.ID, shared[0].ID)

	require.NoError(t, s.Friends.DeleteFriend(ctx, u1.ID, u2.ID))
	friends, err = s.Friends.FindFriends(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
}

func TestReviewVotesRecomputeUseful(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	film := addFilm(t, s, "film", 2000)
	author, voter := addUser(t, s), addUser(t, s)

	positive := true
	review := &models.Review{Content: "хорошо", IsPositive: &positive, UserID: author.ID, FilmID: film.ID}
	require.NoError(t, s.Reviews.Add(ctx, review))
	require.NotZero(t, review.ID)
	assert.Equal(t, int64(0), review.Useful)

	require.NoError(t, s.Reviews.AddLike(ctx, review.ID, voter.ID))
	got, err := s.Reviews.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Useful)

	// Дизлайк того же пользователя снимает его лайк.
	require.NoError(t, s.Reviews.AddDislike(ctx, review.ID, voter.ID))
	got, err = s.Reviews.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), got.Useful)

	require.NoError(t, s.Reviews.DeleteDislike(ctx, review.ID, voter.ID))
	got, err = s.Reviews.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Useful)
}

func TestReviewUpdateKeepsAuthorAndFilm(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	film := addFilm(t, s, "film", 2000)
	author, other := addUser(t, s), addUser(t, s)

	positive := true
	review := &models.Review{Content: "до", IsPositive: &positive, UserID: author.ID, FilmID: film.ID}
	require.NoError(t, s.Reviews.Add(ctx, review))

	negative := false
	update := &models.Review{ID: review.ID, Content: "после", IsPositive: &negative, UserID: other.ID, FilmID: 999}
	require.NoError(t, s.Reviews.Update(ctx, update))

	assert.Equal(t, "после", update.Content)
	assert.False(t, *update.IsPositive)
	// Автор и фильм из запроса игнорируются.
	assert.Equal(t, author.ID, update.UserID)
	assert.Equal(t, film.ID, update.FilmID)
}

func TestReviewListOrderedByUseful(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	film := addFilm(t, s, "film", 2000)
	other := addFilm(t, s, "other", 2001)
	author, v1, v2 := addUser(t, s), addUser(t, s), addUser(t, s)

	positive := true
	plain := &models.Review{Content: "обычный", IsPositive: &positive, UserID: author.ID, FilmID: film.ID}
	top := &models.Review{Content: "полезный", IsPositive: &positive, UserID: v1.ID, FilmID: film.ID}
	foreign := &models.Review{Content: "про другой фильм", IsPositive: &positive, UserID: author.ID, FilmID: other.ID}
	require.NoError(t, s.Reviews.Add(ctx, plain))
	require.NoError(t, s.Reviews.Add(ctx, top))
	require.NoError(t, s.Reviews.Add(ctx, foreign))

	require.NoError(t, s.Reviews.AddLike(ctx, top.ID, v1.ID))
	require.NoError(t, s.Reviews.AddLike(ctx, top.ID, v2.ID))

	reviews, err := s.Reviews.GetAll(ctx, film.ID, 10)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, top.ID, reviews[0].ID)
	assert.Equal(t, plain.ID, reviews[1].ID)

	reviews, err = s.Reviews.GetAll(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, reviews, 3)

	reviews, err = s.Reviews.GetAll(ctx, 0, 1)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, top.ID, reviews[0].ID)
}

func TestEventsLog(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := addUser(t, s)

	first := &models.Event{UserID: user.ID, EventType: models.EventFriend, Operation: models.OperationAdd, EntityID: 7, Timestamp: 100}
	second := &models.Event{UserID: user.ID, EventType: models.EventLike, Operation: models.OperationAdd, EntityID: 9, Timestamp: 200}
	require.NoError(t, s.Events.AddEvent(ctx, first))
	require.NoError(t, s.Events.AddEvent(ctx, second))

	// Пустой timestamp заполняется временем вставки.
	auto := &models.Event{UserID: user.ID, EventType: models.EventReview, Operation: models.OperationAdd, EntityID: 1}
	require.NoError(t, s.Events.AddEvent(ctx, auto))
	assert.NotZero(t, auto.Timestamp)

	events, err := s.Events.GetEventsByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, first.ID, events[0].ID)
	assert.Equal(t, second.ID, events[1].ID)
}

func TestUserDeleteCascades(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	film := addFilm(t, s, "film", 2000)
	user, friend := addUser(t, s), addUser(t, s)

	require.NoError(t, s.Likes.AddLike(ctx, film.ID, user.ID))
	require.NoError(t, s.Friends.AddFriend(ctx, user.ID, friend.ID))
	require.NoError(t, s.Friends.AddFriend(ctx, friend.ID, user.ID))

	require.NoError(t, s.Users.Delete(ctx, user.ID))

	_, err := s.Users.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	got, err := s.Films.GetByID(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Likes)

	friends, err := s.Friends.FindFriends(ctx, friend.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestGenreAndMpaReference(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	genres, err := s.Genres.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, genres, 6)

	genre, err := s.Genres.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Комедия", genre.Name)

	_, err = s.Genres.GetByID(ctx, 42)
	assert.ErrorIs(t, err, storage.ErrGenreNotFound)

	ratings, err := s.Mpa.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, ratings, 5)

	rating, err := s.Mpa.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "NC-17", rating.Name)

	_, err = s.Mpa.GetByID(ctx, 42)
	assert.ErrorIs(t, err, storage.ErrMpaNotFound)
}
