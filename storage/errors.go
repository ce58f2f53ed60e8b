package storage

import "errors"

// Sentinel errors raised by both storage backends. Handlers map them to 404.
var (
	ErrFilmNotFound       = errors.New("film not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrDirectorNotFound   = errors.New("director not found")
	ErrGenreNotFound      = errors.New("genre not found")
	ErrMpaNotFound        = errors.New("mpa rating not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrLikeNotFound       = errors.New("like not found")
	ErrFriendshipNotFound = errors.New("friendship not found")
)

// ErrFriendshipExists is returned on a duplicate friend request.
// Handlers map it to 400.
var ErrFriendshipExists = errors.New("friendship already exists")
