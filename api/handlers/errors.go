package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"filmorate/services"
	"filmorate/storage"

	"github.com/gin-gonic/gin"
)

var notFoundErrs = []error{
	storage.ErrFilmNotFound,
	storage.ErrUserNotFound,
	storage.ErrDirectorNotFound,
	storage.ErrGenreNotFound,
	storage.ErrMpaNotFound,
	storage.ErrReviewNotFound,
	storage.ErrLikeNotFound,
	storage.ErrFriendshipNotFound,
}

// respondError переводит ошибки слоя сервисов и хранилища в HTTP-статусы.
func respondError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) || errors.Is(err, storage.ErrFriendshipExists) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, sentinel := range notFoundErrs {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// pathID читает числовой path-параметр; при мусоре пишет 400 и
// возвращает false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
