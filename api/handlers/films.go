package handlers

import (
	"net/http"
	"strconv"

	"filmorate/models"
	"filmorate/services"

	"github.com/gin-gonic/gin"
)

var filmService = services.NewFilmService()

// FilmCreate - обработчик для добавления фильма
func FilmCreate(c *gin.Context) {
	var film models.Film
	if err := c.ShouldBindJSON(&film); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := filmService.Create(c.Request.Context(), &film); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, film)
}

// FilmUpdate - обработчик для обновления фильма
func FilmUpdate(c *gin.Context) {
	var film models.Film
	if err := c.ShouldBindJSON(&film); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := filmService.Update(c.Request.Context(), &film); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, film)
}

func FilmList(c *gin.Context) {
	films, err := filmService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, films)
}

func FilmGet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	film, err := filmService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, film)
}

func FilmDelete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := filmService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// FilmAddLike - лайк фильму от пользователя, повторный лайк не ошибка
func FilmAddLike(c *gin.Context) {
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if err := filmService.AddLike(c.Request.Context(), filmID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func FilmRemoveLike(c *gin.Context) {
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if err := filmService.RemoveLike(c.Request.Context(), filmID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// FilmPopular - топ фильмов по лайкам с фильтрами по жанру и году
func FilmPopular(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "10"))
	if err != nil || count <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid count"})
		return
	}
	genreID, err := strconv.ParseInt(c.DefaultQuery("genreId", "0"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid genreId"})
		return
	}
	year, err := strconv.Atoi(c.DefaultQuery("year", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	films, err := filmService.GetPopular(c.Request.Context(), count, genreID, year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, films)
}

// FilmCommon - фильмы, которые лайкнули оба пользователя
func FilmCommon(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
		return
	}
	friendID, err := strconv.ParseInt(c.Query("friendId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid friendId"})
		return
	}
	films, err := filmService.GetCommonFilms(c.Request.Context(), userID, friendID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, films)
}

// FilmsByDirector - фильмы режиссёра, отсортированные по year или likes
func FilmsByDirector(c *gin.Context) {
	directorID, ok := pathID(c, "directorId")
	if !ok {
		return
	}
	films, err := directorService.FilmsByDirector(c.Request.Context(), directorID, c.DefaultQuery("sortBy", "likes"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, films)
}

// FilmSearch - поиск по названию и/или режиссёру
func FilmSearch(c *gin.Context) {
	films, err := filmService.Search(c.Request.Context(), c.Query("query"), c.DefaultQuery("by", "title"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, films)
}
