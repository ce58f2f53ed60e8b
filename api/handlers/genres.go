package handlers

import (
	"net/http"

	"filmorate/services"

	"github.com/gin-gonic/gin"
)

var genreService = services.NewGenreService()

func GenreList(c *gin.Context) {
	genres, err := genreService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, genres)
}

func GenreGet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	genre, err := genreService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, genre)
}
