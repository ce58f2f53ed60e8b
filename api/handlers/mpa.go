package handlers

import (
	"net/http"

	"filmorate/services"

	"github.com/gin-gonic/gin"
)

var mpaService = services.NewMpaService()

func MpaList(c *gin.Context) {
	ratings, err := mpaService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

func MpaGet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rating, err := mpaService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}
