package handlers

import (
	"net/http"

	"filmorate/models"
	"filmorate/services"

	"github.com/gin-gonic/gin"
)

var directorService = services.NewDirectorService()

func DirectorCreate(c *gin.Context) {
	var director models.Director
	if err := c.ShouldBindJSON(&director); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := directorService.Create(c.Request.Context(), &director); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, director)
}

func DirectorUpdate(c *gin.Context) {
	var director models.Director
	if err := c.ShouldBindJSON(&director); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := directorService.Update(c.Request.Context(), &director); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, director)
}

func DirectorList(c *gin.Context) {
	directors, err := directorService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, directors)
}

func DirectorGet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	director, err := directorService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, director)
}

func DirectorDelete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := directorService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
