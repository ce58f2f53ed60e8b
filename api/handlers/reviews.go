package handlers

import (
	"net/http"
	"strconv"

	"filmorate/models"
	"filmorate/services"

	"github.com/gin-gonic/gin"
)

var reviewService = services.NewReviewService()

// ReviewCreate - обработчик для добавления отзыва
func ReviewCreate(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := reviewService.Create(c.Request.Context(), &review); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func ReviewUpdate(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := reviewService.Update(c.Request.Context(), &review); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func ReviewDelete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := reviewService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func ReviewGet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	review, err := reviewService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// ReviewList - отзывы, отсортированные по полезности; filmId опционален
func ReviewList(c *gin.Context) {
	filmID, err := strconv.ParseInt(c.DefaultQuery("filmId", "0"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filmId"})
		return
	}
	count, err := strconv.Atoi(c.DefaultQuery("count", "10"))
	if err != nil || count <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid count"})
		return
	}
	reviews, err := reviewService.GetAll(c.Request.Context(), filmID, count)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func reviewVote(c *gin.Context, vote func(*gin.Context, int64, int64) error) {
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if err := vote(c, reviewID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// ReviewAddLike - лайк отзыву, прежний голос пользователя снимается
func ReviewAddLike(c *gin.Context) {
	reviewVote(c, func(c *gin.Context, reviewID, userID int64) error {
		return reviewService.AddLike(c.Request.Context(), reviewID, userID)
	})
}

func ReviewAddDislike(c *gin.Context) {
	reviewVote(c, func(c *gin.Context, reviewID, userID int64) error {
		return reviewService.AddDislike(c.Request.Context(), reviewID, userID)
	})
}

func ReviewDeleteLike(c *gin.Context) {
	reviewVote(c, func(c *gin.Context, reviewID, userID int64) error {
		return reviewService.DeleteLike(c.Request.Context(), reviewID, userID)
	})
}

func ReviewDeleteDislike(c *gin.Context) {
	reviewVote(c, func(c *gin.Context, reviewID, userID int64) error {
		return reviewService.DeleteDislike(c.Request.Context(), reviewID, userID)
	})
}
