package handlers

import (
	"net/http"

	"filmorate/models"
	"filmorate/services"

	"github.com/gin-gonic/gin"
)

var userService = services.NewUserService()

// UserCreate - обработчик для регистрации пользователя
func UserCreate(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := userService.Create(c.Request.Context(), &user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UserUpdate - обработчик для обновления профиля
func UserUpdate(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := userService.Update(c.Request.Context(), &user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func UserList(c *gin.Context) {
	users, err := userService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func UserGet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := userService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func UserDelete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := userService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// UserAddFriend - односторонняя заявка, взаимность не требуется
func UserAddFriend(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	friendID, ok := pathID(c, "friendId")
	if !ok {
		return
	}
	if err := userService.AddFriend(c.Request.Context(), userID, friendID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func UserDeleteFriend(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	friendID, ok := pathID(c, "friendId")
	if !ok {
		return
	}
	if err := userService.DeleteFriend(c.Request.Context(), userID, friendID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func UserFriends(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	friends, err := userService.GetFriends(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}

// UserSharedFriends - пересечение списков друзей двух пользователей
func UserSharedFriends(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	otherID, ok := pathID(c, "otherId")
	if !ok {
		return
	}
	friends, err := userService.GetSharedFriends(c.Request.Context(), userID, otherID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}

// UserFeed - лента активности пользователя
func UserFeed(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	events, err := userService.GetFeed(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// UserRecommendations - фильмы, которые понравились похожему пользователю
func UserRecommendations(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	films, err := userService.GetRecommendations(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, films)
}
