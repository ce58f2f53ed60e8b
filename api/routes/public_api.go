package routes

import (
	"filmorate/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func PublicApi(router *gin.Engine) {
	// Фильмы
	films := router.Group("/films")
	{
		films.POST("", handlers.FilmCreate)
		films.PUT("", handlers.FilmUpdate)
		films.GET("", handlers.FilmList)
		films.GET("/popular", handlers.FilmPopular)
		films.GET("/common", handlers.FilmCommon)
		films.GET("/search", handlers.FilmSearch)
		films.GET("/director/:directorId", handlers.FilmsByDirector)
		films.GET("/:id", handlers.FilmGet)
		films.DELETE("/:id", handlers.FilmDelete)
		films.PUT("/:id/like/:userId", handlers.FilmAddLike)
		films.DELETE("/:id/like/:userId", handlers.FilmRemoveLike)
	}

	// Пользователи и дружба
	users := router.Group("/users")
	{
		users.POST("", handlers.UserCreate)
		users.PUT("", handlers.UserUpdate)
		users.GET("", handlers.UserList)
		users.GET("/:id", handlers.UserGet)
		users.DELETE("/:id", handlers.UserDelete)
		users.PUT("/:id/friends/:friendId", handlers.UserAddFriend)
		users.DELETE("/:id/friends/:friendId", handlers.UserDeleteFriend)
		users.GET("/:id/friends", handlers.UserFriends)
		users.GET("/:id/friends/common/:otherId", handlers.UserSharedFriends)
		users.GET("/:id/feed", handlers.UserFeed)
		users.GET("/:id/recommendations", handlers.UserRecommendations)
	}

	// Режиссёры
	directors := router.Group("/directors")
	{
		directors.POST("", handlers.DirectorCreate)
		directors.PUT("", handlers.DirectorUpdate)
		directors.GET("", handlers.DirectorList)
		directors.GET("/:id", handlers.DirectorGet)
		directors.DELETE("/:id", handlers.DirectorDelete)
	}

	// Отзывы
	reviews := router.Group("/reviews")
	{
		reviews.POST("", handlers.ReviewCreate)
		reviews.PUT("", handlers.ReviewUpdate)
		reviews.GET("", handlers.ReviewList)
		reviews.GET("/:id", handlers.ReviewGet)
		reviews.DELETE("/:id", handlers.ReviewDelete)
		reviews.PUT("/:id/like/:userId", handlers.ReviewAddLike)
		reviews.PUT("/:id/dislike/:userId", handlers.ReviewAddDislike)
		reviews.DELETE("/:id/like/:userId", handlers.ReviewDeleteLike)
		reviews.DELETE("/:id/dislike/:userId", handlers.ReviewDeleteDislike)
	}

	// Справочники
	router.GET("/genres", handlers.GenreList)
	router.GET("/genres/:id", handlers.GenreGet)
	router.GET("/mpa", handlers.MpaList)
	router.GET("/mpa/:id", handlers.MpaGet)

	// Лента по WebSocket и метрики
	router.GET("/ws/feed/:userId", handlers.WSFeedHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
