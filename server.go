package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"filmorate/api/middleware"
	"filmorate/api/routes"
	"filmorate/config"
	"filmorate/db"
	"filmorate/services"
	"filmorate/storage"
	"filmorate/storage/dbstore"
	"filmorate/storage/memstore"

	"github.com/gin-gonic/gin"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	err := config.LoadConfig(configPath)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	log.Println("Starting server with storage mode:", config.AppConfig.Storage)

	switch config.AppConfig.Storage {
	case config.StorageMemory:
		storage.Active = memstore.NewStorage()
	case config.StorageSQLite:
		// Однофайловое развёртывание без Postgres.
		path := config.AppConfig.Databases.Master.Name
		if path == "" {
			path = "filmorate.db"
		}
		if err := db.ConnectSQLite(path); err != nil {
			panic("Failed to open sqlite database: " + err.Error())
		}
		storage.Active = dbstore.NewStorage()
	default:
		if err := db.ConnectDB(); err != nil {
			panic("Failed to connect to the database: " + err.Error())
		}
		storage.Active = dbstore.NewStorage()
	}

	// Redis и RabbitMQ опциональны: без них кеш и push-лента выключены.
	if err := services.InitRedis(); err != nil {
		log.Println("Redis unavailable, popular films cache disabled:", err)
	}
	if err := services.InitRabbitMQ(); err != nil {
		log.Println("RabbitMQ unavailable, websocket feed push disabled:", err)
	} else {
		if err := services.StartFeedEventConsumer(context.Background(), "feed_events_ws"); err != nil {
			log.Println("Failed to start feed consumer:", err)
		}
	}

	router := gin.Default()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.PrometheusMiddleware("filmorate"))

	routes.PublicApi(router)

	addr := fmt.Sprintf("%s:%d", config.AppConfig.Backend.Host, config.AppConfig.Backend.Port)
	if err := router.Run(addr); err != nil {
		panic(err)
	}
}
