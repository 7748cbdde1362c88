package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Seabass5831/CS-546-Project-Song-Review/cache"
	"github.com/Seabass5831/CS-546-Project-Song-Review/catalog"
	"github.com/Seabass5831/CS-546-Project-Song-Review/config"
	"github.com/Seabass5831/CS-546-Project-Song-Review/controllers"
	"github.com/Seabass5831/CS-546-Project-Song-Review/database"
	"github.com/Seabass5831/CS-546-Project-Song-Review/helpers"
	"github.com/Seabass5831/CS-546-Project-Song-Review/middleware"
	"github.com/Seabass5831/CS-546-Project-Song-Review/repository"
	"github.com/Seabass5831/CS-546-Project-Song-Review/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	ctx := context.Background()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("disconnect mongodb")
		}
	}()

	db := client.Database(cfg.MongoDB)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}
	log.Info().Str("database", cfg.MongoDB).Msg("mongodb ready")

	var cat catalog.Client = catalog.NewSpotifyClient(cfg.SpotifyClientID, cfg.SpotifyClientSecret)
	if rdb := cache.Connect(cfg.RedisAddr, cfg.RedisPassword); rdb != nil {
		cat = catalog.NewCachedClient(cat, rdb)
		log.Info().Str("addr", cfg.RedisAddr).Msg("catalog cache enabled")
	}

	store := repository.NewStore(db, cat)
	tokens := helpers.NewTokenMaker(cfg.JWTSecret)

	userController := controllers.NewUserController(store.Users, tokens)
	songController := controllers.NewSongController(store.Songs)
	reviewController := controllers.NewReviewController(store.Reviews)
	commentController := controllers.NewCommentController(store.Comments)
	genreController := controllers.NewGenreController(store.Genres)
	playlistController := controllers.NewPlaylistController(store.Playlists)
	recommendationController := controllers.NewRecommendationController(store.Recommendations)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.AuthRoutes(router, userController)
	routes.UserRoutes(router, userController, tokens)
	routes.SongRoutes(router, songController, tokens)
	routes.ReviewRoutes(router, reviewController, tokens)
	routes.CommentRoutes(router, commentController, tokens)
	routes.GenreRoutes(router, genreController, tokens)
	routes.PlaylistRoutes(router, playlistController, tokens)
	routes.RecommendationRoutes(router, recommendationController, tokens)

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
