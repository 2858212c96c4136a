package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"
	"time"

	"microblog/internal/cache"
	"microblog/internal/config"
	"microblog/internal/database"
	"microblog/internal/handler"
	"microblog/internal/redis"
	"microblog/internal/repository"
	"microblog/internal/service"
)

// Run wires the whole application together and serves HTTP until the
// process exits.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Redis backs only the page cache; the app runs without it.
	var pageCache cache.PageCache
	if cfg.RedisURL != "" {
		redisClient, err := redis.NewClient(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to create redis client: %w", err)
		}
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()); err != nil {
			return fmt.Errorf("failed to reach redis: %w", err)
		}
		pageCache = cache.NewPageCache(redisClient.Client, time.Duration(cfg.PageCacheTTL)*time.Second)
	} else {
		log.Println("REDIS_URL not set, page caching disabled")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	// Services
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(refreshTokenRepo, cfg)
	groupService := service.NewGroupService(groupRepo)
	postService := service.NewPostService(postRepo, groupRepo, userRepo, commentRepo)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	feedService := service.NewFeedService(postRepo, groupRepo, userRepo, followRepo, cfg.PageSize)

	// Handlers
	router := NewRouter(RouterConfig{
		AuthHandler:    handler.NewAuthHandler(userService, authService),
		FeedHandler:    handler.NewFeedHandler(feedService),
		PostHandler:    handler.NewPostHandler(postService),
		CommentHandler: handler.NewCommentHandler(commentService),
		FollowHandler:  handler.NewFollowHandler(followService),
		GroupHandler:   handler.NewGroupHandler(groupService),
		JWTSecret:      cfg.JWTSecret,
		PageCache:      pageCache,
	})

	addr := ":" + cfg.ServerPort
	log.Printf("Starting server on %s", addr)

	server := &stdhttp.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return server.ListenAndServe()
}
