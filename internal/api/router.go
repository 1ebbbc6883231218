package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/socialsphere/social-api/docs"
	"github.com/socialsphere/social-api/internal/api/handler"
	"github.com/socialsphere/social-api/internal/api/middleware"
	"github.com/socialsphere/social-api/internal/core/ports"
	"github.com/socialsphere/social-api/internal/core/service"
	mongodb "github.com/socialsphere/social-api/internal/infrastructure/db/mongo"
	redisdb "github.com/socialsphere/social-api/internal/infrastructure/db/redis"
	"github.com/socialsphere/social-api/internal/infrastructure/http/handlers"
)

// Options carries the cross-cutting settings the router needs beyond its
// store dependencies.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	UploadDir string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes
// registered. It is a pure composition function: every dependency is
// injected, so tests can substitute in-memory fakes.
func NewRouter(db *mongo.Database, rdb *redis.Client, files ports.FileStore, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("social"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	feedCache := redisdb.NewFeedCache(rdb)

	authService := service.NewAuthService(userRepo, opts.JWTSecret, opts.TokenTTL)
	userService := service.NewUserService(userRepo, opts.Log)
	postService := service.NewPostService(postRepo, userRepo, feedCache, opts.Log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)

	auth := middleware.Auth(opts.JWTSecret)
	upload := middleware.Upload(files)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register, upload)
	e.POST("/auth/login", authHandler.Login)

	// --- User routes (protected) ---
	e.GET("/users/:id", userHandler.Get, auth)
	e.GET("/users/:id/friends", userHandler.Friends, auth)
	e.PATCH("/users/:id/:friendId", userHandler.ToggleFriend, auth)

	// --- Post routes (protected) ---
	// Upload runs before Auth: the multipart body must be parsed exactly
	// once, before anything else touches the request.
	e.POST("/posts", postHandler.Create, upload, auth)
	e.GET("/posts", postHandler.Feed, auth)
	e.GET("/posts/:userId/posts", postHandler.UserPosts, auth)
	e.PATCH("/posts/:id/like", postHandler.Like, auth)

	// --- Uploaded images, served read-only ---
	e.Static("/assets", opts.UploadDir)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
