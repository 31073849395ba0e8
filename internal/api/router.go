package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/featherpost/social-api/internal/api/contract"
	"github.com/featherpost/social-api/internal/api/handler"
	"github.com/featherpost/social-api/internal/api/middleware"
	"github.com/featherpost/social-api/internal/core/auth"
	"github.com/featherpost/social-api/internal/core/ports"
)

// Deps carries everything the router needs, wired by the caller. Keeping
// construction out of the router makes index setup and tests explicit.
type Deps struct {
	Log      zerolog.Logger
	Accounts ports.AccountService
	Tweets   ports.TweetService
	Resolver *auth.Resolver

	// For the readiness probe.
	Mongo *mongo.Database
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Every operation runs the same pipeline: header contract → authorization
// (where identity is required) → handler → central error handler.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("social"))

	authn := middleware.Auth(d.Resolver)

	// --- Account routes ---
	accountHandler := handler.NewAccountHandler(d.Accounts)
	e.POST("/v1/accounts", accountHandler.CreateAccount, middleware.RequireHeaders(contract.OpCreateAccount))
	e.POST("/v1/login", accountHandler.Login, middleware.RequireHeaders(contract.OpLogin))
	e.GET("/v1/authenticate", accountHandler.AuthTest, middleware.RequireHeaders(contract.OpAuthTest), authn)
	e.GET("/v1/profile/:uid", accountHandler.Profile)

	// --- Tweet routes ---
	tweetHandler := handler.NewTweetHandler(d.Tweets)
	e.POST("/v1/tweets", tweetHandler.Create, middleware.RequireHeaders(contract.OpCreateTweet), authn)
	e.GET("/v1/tweets/:id", tweetHandler.Get)
	e.POST("/v1/tweets/like", tweetHandler.Like, middleware.RequireHeaders(contract.OpLike), authn)
	e.GET("/v1/tweets/:id/comments", tweetHandler.Comments)
	e.POST("/v1/comments", tweetHandler.Comment, middleware.RequireHeaders(contract.OpCreateComment), authn)
	e.GET("/v1/hashtags", tweetHandler.Trending)
	e.GET("/v1/hashtags/:tag", tweetHandler.Search)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
