package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/featherpost/social-api/docs"
	"github.com/featherpost/social-api/internal/api"
	"github.com/featherpost/social-api/internal/core/auth"
	"github.com/featherpost/social-api/internal/core/service"
	"github.com/featherpost/social-api/internal/core/token"
	mongodb "github.com/featherpost/social-api/internal/infrastructure/db/mongo"
	redisdb "github.com/featherpost/social-api/internal/infrastructure/db/redis"
	"github.com/featherpost/social-api/internal/infrastructure/queue"
	"github.com/featherpost/social-api/internal/pkg/config"
	"github.com/featherpost/social-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           FeatherPost Social API
// @version         1.0
// @description     Accounts, tweets, likes, comments and hashtag search.
// @BasePath        /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	accountRepo := mongodb.NewAccountRepository(db)
	tweetRepo := mongodb.NewTweetRepository(db)
	if err := accountRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("account index setup failed")
	}
	if err := tweetRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("tweet index setup failed")
	}

	trending := redisdb.NewTrendingStore(rdb)
	searchCache := redisdb.NewSearchCache(rdb)

	dispatcher := queue.NewDispatcher(0, trending, log)
	dispatcher.Start(ctx)

	// --- Core ---
	codec, err := token.NewCodec(cfg.Token.Keys, cfg.Token.ActiveKID)
	if err != nil {
		log.Fatal().Err(err).Msg("token keyring is invalid")
	}

	accountService := service.NewAccountService(accountRepo, codec, log)
	tweetService := service.NewTweetService(tweetRepo, dispatcher, trending, searchCache, log)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Log:      log,
		Accounts: accountService,
		Tweets:   tweetService,
		Resolver: auth.NewResolver(codec),
		Mongo:    db,
		Redis:    rdb,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
