package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"chatroom/internal/config"
	apihttp "chatroom/internal/http"
	"chatroom/internal/repository"
	"chatroom/internal/rpc"
	"chatroom/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	words, err := repository.LoadWordLists(cfg.DataDir)
	if err != nil {
		logger.Fatal("load word lists", zap.String("data_dir", cfg.DataDir), zap.Error(err))
	}
	for _, initial := range service.UnmatchedInitials(words.Adjectives, words.Animals) {
		logger.Warn("animal initial has no matching adjective", zap.String("initial", string(initial)))
	}
	logger.Info("word lists loaded",
		zap.Int("adjectives", len(words.Adjectives)),
		zap.Int("animals", len(words.Animals)),
	)

	nameGen, err := service.NewNameGenerator(words.Adjectives, words.Animals, nil,
		service.WithMaxAttempts(cfg.NameMaxAttempts))
	if err != nil {
		logger.Fatal("name generator", zap.Error(err))
	}

	publisher := service.NewNopEntryPublisher()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, entry fan-out disabled", zap.Error(err))
		} else {
			publisher = service.NewRedisEntryPublisher(redisClient, cfg.RedisChannel)
			logger.Info("entry fan-out enabled", zap.String("channel", cfg.RedisChannel))
		}
		cancel()
	}

	chatLog := repository.NewMemoryChatLogRepository()
	chatSvc := service.NewChatService(logger, chatLog, nameGen, publisher)

	chatHandler := apihttp.NewChatHandler(logger, chatSvc)
	graphqlHandler := apihttp.NewGraphQLHandler(logger, chatSvc, cfg.GraphiQLEnabled)
	router := apihttp.NewRouter(logger, chatHandler, graphqlHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcListener, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		logger.Fatal("grpc listen", zap.String("port", cfg.GRPCPort), zap.Error(err))
	}
	grpcServer := rpc.NewServer(logger, chatSvc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 2)
	go func() {
		logger.Info("starting http server", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()
	go func() {
		logger.Info("starting grpc server", zap.String("port", cfg.GRPCPort))
		if err := grpcServer.Serve(grpcListener); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errChan:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	grpcServer.GracefulStop()
	chatSvc.Close()
	logger.Info("stopped", zap.Int("entries", chatSvc.EntryCount()))
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}
