package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meeplehub/api/internal/config"
	"github.com/meeplehub/api/internal/database"
	"github.com/meeplehub/api/internal/handler"
	"github.com/meeplehub/api/internal/middleware"
	"github.com/meeplehub/api/internal/repository"
	"github.com/meeplehub/api/internal/service"
	"github.com/meeplehub/api/pkg/jwt"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	boardReplyRepo := repository.NewBoardReplyRepository(db)
	questionRepo := repository.NewGameQuestionRepository(db)
	answerRepo := repository.NewGameQuestionAnswerRepository(db)

	// Services
	userService := service.NewUserService(service.UserServiceConfig{
		Users:     userRepo,
		Favorites: favoriteRepo,
		Reviews:   reviewRepo,
		Games:     gameRepo,
		Tokens:    jwtService,
	})

	gameService := service.NewGameService(service.GameServiceConfig{
		Games: gameRepo,
	})

	reviewService := service.NewReviewService(service.ReviewServiceConfig{
		Reviews: reviewRepo,
		Games:   gameRepo,
		Users:   userRepo,
	})

	boardService := service.NewBoardService(service.BoardServiceConfig{
		Posts:   boardRepo,
		Replies: boardReplyRepo,
		Users:   userRepo,
	})

	questionService := service.NewGameQuestionService(service.GameQuestionServiceConfig{
		Questions: questionRepo,
		Answers:   answerRepo,
		Games:     gameRepo,
		Users:     userRepo,
	})

	// Handlers
	healthHandler := handler.NewHealthHandler(db)
	userHandler := handler.NewUserHandler(userService)
	gameHandler := handler.NewGameHandler(gameService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	boardHandler := handler.NewBoardHandler(boardService)
	questionHandler := handler.NewGameQuestionHandler(questionService)

	mux := http.NewServeMux()
	auth := middleware.Auth(jwtService)

	mux.HandleFunc("GET /health", healthHandler.Health)

	// Account endpoints
	mux.HandleFunc("POST /user/signup", userHandler.SignUp)
	mux.HandleFunc("POST /user/login", userHandler.Login)
	mux.Handle("PUT /user/info", auth(http.HandlerFunc(userHandler.UpdateInfo)))
	mux.Handle("PUT /user/password", auth(http.HandlerFunc(userHandler.ChangePassword)))
	mux.Handle("DELETE /user", auth(http.HandlerFunc(userHandler.Withdraw)))
	mux.HandleFunc("GET /user/{nickname}/profile", userHandler.GetProfile)
	mux.HandleFunc("GET /user/{nickname}/reviews", userHandler.GetReviews)
	mux.HandleFunc("GET /user/{nickname}/favorites", userHandler.GetFavorites)
	mux.Handle("POST /user/favorites", auth(http.HandlerFunc(userHandler.AddFavorite)))
	mux.Handle("DELETE /user/favorites/{gameId}", auth(http.HandlerFunc(userHandler.RemoveFavorite)))

	// Game catalog endpoints
	mux.HandleFunc("GET /game/list", gameHandler.List)
	mux.HandleFunc("GET /game/{gameId}", gameHandler.Get)
	mux.HandleFunc("GET /game/{gameId}/reviews", reviewHandler.ListByGame)

	// Review endpoints
	mux.Handle("POST /review/upload", auth(http.HandlerFunc(reviewHandler.Upload)))
	mux.Handle("PUT /review/update", auth(http.HandlerFunc(reviewHandler.Update)))
	mux.Handle("DELETE /review/{reviewId}", auth(http.HandlerFunc(reviewHandler.Delete)))

	// Board endpoints
	mux.Handle("POST /board/upload", auth(http.HandlerFunc(boardHandler.Upload)))
	mux.HandleFunc("GET /board/list", boardHandler.List)
	mux.HandleFunc("GET /board/{postId}", boardHandler.Get)
	mux.Handle("PUT /board/update", auth(http.HandlerFunc(boardHandler.Update)))
	mux.Handle("DELETE /board/reply", auth(http.HandlerFunc(boardHandler.DeleteReply)))
	mux.Handle("DELETE /board/{postId}", auth(http.HandlerFunc(boardHandler.Delete)))
	mux.Handle("POST /board/reply", auth(http.HandlerFunc(boardHandler.CreateReply)))
	mux.Handle("PUT /board/reply", auth(http.HandlerFunc(boardHandler.UpdateReply)))

	// Game question endpoints
	mux.Handle("POST /game/{gameId}/questions", auth(http.HandlerFunc(questionHandler.Upload)))
	mux.HandleFunc("GET /game/{gameId}/questions", questionHandler.ListByGame)
	mux.HandleFunc("GET /question/{questionId}", questionHandler.Get)
	mux.Handle("PUT /question/update", auth(http.HandlerFunc(questionHandler.Update)))
	mux.Handle("PUT /question/answer", auth(http.HandlerFunc(questionHandler.UpdateAnswer)))
	mux.Handle("DELETE /question/answer", auth(http.HandlerFunc(questionHandler.DeleteAnswer)))
	mux.Handle("DELETE /question/{questionId}", auth(http.HandlerFunc(questionHandler.Delete)))
	mux.Handle("POST /question/{questionId}/answers", auth(http.HandlerFunc(questionHandler.CreateAnswer)))

	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
