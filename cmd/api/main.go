package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/passmint/passmint-go/internal/config"
	"github.com/passmint/passmint-go/internal/crypto"
	"github.com/passmint/passmint-go/internal/handler"
	"github.com/passmint/passmint-go/internal/middleware"
	"github.com/passmint/passmint-go/internal/repository"
	"github.com/passmint/passmint-go/internal/service"
	"github.com/passmint/passmint-go/strength"
)

// loadWordList resolves the scorer's dictionary: a configured file
// path, falling back to the embedded list, degrading to an empty list
// on load failure. A missing dictionary must never be fatal — scoring
// then simply awards the maximum dictionary sub-score.
func loadWordList(path string) strength.WordList {
	if path == "" {
		return strength.DefaultWordList()
	}
	words, err := strength.LoadFile(path)
	if err != nil {
		slog.Warn("word list unavailable — scoring without dictionary", "path", path, "error", err)
		return strength.WordList{}
	}
	return words
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	scorer := strength.NewScorer(loadWordList(cfg.WordlistPath))

	genService := service.NewGeneratorService(nil)
	genHandler := handler.NewGeneratorHandler(genService)

	strengthService := service.NewStrengthService(scorer)
	strengthHandler := handler.NewStrengthHandler(strengthService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/v1/generate", genHandler.HandleGenerate)
	r.Post("/api/v1/generate/key", genHandler.HandleGenerateKey)
	r.Post("/api/v1/strength", strengthHandler.HandleCheck)

	// Initialize DB and auth routes if database is available.
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed — auth routes disabled", "error", err)
	} else {
		hasher := crypto.NewHasher(crypto.DefaultHashParams())

		userRepo := repository.NewUserRepository(db)
		authService := service.NewAuthService(userRepo, hasher, scorer, cfg.JWTSecret, cfg.JWTExpiry)
		authHandler := handler.NewAuthHandler(authService)

		credRepo := repository.NewCredentialRepository(db)
		credService := service.NewCredentialService(credRepo, genService, scorer)
		credHandler := handler.NewCredentialHandler(credService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/api/v1/auth/me", authHandler.HandleMe)

			r.Get("/api/v1/credentials", credHandler.HandleListEntries)
			r.Post("/api/v1/credentials", credHandler.HandleCreateEntry)
			r.Post("/api/v1/credentials/mint", credHandler.HandleMintEntry)
			r.Put("/api/v1/credentials/{entry_id}", credHandler.HandleUpdateEntry)
			r.Delete("/api/v1/credentials/{entry_id}", credHandler.HandleDeleteEntry)
			r.Post("/api/v1/credentials/sync", credHandler.HandleSync)
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
