package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gridlab/sudoku-pool-backend/internal/entity"
)

type coordinator interface {
	Register(ctx context.Context, identity string) (*entity.Player, error)
	AddGame(ctx context.Context, identity string, board, solution entity.Grid) (int, error)
	SubmitSolution(ctx context.Context, identity string, solution entity.Grid) (*entity.Player, error)
	Pass(ctx context.Context, identity string) (*entity.Player, error)
	Progress(ctx context.Context, identity string) (*entity.Player, *entity.Game, error)
	TopSolvers(ctx context.Context, limit int) ([]entity.SolverStats, error)
}

type authService interface {
	GenerateToken(identity string) (string, error)
	ParseToken(token string) (string, error)
}

// Server is the REST adapter: it translates HTTP requests into the session
// coordinator's operations and maps its errors to status codes.
type Server struct {
	logger      *slog.Logger
	coordinator coordinator
	auth        authService
	router      *chi.Mux
}

func New(logger *slog.Logger, coordinator coordinator, auth authService) *Server {
	server := &Server{
		logger:      logger,
		coordinator: coordinator,
		auth:        auth,
		router:      chi.NewRouter(),
	}

	server.router.Use(middleware.RequestID)
	server.router.Use(middleware.RealIP)
	server.router.Use(middleware.Recoverer)
	server.router.Use(middleware.Timeout(10 * time.Second))

	server.router.Get("/ping", server.handlePing)
	server.router.Get("/leaderboard", server.handleLeaderboard)
	server.router.Post("/register", server.handleRegister)

	server.router.Group(func(protected chi.Router) {
		protected.Use(server.requireIdentity)

		protected.Post("/games", server.handleAddGame)
		protected.Post("/solutions", server.handleSubmitSolution)
		protected.Post("/pass", server.handlePass)
		protected.Get("/players/me", server.handleProgress)
	})

	return server
}

// Start - runs the HTTP server until the context is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
