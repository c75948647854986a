package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/matryer/way"
	"github.com/spf13/cobra"

	"github.com/manorgames/manor-api/internal/board"
	"github.com/manorgames/manor-api/internal/engine/boardgraph"
	"github.com/manorgames/manor-api/internal/handlers/ws"
	gamesvc "github.com/manorgames/manor-api/internal/orchestrators/game"
	"github.com/manorgames/manor-api/internal/pkg/clock"
	"github.com/manorgames/manor-api/internal/pkg/dierand"
	"github.com/manorgames/manor-api/internal/pkg/idgen"
	"github.com/manorgames/manor-api/internal/redis"
	gamerepo "github.com/manorgames/manor-api/internal/repositories/game"
)

var (
	httpPort     int
	redisAddress string
	gameTTL      time.Duration
	dieSeed      int64
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the game server",
	Long:  `Start the manor-api server with the movement engine, game orchestrator, and Redis storage.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 8080, "HTTP server port")
	serverCmd.Flags().StringVar(&redisAddress, "redis-address", "localhost:6379", "Redis address")
	serverCmd.Flags().DurationVar(&gameTTL, "game-ttl", 24*time.Hour, "TTL for stored games")
	serverCmd.Flags().Int64Var(&dieSeed, "die-seed", 0, "Seed for die rolls (0 uses the default roller)")
}

func newDiceRoller() dice.Roller {
	if dieSeed != 0 {
		return dierand.NewSeeded(dieSeed)
	}
	return dice.DefaultRoller
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	redisClient, err := redis.NewClient(redisAddress, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	repo, err := gamerepo.NewRedisRepository(&gamerepo.Config{
		Client: redisClient,
		Clock:  clock.New(),
		TTL:    gameTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create game repository: %w", err)
	}

	gameBoard := board.New()

	moveEngine, err := boardgraph.NewAdapter(&boardgraph.Config{
		Board:    gameBoard,
		EventBus: events.NewBus(),
	})
	if err != nil {
		return fmt.Errorf("failed to create movement engine: %w", err)
	}

	gameService, err := gamesvc.NewOrchestrator(&gamesvc.Config{
		GameRepo:    repo,
		Engine:      moveEngine,
		Board:       gameBoard,
		IDGenerator: idgen.NewUUID("game"),
		DiceRoller:  newDiceRoller(),
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	handler, err := ws.NewHandler(&ws.Config{
		GameService: gameService,
	})
	if err != nil {
		return fmt.Errorf("failed to create websocket handler: %w", err)
	}

	router := way.NewRouter()
	handler.Routes(router)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", httpPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "port", httpPort, "redis", redisAddress)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Graceful shutdown failed, forcing close", "error", err)
			return srv.Close()
		}
		slog.Info("Server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
