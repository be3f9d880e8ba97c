package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/WendellNunes/RogueLibras/internal/config"
	"github.com/WendellNunes/RogueLibras/internal/engine"
	"github.com/WendellNunes/RogueLibras/internal/infrastructure/storage"
	"github.com/WendellNunes/RogueLibras/internal/server"
	"github.com/WendellNunes/RogueLibras/internal/version"
	"github.com/WendellNunes/RogueLibras/pkg/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the game server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(configPath, port, seed)
		},
	}
}

func runServer(configPath, portFlag string, seedFlag int64) error {
	logger.Log.Info("Starting RogueLibras...")
	logger.Log.Info(version.String())

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}

	runSeed := seedFlag
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
		logger.Log.Infof("🎲 Using random seed: %d", runSeed)
	} else {
		logger.Log.Infof("🎲 Using explicit seed: %d", runSeed)
	}

	gameService, err := engine.NewService(cfg, runSeed)
	if err != nil {
		return err
	}
	gameService.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	srv := server.New(gameService, finalPort)
	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	gameService.Stop()

	// Запись забега на диск при выходе
	session := gameService.ReplaySnapshot()
	if len(session.Actions) > 0 {
		replays := storage.NewReplayService(cfg.Replay.Dir)
		if path, err := replays.Save(&session); err != nil {
			logger.Log.WithError(err).Warn("Failed to save replay")
		} else {
			logger.Log.Infof("💿 Replay saved to %s", path)
		}
	}

	logger.Log.Info("Done.")
	return nil
}
