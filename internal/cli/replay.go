package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WendellNunes/RogueLibras/internal/config"
	"github.com/WendellNunes/RogueLibras/internal/engine"
	"github.com/WendellNunes/RogueLibras/internal/infrastructure/storage"
	"github.com/WendellNunes/RogueLibras/pkg/logger"
)

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <file.rlrp>",
		Short: "Replay a recorded run and print the outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(configPath, args[0])
		},
	}
}

// runReplay воспроизводит записанный забег. Паузы боя схлопываются:
// команды применяются синхронно, зерно рандома берется из файла,
// так что вопросы и промахи врага повторяются в точности.
func runReplay(configPath, replayPath string) error {
	logger.Log.Info("💿 Mode: Replay Simulation")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	session, err := storage.NewReplayService(cfg.Replay.Dir).Load(replayPath)
	if err != nil {
		return fmt.Errorf("failed to load replay: %w", err)
	}

	gameService, err := engine.NewService(cfg, session.Seed)
	if err != nil {
		return err
	}
	gameService.SetImmediate()
	gameService.SetRecording(false)

	for _, act := range session.Actions {
		gameService.Apply(act.InternalCommand())
	}

	logger.Log.Infof("Replay finished: state=%s after %d actions",
		gameService.State(), len(session.Actions))
	return nil
}
