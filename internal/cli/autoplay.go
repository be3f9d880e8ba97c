package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/WendellNunes/RogueLibras/internal/agent"
	"github.com/WendellNunes/RogueLibras/internal/config"
	"github.com/WendellNunes/RogueLibras/internal/engine"
	"github.com/WendellNunes/RogueLibras/pkg/logger"
	"github.com/WendellNunes/RogueLibras/pkg/utils"
)

func newAutoplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "autoplay",
		Short: "Run a full game with the headless agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAutoplay(configPath, seed)
		},
	}
}

// runAutoplay прогоняет целый забег ботом, без сервера и клиента.
// Удобно для проверки баланса и для быстрой прогонки после изменений правил.
func runAutoplay(configPath string, seedFlag int64) error {
	logger.Log.Info("🤖 Mode: Autoplay")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	runSeed := seedFlag
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}
	logger.Log.Infof("🎲 Seed: %d", runSeed)

	gameService, err := engine.NewService(cfg, runSeed)
	if err != nil {
		return err
	}
	gameService.Start()
	defer gameService.Stop()

	bot := agent.NewBot("bot_"+utils.GenerateID(), gameService, runSeed)
	go bot.Run()

	<-bot.Done
	return nil
}
