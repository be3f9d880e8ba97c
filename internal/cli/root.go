package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	port       string
	configPath string
	seed       int64
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envPort := os.Getenv("PORT")
	envConfig := os.Getenv("CONFIG_PATH")

	cmd := &cobra.Command{
		Use:   "roguelibras",
		Short: "Turn-based battle backend for the RogueLibras AR card game",
	}

	cmd.PersistentFlags().StringVar(&port, "port", envPort, "port to listen on (overrides config)")
	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().Int64Var(&seed, "seed", 0, "run seed (0 for random)")
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newReplayCmd())
	cmd.AddCommand(newAutoplayCmd())
	return cmd
}
