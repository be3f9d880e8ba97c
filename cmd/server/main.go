package main

import (
	"os"

	"github.com/WendellNunes/RogueLibras/internal/cli"
	"github.com/WendellNunes/RogueLibras/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
