package main

import (
	"flag"

	"plaza/internal/game"
	"plaza/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "path to a settings yaml, defaults apply when empty")
	flag.Parse()

	logger.Init()

	cfg, err := game.LoadSettings(*configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("load settings")
	}
	game.RunDesktop(&cfg)
}
