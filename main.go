package main

import (
	"flag"
	"log"

	"herobot-go/web"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	dryRun := flag.Bool("dry-run", false, "run against the built-in demo world")
	flag.Parse()

	if *dryRun {
		log.Println("Running in dry-run mode")
	}

	bot, err := NewBot(*configPath, *dryRun)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	webConfig := bot.ConfigManager.GetConfig().WebManager
	bot.Hub = web.StartServer(bot, webConfig.Host, webConfig.Port)

	bot.Run()
}
