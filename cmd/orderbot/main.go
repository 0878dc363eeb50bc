package main

import (
	"fmt"

	"github.com/WitherStore/order-bot/internal/app"
	"github.com/WitherStore/order-bot/internal/config"
	"github.com/WitherStore/order-bot/internal/logger"
)

func main() {
	// load config
	config := config.NewConfig()
	// init logger
	if err := logger.Initialize(config.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// malformed credentials are fatal before any network use
	if err := config.Validate(); err != nil {
		logger.Panic("invalid configuration:", err)
	}
	// run the bot
	app.Run(config)
}
