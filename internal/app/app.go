package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/WitherStore/order-bot/internal/bot"
	"github.com/WitherStore/order-bot/internal/client"
	"github.com/WitherStore/order-bot/internal/config"
	"github.com/WitherStore/order-bot/internal/logger"
	"github.com/WitherStore/order-bot/internal/network/router"
	"github.com/WitherStore/order-bot/internal/services"
	"github.com/WitherStore/order-bot/internal/worker"
	"github.com/bwmarrin/discordgo"
)

func Run(config config.Config) {

	session, err := discordgo.New("Bot " + config.Discord.BotToken)
	if err != nil {
		logger.Panic("can't create discord session:", err)
	}

	checkout := client.NewCheckout(config.Stripe.SecretKey)
	watcher := worker.NewPaymentWatcher(checkout, config.Stripe.PollInterval, config.Stripe.WatchTimeout)

	orders := services.NewOrders(session, config.Discord.OrderLogChannelID)
	payments := services.NewPayments(session, checkout, watcher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := bot.New(ctx, session, config.Discord.ClientID, orders, payments)
	if err := b.Start(); err != nil {
		logger.Panic("can't open gateway connection:", err)
	}

	server := &http.Server{
		Addr:    config.OpsAddr,
		Handler: router.NewRouter(func() bool { return session.DataReady }).HandleRouter(),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(
			"Starting ops server config:", config.OpsAddr,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen ops server", err.Error())
		}
	}()

	<-stop
	logger.Info("Shutdown bot")
	if err := b.Stop(); err != nil {
		logger.Error("error closing gateway connection", err.Error())
	}
	// in-flight payment watches are lost on shutdown
	cancel()
	watcher.Wait()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown ops server", err.Error())
	}
	logger.Info("Bot stopped")
}
