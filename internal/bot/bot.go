// Package bot wires gateway events to the order and payment services.
// Everything here is event-driven glue: the gateway dispatches ready,
// command, button and modal events, and each flow runs independently.
package bot

import (
	"context"

	"github.com/WitherStore/order-bot/internal/customid"
	"github.com/WitherStore/order-bot/internal/logger"
	"github.com/WitherStore/order-bot/internal/services"
	"github.com/bwmarrin/discordgo"
)

// Bot - gateway event dispatcher
type Bot struct {
	Session  *discordgo.Session
	Orders   *services.Orders
	Payments *services.Payments
	AppID    string

	ctx context.Context
}

// New - binds the services to a gateway session. ctx is the lifetime of
// background work spawned by flows (payment watches die with it).
func New(ctx context.Context, session *discordgo.Session, appID string, orders *services.Orders, payments *services.Payments) *Bot {
	return &Bot{
		Session:  session,
		Orders:   orders,
		Payments: payments,
		AppID:    appID,
		ctx:      ctx,
	}
}

// Start - registers the event handlers and opens the gateway connection
func (b *Bot) Start() error {
	b.Session.Identify.Intents = discordgo.IntentsGuilds
	b.Session.AddHandler(b.onReady)
	b.Session.AddHandler(b.onInteraction)
	return b.Session.Open()
}

// Stop - closes the gateway connection
func (b *Bot) Stop() error {
	return b.Session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Info("Logged in as", s.State.User.Username)

	guildIDs := make([]string, 0, len(r.Guilds))
	for _, guild := range r.Guilds {
		guildIDs = append(guildIDs, guild.ID)
	}
	RegisterCommands(b.Session, b.AppID, guildIDs)
}

// onInteraction - top-level dispatch. Unexpected failures stop here: they
// are logged and the flow is abandoned, never retried.
func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic handling interaction:", r)
		}
	}()

	var err error
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case "order":
			err = b.Orders.HandleCommand(i)
		case "payment":
			if i.GuildID == "" {
				return
			}
			err = b.Payments.HandleCommand(b.ctx, i)
		}
	case discordgo.InteractionMessageComponent:
		if customid.IsServiceButton(i.MessageComponentData().CustomID) {
			err = b.Orders.HandleCategoryButton(i)
		}
	case discordgo.InteractionModalSubmit:
		if customid.IsOrderModal(i.ModalSubmitData().CustomID) {
			err = b.Orders.HandleModalSubmit(i)
		}
	}

	if err != nil {
		logger.Error("Error handling interaction:", err)
	}
}
