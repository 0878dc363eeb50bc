package services

import (
	"context"
	"time"

	"github.com/WitherStore/order-bot/internal/client"
	"github.com/WitherStore/order-bot/internal/discord"
	"github.com/WitherStore/order-bot/internal/helpers"
	"github.com/WitherStore/order-bot/internal/logger"
	"github.com/WitherStore/order-bot/internal/money"
	"github.com/WitherStore/order-bot/internal/worker"
	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
)

const paymentErrorMessage = "An error occurred while generating the payment."

// Payments - the /payment flow: summary card, checkout session, hosted
// checkout link, and a background watcher announcing completion. Each
// invocation is independent; nothing tracks watchers across invocations.
type Payments struct {
	Session  discord.Session
	Checkout client.CheckoutAPI
	Watcher  *worker.PaymentWatcher
}

// NewPayments - service constructor
func NewPayments(session discord.Session, checkout client.CheckoutAPI, watcher *worker.PaymentWatcher) *Payments {
	return &Payments{Session: session, Checkout: checkout, Watcher: watcher}
}

// HandleCommand - the /payment command. Guild context is required; the
// command schema already bounds the amount, and the bounds are re-checked
// here before the provider is called.
func (s *Payments) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) error {
	item, amount, err := paymentOptions(i)
	if err != nil {
		logger.Warn("Rejected payment command:", err)
		return replyEphemeral(s.Session, i, err.Error())
	}

	// once the ack lands, errors can no longer be reported ephemerally
	replied := false
	if err := replyEphemeral(s.Session, i, "Generating payment url..."); err != nil {
		logger.Error("Failed to ack payment command:", err)
	} else {
		replied = true
	}

	summary, err := s.Session.ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title: "Payment Request",
				Color: ColorYellow,
				Fields: []*discordgo.MessageEmbedField{
					{Name: "Item", Value: item},
					{Name: "Amount (in USD)", Value: money.FormatUSD(amount)},
				},
			},
		},
	})
	if err != nil {
		logger.Error("Failed to post payment summary:", err)
		return s.reportFailure(i, replied)
	}

	session, err := s.Checkout.CreateSession(ctx, client.CheckoutRequest{
		Item:        item,
		AmountCents: money.MinorUnits(amount),
		ChannelID:   summary.ChannelID,
		MessageID:   summary.ID,
		RedirectURL: helpers.MessageURL(i.GuildID, summary.ChannelID, summary.ID),
	})
	if err != nil {
		logger.Error("Failed to create checkout session:", err)
		if err := s.Session.ChannelMessageDelete(summary.ChannelID, summary.ID); err != nil {
			logger.Error("Failed to delete payment summary:", err)
		}
		return s.reportFailure(i, replied)
	}

	s.Watcher.Watch(ctx, session.ID, func() {
		s.announcePaid(i.ChannelID, summary.ID)
	})

	if _, err := s.Session.ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label: "Pay",
					URL:   session.URL,
					Style: discordgo.LinkButton,
				},
			}},
		},
	}); err != nil {
		logger.Error("Failed to post checkout link:", err)
		return err
	}
	return nil
}

// announcePaid - removes the pending summary and posts the confirmation
func (s *Payments) announcePaid(channelID, summaryID string) {
	if err := s.Session.ChannelMessageDelete(channelID, summaryID); err != nil {
		logger.Error("Failed to delete payment summary:", err)
	}
	if _, err := s.Session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Payment Successful",
				Color:       ColorGreen,
				Description: "Thank you for your payment!",
				Timestamp:   time.Now().Format(time.RFC3339),
			},
		},
	}); err != nil {
		logger.Error("Failed to post payment confirmation:", err)
	}
}

// reportFailure - the two reply paths are mutually exclusive, chosen by
// interaction state: ephemeral while unreplied, plain channel message after
func (s *Payments) reportFailure(i *discordgo.InteractionCreate, replied bool) error {
	if !replied {
		return replyEphemeral(s.Session, i, paymentErrorMessage)
	}
	_, err := s.Session.ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
		Content: paymentErrorMessage,
	})
	return err
}

// paymentOptions - pulls item/amount out of the command data and enforces
// the amount bounds before any remote call
func paymentOptions(i *discordgo.InteractionCreate) (string, decimal.Decimal, error) {
	var (
		item   string
		amount decimal.Decimal
	)
	for _, option := range i.ApplicationCommandData().Options {
		switch option.Name {
		case "item":
			item = option.StringValue()
		case "amount":
			amount = decimal.NewFromFloat(option.FloatValue())
		}
	}
	if err := money.ValidateAmount(amount); err != nil {
		return "", decimal.Zero, err
	}
	return item, amount, nil
}
