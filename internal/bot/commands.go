package bot

import (
	"github.com/WitherStore/order-bot/internal/discord"
	"github.com/WitherStore/order-bot/internal/logger"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/sync/errgroup"
)

// Commands - the full remote command set. Registration is a bulk
// overwrite, so re-running it on every ready event is idempotent.
func Commands() []*discordgo.ApplicationCommand {
	minAmount := 0.58
	adminOnly := int64(discordgo.PermissionAdministrator)

	return []*discordgo.ApplicationCommand{
		{
			Name:        "order",
			Description: "Make an order",
		},
		{
			Name:                     "payment",
			Description:              "Generates payment url",
			DefaultMemberPermissions: &adminOnly,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "item",
					Description: "Item to pay for",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "amount",
					Description: "Amount to pay (in USD). Must be greater than $0.58 to account for transaction fees.",
					Required:    true,
					MinValue:    &minAmount,
					MaxValue:    10000.0,
				},
			},
		},
	}
}

// RegisterCommands - overwrites the command set in every guild. Each guild
// registers independently: one guild failing must not block the rest, so
// failures are captured and logged per guild instead of aborting the fan-out.
func RegisterCommands(session discord.Session, appID string, guildIDs []string) {
	var group errgroup.Group
	for _, guildID := range guildIDs {
		group.Go(func() error {
			if _, err := session.ApplicationCommandBulkOverwrite(appID, guildID, Commands()); err != nil {
				logger.Error("Failed to register commands for guild", guildID, err)
			}
			return nil
		})
	}
	_ = group.Wait()
}
