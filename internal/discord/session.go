// Package discord narrows the discordgo surface the services depend on,
// so flows can be exercised against a mock instead of a live gateway.
package discord

import "github.com/bwmarrin/discordgo"

//go:generate mockgen -source=session.go -destination=mocks/session.go -package=mocks

// Session - the subset of *discordgo.Session the bot consumes
type Session interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID string, messageID string, options ...discordgo.RequestOption) error
}

var _ Session = (*discordgo.Session)(nil)
