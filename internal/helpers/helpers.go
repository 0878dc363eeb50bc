package helpers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// MessageURL - builds the deep link to a message ("@me" for direct messages)
func MessageURL(guildID, channelID, messageID string) string {
	if guildID == "" {
		guildID = "@me"
	}
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guildID, channelID, messageID)
}

// ChannelURL - builds the deep link to a channel
func ChannelURL(guildID, channelID string) string {
	if guildID == "" {
		guildID = "@me"
	}
	return fmt.Sprintf("https://discord.com/channels/%s/%s", guildID, channelID)
}

// ModalValue - extracts a text input value from a submitted modal by field id
func ModalValue(data discordgo.ModalSubmitInteractionData, fieldID string) string {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actionsRow.Components {
			input, ok := component.(*discordgo.TextInput)
			if ok && input.CustomID == fieldID {
				return input.Value
			}
		}
	}
	return ""
}
