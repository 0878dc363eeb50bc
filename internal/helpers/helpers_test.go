package helpers

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestMessageURL(t *testing.T) {
	testCases := []struct {
		TestName  string
		GuildID   string
		ChannelID string
		MessageID string
		Expected  string
	}{
		{
			TestName:  "Guild message #1",
			GuildID:   "100",
			ChannelID: "200",
			MessageID: "300",
			Expected:  "https://discord.com/channels/100/200/300",
		},
		{
			TestName:  "Direct message #2",
			GuildID:   "",
			ChannelID: "200",
			MessageID: "300",
			Expected:  "https://discord.com/channels/@me/200/300",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			if got := MessageURL(tc.GuildID, tc.ChannelID, tc.MessageID); got != tc.Expected {
				t.Errorf("MessageURL() = %q, want %q", got, tc.Expected)
			}
		})
	}
}

func TestChannelURL(t *testing.T) {
	if got := ChannelURL("100", "200"); got != "https://discord.com/channels/100/200" {
		t.Errorf("ChannelURL() = %q", got)
	}
}

func TestModalValue(t *testing.T) {
	data := discordgo.ModalSubmitInteractionData{
		CustomID: "order_modal_website",
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "budget", Value: "40"},
			}},
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "description", Value: "twelve chars"},
			}},
		},
	}

	if got := ModalValue(data, "budget"); got != "40" {
		t.Errorf(`ModalValue(budget) = %q, want "40"`, got)
	}
	if got := ModalValue(data, "description"); got != "twelve chars" {
		t.Errorf(`ModalValue(description) = %q, want "twelve chars"`, got)
	}
	if got := ModalValue(data, "extra_info"); got != "" {
		t.Errorf(`ModalValue(extra_info) = %q, want ""`, got)
	}
}
