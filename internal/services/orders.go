package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/WitherStore/order-bot/internal/customid"
	"github.com/WitherStore/order-bot/internal/discord"
	"github.com/WitherStore/order-bot/internal/helpers"
	"github.com/WitherStore/order-bot/internal/logger"
	"github.com/WitherStore/order-bot/internal/models"
	"github.com/WitherStore/order-bot/internal/money"
	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
)

// Discord embed accent colors
const (
	ColorBlurple = 0x5865F2
	ColorYellow  = 0xFEE75C
	ColorGreen   = 0x57F287
)

var (
	ErrNoCategoryChannel = errors.New("no matching order category channel")
	ErrNotInGuild        = errors.New("interaction outside a guild")
)

// Orders - the order intake flow: category picker, intake modal, private
// channel creation and the two order cards. Order state never leaves
// Discord; the created channel and the rendered cards are the record.
type Orders struct {
	Session           discord.Session
	OrderLogChannelID string
}

// NewOrders - service constructor
func NewOrders(session discord.Session, orderLogChannelID string) *Orders {
	return &Orders{Session: session, OrderLogChannelID: orderLogChannelID}
}

// HandleCommand - the /order command: replies ephemerally with one picker
// button per service category, each in its own row
func (s *Orders) HandleCommand(i *discordgo.InteractionCreate) error {
	rows := make([]discordgo.MessageComponent, 0, len(models.Categories()))
	for _, category := range models.Categories() {
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: customid.ServiceButton(category).String(),
					Label:    category.Label(),
					Emoji:    &discordgo.ComponentEmoji{Name: category.Emoji()},
					Style:    discordgo.SecondaryButton,
				},
			},
		})
	}

	return s.Session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags:      discordgo.MessageFlagsEphemeral,
			Components: rows,
		},
	})
}

// HandleCategoryButton - a picker button press: opens the intake modal with
// the chosen category encoded in its id, so the submit handler can recover
// it without any server-side state
func (s *Orders) HandleCategoryButton(i *discordgo.InteractionCreate) error {
	id, err := customid.Parse(i.MessageComponentData().CustomID)
	if err != nil {
		return err
	}

	return s.Session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: customid.OrderModal(id.Category).String(),
			Title:    fmt.Sprintf("Order: %s", id.Category.Title()),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    customid.FieldBudget,
						Label:       "Budget (in USD):",
						Style:       discordgo.TextInputShort,
						Required:    true,
						Placeholder: "25",
						MinLength:   1,
						MaxLength:   6,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  customid.FieldDescription,
						Label:     "Description:",
						Style:     discordgo.TextInputParagraph,
						Required:  true,
						MinLength: 10,
						MaxLength: 4000,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID: customid.FieldExtraInfo,
						Label:    "Extra Information (Style, Tech-stack, etc):",
						Style:    discordgo.TextInputParagraph,
						Required: false,
					},
				}},
			},
		},
	})
}

// HandleModalSubmit - the intake form submission: resolves the category
// channel, creates the private order channel and posts both order cards.
// There is no compensation on partial failure: a created channel stays
// even if a later card post fails.
func (s *Orders) HandleModalSubmit(i *discordgo.InteractionCreate) error {
	if i.GuildID == "" || i.Member == nil {
		return ErrNotInGuild
	}

	data := i.ModalSubmitData()
	id, err := customid.Parse(data.CustomID)
	if err != nil {
		return err
	}

	order := models.OrderData{
		ID:          models.NewOrderID(),
		Kind:        id.Category,
		CustomerID:  i.Member.User.ID,
		Budget:      parseBudget(helpers.ModalValue(data, customid.FieldBudget)),
		Description: helpers.ModalValue(data, customid.FieldDescription),
		ExtraInfo:   helpers.ModalValue(data, customid.FieldExtraInfo),
		Status:      models.OrderStatusUnclaimed,
	}

	parent, err := s.resolveCategoryChannel(i.GuildID, order.Kind)
	if err != nil {
		logger.Warn("Failed to resolve order category channel:", err)
		return replyEphemeral(s.Session, i, "Failed to create order. Please try again later.")
	}

	channel, err := s.Session.GuildChannelCreateComplex(i.GuildID, discordgo.GuildChannelCreateData{
		Name:     "order-" + order.ID,
		Type:     discordgo.ChannelTypeGuildText,
		ParentID: parent.ID,
		PermissionOverwrites: []*discordgo.PermissionOverwrite{
			{
				// @everyone shares its id with the guild
				ID:   i.GuildID,
				Type: discordgo.PermissionOverwriteTypeRole,
				Deny: discordgo.PermissionViewChannel,
			},
			{
				ID:   order.CustomerID,
				Type: discordgo.PermissionOverwriteTypeMember,
				Allow: discordgo.PermissionViewChannel |
					discordgo.PermissionSendMessages |
					discordgo.PermissionEmbedLinks |
					discordgo.PermissionAttachFiles |
					discordgo.PermissionReadMessageHistory,
			},
		},
	})
	if err != nil {
		logger.Error("Failed to create order channel:", err)
		return replyEphemeral(s.Session, i, "Failed to create order. Please try again later.")
	}

	if err := replyEphemeral(s.Session, i, fmt.Sprintf("Your order request has been created. You can view your order at <#%s>.", channel.ID)); err != nil {
		logger.Error("Failed to confirm order to customer:", err)
	}

	if _, err := s.Session.ChannelMessageSendComplex(s.OrderLogChannelID, s.orderLogCard(i, order, channel)); err != nil {
		logger.Error("Failed to post order log card:", err)
		return err
	}

	if _, err := s.Session.ChannelMessageSendComplex(channel.ID, orderChannelCard(order)); err != nil {
		logger.Error("Failed to post order details card:", err)
		return err
	}
	return nil
}

// resolveCategoryChannel - finds a guild category whose name contains both
// "order" and the service category name, case-insensitive
func (s *Orders) resolveCategoryChannel(guildID string, kind models.ServiceCategory) (*discordgo.Channel, error) {
	channels, err := s.Session.GuildChannels(guildID)
	if err != nil {
		return nil, err
	}
	for _, channel := range channels {
		if channel.Type != discordgo.ChannelTypeGuildCategory {
			continue
		}
		name := strings.ToLower(channel.Name)
		if strings.Contains(name, "order") && strings.Contains(name, string(kind)) {
			return channel, nil
		}
	}
	return nil, ErrNoCategoryChannel
}

// replyEphemeral - a plain text reply visible only to the invoking user
func replyEphemeral(session discord.Session, i *discordgo.InteractionCreate, content string) error {
	return session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags:   discordgo.MessageFlagsEphemeral,
			Content: content,
		},
	})
}

// orderLogCard - the staff-facing card posted to the order log channel.
// The action row is rendered only; claim handling is staff workflow done
// by hand today.
func (s *Orders) orderLogCard(i *discordgo.InteractionCreate, order models.OrderData, channel *discordgo.Channel) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       fmt.Sprintf("🔔 New Order — %s — %s", order.Kind.Title(), order.ID),
				Color:       ColorBlurple,
				Timestamp:   time.Now().Format(time.RFC3339),
				Description: fmt.Sprintf("<@%s> has placed an order.", order.CustomerID),
				URL:         helpers.ChannelURL(i.GuildID, channel.ID),
				Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: i.Member.User.AvatarURL("")},
				Fields: []*discordgo.MessageEmbedField{
					{Name: "Status: ", Value: order.Status},
					{Name: "Budget (in USD): ", Value: money.FormatUSD(order.Budget)},
					{Name: "Description: ", Value: order.Description},
				},
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: customid.OrderLogClaim,
					Label:    "Claim",
					Emoji:    &discordgo.ComponentEmoji{Name: "✅"},
					Style:    discordgo.SecondaryButton,
				},
				discordgo.Button{
					CustomID: customid.OrderLogNegotiate,
					Label:    "Negotiate",
					Emoji:    &discordgo.ComponentEmoji{Name: "🤝"},
					Style:    discordgo.SecondaryButton,
				},
				discordgo.Button{
					CustomID: customid.OrderLogMoreInfo,
					Label:    "More Information",
					Emoji:    &discordgo.ComponentEmoji{Name: "ℹ️"},
					Style:    discordgo.SecondaryButton,
				},
				discordgo.Button{
					CustomID: customid.OrderLogDelete,
					Label:    "Delete",
					Emoji:    &discordgo.ComponentEmoji{Name: "🗑️"},
					Style:    discordgo.DangerButton,
				},
			}},
		},
	}
}

// orderChannelCard - the full order details posted inside the new channel
func orderChannelCard(order models.OrderData) *discordgo.MessageSend {
	extraInfo := order.ExtraInfo
	if extraInfo == "" {
		extraInfo = "*No additional information provided*"
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:     "Order Request",
				Color:     ColorBlurple,
				Timestamp: time.Now().Format(time.RFC3339),
				Fields: []*discordgo.MessageEmbedField{
					{Name: "Customer", Value: fmt.Sprintf("<@%s>", order.CustomerID)},
					{Name: "Budget", Value: fmt.Sprintf("$%s USD", order.Budget.StringFixed(2))},
					{Name: "Description", Value: order.Description},
					{Name: "Additional Information", Value: extraInfo},
					{Name: "⎯⎯⎯", Value: ""},
					{Name: "Designated Freelancer: ", Value: "N/A", Inline: true},
					{Name: "Quoted Price: ", Value: "N/A", Inline: true},
				},
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: customid.OrderPay,
					Label:    "Pay",
					Emoji:    &discordgo.ComponentEmoji{Name: "💳"},
					Style:    discordgo.SecondaryButton,
					Disabled: true,
				},
				discordgo.Button{
					CustomID: customid.OrderClose,
					Label:    "Close",
					Emoji:    &discordgo.ComponentEmoji{Name: "❌"},
					Style:    discordgo.SecondaryButton,
				},
			}},
		},
	}
}

// parseBudget - budgets come from a free-text modal field; anything that
// does not parse renders as $0.00 rather than failing the order
func parseBudget(raw string) decimal.Decimal {
	budget, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		logger.Warn("Unparseable budget value:", raw)
		return decimal.Zero
	}
	return budget
}
