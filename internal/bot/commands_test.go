package bot

import (
	"errors"
	"testing"

	"github.com/WitherStore/order-bot/internal/config"
	"github.com/WitherStore/order-bot/internal/discord/mocks"
	"github.com/WitherStore/order-bot/internal/logger"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/mock/gomock"
)

func TestCommands_Schema(t *testing.T) {
	commands := Commands()
	if len(commands) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(commands))
	}

	order := commands[0]
	if order.Name != "order" || len(order.Options) != 0 {
		t.Errorf("order command schema is wrong: %+v", order)
	}

	payment := commands[1]
	if payment.Name != "payment" || len(payment.Options) != 2 {
		t.Fatalf("payment command schema is wrong: %+v", payment)
	}
	item := payment.Options[0]
	if item.Name != "item" || item.Type != discordgo.ApplicationCommandOptionString || !item.Required {
		t.Errorf("item option schema is wrong: %+v", item)
	}
	amount := payment.Options[1]
	if amount.Name != "amount" || amount.Type != discordgo.ApplicationCommandOptionNumber || !amount.Required {
		t.Errorf("amount option schema is wrong: %+v", amount)
	}
	// the schema bound rejects invalid amounts before any handler runs
	if amount.MinValue == nil || *amount.MinValue != 0.58 {
		t.Error("amount minimum must be 0.58")
	}
	if amount.MaxValue != 10000.0 {
		t.Error("amount maximum must be 10000.0")
	}
}

func TestRegisterCommands_IsolatesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSession := mocks.NewMockSession(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}

	// guild2 fails; ctrl.Finish asserts the other guilds still registered
	mockSession.EXPECT().ApplicationCommandBulkOverwrite("app1", "guild1", gomock.Any()).
		Return(nil, nil)
	mockSession.EXPECT().ApplicationCommandBulkOverwrite("app1", "guild2", gomock.Any()).
		Return(nil, errors.New("missing access"))
	mockSession.EXPECT().ApplicationCommandBulkOverwrite("app1", "guild3", gomock.Any()).
		Return(nil, nil)

	RegisterCommands(mockSession, "app1", []string{"guild1", "guild2", "guild3"})
}
