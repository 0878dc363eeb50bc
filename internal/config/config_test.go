package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	config := DefaultConfig()
	config.Discord.ClientID = "1234567890123456789"
	config.Discord.ClientSecret = "R_" + strings.Repeat("a", 30)
	config.Discord.BotToken = "token"
	config.Stripe.PublishableKey = "pk_test_" + strings.Repeat("a", 99)
	config.Stripe.SecretKey = "sk_live_" + strings.Repeat("b", 99)
	return config
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		TestName    string
		Mutate      func(*Config)
		ExpectError bool
	}{
		{
			TestName: "Success. Valid credentials #1",
			Mutate:   func(c *Config) {},
		},
		{
			TestName:    "Error. Client id too short #2",
			Mutate:      func(c *Config) { c.Discord.ClientID = "123456" },
			ExpectError: true,
		},
		{
			TestName:    "Error. Client secret missing prefix #3",
			Mutate:      func(c *Config) { c.Discord.ClientSecret = strings.Repeat("a", 32) },
			ExpectError: true,
		},
		{
			TestName:    "Error. Empty bot token #4",
			Mutate:      func(c *Config) { c.Discord.BotToken = "" },
			ExpectError: true,
		},
		{
			TestName:    "Error. Publishable key wrong mode #5",
			Mutate:      func(c *Config) { c.Stripe.PublishableKey = "pk_dev_" + strings.Repeat("a", 99) },
			ExpectError: true,
		},
		{
			TestName:    "Error. Secret key too short #6",
			Mutate:      func(c *Config) { c.Stripe.SecretKey = "sk_test_" + strings.Repeat("b", 42) },
			ExpectError: true,
		},
		{
			TestName:    "Error. Order log channel not a snowflake #7",
			Mutate:      func(c *Config) { c.Discord.OrderLogChannelID = "general" },
			ExpectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			config := validConfig()
			tc.Mutate(&config)
			err := config.Validate()
			if tc.ExpectError && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tc.ExpectError && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
