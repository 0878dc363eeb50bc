package config

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ClientID          string `env:"CLIENT_ID" envDefault:""`
	ClientSecret      string `env:"CLIENT_SECRET" envDefault:""`
	BotToken          string `env:"BOT_TOKEN" envDefault:""`
	StripePubKey      string `env:"STRIPE_PUB_KEY" envDefault:""`
	StripeSecKey      string `env:"STRIPE_SEC_KEY" envDefault:""`
	OrderLogChannelID string `env:"ORDER_LOG_CHANNEL_ID" envDefault:""`
	OpsAddr           string `env:"OPS_ADDRESS" envDefault:"localhost:8090"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
}

// DiscordConfig - bot credentials and fixed channel routing
type DiscordConfig struct {
	ClientID          string
	ClientSecret      string
	BotToken          string
	OrderLogChannelID string
}

// StripeConfig - payment provider keys and polling cadence
type StripeConfig struct {
	PublishableKey string
	SecretKey      string
	PollInterval   time.Duration
	WatchTimeout   time.Duration
}

// Config - service settings model
type Config struct {
	Discord  DiscordConfig
	Stripe   StripeConfig
	OpsAddr  string
	LogLevel string
}

// Credential shapes enforced at startup. The bot refuses to boot with
// keys that cannot possibly be valid.
var (
	clientIDPattern     = regexp.MustCompile(`^[0-9]{19}$`)
	clientSecretPattern = regexp.MustCompile(`^R_[A-Za-z0-9]{30}$`)
	stripePubPattern    = regexp.MustCompile(`^pk_(live|test)_[0-9a-zA-Z]{99}$`)
	stripeSecPattern    = regexp.MustCompile(`^sk_(live|test)_[0-9a-zA-Z]{99}$`)
	snowflakePattern    = regexp.MustCompile(`^[0-9]{17,20}$`)
)

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		clientID     = pflag.StringP("client_id", "c", args.ClientID, "Discord application client id.")
		clientSecret = pflag.StringP("client_secret", "x", args.ClientSecret, "Discord application client secret.")
		botToken     = pflag.StringP("token", "t", args.BotToken, "Discord bot token.")
		stripePub    = pflag.StringP("stripe_pub", "p", args.StripePubKey, "Stripe publishable key.")
		stripeSec    = pflag.StringP("stripe_sec", "k", args.StripeSecKey, "Stripe secret key.")
		orderLog     = pflag.StringP("order_log", "o", args.OrderLogChannelID, "Channel id receiving order log cards.")
		opsAddr      = pflag.StringP("ops", "a", args.OpsAddr, "Ops server listen address in a form host:port.")
		logLevel     = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
	)
	pflag.Parse()

	return Config{
		Discord: DiscordConfig{
			ClientID:          *clientID,
			ClientSecret:      *clientSecret,
			BotToken:          *botToken,
			OrderLogChannelID: *orderLog,
		},
		Stripe: StripeConfig{
			PublishableKey: *stripePub,
			SecretKey:      *stripeSec,
			PollInterval:   500 * time.Millisecond,
			WatchTimeout:   5 * time.Minute,
		},
		OpsAddr:  *opsAddr,
		LogLevel: *logLevel,
	}
}

// Validate - fails fast on malformed credentials before any network use
func (c Config) Validate() error {
	if !clientIDPattern.MatchString(c.Discord.ClientID) {
		return errors.New("invalid CLIENT_ID: expected 19 digits")
	}
	if !clientSecretPattern.MatchString(c.Discord.ClientSecret) {
		return errors.New("invalid CLIENT_SECRET format")
	}
	if c.Discord.BotToken == "" {
		return errors.New("BOT_TOKEN is required")
	}
	if !snowflakePattern.MatchString(c.Discord.OrderLogChannelID) {
		return errors.New("invalid ORDER_LOG_CHANNEL_ID: expected a channel snowflake")
	}
	if !stripePubPattern.MatchString(c.Stripe.PublishableKey) {
		return errors.New("invalid STRIPE_PUB_KEY format")
	}
	if !stripeSecPattern.MatchString(c.Stripe.SecretKey) {
		return errors.New("invalid STRIPE_SEC_KEY format")
	}
	return nil
}

func DefaultConfig() Config {
	return Config{
		Discord: DiscordConfig{
			OrderLogChannelID: "1407479207193346219",
		},
		Stripe: StripeConfig{
			PollInterval: 500 * time.Millisecond,
			WatchTimeout: 5 * time.Minute,
		},
		OpsAddr:  "localhost:8090",
		LogLevel: "info",
	}
}
