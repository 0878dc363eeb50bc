package client

import "context"

//go:generate mockgen -source=checkout.go -destination=mocks/checkout.go -package=mocks

// CheckoutRequest - everything needed to open a hosted checkout page.
// ChannelID/MessageID tag the session so a paid session can be traced back
// to the summary message it was generated for.
type CheckoutRequest struct {
	Item        string
	AmountCents int64
	ChannelID   string
	MessageID   string
	RedirectURL string
}

// CheckoutSession - provider session state the bot cares about
type CheckoutSession struct {
	ID   string
	URL  string
	Paid bool
}

// CheckoutAPI - payment provider operations consumed by the bot. The
// provider is polled; no webhook listener exists.
type CheckoutAPI interface {
	CreateSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	GetSession(ctx context.Context, id string) (*CheckoutSession, error)
}
