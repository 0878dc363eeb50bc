package client

import (
	"context"
	"net/http"
	"time"

	"github.com/WitherStore/order-bot/internal/logger"
	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// Checkout - Stripe-backed implementation of CheckoutAPI. A local rate
// limiter sits in front of every call and backs off when Stripe answers 429.
type Checkout struct {
	Limiter *RateLimiter
}

// NewCheckout - configures the global Stripe key and returns the client
func NewCheckout(secretKey string) *Checkout {
	stripe.Key = secretKey
	return &Checkout{Limiter: NewRateLimiter()}
}

func (c *Checkout) CreateSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Item),
					},
					UnitAmount: stripe.Int64(req.AmountCents),
				},
			},
		},
		// both outcomes land the customer back on the summary message
		SuccessURL: stripe.String(req.RedirectURL),
		CancelURL:  stripe.String(req.RedirectURL),
	}
	params.Context = ctx
	params.AddMetadata("discord_channel_id", req.ChannelID)
	params.AddMetadata("discord_message_id", req.MessageID)

	s, err := session.New(params)
	if err != nil {
		c.handleRateLimit(err)
		return nil, errors.Wrap(err, "create checkout session")
	}
	return convertSession(s), nil
}

func (c *Checkout) GetSession(ctx context.Context, id string) (*CheckoutSession, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	s, err := session.Get(id, params)
	if err != nil {
		c.handleRateLimit(err)
		return nil, errors.Wrap(err, "retrieve checkout session")
	}
	return convertSession(s), nil
}

func (c *Checkout) handleRateLimit(err error) {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusTooManyRequests {
		logger.Warn("Too many requests to Stripe, backing off")
		c.Limiter.BlockFor(time.Minute)
	}
}

func convertSession(s *stripe.CheckoutSession) *CheckoutSession {
	return &CheckoutSession{
		ID:   s.ID,
		URL:  s.URL,
		Paid: s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
	}
}
