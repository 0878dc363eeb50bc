package worker

import (
	"context"
	"sync"
	"time"

	"github.com/WitherStore/order-bot/internal/client"
	"github.com/WitherStore/order-bot/internal/logger"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "stripe-checkout",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker", name, "changed state:", from, "->", to)
		},
	})
}

// PaymentWatcher - polls checkout sessions until they are paid or expire.
// Every Watch call owns an independent loop; the breaker is the only piece
// shared between concurrent watches, and no registry of them is kept.
type PaymentWatcher struct {
	Checkout     client.CheckoutAPI
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	PollInterval time.Duration
	WatchTimeout time.Duration
}

// NewPaymentWatcher - constructor for the payment completion poller
func NewPaymentWatcher(checkout client.CheckoutAPI, pollInterval, watchTimeout time.Duration) *PaymentWatcher {
	return &PaymentWatcher{
		Checkout:     checkout,
		Breaker:      InitCircuitBreaker(),
		PollInterval: pollInterval,
		WatchTimeout: watchTimeout,
	}
}

// Watch - runs the poll loop in the background
func (w *PaymentWatcher) Watch(ctx context.Context, sessionID string, onPaid func()) {
	w.WaitGroup.Add(1)
	go func() {
		defer w.WaitGroup.Done()
		w.Run(ctx, sessionID, onPaid)
	}()
}

// Wait - blocks until all in-flight watches have finished
func (w *PaymentWatcher) Wait() {
	w.WaitGroup.Wait()
}

// Run - the poll loop. Polls the session every PollInterval; onPaid fires
// at most once. The loop hard-stops after WatchTimeout with no notification
// to the user (expiry is silent, matching the payment command contract).
// Paid-detection and expiry resolve through the same select, so whichever
// fires first wins and the other is a no-op.
func (w *PaymentWatcher) Run(ctx context.Context, sessionID string, onPaid func()) {
	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	expiry := time.NewTimer(w.WatchTimeout)
	defer expiry.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("PaymentWatcher stopped", "session", sessionID)
			return
		case <-expiry.C:
			logger.Warn("PaymentWatcher expired without payment", "session", sessionID)
			return
		case <-ticker.C:
			if w.Breaker.State() == gobreaker.StateOpen {
				logger.Warn(w.Breaker.Name(), "unavailable. Waiting...")
				continue
			}
			paid, err := w.pollOnce(ctx, sessionID)
			if err != nil {
				logger.Error("Error polling checkout session", err)
				continue
			}
			if paid {
				onPaid()
				return
			}
		}
	}
}

func (w *PaymentWatcher) pollOnce(ctx context.Context, sessionID string) (bool, error) {
	result, err := w.Breaker.Execute(func() (interface{}, error) {
		return w.Checkout.GetSession(ctx, sessionID)
	})
	if err != nil {
		return false, err
	}
	session := result.(*client.CheckoutSession)
	return session.Paid, nil
}
