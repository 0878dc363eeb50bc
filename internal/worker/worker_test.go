package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/WitherStore/order-bot/internal/client"
	"github.com/WitherStore/order-bot/internal/client/mocks"
	"github.com/WitherStore/order-bot/internal/config"
	"github.com/WitherStore/order-bot/internal/logger"
	"go.uber.org/mock/gomock"
)

func TestPaymentWatcher_Run_Paid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCheckout := mocks.NewMockCheckoutAPI(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}

	watcher := NewPaymentWatcher(mockCheckout, time.Millisecond, time.Second)

	polls := 0
	// Times(3) doubles as the idempotence check: once paid is observed,
	// no further session retrievals may happen
	mockCheckout.EXPECT().GetSession(gomock.Any(), "sess1").DoAndReturn(
		func(_ context.Context, _ string) (*client.CheckoutSession, error) {
			polls++
			return &client.CheckoutSession{ID: "sess1", Paid: polls == 3}, nil
		}).Times(3)

	paidCount := 0
	watcher.Run(context.Background(), "sess1", func() { paidCount++ })

	if polls != 3 {
		t.Errorf("polls = %d, want 3", polls)
	}
	if paidCount != 1 {
		t.Errorf("onPaid fired %d times, want exactly once", paidCount)
	}
}

func TestPaymentWatcher_Run_ErrorsKeepPolling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCheckout := mocks.NewMockCheckoutAPI(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}

	watcher := NewPaymentWatcher(mockCheckout, time.Millisecond, time.Second)

	polls := 0
	mockCheckout.EXPECT().GetSession(gomock.Any(), "sess1").DoAndReturn(
		func(_ context.Context, _ string) (*client.CheckoutSession, error) {
			polls++
			if polls < 3 {
				return nil, errors.New("transient stripe error")
			}
			return &client.CheckoutSession{ID: "sess1", Paid: true}, nil
		}).Times(3)

	paidCount := 0
	watcher.Run(context.Background(), "sess1", func() { paidCount++ })

	if paidCount != 1 {
		t.Errorf("onPaid fired %d times, want exactly once", paidCount)
	}
}

func TestPaymentWatcher_Run_Expiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCheckout := mocks.NewMockCheckoutAPI(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}

	watcher := NewPaymentWatcher(mockCheckout, time.Millisecond, 25*time.Millisecond)

	// never paid: the watch self-terminates at the timeout and takes no
	// further action
	mockCheckout.EXPECT().GetSession(gomock.Any(), "sess1").
		Return(&client.CheckoutSession{ID: "sess1", Paid: false}, nil).AnyTimes()

	done := make(chan struct{})
	go func() {
		watcher.Run(context.Background(), "sess1", func() {
			t.Error("onPaid fired on an unpaid session")
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop at the expiry timeout")
	}
}

func TestPaymentWatcher_Run_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCheckout := mocks.NewMockCheckoutAPI(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}

	watcher := NewPaymentWatcher(mockCheckout, time.Hour, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// no polls happen: the canceled context wins before the first tick
	watcher.Run(ctx, "sess1", func() {
		t.Error("onPaid fired after cancellation")
	})
}
