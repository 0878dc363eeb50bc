package models

import (
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

// Order statuses as rendered on the order-log card
const (
	OrderStatusUnclaimed   = "Unclaimed"
	OrderStatusClaimed     = "Claimed"
	OrderStatusNegotiating = "Negotiating"
	OrderStatusClosed      = "Closed"
)

// OrderData - a customer order request. There is no store behind this:
// the order lives in the created channel and the rendered cards.
type OrderData struct {
	ID          string
	Kind        ServiceCategory
	CustomerID  string
	Budget      decimal.Decimal
	Description string
	ExtraInfo   string
	Status      string
}

// NewOrderID - draws a display id in [0001, 9999], zero-padded. Ids are
// not checked for collisions; issued ids are not recorded anywhere.
func NewOrderID() string {
	return fmt.Sprintf("%04d", rand.IntN(9999)+1)
}
