// Package customid encodes and decodes the string identifiers carried by
// message components and modals. Discord round-trips these ids between the
// bot and the user's client, so the chosen category survives the button
// press and the modal submit without any server-side state.
package customid

import (
	"errors"
	"strings"

	"github.com/WitherStore/order-bot/internal/models"
)

// Kind - which component family an identifier belongs to
type Kind int

const (
	KindServiceButton Kind = iota // category picker button
	KindOrderModal                // order intake form
)

// Static component ids rendered without handlers (staff-side buttons)
const (
	OrderLogClaim     = "ol_claim"
	OrderLogNegotiate = "ol_negotiate"
	OrderLogMoreInfo  = "ol_more_info"
	OrderLogDelete    = "ol_delete"

	OrderPay   = "or_pay"
	OrderClose = "or_close"
)

// Modal field ids
const (
	FieldBudget      = "budget"
	FieldDescription = "description"
	FieldExtraInfo   = "extra_info"
)

var ErrMalformedID = errors.New("malformed custom id")

// ID - a decoded category-carrying component identifier
type ID struct {
	Kind     Kind
	Category models.ServiceCategory
}

// ServiceButton - id for a category picker button
func ServiceButton(c models.ServiceCategory) ID {
	return ID{Kind: KindServiceButton, Category: c}
}

// OrderModal - id for the intake form of a category
func OrderModal(c models.ServiceCategory) ID {
	return ID{Kind: KindOrderModal, Category: c}
}

func (id ID) String() string {
	switch id.Kind {
	case KindServiceButton:
		return "order_svc_" + string(id.Category)
	case KindOrderModal:
		return "order_modal_" + string(id.Category)
	}
	return ""
}

// Parse - decodes a raw component identifier. Identifiers that are not
// ours or that carry an unknown category are rejected.
func Parse(raw string) (ID, error) {
	parts := strings.SplitN(raw, "_", 3)
	if len(parts) != 3 || parts[0] != "order" {
		return ID{}, ErrMalformedID
	}

	var kind Kind
	switch parts[1] {
	case "svc":
		kind = KindServiceButton
	case "modal":
		kind = KindOrderModal
	default:
		return ID{}, ErrMalformedID
	}

	category, err := models.ParseServiceCategory(parts[2])
	if err != nil {
		return ID{}, err
	}
	return ID{Kind: kind, Category: category}, nil
}

// IsServiceButton - true when raw decodes to a picker button id
func IsServiceButton(raw string) bool {
	id, err := Parse(raw)
	return err == nil && id.Kind == KindServiceButton
}

// IsOrderModal - true when raw decodes to an intake form id
func IsOrderModal(raw string) bool {
	id, err := Parse(raw)
	return err == nil && id.Kind == KindOrderModal
}
