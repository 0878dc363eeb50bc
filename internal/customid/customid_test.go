package customid

import (
	"errors"
	"testing"

	"github.com/WitherStore/order-bot/internal/models"
	"github.com/google/go-cmp/cmp"
)

func TestCustomID_RoundTrip(t *testing.T) {
	for _, category := range models.Categories() {
		for _, id := range []ID{ServiceButton(category), OrderModal(category)} {
			decoded, err := Parse(id.String())
			if err != nil {
				t.Errorf("Parse(%q): unexpected error: %v", id.String(), err)
				continue
			}
			if diff := cmp.Diff(id, decoded); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", id.String(), diff)
			}
		}
	}
}

func TestCustomID_String(t *testing.T) {
	testCases := []struct {
		TestName string
		ID       ID
		Expected string
	}{
		{
			TestName: "Service button #1",
			ID:       ServiceButton(models.CategoryWebsite),
			Expected: "order_svc_website",
		},
		{
			TestName: "Order modal #2",
			ID:       OrderModal(models.CategoryEditing),
			Expected: "order_modal_editing",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			if got := tc.ID.String(); got != tc.Expected {
				t.Errorf("String() = %q, want %q", got, tc.Expected)
			}
		})
	}
}

func TestCustomID_ParseErrors(t *testing.T) {
	testCases := []struct {
		TestName      string
		Raw           string
		ExpectedError error
	}{
		{
			TestName:      "Error. Empty id #1",
			Raw:           "",
			ExpectedError: ErrMalformedID,
		},
		{
			TestName:      "Error. Foreign prefix #2",
			Raw:           "ticket_svc_website",
			ExpectedError: ErrMalformedID,
		},
		{
			TestName:      "Error. Unknown kind #3",
			Raw:           "order_wat_website",
			ExpectedError: ErrMalformedID,
		},
		{
			TestName:      "Error. Unknown category #4",
			Raw:           "order_svc_painting",
			ExpectedError: models.ErrUnknownCategory,
		},
		{
			TestName:      "Error. Missing category #5",
			Raw:           "order_svc",
			ExpectedError: ErrMalformedID,
		},
		{
			TestName:      "Error. Render-only button id #6",
			Raw:           "ol_claim",
			ExpectedError: ErrMalformedID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			if _, err := Parse(tc.Raw); !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Parse(%q) error = %v, want %v", tc.Raw, err, tc.ExpectedError)
			}
		})
	}
}

func TestCustomID_Predicates(t *testing.T) {
	if !IsServiceButton("order_svc_plugins") {
		t.Error("IsServiceButton(order_svc_plugins) = false, want true")
	}
	if IsServiceButton("order_modal_plugins") {
		t.Error("IsServiceButton(order_modal_plugins) = true, want false")
	}
	if !IsOrderModal("order_modal_thumbnail") {
		t.Error("IsOrderModal(order_modal_thumbnail) = false, want true")
	}
	if IsOrderModal("or_pay") {
		t.Error("IsOrderModal(or_pay) = true, want false")
	}
}
