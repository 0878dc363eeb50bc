package models

import (
	"errors"
	"strconv"
	"testing"
)

func TestNewOrderID(t *testing.T) {
	// uniqueness is deliberately not asserted: ids are random draws with
	// no collision check
	for range 1000 {
		id := NewOrderID()
		if len(id) != 4 {
			t.Fatalf("NewOrderID() = %q, want 4 characters", id)
		}
		n, err := strconv.Atoi(id)
		if err != nil {
			t.Fatalf("NewOrderID() = %q, want numeric", id)
		}
		if n < 1 || n > 9999 {
			t.Fatalf("NewOrderID() = %q, want value in [0001, 9999]", id)
		}
	}
}

func TestParseServiceCategory(t *testing.T) {
	testCases := []struct {
		TestName      string
		Raw           string
		Expected      ServiceCategory
		ExpectedError error
	}{
		{
			TestName: "Success. Exact token #1",
			Raw:      "website",
			Expected: CategoryWebsite,
		},
		{
			TestName: "Success. Mixed case #2",
			Raw:      "Editing",
			Expected: CategoryEditing,
		},
		{
			TestName:      "Error. Unknown token #3",
			Raw:           "painting",
			ExpectedError: ErrUnknownCategory,
		},
		{
			TestName:      "Error. Empty token #4",
			Raw:           "",
			ExpectedError: ErrUnknownCategory,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			got, err := ParseServiceCategory(tc.Raw)
			if !errors.Is(err, tc.ExpectedError) {
				t.Fatalf("ParseServiceCategory(%q) error = %v, want %v", tc.Raw, err, tc.ExpectedError)
			}
			if got != tc.Expected {
				t.Errorf("ParseServiceCategory(%q) = %q, want %q", tc.Raw, got, tc.Expected)
			}
		})
	}
}

func TestServiceCategory_Title(t *testing.T) {
	if got := CategoryThumbnail.Title(); got != "Thumbnail" {
		t.Errorf("Title() = %q, want %q", got, "Thumbnail")
	}
}
