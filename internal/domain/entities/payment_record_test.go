package entities

import "testing"

func TestCanonicalStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want PaymentStatus
	}{
		{"approved", PaymentStatusCompleted},
		{"", PaymentStatusPending},
		{"pending", PaymentStatusPending},
		{"rejected", PaymentStatus("rejected")},
		{"in_process", PaymentStatus("in_process")},
		{"cancelled", PaymentStatus("cancelled")},
	}

	for _, tc := range cases {
		t.Run("raw "+tc.raw, func(t *testing.T) {
			if got := CanonicalStatus(tc.raw); got != tc.want {
				t.Fatalf("CanonicalStatus(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
