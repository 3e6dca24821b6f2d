package invoice

import (
	"testing"
	"time"
)

func TestStatus_IsTerminal(t *testing.T) {
	tests := map[Status]bool{
		StatusPending:   false,
		StatusSubmitted: false,
		StatusPaid:      true,
		StatusFailed:    true,
		StatusExpired:   true,
	}
	for status, want := range tests {
		if got := status.IsTerminal(); got != want {
			t.Errorf("%s.IsTerminal() = %v, want %v", status, got, want)
		}
	}
}

func TestInvoice_IsNative(t *testing.T) {
	inv := &Invoice{TokenAddress: NativeTokenAddress}
	if !inv.IsNative() {
		t.Error("zero address should be native")
	}
	inv.TokenAddress = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	if inv.IsNative() {
		t.Error("token address should not be native")
	}
}

func TestInvoice_IsOverdue(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	tests := []struct {
		name string
		inv  Invoice
		want bool
	}{
		{"pending past expiry", Invoice{Status: StatusPending, ExpiresAt: &past}, true},
		{"pending before expiry", Invoice{Status: StatusPending, ExpiresAt: &future}, false},
		{"no expiry", Invoice{Status: StatusPending}, false},
		{"tx attached", Invoice{Status: StatusPending, TxHash: "0xabc", ExpiresAt: &past}, false},
		{"submitted", Invoice{Status: StatusSubmitted, ExpiresAt: &past}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inv.IsOverdue(now); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeAddress(t *testing.T) {
	got := NormalizeAddress("  0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48 ")
	if got != "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48" {
		t.Errorf("NormalizeAddress() = %q", got)
	}
}
