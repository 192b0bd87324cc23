package domain

import "testing"

func TestPenceGBP(t *testing.T) {
	tests := []struct {
		amount Pence
		want   string
	}{
		{0, "£0.00"},
		{5, "£0.05"},
		{1050, "£10.50"},
		{21000, "£210.00"},
		{22200, "£222.00"},
		{-1050, "-£10.50"},
	}

	for _, tt := range tests {
		if got := tt.amount.GBP(); got != tt.want {
			t.Errorf("Pence(%d).GBP() = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestPenceTimes(t *testing.T) {
	if got := Pence(1050).Times(20); got != 21000 {
		t.Errorf("Times(20) = %d, want 21000", got)
	}
	if got := Pence(1200).Times(0); got != 0 {
		t.Errorf("Times(0) = %d, want 0", got)
	}
}
