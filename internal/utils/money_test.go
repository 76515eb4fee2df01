package utils

import "testing"

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"253.50", 253.50, false},
		{" 1,250.00 ", 1250, false},
		{"$600", 600, false},
		{"", 0, false}, // missing price is a valid zero
		{"abc", 0, true},
		{"12x", 0, true},
	}
	for _, tc := range cases {
		got, err := ParsePrice(tc.in)
		if tc.wantErr && err == nil {
			t.Fatalf("ParsePrice(%q): expected error", tc.in)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("ParsePrice(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParsePrice(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRoundMoney(t *testing.T) {
	if got := RoundMoney(33.336); got != 33.34 {
		t.Fatalf("expected 33.34, got %v", got)
	}
	if got := RoundMoney(684.449999); got != 684.45 {
		t.Fatalf("expected 684.45, got %v", got)
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(800); got != "800.00" {
		t.Fatalf("expected 800.00, got %s", got)
	}
}
