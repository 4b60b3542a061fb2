package format

import "testing"

func TestMoney(t *testing.T) {
	cases := []struct {
		symbol string
		value  float64
		want   string
	}{
		{"$", 0, "$0"},
		{"$", 340, "$340"},
		{"", 1250.4, "$1,250"},
		{"€", 1234567.5, "€1,234,568"},
		{"$", -1500, "-$1,500"},
	}
	for _, tc := range cases {
		if got := Money(tc.symbol, tc.value); got != tc.want {
			t.Fatalf("Money(%q, %v): expected %q, got %q", tc.symbol, tc.value, tc.want, got)
		}
	}
}

func TestHoursAndPercent(t *testing.T) {
	if got := Hours(9.6000001); got != "9.6" {
		t.Fatalf("expected 9.6, got %q", got)
	}
	if got := Hours(12); got != "12" {
		t.Fatalf("expected 12, got %q", got)
	}
	if got := Percent(13.5); got != "13.5%" {
		t.Fatalf("expected 13.5%%, got %q", got)
	}
	if got := Round2(41.666666); got != 41.67 {
		t.Fatalf("expected 41.67, got %v", got)
	}
}
