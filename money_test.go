package daybook

import "testing"

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{in: "7.50", want: USD(7.5)},
		{in: "0", want: USD(0)},
		{in: "-3.25", want: USD(-3.25)},
		{in: "10", want: USD(10)},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseMoney(tc.in, "USD")
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMoney(%q): want error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMoney(%q): unexpected error %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseMoney(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMoney_Mul(t *testing.T) {
	// 3 × 10.00 must be exactly 30.00, no float drift.
	got := USD(10).Mul(3)
	if !got.Equal(USD(30)) {
		t.Errorf("10 USD × 3 = %v, want 30 USD", got)
	}
	// exactness on a value that is not representable in binary
	got = USD(0.6).Mul(3)
	if !got.Equal(USD(1.8)) {
		t.Errorf("0.60 USD × 3 = %v, want 1.80 USD", got)
	}
}

func TestMoney_Round_halfEven(t *testing.T) {
	testCases := []struct {
		in   float64
		want float64
	}{
		{2.345, 2.34}, // half rounds to even neighbour
		{2.355, 2.36},
		{2.344, 2.34},
		{2.346, 2.35},
		{-2.345, -2.34},
	}
	for _, tc := range testCases {
		if got := USD(tc.in).Round(); !got.Equal(USD(tc.want)) {
			t.Errorf("Round(%v) = %v, want %v", tc.in, got, USD(tc.want))
		}
	}
}

func TestMoney_StringFixed(t *testing.T) {
	if got := USD(3).StringFixed(); got != "3.00" {
		t.Errorf("StringFixed(3 USD) = %q, want \"3.00\"", got)
	}
	if got := USD(0.6).StringFixed(); got != "0.60" {
		t.Errorf("StringFixed(0.6 USD) = %q, want \"0.60\"", got)
	}
}

func TestMoney_AddSub_weakCurrency(t *testing.T) {
	// the zero Money has no currency and must merge weakly
	var zero Money
	got := zero.Add(USD(5))
	if got.Currency() != "USD" || !got.Equal(USD(5)) {
		t.Errorf("zero + 5 USD = %v (%s), want 5 USD", got, got.Currency())
	}
	if got := USD(18).Sub(USD(50)); !got.Equal(USD(-32)) {
		t.Errorf("18 - 50 = %v, want -32 USD", got)
	}
}

func TestValidateCurrency(t *testing.T) {
	if err := ValidateCurrency("USD"); err != nil {
		t.Errorf("ValidateCurrency(USD): %v", err)
	}
	if err := ValidateCurrency("NOPE"); err == nil {
		t.Error("ValidateCurrency(NOPE): want error, got nil")
	}
}
