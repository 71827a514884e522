package orders

import (
	"strings"
	"testing"
)

func TestFormatterFormat(t *testing.T) {
	f := NewFormatter("INR")
	if f.Currency() != "INR" {
		t.Fatalf("Currency() = %q, want INR", f.Currency())
	}
	got := f.Format(1250, "en", "IN")
	if !strings.Contains(got, "₹") {
		t.Fatalf("Format = %q, want rupee symbol", got)
	}
	if !strings.Contains(got, "1,250") {
		t.Fatalf("Format = %q, want grouped digits", got)
	}
}

func TestNewFormatterFallsBackToINR(t *testing.T) {
	if got := NewFormatter("not-a-currency").Currency(); got != "INR" {
		t.Fatalf("Currency() = %q, want INR", got)
	}
	if got := NewFormatter("usd").Currency(); got != "USD" {
		t.Fatalf("Currency() = %q, want USD", got)
	}
}

func TestResolveTag(t *testing.T) {
	cases := []struct {
		locale, country, want string
	}{
		{locale: "en", country: "", want: "en"},
		{locale: "hi", country: "IN", want: "hi-IN"},
		{locale: "en", country: "zz!", want: "en"},
		{locale: "???", country: "", want: "en"},
	}
	for _, tc := range cases {
		if got := resolveTag(tc.locale, tc.country).String(); got != tc.want {
			t.Fatalf("resolveTag(%q, %q) = %q, want %q", tc.locale, tc.country, got, tc.want)
		}
	}
}
