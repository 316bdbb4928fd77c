package money

import (
	"encoding/json"
	"testing"
)

func mustAmount(t *testing.T, s string) Amount {
	t.Helper()
	a, err := FromString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return a
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.205", "1.21"},
		{"1.204", "1.20"},
		{"0.005", "0.01"},
		{"2.675", "2.68"},
		{"7.5", "7.50"},
		{"0", "0.00"},
	}
	for _, tc := range cases {
		if got := mustAmount(t, tc.in).Round2().String(); got != tc.want {
			t.Fatalf("Round2(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestMulInt(t *testing.T) {
	if got := mustAmount(t, "1.25").MulInt(2).String(); got != "2.50" {
		t.Fatalf("1.25 * 2 = %s, want 2.50", got)
	}
	if got := mustAmount(t, "0.333").MulInt(3).String(); got != "1.00" {
		t.Fatalf("0.333 * 3 = %s, want 1.00", got)
	}
	if got := mustAmount(t, "0.70").MulInt(0).String(); got != "0.00" {
		t.Fatalf("0.70 * 0 = %s, want 0.00", got)
	}
}

func TestAddAmount(t *testing.T) {
	got := mustAmount(t, "2.50").AddAmount(mustAmount(t, "1.40"))
	if !got.EqualAmount(mustAmount(t, "3.90")) {
		t.Fatalf("2.50 + 1.40 = %s, want 3.90", got)
	}
}

func TestEqualAmountIgnoresExponent(t *testing.T) {
	if !mustAmount(t, "7.5").EqualAmount(mustAmount(t, "7.50")) {
		t.Fatalf("7.5 and 7.50 should compare equal")
	}
}

func TestMarshalJSON(t *testing.T) {
	raw, err := json.Marshal(mustAmount(t, "7.5"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"7.50"` {
		t.Fatalf("marshal = %s, want \"7.50\"", raw)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var a Amount
	if err := json.Unmarshal([]byte(`"3.90"`), &a); err != nil {
		t.Fatalf("unmarshal quoted: %v", err)
	}
	if a.String() != "3.90" {
		t.Fatalf("quoted = %s", a.String())
	}
	if err := json.Unmarshal([]byte(`2.4`), &a); err != nil {
		t.Fatalf("unmarshal bare: %v", err)
	}
	if a.String() != "2.40" {
		t.Fatalf("bare = %s", a.String())
	}
	if err := json.Unmarshal([]byte(`"abc"`), &a); err == nil {
		t.Fatalf("expected error for non-numeric input")
	}
}

func TestFromStringRejectsGarbage(t *testing.T) {
	if _, err := FromString("12,50"); err == nil {
		t.Fatalf("expected error for comma decimal")
	}
}
