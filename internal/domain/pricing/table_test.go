package pricing

import (
	"errors"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestNormalizePrices(t *testing.T) {
	t.Run("map wins over legacy fields", func(t *testing.T) {
		got := NormalizePrices(PriceTable{IdentityWalkin: 800}, LegacyPrices{Walkin: ptr(999)})
		if got[IdentityWalkin] != 800 {
			t.Fatalf("unexpected walkin price: %v", got[IdentityWalkin])
		}
	})

	t.Run("legacy fields lifted into canonical keys", func(t *testing.T) {
		got := NormalizePrices(nil, LegacyPrices{
			Walkin:  ptr(800),
			Guest:   ptr(700),
			Member1: ptr(500),
			Member3: ptr(300),
		})
		want := PriceTable{IdentityWalkin: 800, IdentityGuest: 700, IdentityMember1: 500, IdentityMember3: 300}
		if len(got) != len(want) {
			t.Fatalf("unexpected table size: got=%d want=%d", len(got), len(want))
		}
		for k, v := range want {
			if got[k] != v {
				t.Fatalf("unexpected price for %s: got=%v want=%v", k, got[k], v)
			}
		}
	})

	t.Run("result does not alias input", func(t *testing.T) {
		in := PriceTable{IdentityWalkin: 800}
		out := NormalizePrices(in, LegacyPrices{})
		out[IdentityWalkin] = 1
		if in[IdentityWalkin] != 800 {
			t.Fatalf("input table mutated")
		}
	})
}

func TestPriceTable_Resolve(t *testing.T) {
	table := PriceTable{IdentityWalkin: 800, IdentityMember1: 500, IdentityMember2: 450, IdentityGuest: 650}

	tests := []struct {
		code IdentityCode
		want float64
	}{
		{IdentityMember2, 450},
		{IdentityMember3, 500},
		{"member_9", 500},
		{IdentityGuest, 650},
		{"corporate", 800},
		{"", 800},
		{" WALKIN ", 800},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			got, ok := table.Resolve(tt.code)
			if !ok || got != tt.want {
				t.Fatalf("resolve %q: got=%v ok=%t want=%v", tt.code, got, ok, tt.want)
			}
		})
	}

	t.Run("guest falls back to walkin", func(t *testing.T) {
		got, ok := PriceTable{IdentityWalkin: 800}.Resolve(IdentityGuest)
		if !ok || got != 800 {
			t.Fatalf("unexpected guest fallback: %v %t", got, ok)
		}
	})

	t.Run("member without member_1 falls back to walkin", func(t *testing.T) {
		got, ok := PriceTable{IdentityWalkin: 800}.Resolve(IdentityMember4)
		if !ok || got != 800 {
			t.Fatalf("unexpected member fallback: %v %t", got, ok)
		}
	})

	t.Run("nothing priced", func(t *testing.T) {
		if _, ok := (PriceTable{IdentityMember2: 1}).Resolve("vip"); ok {
			t.Fatalf("expected no price")
		}
	})
}

func TestPriceTable_ResolveUnmappedAlwaysWalkin(t *testing.T) {
	table := PriceTable{IdentityWalkin: 800, IdentityMember1: 500, "vip": 1200}
	for _, code := range []IdentityCode{"a", "guest", "staff", "junior", "senior", "x_member"} {
		got, _ := table.Resolve(code)
		if got != 800 {
			t.Fatalf("unmapped identity %q resolved to %v, want walkin 800", code, got)
		}
	}
}

func TestMemberIdentity(t *testing.T) {
	if got := MemberIdentity(3); got != IdentityMember3 {
		t.Fatalf("unexpected identity: %s", got)
	}
	if got := MemberIdentity(0); got != IdentityWalkin {
		t.Fatalf("unexpected identity for level 0: %s", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-12-25")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if FormatDate(d) != "2025-12-25" {
		t.Fatalf("unexpected round trip: %s", FormatDate(d))
	}

	if _, err := ParseDate("25/12/2025"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(1234.5678); got != 1234.57 {
		t.Fatalf("unexpected round2: %v", got)
	}
	if got := Round(399.5); got != 400 {
		t.Fatalf("unexpected round: %v", got)
	}
}
