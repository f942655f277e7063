package symbols

import (
	"errors"
	"testing"
)

func TestResolveQualifiedNames(t *testing.T) {
	table := NewTable()
	cases := []struct {
		in   string
		want Symbol
	}{
		{"List.get", ListGet},
		{" Num.addChecked ", NumAddChecked},
		{"Set.walk", SetWalk},
		{"#arg2", Arg2},
	}
	for _, tc := range cases {
		got, err := table.Resolve(tc.in)
		if err != nil {
			t.Fatalf("resolve %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("resolve %q = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestResolveRejectsMalformedNames(t *testing.T) {
	table := NewTable()
	for _, in := range []string{"", "List", ".get", "List.", "Vec.get", "List.nope", "#nope"} {
		if _, err := table.Resolve(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestInternUserSymbols(t *testing.T) {
	table := NewTable()
	before := table.Len()

	s := table.Intern(NsUser, "myHelper")
	if s.IsBuiltin() || s.IsStatic() {
		t.Fatalf("user symbol %v must not be static or builtin", s)
	}
	if again := table.Intern(NsUser, "myHelper"); again != s {
		t.Fatalf("intern should be idempotent, got %v and %v", s, again)
	}
	if table.Len() != before+1 {
		t.Fatalf("expected one new symbol, table grew from %d to %d", before, table.Len())
	}
	if got := table.Qualified(s); got != "user.myHelper" {
		t.Fatalf("Qualified = %q", got)
	}
	if table.Namespace(s) != NsUser || table.Name(s) != "myHelper" {
		t.Fatalf("unexpected entry for %v", s)
	}
}

func TestInternShadowingNameStaysUser(t *testing.T) {
	table := NewTable()
	s := table.Intern(NsUser, "get")
	if s == ListGet || s.IsBuiltin() {
		t.Fatalf("user `get` must not alias List.get")
	}
	if got := table.Intern(NsList, "get"); got != ListGet {
		t.Fatalf("interning an existing catalog pair should return it, got %v", got)
	}
}

func TestLookupNormalizesNFC(t *testing.T) {
	table := NewTable()
	// "é" as e + combining acute accent.
	decomposed := "cafe\u0301"
	s := table.Intern(NsUser, decomposed)
	if got, ok := table.Lookup(NsUser, "caf\u00e9"); !ok || got != s {
		t.Fatalf("composed lookup should hit the decomposed entry")
	}
}

func TestResolveUnknownWrapsSentinel(t *testing.T) {
	table := NewTable()
	if _, err := table.Resolve("List.nope"); !errors.Is(err, ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
	if _, err := table.Resolve("List"); errors.Is(err, ErrUnknown) {
		t.Fatalf("malformed names are not unknown identities: %v", err)
	}
}
