package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelFiltersScopes(t *testing.T) {
	cases := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeDriver, true},
		{LevelError, ScopeNamespace, false},
		{LevelPhase, ScopeDriver, true},
		{LevelPhase, ScopeNamespace, false},
		{LevelDetail, ScopeNamespace, true},
		{LevelDetail, ScopeBuiltin, false},
		{LevelDebug, ScopeBuiltin, true},
	}
	for _, tc := range cases {
		if got := tc.level.ShouldEmit(tc.scope); got != tc.want {
			t.Fatalf("%s.ShouldEmit(%s) = %v, want %v", tc.level, tc.scope, got, tc.want)
		}
	}
}

func TestParseLevelAndMode(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "DEBUG"} {
		l, err := ParseLevel(s)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
		if l.String() != strings.ToLower(s) {
			t.Fatalf("round trip %q -> %s", s, l)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if m, err := ParseMode("both"); err != nil || m != ModeBoth {
		t.Fatalf("ParseMode(both) = %v, %v", m, err)
	}
	if _, err := ParseMode("tape"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestStreamTracerWritesSpans(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatText)

	root := Begin(tr, ScopeDriver, "verify", 0)
	child := Begin(tr, ScopeBuiltin, "List.get", root.ID())
	child.WithExtra("vars", "9").End("")
	root.End("ok")

	out := buf.String()
	for _, want := range []string{"→ verify", "→ List.get", "← List.get {vars=9}", "← verify (ok)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatNDJSON)
	Point(tr, ScopeDriver, "populate", "142", 0)
	Point(tr, ScopeBuiltin, "filtered", "", 0)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d: %q", len(lines), buf.String())
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded["name"] != "populate" || decoded["kind"] != "point" || decoded["scope"] != "driver" {
		t.Fatalf("unexpected event %v", decoded)
	}
}

func TestRingTracerWrapsOldestFirst(t *testing.T) {
	tr := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		tr.Emit(&Event{Kind: KindPoint, Scope: ScopeBuiltin, Name: name})
	}
	got := tr.Snapshot()
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	for i, want := range []string{"c", "d", "e"} {
		if got[i].Name != want {
			t.Fatalf("event %d = %q, want %q", i, got[i].Name, want)
		}
	}
	var buf bytes.Buffer
	if err := tr.Dump(&buf, FormatText); err != nil {
		t.Fatalf("dump: %v", err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Fatalf("dump should have 3 lines:\n%s", buf.String())
	}
}

func TestNewErrorLevelUsesRing(t *testing.T) {
	tr, err := New(Config{Level: LevelError, Mode: ModeStream})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if RingOf(tr) == nil {
		t.Fatalf("error level should store into a ring, got %T", tr)
	}
}

func TestMultiTracerFansOut(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelDetail, Mode: ModeBoth, Output: &buf, Format: FormatText})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	Begin(tr, ScopeNamespace, "Num", 0).End("")
	if buf.Len() == 0 {
		t.Fatalf("stream sink got nothing")
	}
	if n := len(RingOf(tr).Snapshot()); n != 2 {
		t.Fatalf("ring sink got %d events, want 2", n)
	}
}

func TestDisabledSpanIsInert(t *testing.T) {
	s := Begin(Nop, ScopeDriver, "x", 7)
	if s.ID() != 7 {
		t.Fatalf("inert span should pass the parent through, got %d", s.ID())
	}
	if d := s.WithExtra("k", "v").End(""); d != 0 {
		t.Fatalf("inert span reported duration %v", d)
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatalf("empty context should yield Nop")
	}
	ring := NewRingTracer(8, LevelDebug)
	ctx := WithSpan(WithTracer(context.Background(), ring), 42)
	if FromContext(ctx) != ring {
		t.Fatalf("tracer not propagated")
	}
	if CurrentSpan(ctx) != 42 {
		t.Fatalf("span not propagated")
	}
}

func TestSpanEndCarriesElapsed(t *testing.T) {
	ring := NewRingTracer(4, LevelDebug)
	sp := Begin(ring, ScopeBuiltin, "Num.add", 0)
	sp.End("")
	events := ring.Snapshot()
	if len(events) != 2 {
		t.Fatalf("expected begin and end, got %d events", len(events))
	}
	if events[0].Kind != KindSpanBegin || events[0].Elapsed != 0 {
		t.Fatalf("begin event should have no elapsed time: %+v", events[0])
	}
	if events[1].Kind != KindSpanEnd || events[1].SpanID != sp.ID() {
		t.Fatalf("unexpected end event %+v", events[1])
	}
	if events[1].Elapsed < 0 {
		t.Fatalf("negative elapsed %v", events[1].Elapsed)
	}
}
