package driver

import (
	"context"
	"strings"
	"sync"
	"testing"

	"stdsynth/internal/diag"
	"stdsynth/internal/symbols"
	"stdsynth/internal/trace"
)

func TestVerifyWholeCatalog(t *testing.T) {
	var (
		mu     sync.Mutex
		seen   = make(map[symbols.Symbol]bool)
		phases []string
	)
	res, err := Verify(context.Background(), VerifyOptions{
		Jobs: 4,
		Progress: func(ev ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			seen[ev.Symbol] = true
			if ev.Total != symbols.BuiltinCount() {
				t.Errorf("progress total = %d", ev.Total)
			}
		},
		PhaseObserver: func(ev PhaseEvent) {
			if ev.Status == PhaseEnd {
				phases = append(phases, ev.Name)
			}
		},
	})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !res.OK() {
		for _, d := range res.Bag.Items() {
			t.Errorf("%s", d)
		}
		t.Fatalf("verification failed for %v", res.Failed)
	}
	if res.Checked != symbols.BuiltinCount() || len(seen) != symbols.BuiltinCount() {
		t.Fatalf("checked %d, progress saw %d, want %d", res.Checked, len(seen), symbols.BuiltinCount())
	}
	want := "completeness,synthesize,rejection,aliasing"
	if got := strings.Join(phases, ","); got != want {
		t.Fatalf("phases = %s, want %s", got, want)
	}
}

func TestVerifySubsetWithTimings(t *testing.T) {
	res, err := Verify(context.Background(), VerifyOptions{
		Jobs:          1,
		Symbols:       symbols.ByNamespace(symbols.NsResult),
		EnableTimings: true,
	})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if res.Checked != len(symbols.ByNamespace(symbols.NsResult)) {
		t.Fatalf("checked %d", res.Checked)
	}
	if res.Timing == nil {
		t.Fatalf("timings requested but missing")
	}
	var timing *diag.Diagnostic
	for i, d := range res.Bag.Items() {
		if d.Code == diag.ObsTimings {
			timing = &res.Bag.Items()[i]
		}
	}
	if timing == nil || len(timing.Notes) != 1 || !strings.Contains(timing.Notes[0].Msg, `"kind":"verify"`) {
		t.Fatalf("timing diagnostic missing or malformed: %v", timing)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	if !strings.Contains(res.Metrics, "workers:") {
		t.Fatalf("metrics summary = %q", res.Metrics)
	}
}

func TestVerifyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := Verify(ctx, VerifyOptions{Jobs: 2})
	if err == nil {
		t.Fatalf("expected cancellation error")
	}
	if res == nil || res.Checked == symbols.BuiltinCount() {
		t.Fatalf("cancelled run should not check the whole catalog")
	}
}

func TestVerifyTracesDriverScope(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelPhase)
	if _, err := Verify(context.Background(), VerifyOptions{
		Symbols: symbols.ByNamespace(symbols.NsBool),
		Tracer:  ring,
	}); err != nil {
		t.Fatalf("verify: %v", err)
	}
	var end *trace.Event
	events := ring.Snapshot()
	for i := range events {
		if events[i].Scope != trace.ScopeDriver {
			t.Fatalf("phase level recorded %s scope", events[i].Scope)
		}
		if events[i].Kind == trace.KindSpanEnd && events[i].Name == "verify" {
			end = &events[i]
		}
	}
	if end == nil || end.Extra["failed"] != "0" {
		t.Fatalf("verify span end missing or reports failures: %+v", end)
	}
}

func TestRejectionCandidatesAreRefused(t *testing.T) {
	bag := diag.NewBag(64)
	checkRejection(bag)
	if bag.Len() != 0 {
		t.Fatalf("unexpected rejection findings: %v", bag.Items())
	}
	for _, sym := range rejectionCandidates() {
		if sym.IsBuiltin() {
			t.Fatalf("%s is a builtin", sym)
		}
	}
}

func TestAppendTimingDiagnosticGrowsFullBag(t *testing.T) {
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.VerMissing, "X", "x"))
	appendTimingDiagnostic(bag, timingPayload{TotalMS: 1.5})
	if bag.Len() != 2 || bag.Items()[1].Code != diag.ObsTimings {
		t.Fatalf("timing diagnostic not appended: %v", bag.Items())
	}
}
