package observ

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerBeginEnd(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("populate")
	tm.End(idx, "142 builtins")
	tm.End(99, "ignored")

	r := tm.Report()
	if len(r.Phases) != 1 || r.Phases[0].Name != "populate" || r.Phases[0].Note != "142 builtins" {
		t.Fatalf("unexpected report %+v", r)
	}
	if !strings.Contains(tm.Summary(), "// 142 builtins") {
		t.Fatalf("summary lacks note:\n%s", tm.Summary())
	}
}

func TestTimerAddAccumulatesConcurrently(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Add("List", time.Millisecond)
		}()
	}
	wg.Wait()
	r := tm.Report()
	if len(r.Phases) != 1 || r.Phases[0].Count != 8 {
		t.Fatalf("expected one phase with 8 samples, got %+v", r.Phases)
	}
	if r.TotalMS < 8 {
		t.Fatalf("total %.3f ms, want >= 8", r.TotalMS)
	}
}

func TestReportJSONAndSlowest(t *testing.T) {
	tm := NewTimer()
	tm.Add("Bool", time.Millisecond)
	tm.Add("Num", 3*time.Millisecond)
	tm.Add("Str", 2*time.Millisecond)
	r := tm.Report()

	slow := r.Slowest(2)
	if len(slow) != 2 || slow[0].Name != "Num" || slow[1].Name != "Str" {
		t.Fatalf("Slowest = %+v", slow)
	}
	raw, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"name":"Num"`) {
		t.Fatalf("json lacks phase: %s", raw)
	}
}

func TestEmptyReport(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || r.Phases != nil {
		t.Fatalf("empty timer should produce a zero report")
	}
}
