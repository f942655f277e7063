package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"stdsynth/internal/config"
	"stdsynth/internal/diag"
	"stdsynth/internal/symbols"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestReadUIMode(t *testing.T) {
	cases := map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, "on": uiModeOn, " off ": uiModeOff}
	for in, want := range cases {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Fatalf("readUIMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Fatalf("expected error")
	}
	if !shouldUseTUI(uiModeOn) || shouldUseTUI(uiModeOff) {
		t.Fatalf("explicit modes must be honored")
	}
}

func TestListRowsAndTable(t *testing.T) {
	rows, err := buildListRows(symbols.ByNamespace(symbols.NsNum), "overflow")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) == 0 {
		t.Fatalf("Num has overflow-checked builtins")
	}
	for _, r := range rows {
		if r.shape != "overflow" || r.arity != 2 || r.vars == 0 {
			t.Fatalf("unexpected row %+v", r)
		}
	}
	var buf bytes.Buffer
	printListTable(&buf, rows)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(rows)+1 || !strings.HasPrefix(lines[0], "builtin") {
		t.Fatalf("unexpected table:\n%s", buf.String())
	}
	width := len(lines[0])
	for _, l := range lines[1:] {
		if len(l) != width {
			t.Fatalf("columns are not aligned:\n%s", buf.String())
		}
	}
	if _, err := buildListRows(nil, "bogus"); err == nil {
		t.Fatalf("unknown shapes should be rejected")
	}
}

func TestPrintDiagnosticsLimit(t *testing.T) {
	noColor(t)
	items := []diag.Diagnostic{
		diag.NewError(diag.VerShape, "Num.addChecked", "no Ok arm").WithNote("declared shape: overflow"),
		diag.New(diag.SevWarning, diag.SnapExtra, "Gone.fn", "stale"),
		diag.NewError(diag.VerMissing, "List.get", "missing"),
	}
	var buf bytes.Buffer
	printDiagnostics(&buf, items, 2)
	want := "error[VER2005] Num.addChecked: no Ok arm\n" +
		"  note: declared shape: overflow\n" +
		"warning[SNP3003] Gone.fn: stale\n" +
		"... 1 more diagnostics\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWithoutTimings(t *testing.T) {
	items := []diag.Diagnostic{
		diag.New(diag.SevInfo, diag.ObsTimings, "verify", "timings"),
		diag.NewError(diag.VerInvalid, "Set.walk", "bad"),
	}
	got := withoutTimings(items)
	if len(got) != 1 || got[0].Code != diag.VerInvalid {
		t.Fatalf("withoutTimings = %v", got)
	}
	if len(items) != 2 || items[0].Code != diag.ObsTimings {
		t.Fatalf("input must not be modified")
	}
}

func TestVersionJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := renderVersionJSON(&buf, versionPayload{Tool: "stdsynth", Version: "1.0.0", Builtins: 142}); err != nil {
		t.Fatalf("render: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["tool"] != "stdsynth" || got["builtins"] != float64(142) {
		t.Fatalf("unexpected payload %v", got)
	}
	if _, ok := got["git_commit"]; ok {
		t.Fatalf("empty commit should be omitted")
	}
}

func TestSnapshotPathPrecedence(t *testing.T) {
	prev := cfg
	t.Cleanup(func() { cfg = prev })

	cfg = config.Default()
	if got := snapshotPath(nil); got != "stdsynth.snapshot.mp" {
		t.Fatalf("default path = %q", got)
	}
	cfg.Verify.Snapshot = "/tmp/from-config.mp"
	if got := snapshotPath(nil); got != "/tmp/from-config.mp" {
		t.Fatalf("config path = %q", got)
	}
	if got := snapshotPath([]string{"explicit.mp"}); got != "explicit.mp" {
		t.Fatalf("argument path = %q", got)
	}
}
