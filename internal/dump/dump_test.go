package dump

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"stdsynth/internal/builtins"
	"stdsynth/internal/can"
	"stdsynth/internal/symbols"
	"stdsynth/internal/types"
)

func synth(t *testing.T, store *types.VarStore, syms ...symbols.Symbol) []*can.Def {
	t.Helper()
	out := make([]*can.Def, 0, len(syms))
	for _, sym := range syms {
		def, ok := builtins.Synthesize(sym, store)
		if !ok {
			t.Fatalf("no definition for %s", sym)
		}
		out = append(out, def)
	}
	return out
}

func shapeOf(def *can.Def) string { return builtins.ShapeOf(def.Name()).String() }

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"": FormatText, "JSON": FormatJSON, "yml": FormatYAML, "mp": FormatMsgpack}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %s, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for xml")
	}
}

func TestJSONRecordNamesSlots(t *testing.T) {
	defs := synth(t, types.NewVarStore(), symbols.NumAddChecked)
	var buf bytes.Buffer
	if err := Write(&buf, defs, Options{Format: FormatJSON, Normalize: true, ShapeOf: shapeOf}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var recs []Record
	if err := json.Unmarshal(buf.Bytes(), &recs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records", len(recs))
	}
	r := recs[0]
	if r.Name != "Num.addChecked" || r.Namespace != "Num" || r.Arity != 2 || r.Shape != "overflow" {
		t.Fatalf("unexpected record header %+v", r)
	}
	if r.Body.Kind != "Closure" || r.Body.Var("ret") == 0 {
		t.Fatalf("body should be a closure with a return var, got %+v", r.Body)
	}
}

func TestNormalizedExportIsSeedIndependent(t *testing.T) {
	a := synth(t, types.NewVarStore(), symbols.ListGet)
	b := synth(t, types.NewVarStoreAt(9000), symbols.ListGet)
	var bufA, bufB bytes.Buffer
	opts := Options{Format: FormatYAML, Normalize: true}
	if err := Write(&bufA, a, opts); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := Write(&bufB, b, opts); err != nil {
		t.Fatalf("write: %v", err)
	}
	if bufA.String() != bufB.String() {
		t.Fatalf("normalized yaml differs across seeds")
	}
	var recs []Record
	if err := yaml.Unmarshal(bufA.Bytes(), &recs); err != nil || len(recs) != 1 {
		t.Fatalf("yaml round trip: %v", err)
	}
}

func TestMsgpackIsDeterministic(t *testing.T) {
	defs := synth(t, types.NewVarStore(), symbols.ResultMap, symbols.SetWalk)
	var first bytes.Buffer
	if err := Write(&first, defs, Options{Format: FormatMsgpack}); err != nil {
		t.Fatalf("write: %v", err)
	}
	for i := 0; i < 50; i++ {
		var again bytes.Buffer
		if err := Write(&again, defs, Options{Format: FormatMsgpack}); err != nil {
			t.Fatalf("write: %v", err)
		}
		if !bytes.Equal(first.Bytes(), again.Bytes()) {
			t.Fatalf("encoding %d differs from the first", i)
		}
	}
	var recs []Record
	if err := msgpack.Unmarshal(first.Bytes(), &recs); err != nil || len(recs) != 2 {
		t.Fatalf("decode: %v (%d records)", err, len(recs))
	}
	if recs[1].Name != "Set.walk" {
		t.Fatalf("order not preserved: %s", recs[1].Name)
	}
}

func TestClosureSlotsKeepDeclarationOrder(t *testing.T) {
	recs := Records(synth(t, types.NewVarStore(), symbols.ResultMap), Options{})
	body := recs[0].Body
	var roles []string
	for _, s := range body.Vars {
		roles = append(roles, s.Role)
	}
	want := "fn,closure,closure_ext,ret,expr"
	if got := strings.Join(roles, ","); got != want {
		t.Fatalf("closure slots = %s, want %s", got, want)
	}
	if body.Var("nope") != 0 {
		t.Fatalf("unknown role should be 0")
	}
}

func TestTextSeparatesDefinitions(t *testing.T) {
	defs := synth(t, types.NewVarStore(), symbols.BoolNot, symbols.BoolAnd)
	var buf bytes.Buffer
	if err := Write(&buf, defs, Options{Format: FormatText}); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\n\n") {
		t.Fatalf("definitions should be separated by a blank line:\n%s", out)
	}
	if strings.Contains(out, ":v") {
		t.Fatalf("text without Vars should not print variables:\n%s", out)
	}
}

func TestConstantAnnotationExported(t *testing.T) {
	defs := synth(t, types.NewVarStore(), symbols.NumMaxI128)
	recs := Records(defs, Options{})
	if recs[0].Annotation == "" || recs[0].Arity != 0 {
		t.Fatalf("maxI128 should export its annotation, got %+v", recs[0])
	}
}
