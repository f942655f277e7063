package builtins

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"stdsynth/internal/can"
	"stdsynth/internal/symbols"
	"stdsynth/internal/trace"
	"stdsynth/internal/types"
)

// synthFn builds the definition of sym. The builder mints from the caller's store.
type synthFn func(b *can.Builder, sym symbols.Symbol) *can.Def

type entry struct {
	synth synthFn
	shape Shape
}

// registry maps every builtin to its synthesizer. Built once, read-only.
var registry = func() map[symbols.Symbol]entry {
	groups := []map[symbols.Symbol]entry{
		boolDefs, strDefs, listDefs, dictDefs, setDefs, numDefs, resultDefs,
	}
	m := make(map[symbols.Symbol]entry, symbols.BuiltinCount())
	for _, g := range groups {
		for sym, e := range g {
			if _, dup := m[sym]; dup {
				panic(fmt.Sprintf("builtins: %s registered twice", sym))
			}
			m[sym] = e
		}
	}
	return m
}()

// PreconditionError reports a caller that asked for a symbol not flagged as
// a builtin. It is an internal defect of the calling stage.
type PreconditionError struct {
	Symbol symbols.Symbol
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("builtins: %s is not flagged as a builtin", e.Symbol)
}

// Options configures a Dispatcher.
type Options struct {
	// CheckPreconditions panics with *PreconditionError when Synthesize is
	// handed a non-builtin symbol. Off, such calls return (nil, false).
	CheckPreconditions bool
	// Tracer receives one builtin-scope span per synthesis.
	Tracer trace.Tracer
}

// DefaultOptions checks preconditions unless built with the
// stdsynth_release tag.
func DefaultOptions() Options {
	return Options{CheckPreconditions: debugChecks, Tracer: trace.Nop}
}

// Dispatcher turns builtin symbols into definitions.
type Dispatcher struct {
	opts Options
}

// New returns a dispatcher with opts.
func New(opts Options) *Dispatcher {
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	return &Dispatcher{opts: opts}
}

var defaultDispatcher = New(DefaultOptions())

// Synthesize builds sym with the default dispatcher.
func Synthesize(sym symbols.Symbol, store *types.VarStore) (*can.Def, bool) {
	return defaultDispatcher.Synthesize(sym, store)
}

// Synthesize builds the definition of sym, minting every variable from
// store. It returns (nil, false) for symbols it has no synthesizer for.
func (d *Dispatcher) Synthesize(sym symbols.Symbol, store *types.VarStore) (*can.Def, bool) {
	return d.synthesize(d.opts.Tracer, 0, sym, store)
}

// SynthesizeContext is Synthesize with the tracer and parent span taken from
// ctx when it carries an enabled tracer.
func (d *Dispatcher) SynthesizeContext(ctx context.Context, sym symbols.Symbol, store *types.VarStore) (*can.Def, bool) {
	t := trace.FromContext(ctx)
	if !t.Enabled() {
		t = d.opts.Tracer
	}
	return d.synthesize(t, trace.CurrentSpan(ctx), sym, store)
}

func (d *Dispatcher) synthesize(t trace.Tracer, parent uint64, sym symbols.Symbol, store *types.VarStore) (*can.Def, bool) {
	if d.opts.CheckPreconditions && !sym.IsBuiltin() {
		panic(&PreconditionError{Symbol: sym})
	}
	e, ok := registry[sym]
	if !ok {
		return nil, false
	}

	span := trace.Begin(t, trace.ScopeBuiltin, sym.String(), parent)
	first := store.Peek()
	def := e.synth(can.NewBuilder(store), sym)
	span.WithExtra("shape", e.shape.String()).
		WithExtra("minted", strconv.FormatUint(uint64(store.Peek()-first), 10)).
		End("")
	return def, true
}

// Covers reports whether sym has a synthesizer.
func Covers(sym symbols.Symbol) bool {
	_, ok := registry[sym]
	return ok
}

// ShapeOf reports the synthesis shape of sym (ShapeInvalid if uncovered).
func ShapeOf(sym symbols.Symbol) Shape {
	return registry[sym].shape
}

// Entries lists covered symbols in catalog order.
func Entries() []symbols.Symbol {
	out := make([]symbols.Symbol, 0, len(registry))
	for sym := range registry {
		out = append(out, sym)
	}
	slices.Sort(out)
	return out
}
