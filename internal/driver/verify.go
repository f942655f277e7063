package driver

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"stdsynth/internal/builtins"
	"stdsynth/internal/can"
	"stdsynth/internal/diag"
	"stdsynth/internal/observ"
	"stdsynth/internal/symbols"
	"stdsynth/internal/trace"
	"stdsynth/internal/types"
)

// defaultAltSeed seeds the second store of the alpha-determinism check far
// away from FirstFresh so that accidental equality of raw numbers is
// impossible.
const defaultAltSeed types.Variable = 1 << 20

// VerifyOptions configures Verify.
type VerifyOptions struct {
	// Jobs bounds the worker pool; GOMAXPROCS when <= 0.
	Jobs int
	// Symbols restricts the per-builtin checks; the whole catalog when empty.
	Symbols        []symbols.Symbol
	MaxDiagnostics int
	EnableTimings  bool
	AltSeed        types.Variable
	Tracer         trace.Tracer
	PhaseObserver  PhaseObserver
	Progress       ProgressObserver
}

// VerifyResult summarizes one Verify run. Failed lists builtins with at
// least one error diagnostic, in the order they were checked.
type VerifyResult struct {
	Checked int
	Failed  []symbols.Symbol
	Bag     *diag.Bag
	Timing  *observ.Report
	Metrics string
}

// OK reports whether verification found no errors.
func (r *VerifyResult) OK() bool {
	return r != nil && !r.Bag.HasErrors()
}

type slot struct {
	diags  []diag.Diagnostic
	minted int
}

// Verify runs every check over the selected builtins. The returned error is
// non-nil only when ctx was cancelled; findings are reported in the bag.
func Verify(ctx context.Context, opts VerifyOptions) (*VerifyResult, error) {
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = 256
	}
	if opts.AltSeed < types.FirstFresh {
		opts.AltSeed = defaultAltSeed
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.FromContext(ctx)
	}
	syms := opts.Symbols
	if len(syms) == 0 {
		syms = symbols.Builtins()
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	tr := opts.Tracer
	ctx = trace.WithTracer(ctx, tr)
	root := trace.Begin(tr, trace.ScopeDriver, "verify", trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, root.ID())

	timer := observ.NewTimer()
	nsTimer := observ.NewTimer()
	phase := func(name string, fn func() error) error {
		if opts.PhaseObserver != nil {
			opts.PhaseObserver(PhaseEvent{Name: name, Status: PhaseStart})
		}
		start := time.Now()
		idx := timer.Begin(name)
		err := fn()
		note := ""
		if err != nil {
			note = "error"
		}
		timer.End(idx, note)
		if opts.PhaseObserver != nil {
			opts.PhaseObserver(PhaseEvent{Name: name, Status: PhaseEnd, Elapsed: time.Since(start)})
		}
		return err
	}

	disp := builtins.New(builtins.Options{CheckPreconditions: true, Tracer: tr})
	bag := diag.NewBag(opts.MaxDiagnostics)
	var metrics verifyMetrics

	_ = phase("completeness", func() error {
		checkRegistry(bag)
		return nil
	})

	slots := make([]slot, len(syms))
	var done atomic.Int64
	err := phase("synthesize", func() error {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(min(jobs, len(syms)))
		for i, sym := range syms {
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				metrics.enter()
				start := time.Now()
				s := checkBuiltin(gctx, disp, sym, opts.AltSeed)
				slots[i] = s
				failed := len(s.diags) > 0
				metrics.leave(failed, s.minted)
				nsTimer.Add(sym.Namespace().String(), time.Since(start))
				if failed {
					trace.Point(tr, trace.ScopeDriver, "failed", sym.String(), root.ID())
				}
				if opts.Progress != nil {
					opts.Progress(ProgressEvent{
						Symbol: sym,
						Done:   int(done.Add(1)),
						Total:  len(syms),
						Failed: failed,
					})
				}
				return nil
			})
		}
		return g.Wait()
	})

	res := &VerifyResult{Bag: bag}
	for i, s := range slots {
		if len(s.diags) > 0 {
			res.Failed = append(res.Failed, syms[i])
		}
		for _, d := range s.diags {
			bag.Add(d)
		}
	}
	res.Checked = int(metrics.workersCompleted.Load())
	if err != nil {
		root.End("cancelled")
		return res, err
	}

	_ = phase("rejection", func() error {
		checkRejection(bag)
		return nil
	})
	_ = phase("aliasing", func() error {
		checkAliasing(disp, syms, bag)
		return nil
	})

	bag.Sort()
	res.Metrics = metrics.summary()
	if opts.EnableTimings {
		report := timer.Report()
		res.Timing = &report
		appendTimingDiagnostic(bag, timingPayload{
			Kind:       "verify",
			TotalMS:    report.TotalMS,
			Phases:     report.Phases,
			Namespaces: nsTimer.Report().Slowest(-1),
			Metrics:    res.Metrics,
		})
	}
	root.WithExtra("checked", strconv.Itoa(res.Checked)).
		WithExtra("failed", strconv.Itoa(len(res.Failed))).
		End("")
	return res, nil
}

// checkBuiltin synthesizes sym twice from differently seeded stores and runs
// the per-definition checks on the first result.
func checkBuiltin(ctx context.Context, disp *builtins.Dispatcher, sym symbols.Symbol, altSeed types.Variable) (out slot) {
	name := sym.String()
	defer func() {
		if r := recover(); r != nil {
			out.diags = append(out.diags, diag.NewError(diag.VerPanicked, name, fmt.Sprint(r)))
		}
	}()

	store := types.NewVarStore()
	def, ok := disp.SynthesizeContext(ctx, sym, store)
	out.minted = store.Minted()
	if !ok || def == nil {
		out.diags = append(out.diags, diag.NewError(diag.VerMissing, name, "dispatcher returned no definition"))
		return out
	}
	if def.Name() != sym {
		out.diags = append(out.diags, diag.NewError(diag.VerInvalid, name,
			fmt.Sprintf("definition binds %s", def.Name())))
	}
	if err := can.Validate(def, store); err != nil {
		out.diags = append(out.diags, diag.NewError(diag.VerInvalid, name, err.Error()))
	}
	shape := builtins.ShapeOf(sym)
	if err := builtins.CheckShape(def, shape); err != nil {
		out.diags = append(out.diags, diag.NewError(diag.VerShape, name, err.Error()).
			WithNote("declared shape: "+shape.String()))
	}

	alt := types.NewVarStoreAt(altSeed)
	again, ok := disp.SynthesizeContext(ctx, sym, alt)
	if !ok || !can.AlphaEqual(def, again) {
		out.diags = append(out.diags, diag.NewError(diag.VerNotDeterministic, name,
			fmt.Sprintf("rebuild from a store seeded at %d differs", uint32(altSeed))))
	}
	return out
}

// checkRegistry compares the dispatcher's coverage with the catalog.
func checkRegistry(bag *diag.Bag) {
	for _, sym := range builtins.Entries() {
		if !sym.IsBuiltin() {
			bag.Add(diag.NewError(diag.VerUnexpected, sym.String(), "synthesizer registered for a non-builtin"))
		}
	}
	for _, sym := range symbols.Builtins() {
		if !builtins.Covers(sym) {
			bag.Add(diag.NewError(diag.VerMissing, sym.String(), "no synthesizer registered"))
		}
	}
}

// rejectionCandidates lists identities the dispatcher must refuse: every
// internal helper and a user identity shadowing a builtin name.
func rejectionCandidates() []symbols.Symbol {
	var out []symbols.Symbol
	for s := symbols.Symbol(1); s.IsStatic(); s++ {
		if !s.IsBuiltin() {
			out = append(out, s)
		}
	}
	table := symbols.NewTable()
	out = append(out, table.Intern(symbols.NsUser, "get"), table.Intern(symbols.NsUser, "map"))
	return out
}

func checkRejection(bag *diag.Bag) {
	lenient := builtins.New(builtins.Options{CheckPreconditions: false})
	strict := builtins.New(builtins.Options{CheckPreconditions: true})
	for _, sym := range rejectionCandidates() {
		name := sym.String()
		store := types.NewVarStore()
		if def, ok := lenient.Synthesize(sym, store); ok || def != nil {
			bag.Add(diag.NewError(diag.VerUnexpected, name, "non-builtin produced a definition"))
		}
		if store.Minted() != 0 {
			bag.Add(diag.NewError(diag.VerUnexpected, name,
				fmt.Sprintf("rejected identity minted %d variables", store.Minted())))
		}
		if !panicsWithPrecondition(strict, sym) {
			bag.Add(diag.NewError(diag.VerUnexpected, name, "precondition check did not fire"))
		}
	}
}

func panicsWithPrecondition(d *builtins.Dispatcher, sym symbols.Symbol) (fired bool) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		var pe *builtins.PreconditionError
		fired = ok && errors.As(err, &pe) && pe.Symbol == sym
	}()
	d.Synthesize(sym, types.NewVarStore())
	return false
}

// checkAliasing builds the selected builtins into one shared store and
// reports any non-reserved variable that appears in two definitions.
func checkAliasing(disp *builtins.Dispatcher, syms []symbols.Symbol, bag *diag.Bag) {
	defer func() {
		if r := recover(); r != nil {
			bag.Add(diag.NewError(diag.VerPanicked, "aliasing", fmt.Sprint(r)))
		}
	}()
	shared := types.NewVarStore()
	owner := make(map[types.Variable]symbols.Symbol)
	for _, sym := range syms {
		def, ok := disp.Synthesize(sym, shared)
		if !ok {
			continue
		}
		for _, v := range can.Vars(def) {
			if v.IsReserved() {
				continue
			}
			if prev, seen := owner[v]; seen && prev != sym {
				bag.Add(diag.NewError(diag.VerAliasing, sym.String(),
					fmt.Sprintf("%s also appears in %s", v, prev)))
				continue
			}
			owner[v] = sym
		}
	}
}
