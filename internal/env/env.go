// Package env stands in for the canonicalization environment that consumes
// synthesized builtins. An Env owns one variable store per compilation,
// memoizes definitions per identity and turns absence into an
// unknown-identifier diagnostic.
//
// Env is not safe for concurrent use; each compilation owns its own.
package env

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/google/uuid"

	"stdsynth/internal/builtins"
	"stdsynth/internal/can"
	"stdsynth/internal/diag"
	"stdsynth/internal/symbols"
	"stdsynth/internal/trace"
	"stdsynth/internal/types"
)

// Options configures New. Zero fields take package defaults.
type Options struct {
	// Table resolves qualified names; a fresh catalog table when nil.
	Table      *symbols.Table
	Dispatcher *builtins.Dispatcher
	Tracer     trace.Tracer
	// Namespaces limits PopulateBuiltins; all builtin namespaces when empty.
	Namespaces []symbols.Namespace
}

// Env is the builtin scope of one compilation: a single variable store
// shared by every definition it hands out.
type Env struct {
	store   *types.VarStore
	table   *symbols.Table
	disp    *builtins.Dispatcher
	tracer  trace.Tracer
	session uuid.UUID
	scope   []symbols.Namespace

	defs  map[symbols.Symbol]*can.Def
	order []symbols.Symbol
}

// New returns an empty environment with a fresh session id.
func New(opts Options) *Env {
	if opts.Table == nil {
		opts.Table = symbols.NewTable()
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = builtins.New(builtins.Options{
			CheckPreconditions: builtins.DefaultOptions().CheckPreconditions,
			Tracer:             opts.Tracer,
		})
	}
	scope := opts.Namespaces
	if len(scope) == 0 {
		scope = symbols.Namespaces()
	}
	return &Env{
		store:   types.NewVarStore(),
		table:   opts.Table,
		disp:    opts.Dispatcher,
		tracer:  opts.Tracer,
		session: uuid.New(),
		scope:   slices.Clone(scope),
		defs:    make(map[symbols.Symbol]*can.Def),
	}
}

// Session identifies this environment in trace extras.
func (e *Env) Session() uuid.UUID { return e.session }

// Store is the allocator every synthesized definition draws from.
func (e *Env) Store() *types.VarStore { return e.store }

// Table resolves names for LookupName.
func (e *Env) Table() *symbols.Table { return e.table }

// Lookup returns the definition of sym, synthesizing it on first use.
// Identities that are not builtins, or that the dispatcher cannot build,
// produce a ResUnknownIdentifier diagnostic instead.
func (e *Env) Lookup(sym symbols.Symbol) (*can.Def, *diag.Diagnostic) {
	return e.lookup(context.Background(), sym)
}

func (e *Env) lookup(ctx context.Context, sym symbols.Symbol) (*can.Def, *diag.Diagnostic) {
	if def, ok := e.defs[sym]; ok {
		return def, nil
	}
	name := e.table.Qualified(sym)
	if !sym.IsBuiltin() {
		d := diag.NewError(diag.ResUnknownIdentifier, name,
			fmt.Sprintf("%s is not in builtin scope", name)).
			WithNote("only identities flagged as builtins are synthesized")
		return nil, &d
	}
	def, ok := e.disp.SynthesizeContext(ctx, sym, e.store)
	if !ok {
		d := diag.NewError(diag.ResUnknownIdentifier, name,
			fmt.Sprintf("no definition available for %s", name))
		return nil, &d
	}
	e.defs[sym] = def
	e.order = append(e.order, sym)
	return def, nil
}

// LookupName resolves a qualified name ("List.get") and looks it up.
func (e *Env) LookupName(qualified string) (*can.Def, *diag.Diagnostic) {
	sym, err := e.table.Resolve(qualified)
	if err != nil {
		code := diag.ResMalformedName
		if errors.Is(err, symbols.ErrUnknown) {
			code = diag.ResUnknownIdentifier
		}
		d := diag.NewError(code, qualified, err.Error())
		return nil, &d
	}
	return e.Lookup(sym)
}

// PopulateBuiltins eagerly installs every builtin of the configured
// namespaces. Failures are reported and do not stop population.
func (e *Env) PopulateBuiltins(ctx context.Context, r diag.Reporter) int {
	if r == nil {
		r = diag.NopReporter{}
	}
	tr := trace.FromContext(ctx)
	if !tr.Enabled() {
		tr = e.tracer
	}
	ctx = trace.WithTracer(ctx, tr)

	installed := 0
	for _, ns := range e.scope {
		span := trace.Begin(tr, trace.ScopeNamespace, ns.String(), trace.CurrentSpan(ctx))
		nsCtx := trace.WithSpan(ctx, span.ID())
		before := installed
		for _, sym := range symbols.ByNamespace(ns) {
			if err := ctx.Err(); err != nil {
				span.End("cancelled")
				return installed
			}
			if _, seen := e.defs[sym]; seen {
				installed++
				continue
			}
			if _, d := e.lookup(nsCtx, sym); d != nil {
				r.Report(*d)
				continue
			}
			installed++
		}
		span.WithExtra("session", e.session.String()).
			WithExtra("installed", strconv.Itoa(installed-before)).
			End("")
	}
	return installed
}

// Installed lists memoized identities in installation order.
func (e *Env) Installed() []symbols.Symbol {
	return slices.Clone(e.order)
}

// Len reports how many definitions are memoized.
func (e *Env) Len() int { return len(e.defs) }
