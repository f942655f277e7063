package trace

import (
	"sync/atomic"
	"time"
)

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
)

// NextSeq hands out the ordering number stamped on recorded events.
func NextSeq() uint64 { return seqCounter.Add(1) }

// NextSpanID hands out a process-wide span identifier.
func NextSpanID() uint64 { return spanCounter.Add(1) }

// Span is an open region of work. The zero span with only a parent set is
// inert: it records nothing and hands its parent to children.
type Span struct {
	sink    Tracer
	id      uint64
	parent  uint64
	scope   Scope
	name    string
	started time.Time
	extra   map[string]string
}

// Begin opens a span under parent (0 for a root). Nothing is recorded when
// the tracer is off or its level filters scope out.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return &Span{parent: parent}
	}
	s := &Span{
		sink:    t,
		id:      NextSpanID(),
		parent:  parent,
		scope:   scope,
		name:    name,
		started: time.Now(),
	}
	t.Emit(s.event(KindSpanBegin, s.started))
	return s
}

func (s *Span) live() bool {
	return s != nil && s.sink != nil && s.sink.Enabled()
}

func (s *Span) event(kind Kind, at time.Time) *Event {
	return &Event{
		Time:     at,
		Kind:     kind,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		Name:     s.name,
	}
}

// End closes the span and reports how long it was open. Inert spans report 0.
func (s *Span) End(detail string) time.Duration {
	if !s.live() {
		return 0
	}
	now := time.Now()
	ev := s.event(KindSpanEnd, now)
	ev.Elapsed = now.Sub(s.started)
	ev.Detail = detail
	ev.Extra = s.extra
	s.sink.Emit(ev)
	return ev.Elapsed
}

// WithExtra attaches key=value to the closing event.
func (s *Span) WithExtra(key, value string) *Span {
	if !s.live() {
		return s
	}
	if s.extra == nil {
		s.extra = map[string]string{}
	}
	s.extra[key] = value
	return s
}

// ID is the identifier children should use as their parent.
func (s *Span) ID() uint64 {
	switch {
	case s == nil:
		return 0
	case s.id != 0:
		return s.id
	default:
		return s.parent
	}
}
