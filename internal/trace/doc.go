// Package trace records what the synthesizer and its drivers are doing.
//
// Events are emitted as spans (begin/end pairs) or points. Each event has a
// scope, and the configured level decides which scopes reach the sink:
//
//   - LevelPhase: driver operations (verify, snapshot, populate)
//   - LevelDetail: adds per-namespace events
//   - LevelDebug: adds one span per synthesized builtin
//
// Sinks are a stream writer (text or NDJSON), a bounded ring kept in memory
// for post-mortem dumps, or both.
//
//	t, _ := trace.New(trace.Config{Level: trace.LevelDetail, Mode: trace.ModeStream})
//	ctx = trace.WithTracer(ctx, t)
//
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeNamespace, "List", 0)
//	defer span.End("")
package trace
