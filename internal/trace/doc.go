// Package trace provides phase-level tracing for the CFG++ pipeline.
//
// The trace package tracks pipeline phases (lex, parse, schema, validate)
// and per-file work to help diagnose slow or hanging runs.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	cfgpp parse --trace=phase --trace-out=- app.cfgpp
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelPhase: driver and phase boundaries
//   - LevelDetail: per-file events (includes, batch members)
//
// # Spans
//
// Phases are bracketed with RAII-style spans:
//
//	span := trace.Begin(t, trace.ScopePhase, "parse", 0)
//	defer span.End("")
package trace
