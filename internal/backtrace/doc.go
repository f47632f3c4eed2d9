// Package backtrace captures the current call stack and turns it into a
// human-readable report, typically on behalf of a fatal-error or assertion
// handler.
//
// The pipeline has four stages: capture the raw return addresses and render
// each frame in the native textual layout, parse that text back into fields,
// demangle the symbol name, and optionally resolve a source location through
// an external symbolizer subprocess. Every stage degrades independently:
// a line that does not parse is printed verbatim, a name that does not
// demangle is printed as mangled+offset, and a failed or absent external
// resolver falls back to "address (module)". The only hard failure is a
// capture that recorded nothing, reported as a single line.
//
// Each stage's outcome is an explicit value (Frame, DisplayName, Location)
// rather than an error path, so callers and tests can observe which branch
// was taken.
package backtrace
