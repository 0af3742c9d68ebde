package feed

// Config carries the dispatcher's construction-time options, in the same
// constructor-options shape the teacher's matching.NewEngine uses
// (handler plus a small set of scalar flags, no builder pattern).
type Config struct {
	// SymbolFilter, if non-empty, is a whitelist of stock locates. Messages
	// for locates outside the set still update ParserStats, but bypass the
	// book, all event emission, and the per-operation Metrics counters.
	SymbolFilter []uint16

	// MetricsEnabled turns on the latency histograms and per-operation
	// counters. When false, Metrics() returns zero values and no cycle
	// sampling happens on the hot path.
	MetricsEnabled bool
}
