// Package worker provides scope-bound lifetime guards for goroutines.
// A Handle represents one launched unit of work; Guard and Scoped bind
// its join to the lifetime of an enclosing block, so the join runs on
// every exit path.
package worker
