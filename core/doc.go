// Package core defines the transition-rate graph of a continuous-time Markov
// model: the Model type, its directed Edge keys and the thread-safe
// primitives to build and query it.
//
// A Model maps ordered state pairs (from → to) to a rate expression
// (expr.Rat). States are non-negative integers; the state space is the union
// of all edge endpoints. The cumulant engine expects
//
//   - reversibility: every edge (i,j) has its reverse (j,i),
//   - indexing: the state space is exactly 0..N-1,
//
// but core itself only rejects structurally impossible input (self-loops,
// negative states, nil models). Consistency with a chord set is the job of
// package validate.
//
// Concurrency:
//
//	All methods are safe for concurrent use; a single sync.RWMutex guards the
//	rate catalog. Readers (Edges, States, Rate, ...) take the read lock and
//	return fresh slices, so callers may keep them without further locking.
//
// Determinism:
//
//	Edges(), States(), UndirectedEdges() and Neighbors() return sorted slices;
//	no result depends on map iteration order.
//
// Lifecycle:
//
//	Callers build a Model, then hand it to the engine. The engine never
//	mutates a Model it receives; use Clone for a private copy.
package core
