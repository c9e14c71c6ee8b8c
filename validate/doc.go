// Package validate decides whether a transition-rate Model and a chord set
// form a consistent input for the cumulant engine.
//
// Checks run in a fixed order and stop at the first failure:
//
//  1. CheckReversible: every directed edge has its reverse.
//  2. CheckEvenEdges: the number of directed edges is even.
//  3. CheckBetti: the chord count equals |Model|/2 − N + 1.
//  4. CheckIndexed: the states are exactly 0..N-1.
//  5. CheckChordsContained: every chord is a directed edge of the Model.
//  6. CheckChordsDistinct: no two chords collapse to the same undirected edge.
//  7. CheckSpanningTree: the edges left after removing the chords form a
//     spanning tree.
//
// Check 7 is on by default. It turns chord sets that have the right size but
// leave a cycle uncovered into errors; WithoutSpanningTreeCheck restores the
// weaker six-check behavior.
//
// Failures are reported as *Error values carrying a Diagnostic; every such
// error matches ErrInconsistent under errors.Is. IsConsistent is the boolean
// surface: it logs the diagnostic on the configured zap logger and returns false.
package validate
