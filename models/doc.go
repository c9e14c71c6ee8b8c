// Package models provides ready-made transition-rate models and their
// parametrizations as plain values: generic topologies with symbolic rates,
// the 4-state (Altaner–Vollmer) and 6-state (Liepelt–Lipowsky) kinesin
// networks with their chord choices, exact rational parametrizations in the
// force variables u = e^{f/20} and v = e^{Δμ}, and the two-state tilted
// generator of Lau, Lacoste and Mallick.
//
// Every constructor returns a fresh value; nothing here is shared or mutable
// across calls.
package models
