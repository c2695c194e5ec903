// Package fixtures builds small, deterministic chain complexes for testing
// and demonstrating package reducer. Every complex it builds is derived
// from a graph: core.Graph's signed vertex/edge incidence matrix serves as
// a two-group integer boundary map. It has no builders for chains of three
// or more groups or for group-ring coefficients.
package fixtures
