// Package solid is a collection of small Go programs, one per SOLID
// principle variation, built around a single idea: a call site invokes a
// capability (a Go interface) on an open set of variants without branching
// on which variant it holds.
//
// Layout:
//
//   - capability: Sequence[C], an ordered registry of named variants plus
//     Dispatch helpers; every example driver is built on it
//   - examples/srp01..dip06: one package per example, each with a Run driver
//   - examples: the catalog that registers every example as a variant
//   - cmd/solid: CLI to list and run examples (internal/cli)
//   - internal/config, internal/logger, internal/console: ambient plumbing
//
// Start with examples/ocp02 for the pattern in its smallest form.
package solid
