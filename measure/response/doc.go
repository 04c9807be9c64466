// Package response measures the steady-state magnitude response of a
// quad filter by feeding a unit impulse through a per-sample processing
// function and transforming the captured response.
//
// This is an analysis tool for tests and tooling, not part of the
// real-time path: Measure allocates and runs at whatever rate the
// caller likes. Only lane 0 of the quad output is analyzed; lanes are
// independent, so measuring one lane characterizes a filter whose four
// lanes carry the same coefficients.
package response
