// Package jetton binds the SampleJetton master contract: its message
// records, the receivers it accepts, its deploy state and its get-methods.
package jetton
