// Package multisig binds the weighted multisig wallet: Request proposals,
// Signed approvals, the member table it is deployed with, and its
// get-methods.
package multisig
