// Package functions binds the Functions benchmark contract, a counter driven
// by Add and Sub messages. Its initial data comes from running the "init"
// get-method of a bootstrap program, which Init delegates to a Starter.
package functions
