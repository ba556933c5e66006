// Package setup drives a full reconciliation pass: discover every artifact
// definition contributed by the project and its dependency chain, then
// bring each managed file to its converged state in a stable order.
package setup
