// Package errors provides the typed error model shared by every stage of the
// calculator. Each failure carries a machine-readable code so the command
// line driver can decide how to report it (usage text or not) while still
// exiting with a nonzero status.
package errors
