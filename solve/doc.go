// Package solve is the driver: it wires bigraph/oracle/reducer/ilp/dp for
// OCM and trigraph/moddecomp/sattww for TWW, dispatches to whichever exact
// optimizer is configured, verifies the result against the crossing oracle
// or a replayed contraction sequence, and reports failures using the error
// taxonomy of ParseError / InvariantViolated / SolverError /
// VerificationFailed.
package solve
