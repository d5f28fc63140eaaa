// Package dimacs parses and writes the two DIMACS-style formats this module
// consumes: `p ocr` for one-sided crossing minimization instances and
// `p tww` for twin-width instances, plus the plain-integer output formats
// both solvers produce.
package dimacs
