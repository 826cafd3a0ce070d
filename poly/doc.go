// Package poly evaluates polynomials with real coefficients at real and
// complex points by Horner's rule.
//
// Coefficients are stored highest degree first, so New(1, 0, 0, 0, 1) is
// z⁴ + 1. ExpTaylor builds the truncated Taylor series of e^x in the same
// layout.
package poly
