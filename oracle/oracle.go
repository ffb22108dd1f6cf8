// Package oracle provides point-in-shape predicates for column generation.
//
// Each oracle answers queries for exactly one shape and is safe for
// concurrent reads once built. None of them share state, so silhouettes
// processed concurrently must each get their own oracle.
package oracle
