// Package conformance runs every concrete detector against the same
// update streams and checks that they agree, classify correctly on the six
// concrete scenarios, and hold up under reordering of commuting updates and
// repeated updates.
package conformance
