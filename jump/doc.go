// Package jump implements the lazy jump-pointer dead-state detector: each
// UNKNOWN vertex holds a single jump pointer toward some out-neighbor,
// assigned when it closes and corrected only when a query actually chases
// it - no propagation happens eagerly except LIVE, which still spreads
// backward the moment a vertex becomes reachable from a terminal, exactly
// as the simple detector does.
//
// A query follows a vertex's jump chain looking for an already-LIVE
// witness, compressing every vertex it passes through straight onto that
// witness (the chain's own flavor of union-find path compression) so a
// later query over the same ground is O(1). A chain that dead-ends without
// finding one - because it loops back on a cluster of mutually-closed
// vertices, or runs into an open vertex - falls back to the same
// forward-reachability definitional scan the simple detector uses (see
// DESIGN.md) to decide DEAD; the jump chain itself has no structural way
// to detect a closed cycle on its own.
package jump
