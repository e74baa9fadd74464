// Package simple implements the reverse-BFS dead-state detector: liveness
// propagates forward along reverse edges from terminals, deadness propagates
// backward from closed sinks whose every out-neighbor is dead.
//
// On MarkTerminal(t), t and every ancestor of t (reached by walking reverse
// edges) is marked LIVE. On AddEdge(u,v), if v is already LIVE, u becomes
// LIVE too (and the mark propagates further backward). On MarkClosed(u), if
// every out-neighbor of u is DEAD (vacuously true if u has none), u becomes
// DEAD; whenever a vertex becomes DEAD, its closed predecessors are
// rechecked, so deadness eventually reaches every closed ancestor whose
// entire reachable frontier has gone dead.
package simple
