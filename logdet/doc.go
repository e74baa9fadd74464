// Package logdet implements the canonical-fwd-edge dead-state detector: each
// UNKNOWN vertex keeps one canonical out-pointer - its most-recently-added
// non-DEAD out-neighbor - and the resulting functional graph is maintained
// as a Euler-tour forest (package etf, itself built on package avl).
//
// LIVE propagates by walking the Euler tour of the tree rooted at whatever
// vertex just turned LIVE (one pass over that subtree, charged once per
// vertex it reaches); predecessors that walk does not reach (OPEN vertices,
// which never hold a canonical edge, and closed vertices whose canonical
// edge points elsewhere) are reached the ordinary way, via the raw reverse
// edge, exactly as the simple detector does. DEAD propagates by cutting the
// dying vertex out of the forest and having every vertex whose canonical
// edge pointed at it cut that edge and repick among its remaining
// out-neighbors, recursing into DEAD itself if none is left.
//
// A Euler-tour forest can only represent trees, so a closed cycle in the
// underlying digraph - which the fwd-forest cannot hold - falls back to the
// same forward-reachability definitional scan the simple detector uses (see
// DESIGN.md): this is the one corner case not resolved through Link/Cut.
package logdet
