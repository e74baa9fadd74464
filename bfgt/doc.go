// Package bfgt implements an incremental strongly-connected-component
// maintainer inspired by Bender, Fineman, Gilbert & Tarjan's cache-oblivious
// incremental SCC algorithm: vertices are grouped into super-nodes via
// union-find, each super-node carries a topological level, and the
// super-graph they induce is kept acyclic by merging super-nodes whenever a
// new edge would otherwise close a cycle between them.
//
// Liveness and deadness are then simple reverse-BFS propagations over that
// super-graph (which, unlike the raw vertex graph, is guaranteed acyclic by
// construction): a super-node is LIVE if any member is terminal or it can
// reach a LIVE super-node, DEAD if every member is closed and every
// out-super-edge leads to a DEAD super-node. A vertex's own OPEN/UNKNOWN
// split is purely local (whether the vertex itself is closed); LIVE/DEAD are
// properties of its whole super-node.
package bfgt
