// Package etf implements a Euler-tour forest: a forest of rooted trees
// represented as an Euler-tour sequence held in an avl.Forest, giving
// amortized O(log n) Link, Cut, Connected and Root. Each vertex contributes
// two occurrences to its tree's sequence (a "first" and a "last"), with the
// invariant that everything between a vertex's first and last occurrence is
// exactly its subtree; a leaf's first and last occurrences are adjacent.
//
// Link attaches a tree root as a new child of any vertex in another tree by
// splitting the target tree just after the parent's first occurrence and
// splicing the child's whole occurrence range in; Cut reverses this by
// splitting a vertex's own occurrence range out of its parent tree.
package etf
