// Package avl implements an order-statistic AVL sequence forest: a forest of
// height-balanced binary search trees ordered purely by position (not by
// key), stored in a single arena and addressed by integer node handles to
// avoid pointer cycles. It supports the five primitives an Euler-tour forest
// needs to stay logarithmic: NewSingleton, Root, Position, Split and Concat.
//
// Split and Concat are both built on a single join-based balancing
// primitive (Blelloch & Reid-Miller's "join"), which keeps every operation
// O(log n): Concat pops the rightmost node of the left tree as a pivot and
// joins; Split walks from a node up to its root, accumulating a left and a
// right tree via join at every step.
package avl
