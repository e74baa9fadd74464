// Package naive implements the full-recomputation dead-state detector: the
// baseline against which simple, bfgt, logdet and jump are measured.
//
// On every Status/Snapshot query it recomputes reachability from scratch: for
// each vertex v, forward-search from v; v is LIVE iff some reachable vertex
// is terminal, DEAD iff v is closed, no reachable vertex is terminal, and
// every reachable vertex is closed, else UNKNOWN (closed) or OPEN. There is
// no incremental state beyond the graph itself, so correctness is definitional.
//
// Complexity: O(n*(n+m)) per query, the worst of the five detectors; this
// package exists to give the others something ground-truth to agree with.
package naive
