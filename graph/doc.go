// Package graph defines the shared digraph substrate used by every dead-state
// detector: vertices identified by caller-supplied integer keys, insertion-only
// directed edges (multi-edges and self-loops permitted), and the closed/terminal
// flags a detector classifies against.
//
// Vertices are created lazily on first mention and are never removed. The
// substrate itself does not compute LIVE/DEAD/UNKNOWN/OPEN status — that is
// the job of the detector packages (naive, simple, bfgt, logdet, jump) built
// on top of it; Graph only tracks the structural facts (closed, terminal,
// adjacency) those detectors reason over.
package graph
