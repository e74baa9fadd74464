// Package driver constructs a detector.Detector by algorithm name and
// replays an update stream through it under a timeout, timing the run. It
// is the only package that imports all five concrete algorithm packages, so
// package detector itself stays free of any dependency on them.
package driver
