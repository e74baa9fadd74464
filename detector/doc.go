// Package detector defines the contract shared by every dead-state detector
// (naive, simple, bfgt, logdet, jump): the Detector interface, the four
// classification states, and the result Snapshot.
//
// Concrete detectors live in sibling packages (github.com/katalvlaran/gid/naive,
// .../simple, .../bfgt, .../logdet, .../jump) and depend on this package, not
// the other way around - this package has no dependency on any single
// algorithm, so callers (the driver, tests, cmd/gid) can hold a Detector value
// without caring which algorithm backs it.
package detector
