// Package types defines the core value types shared across the harvest
// pipeline: the match record written to the manifest, the copy decision
// produced by a disposition policy, and the filesystem abstraction.
package types

// MatchRecord holds the forensic metadata collected for one matched file.
// Records are immutable once created and written exactly once to the
// manifest.
type MatchRecord struct {
	// DisplayTime is the modification time formatted for human reading
	DisplayTime string
	// Epoch is the modification time in seconds since the Unix epoch
	Epoch int64
	// Size is the file size in bytes
	Size int64
	// SHA256 is the hex-encoded content digest, or the sentinel value
	// when the file could not be read
	SHA256 string
	// RelPath is the file path relative to the scan root
	RelPath string
	// AbsPath is the absolute file path
	AbsPath string
}

// Decision is the outcome of a disposition policy for a single file.
type Decision int

const (
	// DecisionCopy places the file into the output tree
	DecisionCopy Decision = iota
	// DecisionSkip leaves the file out of the output tree; the manifest
	// entry is unaffected
	DecisionSkip
)

// Disposition decides, per matched file, whether it is copied into the
// output tree. Dry-run and interactive confirmation are both implemented
// as disposition policies.
type Disposition func(rec MatchRecord) Decision
