// Package filesystem provides implementations of the types.FS interface.
//
// Two implementations are available:
//   - NewOS returns an FS backed by the real operating system filesystem.
//   - NewAfero wraps any afero.Fs, which is how tests run the whole
//     pipeline against an in-memory filesystem.
package filesystem
