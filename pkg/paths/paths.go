// Package paths provides centralized path handling for harvest: the
// conventional names of the patterns/ignore/config files, their discovery
// order, and the XDG-compliant log file location.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/codeharvest/harvest/pkg/types"
)

// Conventional file names picked up by default discovery.
const (
	// PatternsFileName is the conventional inclusion-patterns file
	PatternsFileName = "harvest-patterns.txt"

	// IgnoreFileName is the conventional exclusion-rules file
	IgnoreFileName = "harvest-ignore.txt"

	// ConfigFileName is the optional TOML configuration file
	ConfigFileName = "harvest.toml"

	// AppDirName is the directory name for harvest-specific files
	AppDirName = "harvest"

	// LogFileName is the name of the log file
	LogFileName = "harvest.log"
)

// LogFilePath returns the path to the log file under the XDG state
// directory.
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, AppDirName, LogFileName)
}

// FindDefault locates a conventionally named file, checking the current
// working directory first and the directory of the running executable
// second. It returns the empty string when the file is found in neither
// place. Discovery is best-effort: lookup failures simply shrink the
// search.
func FindDefault(fsys types.FS, name string) string {
	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, name)
		if isRegular(fsys, candidate) {
			return candidate
		}
	}

	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		candidate := filepath.Join(filepath.Dir(exe), name)
		if isRegular(fsys, candidate) {
			return candidate
		}
	}

	return ""
}

func isRegular(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
