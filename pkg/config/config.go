// Package config loads the optional harvest.toml configuration file.
//
// The file supplies defaults for values the user would otherwise repeat on
// every invocation; explicit flags always win. When no file is named, the
// conventional harvest.toml is discovered in the current directory first
// and beside the executable second, and its absence is not an error.
package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/codeharvest/harvest/pkg/errors"
	"github.com/codeharvest/harvest/pkg/logging"
	"github.com/codeharvest/harvest/pkg/paths"
	"github.com/codeharvest/harvest/pkg/types"
)

// File mirrors the harvest.toml schema.
type File struct {
	// Out is the output directory
	Out string `toml:"out"`

	// Patterns is an inline comma-separated inclusion list
	Patterns string `toml:"patterns"`

	// PatternsFile is a line-oriented inclusion pattern file
	PatternsFile string `toml:"patterns_file"`

	// IgnoreFile is a line-oriented exclusion rule file
	IgnoreFile string `toml:"ignore_file"`
}

// Load reads the config file. explicit names a file that must exist;
// when explicit is empty the conventional file is discovered and an empty
// File is returned if none is found.
func Load(fsys types.FS, explicit string) (*File, error) {
	logger := logging.GetLogger("config")

	path := explicit
	if path == "" {
		path = paths.FindDefault(fsys, paths.ConfigFileName)
		if path == "" {
			return &File{}, nil
		}
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPathMissing,
			"cannot read config file %s", path)
	}

	var cfg File
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse,
			"cannot parse config file %s", path)
	}

	logger.Debug().Str("file", path).Msg("Config file loaded")
	return &cfg, nil
}
