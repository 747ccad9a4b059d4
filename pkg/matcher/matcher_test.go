package matcher

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeharvest/harvest/pkg/filesystem"
	"github.com/codeharvest/harvest/pkg/patterns"
)

func newMatcher(t *testing.T, inline string) *Matcher {
	t.Helper()
	set, err := patterns.Load(filesystem.NewAfero(afero.NewMemMapFs()), inline, "")
	require.NoError(t, err)
	return New(set)
}

func TestMatchBase(t *testing.T) {
	tests := []struct {
		name     string
		patterns string
		base     string
		want     bool
	}{
		{
			name:     "case-insensitive substring",
			patterns: "Range",
			base:     "MyRANGEsensor.H",
			want:     true,
		},
		{
			name:     "no substring hit",
			patterns: "Range",
			base:     "rang.h",
			want:     false,
		},
		{
			name:     "any pattern suffices",
			patterns: "range,depth,distance",
			base:     "keep_distance.h",
			want:     true,
		},
		{
			name:     "exact name",
			patterns: "config",
			base:     "config",
			want:     true,
		},
		{
			name:     "pattern longer than name",
			patterns: "configuration",
			base:     "config",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMatcher(t, tt.patterns)
			assert.Equal(t, tt.want, m.MatchBase(tt.base))
		})
	}
}
