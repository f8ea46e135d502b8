package timeline

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDocument = `
units: ms
layout:
  column_width: 100
events:
  - name: Process A
    start: 1
    end: 2
    location: CPU 0
  - name: Process B
    start: 2
    end: 3
    location: CPU 1
triggers:
  - from: CPU 0
    to: CPU 1
    time: 2
`

func TestLoad_buildsTimeline(t *testing.T) {
	tl, err := Load(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	require.Equal(t, Milliseconds, tl.units)
	require.Equal(t, uint64(1), tl.startTime)
	require.Equal(t, uint64(3), tl.endTime)
	require.Len(t, tl.events, 2)
	require.Len(t, tl.triggers, 1)
	require.Equal(t, uint64(100), tl.layout.ColumnWidth)
	require.Equal(t, uint64(20), tl.layout.RowHeight, "unset layout fields keep defaults")

	var buf bytes.Buffer
	require.NoError(t, tl.WriteTo(&buf))
	// Span of 2 units at 100px per column, two lanes plus the axis row.
	require.True(t, strings.HasPrefix(buf.String(), `<svg width="200" height="60"`))
	require.Contains(t, buf.String(), ">ms</text>")
}

func TestLoad_rejectsMalformedYAML(t *testing.T) {
	_, err := Load(strings.NewReader("events: {not: [a, list"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing timeline document")
}

func TestLoad_rejectsUnknownUnits(t *testing.T) {
	_, err := Load(strings.NewReader("units: fortnights"))
	require.Error(t, err)
	require.Contains(t, err.Error(), `"fortnights"`)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o644))

	tl, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, tl.events, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParseTimeUnit(t *testing.T) {
	cases := []struct {
		in   string
		want TimeUnit
	}{
		{"", Nanoseconds},
		{"ns", Nanoseconds},
		{"nanoseconds", Nanoseconds},
		{"us", Microseconds},
		{"ms", Milliseconds},
		{"seconds", Seconds},
		{"min", Minutes},
		{"h", Hours},
		{"days", Days},
	}
	for _, tc := range cases {
		got, err := ParseTimeUnit(tc.in)
		require.NoError(t, err, "unit %q", tc.in)
		require.Equal(t, tc.want, got, "unit %q", tc.in)
	}

	_, err := ParseTimeUnit("lightyears")
	require.Error(t, err)
}
