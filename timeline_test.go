package timeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddEvent_widensBounds(t *testing.T) {
	tl := New()

	tl.AddEvent("Event 1", 1, 2, "Location 1")
	require.Equal(t, uint64(1), tl.startTime)
	require.Equal(t, uint64(2), tl.endTime)
	require.Len(t, tl.events, 1)

	tl.AddEvent("Event 2", 3, 4, "Location 2")
	require.Equal(t, uint64(1), tl.startTime)
	require.Equal(t, uint64(4), tl.endTime)
	require.Len(t, tl.events, 2)
}

func TestAddTrigger_widensBounds(t *testing.T) {
	tl := New()

	tl.AddTrigger("Location 1", "Location 2", 1)
	require.Equal(t, uint64(1), tl.startTime)
	require.Equal(t, uint64(1), tl.endTime)
	require.Len(t, tl.triggers, 1)
}

// TestBounds_trackMinAndMax feeds an out-of-order mix of events and
// triggers and checks after every add that the bounds equal the running
// min and max of all times seen so far.
func TestBounds_trackMinAndMax(t *testing.T) {
	type add struct {
		event bool
		start uint64
		end   uint64
	}
	adds := []add{
		{event: true, start: 10, end: 12},
		{event: false, start: 7, end: 7},
		{event: true, start: 3, end: 20},
		{event: false, start: 25, end: 25},
		{event: true, start: 3, end: 3},
	}

	tl := New()
	wantStart := ^uint64(0)
	wantEnd := uint64(0)
	for i, a := range adds {
		if a.event {
			tl.AddEvent("e", a.start, a.end, "loc")
		} else {
			tl.AddTrigger("loc", "loc", a.start)
		}
		if a.start < wantStart {
			wantStart = a.start
		}
		if a.end > wantEnd {
			wantEnd = a.end
		}
		require.Equal(t, wantStart, tl.startTime, "start after add %d", i)
		require.Equal(t, wantEnd, tl.endTime, "end after add %d", i)
	}
}

func TestNewWithLayout_zeroFieldsKeepDefaults(t *testing.T) {
	tl := NewWithLayout(Layout{ColumnWidth: 100})

	require.Equal(t, uint64(20), tl.layout.RowHeight)
	require.Equal(t, uint64(100), tl.layout.ColumnWidth)
	require.Equal(t, uint64(1), tl.layout.RowPadding)
	require.Equal(t, uint64(0), tl.layout.ColumnPadding)
}

func TestSave_writesSVGFile(t *testing.T) {
	tl := New()
	tl.AddEvent("Event 1", 1, 2, "Location 1")
	tl.AddEvent("Event 2", 3, 4, "Location 2")
	tl.AddTrigger("Location 1", "Location 2", 1)

	path := filepath.Join(t.TempDir(), "timeline.svg")
	require.NoError(t, tl.Save(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(raw), "<svg "))
	require.True(t, strings.HasSuffix(string(raw), "</svg>\n"))
}

func TestSave_removesFileWhenRenderFails(t *testing.T) {
	tl := New()
	tl.AddEvent("Event 1", 1, 2, "Location 1")
	tl.AddTrigger("Location 1", "nowhere", 1)

	path := filepath.Join(t.TempDir(), "timeline.svg")
	err := tl.Save(path)
	require.ErrorIs(t, err, ErrUnknownCategory)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "failed save must not leave a partial file")
}

func TestTimeUnit_labels(t *testing.T) {
	cases := map[TimeUnit]string{
		Nanoseconds:  "ns",
		Microseconds: "us",
		Milliseconds: "ms",
		Seconds:      "s",
		Minutes:      "min",
		Hours:        "h",
		Days:         "d",
	}
	for unit, want := range cases {
		require.Equal(t, want, unit.String())
	}
}
