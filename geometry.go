package timeline

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownCategory is returned when a trigger names a location no event
// has used. Swimlanes exist only for event locations; triggers never create
// one, so the lookup fails rather than silently inventing a row.
var ErrUnknownCategory = errors.New("unknown category")

// timeX maps a time to its x pixel offset on the canvas. The earliest time
// seen lands at x=0; every later time gets the column padding added on top
// of its column offset. Times before startTime are a caller error and wrap.
func (t *Timeline) timeX(time uint64) uint64 {
	padding := t.layout.ColumnPadding
	if time == t.startTime {
		padding = 0
	}
	return (time-t.startTime)*t.layout.ColumnWidth + padding
}

// categoryY maps a swimlane name to its y pixel offset, given the sorted
// category list for this render. Row 0 is the axis, so the first category
// starts one row down.
func (t *Timeline) categoryY(category string, categories []string) (uint64, error) {
	idx := slices.Index(categories, category)
	if idx < 0 {
		return 0, fmt.Errorf("category %q has no swimlane: %w", category, ErrUnknownCategory)
	}
	return (uint64(idx)+1)*t.layout.RowHeight + t.layout.RowPadding, nil
}

// categories returns the distinct event locations in ascending order.
// Sorting by name rather than insertion order keeps vertical placement
// stable no matter what order events were added in. Recomputed on every
// render so late AddEvent calls are always picked up.
func (t *Timeline) categories() []string {
	cats := make([]string, 0, len(t.events))
	for _, ev := range t.events {
		cats = append(cats, ev.Location)
	}
	slices.Sort(cats)
	return slices.Compact(cats)
}

// span is the number of whole time units the canvas covers. The sentinel
// bounds of an empty timeline would underflow end-start, so guard it and
// let an empty timeline degrade to a zero-width canvas.
func (t *Timeline) span() uint64 {
	if t.endTime < t.startTime {
		return 0
	}
	return t.endTime - t.startTime
}
