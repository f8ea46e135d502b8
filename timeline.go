// Package timeline renders traces of concurrent activity as SVG diagrams.
//
// Events are drawn as labeled boxes on horizontal swimlanes (one lane per
// distinct location), indexed by time along the x axis. Triggers are drawn
// as vertical connectors linking two swimlanes at a single instant, which
// is useful for showing that activity in one place caused activity in
// another — e.g. process A on CPU 0 waking process B on CPU 1.
package timeline

import (
	"fmt"
	"os"
)

// TimeUnit labels the time axis. It never affects any numeric computation;
// the axis always counts whole units elapsed since the earliest time seen.
type TimeUnit int

const (
	Nanoseconds TimeUnit = iota
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
)

func (u TimeUnit) String() string {
	switch u {
	case Nanoseconds:
		return "ns"
	case Microseconds:
		return "us"
	case Milliseconds:
		return "ms"
	case Seconds:
		return "s"
	case Minutes:
		return "min"
	case Hours:
		return "h"
	case Days:
		return "d"
	}
	return "?"
}

// Event is a named box on a swimlane. Name doubles as the color-assignment
// key: every event sharing a name renders in the same color within one
// document. StartTime <= EndTime is the caller's responsibility.
type Event struct {
	Name      string
	StartTime uint64
	EndTime   uint64
	Location  string
}

// Trigger is a vertical connector between two swimlanes at one instant.
// Its locations are not required to match any event's location, but a
// location no event uses has no swimlane and fails the render; see WriteTo.
type Trigger struct {
	StartLocation string
	EndLocation   string
	Time          uint64
}

// Layout holds the pixel sizing knobs for a rendered timeline. Zero fields
// fall back to the defaults (RowHeight 20, ColumnWidth 200, RowPadding 1,
// ColumnPadding 0).
type Layout struct {
	RowHeight     uint64 `yaml:"row_height"`
	ColumnWidth   uint64 `yaml:"column_width"`
	RowPadding    uint64 `yaml:"row_padding"`
	ColumnPadding uint64 `yaml:"column_padding"`
}

const (
	defaultRowHeight   = 20
	defaultColumnWidth = 200
	defaultRowPadding  = 1
)

func (l Layout) withDefaults() Layout {
	if l.RowHeight == 0 {
		l.RowHeight = defaultRowHeight
	}
	if l.ColumnWidth == 0 {
		l.ColumnWidth = defaultColumnWidth
	}
	if l.RowPadding == 0 {
		l.RowPadding = defaultRowPadding
	}
	return l
}

// Timeline accumulates events and triggers and renders them on demand.
// Events do not need to be added in chronological order; the time bounds
// are widened as entries arrive. Rendering never mutates the timeline, so
// a populated timeline may be rendered any number of times.
type Timeline struct {
	startTime uint64
	endTime   uint64
	events    []Event
	triggers  []Trigger
	units     TimeUnit
	layout    Layout

	// pick chooses a palette index; overridable so tests can pin colors.
	pick func(n int) int
}

// New returns an empty timeline with the default layout and nanosecond
// units. Before the first add the bounds carry sentinel values (start at
// the maximum uint64, end at zero) so any added time narrows them.
func New() *Timeline {
	return NewWithLayout(Layout{})
}

// NewWithLayout is New with explicit pixel sizing. Zero-valued Layout
// fields keep their defaults, mirroring Layout.withDefaults.
func NewWithLayout(l Layout) *Timeline {
	return &Timeline{
		startTime: ^uint64(0),
		endTime:   0,
		units:     Nanoseconds,
		layout:    l.withDefaults(),
	}
}

// AddEvent appends an event. The name is placed in a rectangle on the row
// for location, positioned at start. Duplicate events are permitted and
// each renders independently.
func (t *Timeline) AddEvent(name string, start, end uint64, location string) {
	if start < t.startTime {
		t.startTime = start
	}
	if end > t.endTime {
		t.endTime = end
	}
	t.events = append(t.events, Event{
		Name:      name,
		StartTime: start,
		EndTime:   end,
		Location:  location,
	})
}

// AddTrigger appends a trigger connecting startLocation to endLocation at
// the given instant. Triggers widen the time bounds just as events do.
func (t *Timeline) AddTrigger(startLocation, endLocation string, time uint64) {
	if time < t.startTime {
		t.startTime = time
	}
	if time > t.endTime {
		t.endTime = time
	}
	t.triggers = append(t.triggers, Trigger{
		StartLocation: startLocation,
		EndLocation:   endLocation,
		Time:          time,
	})
}

// SetUnits sets the unit label shown on the time axis. The default is
// nanoseconds. Units are a label only and change no coordinate.
func (t *Timeline) SetUnits(units TimeUnit) {
	t.units = units
}

// Save renders the timeline as SVG into filename, creating or truncating
// the file. If rendering or writing fails the partial file is removed so
// a failed save never leaves an inconsistent document behind.
func (t *Timeline) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	if err := t.WriteTo(f); err != nil {
		f.Close()
		os.Remove(filename)
		return err
	}
	return f.Close()
}
