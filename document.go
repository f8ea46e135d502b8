package timeline

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the YAML schema Load accepts. It mirrors the construction
// API: a units label, optional layout overrides, and the event and trigger
// lists in the order they should be added.
type document struct {
	Units    string            `yaml:"units"`
	Layout   Layout            `yaml:"layout"`
	Events   []documentEvent   `yaml:"events"`
	Triggers []documentTrigger `yaml:"triggers"`
}

type documentEvent struct {
	Name     string `yaml:"name"`
	Start    uint64 `yaml:"start"`
	End      uint64 `yaml:"end"`
	Location string `yaml:"location"`
}

type documentTrigger struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Time uint64 `yaml:"time"`
}

// ParseTimeUnit maps a unit label to its TimeUnit. Both the short axis
// forms ("ns", "ms", ...) and the spelled-out names ("nanoseconds", ...)
// are accepted. An empty string means the default, nanoseconds.
func ParseTimeUnit(s string) (TimeUnit, error) {
	switch s {
	case "", "ns", "nanoseconds":
		return Nanoseconds, nil
	case "us", "microseconds":
		return Microseconds, nil
	case "ms", "milliseconds":
		return Milliseconds, nil
	case "s", "seconds":
		return Seconds, nil
	case "min", "minutes":
		return Minutes, nil
	case "h", "hours":
		return Hours, nil
	case "d", "days":
		return Days, nil
	}
	return Nanoseconds, fmt.Errorf("unknown time unit %q", s)
}

// Load builds a timeline from a YAML document read from r. The document
// lists events and triggers declaratively instead of driving AddEvent and
// AddTrigger from code:
//
//	units: ms
//	layout:
//	  column_width: 100
//	events:
//	  - {name: Process A, start: 0, end: 1, location: CPU 0}
//	triggers:
//	  - {from: CPU 0, to: CPU 1, time: 1}
func Load(r io.Reader) (*Timeline, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading timeline document: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing timeline document: %w", err)
	}

	units, err := ParseTimeUnit(doc.Units)
	if err != nil {
		return nil, err
	}

	t := NewWithLayout(doc.Layout)
	t.SetUnits(units)
	for _, ev := range doc.Events {
		t.AddEvent(ev.Name, ev.Start, ev.End, ev.Location)
	}
	for _, tr := range doc.Triggers {
		t.AddTrigger(tr.From, tr.To, tr.Time)
	}
	return t, nil
}

// LoadFile is Load reading from the named file.
func LoadFile(path string) (*Timeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}
