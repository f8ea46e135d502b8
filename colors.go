package timeline

import "math/rand"

// palette is the fixed set of SVG named colors events are drawn with.
var palette = []string{
	"blue",
	"red",
	"green",
	"purple",
	"orange",
	"yellow",
	"palegreen",
	"pink",
	"cyan",
	"brown",
	"black",
	"gray",
	"magenta",
	"olive",
	"teal",
	"navy",
	"maroon",
	"lime",
	"aqua",
	"silver",
	"fuchsia",
	"white",
}

// colorMap assigns one palette color per distinct event name, chosen at
// random the first time a name is seen and memoized after that. The map is
// built fresh for each render, so colors are stable within a document but
// may differ between renders of the same timeline.
type colorMap struct {
	assigned map[string]string
	pick     func(n int) int
}

func newColorMap(pick func(n int) int) *colorMap {
	if pick == nil {
		pick = rand.Intn
	}
	return &colorMap{
		assigned: make(map[string]string),
		pick:     pick,
	}
}

func (m *colorMap) colorFor(name string) string {
	if color, ok := m.assigned[name]; ok {
		return color
	}
	color := palette[m.pick(len(palette))]
	m.assigned[name] = color
	return color
}
