package timeline

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// WriteTo renders the timeline as a complete SVG document and writes it to
// w in a single call, so a failing render leaves the sink untouched. The
// document holds a white background, the time axis, one group per event
// (rectangle plus label) and one path per trigger.
//
// Colors are picked at random per distinct event name; see colorMap.
// The only render-time failure is a trigger whose location no event uses,
// which surfaces as ErrUnknownCategory before anything is written.
func (t *Timeline) WriteTo(w io.Writer) error {
	categories := t.categories()
	colors := newColorMap(t.pick)

	span := t.span()
	width := span * t.layout.ColumnWidth
	height := (uint64(len(categories)) + 1) * t.layout.RowHeight

	var svg bytes.Buffer
	fmt.Fprintf(&svg, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height)
	fmt.Fprintf(&svg, `  <rect width="%d" height="%d" fill="#FFFFFF" />`+"\n", width, height)

	t.drawAxis(&svg, span)

	for _, event := range t.events {
		// Cannot fail: categories are derived from these same events.
		if err := t.drawEvent(&svg, event, categories, colors); err != nil {
			return err
		}
	}
	for _, trigger := range t.triggers {
		if err := t.drawTrigger(&svg, trigger, categories); err != nil {
			return err
		}
	}

	svg.WriteString("</svg>\n")

	_, err := w.Write(svg.Bytes())
	if err != nil {
		return fmt.Errorf("writing SVG output: %w", err)
	}
	return nil
}

// drawAxis emits the time axis group: a baseline across the full width, a
// major tick with an elapsed-unit label at each whole unit, and 8 minor
// ticks splitting each unit into tenths. Labels count from 0 at the
// earliest time seen, not from the absolute time value.
func (t *Timeline) drawAxis(svg *bytes.Buffer, span uint64) {
	width := span * t.layout.ColumnWidth
	bigTick := t.layout.RowHeight / 2
	smallTick := t.layout.RowHeight / 4

	svg.WriteString("  <g>\n")
	fmt.Fprintf(svg, `    <line x1="0" y1="%d" x2="%d" y2="%d" stroke="black" stroke-width="1" />`+"\n",
		t.layout.RowHeight, width, t.layout.RowHeight)

	for i := uint64(0); i < span; i++ {
		x := i * t.layout.ColumnWidth
		fmt.Fprintf(svg, `    <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black" stroke-width="1" />`+"\n",
			x, t.layout.RowHeight, x, t.layout.RowHeight-bigTick)
		fmt.Fprintf(svg, `    <text x="%d" y="%d" font-size="10" fill="black">%d</text>`+"\n",
			x, t.layout.RowHeight-bigTick, i)

		// The 0th and 10th tenths coincide with major ticks, and the 9th
		// would crowd the next unit's label, so draw tenths 1 through 8.
		for tick := uint64(1); tick < 9; tick++ {
			tx := x + (t.layout.ColumnWidth/10)*tick
			fmt.Fprintf(svg, `    <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black" stroke-width="1" />`+"\n",
				tx, t.layout.RowHeight, tx, t.layout.RowHeight-smallTick)
		}
	}

	fmt.Fprintf(svg, `    <text x="2" y="%d" font-size="8" fill="black">%s</text>`+"\n",
		t.layout.RowHeight-2, escapeXML(t.units.String()))
	svg.WriteString("  </g>\n")
}

// drawEvent emits one group holding the event's colored box and its name
// label. Only the start time positions the box; the box is always exactly
// one column wide regardless of the event's duration, never stretched out
// to EndTime.
func (t *Timeline) drawEvent(svg *bytes.Buffer, event Event, categories []string, colors *colorMap) error {
	x := t.timeX(event.StartTime)
	y, err := t.categoryY(event.Location, categories)
	if err != nil {
		return err
	}

	svg.WriteString("  <g>\n")
	fmt.Fprintf(svg, `    <rect x="%d" y="%d" width="%d" height="%d" fill="%s" />`+"\n",
		x, y, t.layout.ColumnWidth, t.layout.RowHeight, colors.colorFor(event.Name))
	fmt.Fprintf(svg, `    <text x="%d" y="%d" font-size="10" fill="black">%s</text>`+"\n",
		x, y+10, escapeXML(event.Name))
	svg.WriteString("  </g>\n")
	return nil
}

// drawTrigger emits one vertical path linking the trigger's two swimlanes
// at its instant.
func (t *Timeline) drawTrigger(svg *bytes.Buffer, trigger Trigger, categories []string) error {
	x := t.timeX(trigger.Time)
	startY, err := t.categoryY(trigger.StartLocation, categories)
	if err != nil {
		return err
	}
	endY, err := t.categoryY(trigger.EndLocation, categories)
	if err != nil {
		return err
	}

	fmt.Fprintf(svg, `  <path d="M%d,%d L%d,%d" stroke="black" stroke-width="1" fill="none" />`+"\n",
		x, startY, x, endY)
	return nil
}

// escapeXML escapes text content for insertion into the SVG document.
func escapeXML(s string) string {
	var buf strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
