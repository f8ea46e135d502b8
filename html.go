package timeline

import (
	"bytes"
	"fmt"
	"io"
)

// WriteHTML renders the timeline as a standalone HTML page embedding the
// SVG document inline, convenient for opening the diagram directly in a
// browser without an SVG viewer.
func (t *Timeline) WriteHTML(w io.Writer) error {
	var svg bytes.Buffer
	if err := t.WriteTo(&svg); err != nil {
		return err
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<title>Timeline</title>\n")
	page.WriteString("<style>\nbody { margin: 0; padding: 40px; font-family: Arial, sans-serif; }\n</style>\n")
	page.WriteString("</head>\n<body>\n")
	page.Write(svg.Bytes())
	page.WriteString("</body>\n</html>\n")

	if _, err := w.Write(page.Bytes()); err != nil {
		return fmt.Errorf("writing HTML output: %w", err)
	}
	return nil
}
