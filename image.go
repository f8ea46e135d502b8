package timeline

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/chromedp/chromedp"
)

const jpegQuality = 90

// WriteImage renders the timeline as a raster image and writes it to w.
// Supported formats are "png", "jpg" and "jpeg". The SVG document is
// rendered by a headless Chrome instance via chromedp, so a Chrome or
// Chromium binary must be available on the host; the screenshot of the
// svg element becomes the image.
func (t *Timeline) WriteImage(w io.Writer, format string) error {
	var svg bytes.Buffer
	if err := t.WriteTo(&svg); err != nil {
		return fmt.Errorf("failed to generate intermediate SVG: %w", err)
	}

	// A data URI lets the browser load the SVG without a temp file.
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg.Bytes())

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	ctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	var screenshot []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &screenshot, chromedp.ByQuery),
	}

	log.Println("Running chromedp tasks (navigate and screenshot)...")
	if err := chromedp.Run(ctx, tasks); err != nil {
		return fmt.Errorf("chromedp execution failed: %w", err)
	}
	if len(screenshot) == 0 {
		return fmt.Errorf("screenshot buffer is empty, screenshot failed")
	}

	switch format {
	case "png":
		// The screenshot is already PNG; pass it through.
		if _, err := io.Copy(w, bytes.NewReader(screenshot)); err != nil {
			return fmt.Errorf("failed to write PNG screenshot data: %w", err)
		}
	case "jpg", "jpeg":
		img, err := png.Decode(bytes.NewReader(screenshot))
		if err != nil {
			return fmt.Errorf("failed to decode PNG screenshot: %w", err)
		}
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return fmt.Errorf("failed to encode JPEG: %w", err)
		}
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
	return nil
}

// SaveImage is WriteImage writing to a file, created or truncated. A
// failed render or write removes the partial file.
func (t *Timeline) SaveImage(filename, format string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	if err := t.WriteImage(f, format); err != nil {
		f.Close()
		os.Remove(filename)
		return err
	}
	return f.Close()
}
