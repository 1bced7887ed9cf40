package renderer

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WritePPM writes the tone-mapped image as plain-text PPM (P3): the header
// "P3\n<width> <height>\n255\n" followed by one "<r> <g> <b>" line per pixel,
// row-major, left-to-right, top-to-bottom.
func (pb *PixelBuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", pb.width, pb.height); err != nil {
		return err
	}

	for y := 0; y < pb.height; y++ {
		for x := 0; x < pb.width; x++ {
			r, g, b := pb.ToneMappedAt(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// SavePPM writes the tone-mapped image to a PPM file. A failed save reports
// an error without disturbing the buffer, so subsequent render passes and
// save attempts are unaffected.
func (pb *PixelBuffer) SavePPM(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := pb.WritePPM(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
