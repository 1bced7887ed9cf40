package renderer

import (
	"fmt"

	"github.com/rsraytracer/go-raytracer/pkg/core"
)

// Channels is the number of floating accumulators per pixel
const Channels = 3

// PixelBuffer is a dense array of per-channel radiance accumulators,
// row-major, top-to-bottom. It is allocated once for the renderer's lifetime
// and overwritten in place by each render pass. Sample sums are stored
// un-normalized; division by the sample count is deferred to tone-mapping so
// the same storage serves repeated passes and partial inspection.
type PixelBuffer struct {
	width, height   int
	data            []float64
	samplesPerPixel int // sample count behind the current accumulator values
}

// NewPixelBuffer creates a buffer holding the x/y gradient placeholder
func NewPixelBuffer(width, height int) *PixelBuffer {
	pb := &PixelBuffer{
		width:  width,
		height: height,
		data:   make([]float64, width*height*Channels),
	}
	pb.FillGradient()
	return pb
}

// Width returns the buffer width in pixels
func (pb *PixelBuffer) Width() int { return pb.width }

// Height returns the buffer height in pixels
func (pb *PixelBuffer) Height() int { return pb.height }

// SamplesPerPixel returns the sample count behind the current contents
func (pb *PixelBuffer) SamplesPerPixel() int { return pb.samplesPerPixel }

// FillGradient overwrites the buffer with an x/y gradient placeholder
// (red left to right, green top to bottom) shown until the first pass.
func (pb *PixelBuffer) FillGradient() {
	for y := 0; y < pb.height; y++ {
		for x := 0; x < pb.width; x++ {
			offset := (y*pb.width + x) * Channels
			pb.data[offset] = float64(x) / float64(pb.width)
			pb.data[offset+1] = float64(y) / float64(pb.height)
			pb.data[offset+2] = 0
		}
	}
	pb.samplesPerPixel = 1
}

// Reset zeroes the accumulators and records the sample count of the
// upcoming pass.
func (pb *PixelBuffer) Reset(samplesPerPixel int) {
	for i := range pb.data {
		pb.data[i] = 0
	}
	pb.samplesPerPixel = samplesPerPixel
}

// SetSampleSum stores the un-normalized sum of all samples for pixel (x, y),
// where row 0 is the top of the frame.
func (pb *PixelBuffer) SetSampleSum(x, y int, sum core.Vec3) {
	offset := (y*pb.width + x) * Channels
	pb.data[offset] = sum.X
	pb.data[offset+1] = sum.Y
	pb.data[offset+2] = sum.Z
}

// SampleSum returns the raw accumulated radiance for pixel (x, y)
func (pb *PixelBuffer) SampleSum(x, y int) core.Vec3 {
	offset := (y*pb.width + x) * Channels
	return core.NewVec3(pb.data[offset], pb.data[offset+1], pb.data[offset+2])
}

// ToneMappedAt returns the display bytes for pixel (x, y): average over the
// sample count, gamma-2 correction, clamp to [0, 0.999], scale by 256 and
// truncate. The preview and export paths both go through here so their
// outputs are pixel-identical.
func (pb *PixelBuffer) ToneMappedAt(x, y int) (r, g, b uint8) {
	color := pb.SampleSum(x, y).
		Divide(float64(pb.samplesPerPixel)).
		GammaCorrect(2.0).
		Clamp(0.0, 0.999)

	return uint8(256 * color.X), uint8(256 * color.Y), uint8(256 * color.Z)
}

// CopyRGB blits the tone-mapped image into a caller-provided RGB byte buffer
// with the given row stride, for preview collaborators. The destination must
// be large enough for the full image.
func (pb *PixelBuffer) CopyRGB(dst []byte, stride int) error {
	if stride < pb.width*Channels {
		return fmt.Errorf("stride %d is too small for width %d", stride, pb.width)
	}
	if len(dst) < pb.height*stride {
		return fmt.Errorf("destination length %d is too small for %dx%d image with stride %d",
			len(dst), pb.width, pb.height, stride)
	}

	for y := 0; y < pb.height; y++ {
		for x := 0; x < pb.width; x++ {
			r, g, b := pb.ToneMappedAt(x, y)
			offset := y*stride + x*Channels
			dst[offset] = r
			dst[offset+1] = g
			dst[offset+2] = b
		}
	}
	return nil
}
