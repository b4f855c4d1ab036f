package realsense

import (
	"fmt"

	"github.com/teslashibe/go-realsense/internal/native"
)

// VideoFrame is one image frame: color, infrared, or the image view of a
// depth stream. Dimensions, stride and the data view are fixed at
// construction; the underlying buffer is immutable for the frame's lifetime.
type VideoFrame struct {
	frame

	width        int
	height       int
	bitsPerPixel int
	stride       int
	dataSize     int
	data         []byte
}

// newVideoFrame reads every cached field off the raw handle in order, each
// query individually checked. On any failure the caller keeps ownership of
// the handle and no partial frame is returned.
func newVideoFrame(lib native.Lib, h native.Handle) (*VideoFrame, error) {
	width, raw := lib.GetFrameWidth(h)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("frame width: %w", err)
	}
	height, raw := lib.GetFrameHeight(h)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("frame height: %w", err)
	}
	bpp, raw := lib.GetFrameBitsPerPixel(h)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("frame bits per pixel: %w", err)
	}
	stride, raw := lib.GetFrameStrideInBytes(h)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("frame stride: %w", err)
	}
	base, err := newFrame(lib, h)
	if err != nil {
		return nil, err
	}
	size, raw := lib.GetFrameDataSize(h)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("frame data size: %w", err)
	}
	data, raw := lib.GetFrameData(h, size)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("frame data: %w", err)
	}

	if debugAssertions && size != width*height*bpp/8 {
		panic(fmt.Sprintf("realsense: frame data size %d does not match %dx%d at %d bpp", size, width, height, bpp))
	}

	return &VideoFrame{
		frame:        base,
		width:        width,
		height:       height,
		bitsPerPixel: bpp,
		stride:       stride,
		dataSize:     size,
		data:         data,
	}, nil
}

// Width returns the frame width in pixels.
func (f *VideoFrame) Width() int { return f.width }

// Height returns the frame height in pixels.
func (f *VideoFrame) Height() int { return f.height }

// BitsPerPixel returns the storage size of one pixel in bits.
func (f *VideoFrame) BitsPerPixel() int { return f.bitsPerPixel }

// Stride returns the length of one image row in bytes, including padding.
func (f *VideoFrame) Stride() int { return f.stride }

// DataSize returns the size of the raw buffer in bytes.
func (f *VideoFrame) DataSize() int { return f.dataSize }

// Data returns the raw buffer. The view is valid only while the frame is
// open and must be treated as read-only.
func (f *VideoFrame) Data() []byte { return f.data }

// At returns the typed pixel at (col, row), or false when the coordinate is
// out of range.
func (f *VideoFrame) At(col, row int) (Pixel, bool) {
	if col < 0 || row < 0 || col >= f.width || row >= f.height {
		return nil, false
	}
	return pixelAt(f.profile.Format(), f.data, f.dataSize, f.stride, col, row), true
}

// AtUnchecked returns the typed pixel at (col, row) without a bounds check.
// It exists for hot per-pixel loops whose bounds are established once
// outside the loop; passing an out-of-range coordinate reads the wrong
// pixel or panics.
func (f *VideoFrame) AtUnchecked(col, row int) Pixel {
	return pixelAt(f.profile.Format(), f.data, f.dataSize, f.stride, col, row)
}
