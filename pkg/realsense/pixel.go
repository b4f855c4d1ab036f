package realsense

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/teslashibe/go-realsense/pkg/kind"
)

// Pixel is one typed sample read out of a raw frame buffer. The concrete
// type depends on the frame's format; the set is closed.
type Pixel interface {
	pixel()
}

// LumaChromaPixel is a YUYV/UYVY sample: luminance plus shared chroma.
type LumaChromaPixel struct {
	Y, U, V uint8
}

// ColorPixel is a 3-channel color sample. Channel roles are normalized, so
// R is red for both BGR8 and RGB8 buffers.
type ColorPixel struct {
	R, G, B uint8
}

// ColorAlphaPixel is a 4-channel color sample with alpha.
type ColorAlphaPixel struct {
	R, G, B, A uint8
}

// GrayPixel is a single-byte sample (RAW8, Y8).
type GrayPixel struct {
	Value uint8
}

// Gray16Pixel is a 16-bit sample (Y16, Z16 raw depth units).
type Gray16Pixel struct {
	Value uint16
}

// DistancePixel is a metric distance sample in meters.
type DistancePixel struct {
	Meters float32
}

// DisparityPixel is a 32-bit stereo disparity sample.
type DisparityPixel struct {
	Value float32
}

// PointPixel is one XYZ32F sample: three consecutive floats.
type PointPixel struct {
	X, Y, Z float32
}

func (LumaChromaPixel) pixel() {}
func (ColorPixel) pixel()      {}
func (ColorAlphaPixel) pixel() {}
func (GrayPixel) pixel()       {}
func (Gray16Pixel) pixel()     {}
func (DistancePixel) pixel()   {}
func (DisparityPixel) pixel()  {}
func (PointPixel) pixel()      {}

func f32At(data []byte, byteOff int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(data[byteOff:]))
}

// pixelAt computes the byte or element offset for (col, row) in a raw frame
// buffer and reinterprets it as a typed sample. Bounds are the caller's
// responsibility; VideoFrame.At performs the check, AtUnchecked does not.
//
// An unrecognized format is a contract violation by the caller or an
// unsupported device format, not a runtime condition, and aborts rather
// than returning a value that could hide a misread buffer.
func pixelAt(format kind.Format, data []byte, size, stride, col, row int) Pixel {
	switch format {
	case kind.FormatYuyv:
		// two pixels pack into 4 bytes; truncating division selects the pair
		off := row*stride + (col/2)*4
		y := data[off]
		if row%2 != 0 {
			y = data[off+2]
		}
		return LumaChromaPixel{Y: y, U: data[off+1], V: data[off+3]}
	case kind.FormatUyvy:
		off := row*stride + (col/2)*4
		y := data[off+1]
		if row%2 != 0 {
			y = data[off+3]
		}
		return LumaChromaPixel{Y: y, U: data[off], V: data[off+2]}
	case kind.FormatBgr8:
		off := row*stride + col*3
		return ColorPixel{B: data[off], G: data[off+1], R: data[off+2]}
	case kind.FormatRgb8:
		off := row*stride + col*3
		return ColorPixel{R: data[off], G: data[off+1], B: data[off+2]}
	case kind.FormatBgra8:
		off := row*stride + col*4
		return ColorAlphaPixel{B: data[off], G: data[off+1], R: data[off+2], A: data[off+3]}
	case kind.FormatRgba8:
		off := row*stride + col*4
		return ColorAlphaPixel{R: data[off], G: data[off+1], B: data[off+2], A: data[off+3]}
	case kind.FormatRaw8, kind.FormatY8:
		off := row*stride + col
		return GrayPixel{Value: data[off]}
	case kind.FormatY16, kind.FormatZ16:
		// stride is in bytes; address in 16-bit elements
		idx := row*(stride/2) + col
		return Gray16Pixel{Value: binary.LittleEndian.Uint16(data[idx*2:])}
	case kind.FormatDistance:
		idx := row*(stride/4) + col
		return DistancePixel{Meters: f32At(data, idx*4)}
	case kind.FormatDisparity32:
		idx := row*(stride/4) + col
		return DisparityPixel{Value: f32At(data, idx*4)}
	case kind.FormatXyz32F:
		idx := row*(stride/4) + col
		return PointPixel{
			X: f32At(data, idx*4),
			Y: f32At(data, (idx+1)*4),
			Z: f32At(data, (idx+2)*4),
		}
	default:
		panic(fmt.Sprintf("realsense: no pixel accessor for format %s", format))
	}
}
