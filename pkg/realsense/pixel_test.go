package realsense

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/teslashibe/go-realsense/internal/native"
	"github.com/teslashibe/go-realsense/pkg/kind"
)

func f32le(vals ...float32) []byte {
	out := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(v))
	}
	return out
}

func TestPixelAt(t *testing.T) {
	tests := []struct {
		name     string
		format   kind.Format
		data     []byte
		stride   int
		col, row int
		want     Pixel
	}{
		{
			name:   "bgr8 channel roles normalized",
			format: kind.FormatBgr8,
			data:   []byte{10, 20, 30, 40, 50, 60},
			stride: 6,
			col:    1, row: 0,
			want: ColorPixel{B: 40, G: 50, R: 60},
		},
		{
			name:   "rgb8 channel roles normalized",
			format: kind.FormatRgb8,
			data:   []byte{10, 20, 30, 40, 50, 60},
			stride: 6,
			col:    1, row: 0,
			want: ColorPixel{R: 40, G: 50, B: 60},
		},
		{
			name:   "bgr8 second row honors stride",
			format: kind.FormatBgr8,
			data:   []byte{0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6},
			stride: 6,
			col:    0, row: 1,
			want: ColorPixel{B: 1, G: 2, R: 3},
		},
		{
			name:   "rgba8 keeps alpha",
			format: kind.FormatRgba8,
			data:   []byte{1, 2, 3, 4, 5, 6, 7, 8},
			stride: 8,
			col:    1, row: 0,
			want: ColorAlphaPixel{R: 5, G: 6, B: 7, A: 8},
		},
		{
			name:   "bgra8 swaps color order",
			format: kind.FormatBgra8,
			data:   []byte{1, 2, 3, 4},
			stride: 4,
			col:    0, row: 0,
			want: ColorAlphaPixel{B: 1, G: 2, R: 3, A: 4},
		},
		{
			name:   "y8 single byte",
			format: kind.FormatY8,
			data:   []byte{9, 8, 7, 6},
			stride: 2,
			col:    1, row: 1,
			want: GrayPixel{Value: 6},
		},
		{
			name:   "z16 element addressing",
			format: kind.FormatZ16,
			data:   depthData(100, 200, 300, 400),
			stride: 4,
			col:    1, row: 1,
			want: Gray16Pixel{Value: 400},
		},
		{
			name:   "distance float meters",
			format: kind.FormatDistance,
			data:   f32le(0.5, 1.25),
			stride: 8,
			col:    1, row: 0,
			want: DistancePixel{Meters: 1.25},
		},
		{
			name:   "disparity32",
			format: kind.FormatDisparity32,
			data:   f32le(16.5, 32.25),
			stride: 8,
			col:    0, row: 0,
			want: DisparityPixel{Value: 16.5},
		},
		{
			name:   "xyz32f consecutive floats",
			format: kind.FormatXyz32F,
			data:   f32le(1, 2, 3, 4, 5, 6),
			stride: 24,
			col:    0, row: 0,
			want: PointPixel{X: 1, Y: 2, Z: 3},
		},
		{
			name:   "yuyv even row reads first luma byte",
			format: kind.FormatYuyv,
			data:   []byte{1, 2, 3, 4},
			stride: 4,
			col:    0, row: 0,
			want: LumaChromaPixel{Y: 1, U: 2, V: 4},
		},
		{
			name:   "yuyv columns of a pair share chroma",
			format: kind.FormatYuyv,
			data:   []byte{1, 2, 3, 4},
			stride: 4,
			col:    1, row: 0,
			want: LumaChromaPixel{Y: 1, U: 2, V: 4},
		},
		{
			name:   "yuyv odd row reads second luma byte",
			format: kind.FormatYuyv,
			data:   []byte{0, 0, 0, 0, 1, 2, 3, 4},
			stride: 4,
			col:    0, row: 1,
			want: LumaChromaPixel{Y: 3, U: 2, V: 4},
		},
		{
			name:   "uyvy even row",
			format: kind.FormatUyvy,
			data:   []byte{1, 2, 3, 4},
			stride: 4,
			col:    0, row: 0,
			want: LumaChromaPixel{Y: 2, U: 1, V: 3},
		},
		{
			name:   "uyvy odd row",
			format: kind.FormatUyvy,
			data:   []byte{0, 0, 0, 0, 1, 2, 3, 4},
			stride: 4,
			col:    1, row: 1,
			want: LumaChromaPixel{Y: 4, U: 1, V: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pixelAt(tt.format, tt.data, len(tt.data), tt.stride, tt.col, tt.row)
			if got != tt.want {
				t.Errorf("pixelAt(%v, col=%d, row=%d) = %#v, want %#v", tt.format, tt.col, tt.row, got, tt.want)
			}
		})
	}
}

func TestBgr8RoundTrip(t *testing.T) {
	const w, h = 7, 5
	stride := w * 3
	data := make([]byte, h*stride)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			off := row*stride + col*3
			data[off] = byte(10 + col)    // b
			data[off+1] = byte(20 + row)  // g
			data[off+2] = byte(col ^ row) // r
		}
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			got := pixelAt(kind.FormatBgr8, data, len(data), stride, col, row)
			want := ColorPixel{B: byte(10 + col), G: byte(20 + row), R: byte(col ^ row)}
			if got != want {
				t.Fatalf("pixelAt(%d,%d) = %#v, want %#v", col, row, got, want)
			}
		}
	}
}

func TestPixelAtUnknownFormatPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for format without an accessor")
		}
	}()
	pixelAt(kind.FormatMjpeg, []byte{0}, 1, 1, 0, 0)
}

func TestVideoFrameAtBounds(t *testing.T) {
	dev := simStereoDevice()
	sim := native.NewSim(dev)
	sim.QueueComposite(simColorFrame(dev, 1))

	active := startDefaultPipeline(t, sim)
	comp, err := active.Wait(0)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	defer comp.Close()

	frames := comp.ColorFrames()
	if len(frames) != 1 {
		t.Fatalf("got %d color frames, want 1", len(frames))
	}
	f := frames[0]
	defer f.Close()

	if _, ok := f.At(0, 0); !ok {
		t.Error("At(0,0) rejected an in-range pixel")
	}
	if _, ok := f.At(f.Width()-1, f.Height()-1); !ok {
		t.Error("At rejected the last in-range pixel")
	}
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {f.Width(), 0}, {0, f.Height()}} {
		if _, ok := f.At(c[0], c[1]); ok {
			t.Errorf("At(%d,%d) accepted an out-of-range pixel", c[0], c[1])
		}
	}

	px, ok := f.At(1, 0)
	if !ok {
		t.Fatal("At(1,0) rejected an in-range pixel")
	}
	want := ColorPixel{B: 3, G: 4, R: 5}
	if px != want {
		t.Errorf("At(1,0) = %#v, want %#v", px, want)
	}
}
