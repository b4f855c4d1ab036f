package realsense

import (
	"fmt"

	"github.com/teslashibe/go-realsense/internal/native"
	"github.com/teslashibe/go-realsense/pkg/kind"
)

// DepthFrame is an image frame whose pixels encode distance. Beyond the
// video surface it supports direct metric distance lookup, independent of
// the raw pixel format.
type DepthFrame struct {
	VideoFrame
}

func newDepthFrame(lib native.Lib, h native.Handle) (*DepthFrame, error) {
	vf, err := newVideoFrame(lib, h)
	if err != nil {
		return nil, err
	}
	return &DepthFrame{VideoFrame: *vf}, nil
}

// Distance returns the distance at (col, row) in meters, via the native
// per-pixel query.
func (f *DepthFrame) Distance(col, row int) (float32, error) {
	d, raw := f.lib.GetDepthDistance(f.h, col, row)
	if err := checkError(raw); err != nil {
		return 0, fmt.Errorf("depth distance at (%d,%d): %w", col, row, err)
	}
	return d, nil
}

// DepthUnits returns the scale of raw depth values in meters per unit, read
// from the owning sensor's DepthUnits option. Fails with
// ErrOptionNotSupported if the sensor does not expose it.
func (f *DepthFrame) DepthUnits() (float32, error) {
	sensor, err := f.Sensor()
	if err != nil {
		return 0, err
	}
	defer sensor.Close()

	supported, err := sensor.SupportsOption(kind.OptionDepthUnits)
	if err != nil {
		return 0, err
	}
	if !supported {
		return 0, ErrOptionNotSupported
	}
	return sensor.GetOption(kind.OptionDepthUnits)
}

// DisparityFrame is a depth frame whose pixels encode stereo disparity
// rather than distance.
type DisparityFrame struct {
	DepthFrame
}

func newDisparityFrame(lib native.Lib, h native.Handle) (*DisparityFrame, error) {
	df, err := newDepthFrame(lib, h)
	if err != nil {
		return nil, err
	}
	return &DisparityFrame{DepthFrame: *df}, nil
}

// Baseline returns the stereo baseline in millimeters.
func (f *DisparityFrame) Baseline() (float32, error) {
	b, raw := f.lib.GetDisparityBaseline(f.h)
	if err := checkError(raw); err != nil {
		return 0, fmt.Errorf("stereo baseline: %w", err)
	}
	return b, nil
}
