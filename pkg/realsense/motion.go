package realsense

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/teslashibe/go-realsense/internal/native"
	"github.com/teslashibe/go-realsense/pkg/kind"
)

// MotionFrame is one IMU sample: angular velocity in rad/s for gyro streams,
// acceleration in m/s² for accel streams.
type MotionFrame struct {
	frame

	motion kind.Vector3
}

// newMotionFrame reads the common metadata and the first three floats of the
// sample buffer, each native query individually checked.
func newMotionFrame(lib native.Lib, h native.Handle) (*MotionFrame, error) {
	base, err := newFrame(lib, h)
	if err != nil {
		return nil, err
	}
	size, raw := lib.GetFrameDataSize(h)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("motion data size: %w", err)
	}
	if size < 12 {
		return nil, fmt.Errorf("motion data size %d too small for 3 floats", size)
	}
	data, raw := lib.GetFrameData(h, size)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("motion data: %w", err)
	}
	return &MotionFrame{
		frame: base,
		motion: kind.Vector3{
			X: math.Float32frombits(binary.LittleEndian.Uint32(data[0:])),
			Y: math.Float32frombits(binary.LittleEndian.Uint32(data[4:])),
			Z: math.Float32frombits(binary.LittleEndian.Uint32(data[8:])),
		},
	}, nil
}

// Motion returns the sample vector.
func (f *MotionFrame) Motion() kind.Vector3 { return f.motion }
