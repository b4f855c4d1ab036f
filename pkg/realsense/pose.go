package realsense

import (
	"fmt"

	"github.com/teslashibe/go-realsense/internal/native"
	"github.com/teslashibe/go-realsense/pkg/kind"
)

// PoseFrame is one 6DOF tracking sample.
type PoseFrame struct {
	frame

	pose kind.Pose
}

func newPoseFrame(lib native.Lib, h native.Handle) (*PoseFrame, error) {
	base, err := newFrame(lib, h)
	if err != nil {
		return nil, err
	}
	pose, raw := lib.GetPoseData(h)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("pose data: %w", err)
	}
	return &PoseFrame{frame: base, pose: pose}, nil
}

// Pose returns the fixed-size pose sample copied at construction.
func (f *PoseFrame) Pose() kind.Pose { return f.pose }
