package kind

import "fmt"

// Extension tags the concrete native subtype behind an opaque handle. A frame
// handle must be checked for extendability to a tag before it is treated as
// that subtype.
type Extension int32

const (
	ExtensionUnknown Extension = iota
	ExtensionDebug
	ExtensionInfo
	ExtensionMotion
	ExtensionOptions
	ExtensionVideo
	ExtensionRoi
	ExtensionDepthSensor
	ExtensionVideoFrame
	ExtensionMotionFrame
	ExtensionCompositeFrame
	ExtensionPoints
	ExtensionDepthFrame
	ExtensionAdvancedMode
	ExtensionRecord
	ExtensionVideoProfile
	ExtensionPlayback
	ExtensionDepthStereoSensor
	ExtensionDisparityFrame
	ExtensionMotionProfile
	ExtensionPoseFrame
	ExtensionPoseProfile
)

// String returns a human-readable name for the extension tag.
func (e Extension) String() string {
	switch e {
	case ExtensionVideoFrame:
		return "video frame"
	case ExtensionMotionFrame:
		return "motion frame"
	case ExtensionCompositeFrame:
		return "composite frame"
	case ExtensionPoints:
		return "points"
	case ExtensionDepthFrame:
		return "depth frame"
	case ExtensionDisparityFrame:
		return "disparity frame"
	case ExtensionPoseFrame:
		return "pose frame"
	case ExtensionDepthSensor:
		return "depth sensor"
	case ExtensionDepthStereoSensor:
		return "depth stereo sensor"
	default:
		return fmt.Sprintf("extension(%d)", int32(e))
	}
}
