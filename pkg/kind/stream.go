package kind

import "fmt"

// Stream identifies the kind of data a stream carries.
type Stream int32

const (
	StreamAny Stream = iota
	StreamDepth
	StreamColor
	StreamInfrared
	StreamFisheye
	StreamGyro
	StreamAccel
	StreamGpio
	StreamPose
	StreamConfidence
)

// String returns a human-readable name for the stream kind.
func (s Stream) String() string {
	switch s {
	case StreamAny:
		return "any"
	case StreamDepth:
		return "depth"
	case StreamColor:
		return "color"
	case StreamInfrared:
		return "infrared"
	case StreamFisheye:
		return "fisheye"
	case StreamGyro:
		return "gyro"
	case StreamAccel:
		return "accel"
	case StreamGpio:
		return "gpio"
	case StreamPose:
		return "pose"
	case StreamConfidence:
		return "confidence"
	default:
		return fmt.Sprintf("stream(%d)", int32(s))
	}
}

// IsVideo reports whether the stream kind carries image data with camera
// intrinsics (the only kinds a video intrinsics query is valid for).
func (s Stream) IsVideo() bool {
	switch s {
	case StreamDepth, StreamColor, StreamInfrared, StreamFisheye:
		return true
	}
	return false
}

// IsMotion reports whether the stream kind carries IMU samples with motion
// intrinsics.
func (s Stream) IsMotion() bool {
	return s == StreamGyro || s == StreamAccel
}
