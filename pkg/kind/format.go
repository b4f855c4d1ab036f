package kind

import "fmt"

// Format identifies how individual samples in a frame buffer are laid out.
type Format int32

const (
	FormatAny Format = iota
	FormatZ16
	FormatDisparity16
	FormatXyz32F
	FormatYuyv
	FormatRgb8
	FormatBgr8
	FormatRgba8
	FormatBgra8
	FormatY8
	FormatY16
	FormatRaw10
	FormatRaw16
	FormatRaw8
	FormatUyvy
	FormatMotionRaw
	FormatMotionXyz32F
	FormatGpioRaw
	Format6Dof
	FormatDisparity32
	FormatY10BPack
	FormatDistance
	FormatMjpeg
	FormatY8I
	FormatY12I
	FormatInzi
	FormatInvi
	FormatW10
	FormatZ16H
)

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatAny:
		return "any"
	case FormatZ16:
		return "z16"
	case FormatDisparity16:
		return "disparity16"
	case FormatXyz32F:
		return "xyz32f"
	case FormatYuyv:
		return "yuyv"
	case FormatRgb8:
		return "rgb8"
	case FormatBgr8:
		return "bgr8"
	case FormatRgba8:
		return "rgba8"
	case FormatBgra8:
		return "bgra8"
	case FormatY8:
		return "y8"
	case FormatY16:
		return "y16"
	case FormatRaw10:
		return "raw10"
	case FormatRaw16:
		return "raw16"
	case FormatRaw8:
		return "raw8"
	case FormatUyvy:
		return "uyvy"
	case FormatMotionRaw:
		return "motion-raw"
	case FormatMotionXyz32F:
		return "motion-xyz32f"
	case FormatGpioRaw:
		return "gpio-raw"
	case Format6Dof:
		return "6dof"
	case FormatDisparity32:
		return "disparity32"
	case FormatY10BPack:
		return "y10bpack"
	case FormatDistance:
		return "distance"
	case FormatMjpeg:
		return "mjpeg"
	case FormatY8I:
		return "y8i"
	case FormatY12I:
		return "y12i"
	case FormatInzi:
		return "inzi"
	case FormatInvi:
		return "invi"
	case FormatW10:
		return "w10"
	case FormatZ16H:
		return "z16h"
	default:
		return fmt.Sprintf("format(%d)", int32(f))
	}
}
