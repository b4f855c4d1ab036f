package realsense

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/teslashibe/go-realsense/pkg/kind"
)

// matType maps a pixel format to the OpenCV element type of its buffer.
func matType(format kind.Format) (gocv.MatType, bool) {
	switch format {
	case kind.FormatBgr8, kind.FormatRgb8:
		return gocv.MatTypeCV8UC3, true
	case kind.FormatBgra8, kind.FormatRgba8:
		return gocv.MatTypeCV8UC4, true
	case kind.FormatY8, kind.FormatRaw8:
		return gocv.MatTypeCV8UC1, true
	case kind.FormatY16, kind.FormatZ16, kind.FormatDisparity16:
		return gocv.MatTypeCV16UC1, true
	case kind.FormatDistance, kind.FormatDisparity32:
		return gocv.MatTypeCV32FC1, true
	default:
		return 0, false
	}
}

// Mat copies the frame into a gocv.Mat for OpenCV processing. The Mat owns
// its copy of the data and outlives the frame; callers must Close it.
// Formats without a direct OpenCV element type, such as the packed luma
// chroma layouts, return an error.
func (f *VideoFrame) Mat() (gocv.Mat, error) {
	format := f.profile.Format()
	mt, ok := matType(format)
	if !ok {
		return gocv.Mat{}, fmt.Errorf("realsense: no mat type for format %v", format)
	}

	rowBytes := f.width * f.bitsPerPixel / 8
	if f.stride == rowBytes {
		return gocv.NewMatFromBytes(f.height, f.width, mt, f.data)
	}

	// stride padding: repack rows before handing the buffer to OpenCV
	packed := make([]byte, f.height*rowBytes)
	for row := 0; row < f.height; row++ {
		copy(packed[row*rowBytes:(row+1)*rowBytes], f.data[row*f.stride:row*f.stride+rowBytes])
	}
	return gocv.NewMatFromBytes(f.height, f.width, mt, packed)
}
