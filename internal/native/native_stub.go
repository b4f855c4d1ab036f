//go:build !realsense

package native

// Open reports that this build carries no native backend. Build with
// -tags realsense against an installed librealsense2 to get the real one.
func Open() (Lib, error) {
	return nil, ErrUnavailable
}
