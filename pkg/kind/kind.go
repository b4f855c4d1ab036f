// Package kind defines the closed enum sets and calibration value types shared
// between the native boundary and the public wrappers. Numeric values match the
// native library's headers so the cgo layer can cast them directly.
package kind

import "fmt"

// Exception classifies a native error by the exception type the library raised.
type Exception int32

const (
	ExceptionUnknown Exception = iota
	ExceptionCameraDisconnected
	ExceptionBackend
	ExceptionInvalidValue
	ExceptionWrongAPICallSequence
	ExceptionNotImplemented
	ExceptionDeviceInRecoveryMode
	ExceptionIO
)

// String returns a human-readable name for the exception.
func (e Exception) String() string {
	switch e {
	case ExceptionUnknown:
		return "unknown"
	case ExceptionCameraDisconnected:
		return "camera disconnected"
	case ExceptionBackend:
		return "backend"
	case ExceptionInvalidValue:
		return "invalid value"
	case ExceptionWrongAPICallSequence:
		return "wrong API call sequence"
	case ExceptionNotImplemented:
		return "not implemented"
	case ExceptionDeviceInRecoveryMode:
		return "device in recovery mode"
	case ExceptionIO:
		return "io"
	default:
		return fmt.Sprintf("exception(%d)", int32(e))
	}
}
