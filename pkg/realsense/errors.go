package realsense

import (
	"errors"
	"fmt"

	"github.com/teslashibe/go-realsense/internal/native"
	"github.com/teslashibe/go-realsense/pkg/kind"
)

// Sentinel errors for common conditions.
var (
	// ErrTimeout is returned by ActivePipeline.Wait when no frame arrived
	// before the timeout elapsed. It is not a native failure.
	ErrTimeout = errors.New("realsense: frame wait timed out")

	// ErrNotApplicable is returned when a query does not apply to the stream
	// kind, e.g. video intrinsics on a gyro stream.
	ErrNotApplicable = errors.New("realsense: query not applicable to this stream kind")

	// ErrNoDevices is returned when an operation needs at least one attached
	// device and none is present.
	ErrNoDevices = errors.New("realsense: no devices found")

	// ErrOptionNotSupported is returned when a sensor does not expose the
	// requested option.
	ErrOptionNotSupported = errors.New("realsense: option not supported by sensor")

	// ErrOptionReadOnly is returned when setting an option the sensor exposes
	// read-only.
	ErrOptionReadOnly = errors.New("realsense: option is read-only")
)

// Error is a failure reported by the native library, classified by the
// exception kind the library raised.
type Error struct {
	Exception kind.Exception
	Message   string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("realsense: %s: %s", e.Exception, e.Message)
}

// IsDisconnected returns true if the failure was a device disconnect.
func (e *Error) IsDisconnected() bool {
	return e.Exception == kind.ExceptionCameraDisconnected
}

// IsInvalidValue returns true if the native library rejected an argument.
func (e *Error) IsInvalidValue() bool {
	return e.Exception == kind.ExceptionInvalidValue
}

// IsWrongCallSequence returns true if the call was made in an invalid state,
// e.g. waiting on a pipeline that was never started.
func (e *Error) IsWrongCallSequence() bool {
	return e.Exception == kind.ExceptionWrongAPICallSequence
}

// checkError is the single error adapter every native call goes through. If
// the out-parameter error object is non-nil it extracts the exception kind
// and message, frees the native object, and returns a typed *Error. It must
// run immediately after each native call, never batched: a native failure can
// invalidate outputs produced earlier in the same function.
func checkError(raw native.RawError) error {
	if raw == nil {
		return nil
	}
	defer raw.Free()
	return &Error{Exception: raw.Exception(), Message: raw.Message()}
}

// mustHandle enforces the native contract that a constructor returns non-null
// on success. A null handle after a clean error check is a logic error that
// could mask memory corruption, so it aborts instead of returning a value.
func mustHandle(h native.Handle, what string) native.Handle {
	if h == 0 {
		panic("realsense: native library returned null " + what + " without raising an error")
	}
	return h
}
