package realsense

import (
	"fmt"

	"github.com/teslashibe/go-realsense/internal/native"
	"github.com/teslashibe/go-realsense/pkg/kind"
)

// frame is the part every typed frame variant shares: the owned native
// handle, the release flag, and the metadata every frame kind carries.
type frame struct {
	lib        native.Lib
	h          native.Handle
	shouldDrop bool

	profile   *StreamProfile
	timestamp float64
	domain    kind.TimestampDomain
	number    uint64
}

// newFrame reads the common metadata off a raw frame handle. The caller
// keeps ownership of the handle on failure.
func newFrame(lib native.Lib, h native.Handle) (frame, error) {
	ts, raw := lib.GetFrameTimestamp(h)
	if err := checkError(raw); err != nil {
		return frame{}, fmt.Errorf("frame timestamp: %w", err)
	}
	domain, raw := lib.GetFrameTimestampDomain(h)
	if err := checkError(raw); err != nil {
		return frame{}, fmt.Errorf("frame timestamp domain: %w", err)
	}
	number, raw := lib.GetFrameNumber(h)
	if err := checkError(raw); err != nil {
		return frame{}, fmt.Errorf("frame number: %w", err)
	}
	ph, raw := lib.GetFrameStreamProfile(h)
	if err := checkError(raw); err != nil {
		return frame{}, fmt.Errorf("frame stream profile: %w", err)
	}
	profile, err := newStreamProfile(lib, mustHandle(ph, "stream profile"))
	if err != nil {
		return frame{}, err
	}
	return frame{
		lib:        lib,
		h:          h,
		shouldDrop: true,
		profile:    profile,
		timestamp:  ts,
		domain:     domain,
		number:     number,
	}, nil
}

// Profile returns the stream profile this frame was captured under.
func (f *frame) Profile() *StreamProfile { return f.profile }

// Timestamp returns the capture timestamp in milliseconds.
func (f *frame) Timestamp() float64 { return f.timestamp }

// TimestampDomain identifies the clock the timestamp was taken from.
func (f *frame) TimestampDomain() kind.TimestampDomain { return f.domain }

// FrameNumber returns the monotonic frame counter.
func (f *frame) FrameNumber() uint64 { return f.number }

// SupportsMetadata reports whether the frame carries the metadata attribute.
func (f *frame) SupportsMetadata(md kind.FrameMetadata) bool {
	ok, raw := f.lib.SupportsFrameMetadata(f.h, md)
	if checkError(raw) != nil {
		return false
	}
	return ok
}

// Metadata returns the raw integer value of a metadata attribute, or false
// if the frame does not carry it.
func (f *frame) Metadata(md kind.FrameMetadata) (int64, bool) {
	if !f.SupportsMetadata(md) {
		return 0, false
	}
	v, raw := f.lib.GetFrameMetadata(f.h, md)
	if checkError(raw) != nil {
		return 0, false
	}
	return v, true
}

// Sensor re-derives the sensor that produced this frame. The native call
// allocates a new sensor object each time, so the returned Sensor is owned
// and must be closed.
func (f *frame) Sensor() (*Sensor, error) {
	h, raw := f.lib.GetFrameSensor(f.h)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("frame sensor: %w", err)
	}
	return &Sensor{lib: f.lib, h: mustHandle(h, "sensor"), shouldDrop: true}, nil
}

// DetachHandle transfers ownership of the raw frame handle to the caller,
// disabling this wrapper's own release. The caller becomes responsible for
// releasing the handle exactly once.
func (f *frame) DetachHandle() native.Handle {
	h := f.h
	f.h = 0
	f.shouldDrop = false
	return h
}

// Close releases the native frame reference if this wrapper still owns it.
// Safe to call more than once.
func (f *frame) Close() error {
	if f.h != 0 && f.shouldDrop {
		f.lib.ReleaseFrame(f.h)
	}
	f.h = 0
	return nil
}
