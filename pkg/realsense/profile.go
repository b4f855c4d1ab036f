package realsense

import (
	"fmt"

	"github.com/teslashibe/go-realsense/internal/native"
	"github.com/teslashibe/go-realsense/pkg/kind"
)

// StreamProfile describes one stream: its kind, sample format, stream index,
// process-unique id, framerate and default-ness.
//
// All scalar fields are copied out of the native handle at construction,
// because the handle can be invalidated at any later moment by a device
// disconnect. The scalar accessors therefore never fail; only the
// calibration queries (Intrinsics, MotionIntrinsics, Extrinsics) touch the
// live handle again and can fail after construction. The handle itself is
// borrowed from the sensor or frame the profile came from and is never
// released here.
type StreamProfile struct {
	lib native.Lib
	h   native.Handle

	stream    kind.Stream
	format    kind.Format
	index     int
	uniqueID  int
	framerate int
	isDefault bool
}

// newStreamProfile copies the scalar profile data out of a live native
// handle. Both native queries are checked independently; a failure in either
// fails the whole construction.
func newStreamProfile(lib native.Lib, h native.Handle) (*StreamProfile, error) {
	stream, format, index, uniqueID, framerate, raw := lib.GetStreamProfileData(h)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("stream profile data: %w", err)
	}
	isDefault, raw := lib.IsStreamProfileDefault(h)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("stream profile default flag: %w", err)
	}
	return &StreamProfile{
		lib:       lib,
		h:         h,
		stream:    stream,
		format:    format,
		index:     index,
		uniqueID:  uniqueID,
		framerate: framerate,
		isDefault: isDefault,
	}, nil
}

// Kind returns the stream kind.
func (p *StreamProfile) Kind() kind.Stream { return p.stream }

// Format returns the sample format.
func (p *StreamProfile) Format() kind.Format { return p.format }

// Index returns the stream index, distinguishing e.g. the two infrared
// imagers of a stereo module.
func (p *StreamProfile) Index() int { return p.index }

// UniqueID returns the process-unique id of this stream.
func (p *StreamProfile) UniqueID() int { return p.uniqueID }

// Framerate returns the stream's frames per second.
func (p *StreamProfile) Framerate() int { return p.framerate }

// IsDefault reports whether the device selects this stream by default.
func (p *StreamProfile) IsDefault() bool { return p.isDefault }

// Intrinsics returns the camera model of a video stream. Returns
// ErrNotApplicable for non-video stream kinds; for video kinds it queries the
// live handle and can fail if the device disconnected since construction.
func (p *StreamProfile) Intrinsics() (kind.Intrinsics, error) {
	if !p.stream.IsVideo() {
		return kind.Intrinsics{}, ErrNotApplicable
	}
	intr, raw := p.lib.GetVideoIntrinsics(p.h)
	if err := checkError(raw); err != nil {
		return kind.Intrinsics{}, fmt.Errorf("video intrinsics: %w", err)
	}
	return intr, nil
}

// MotionIntrinsics returns the IMU calibration of a gyro or accel stream.
// Returns ErrNotApplicable for other stream kinds.
func (p *StreamProfile) MotionIntrinsics() (kind.MotionIntrinsics, error) {
	if !p.stream.IsMotion() {
		return kind.MotionIntrinsics{}, ErrNotApplicable
	}
	intr, raw := p.lib.GetMotionIntrinsics(p.h)
	if err := checkError(raw); err != nil {
		return kind.MotionIntrinsics{}, fmt.Errorf("motion intrinsics: %w", err)
	}
	return intr, nil
}

// Extrinsics returns the transform from this stream's coordinate space to
// another stream's.
func (p *StreamProfile) Extrinsics(to *StreamProfile) (kind.Extrinsics, error) {
	extr, raw := p.lib.GetExtrinsics(p.h, to.h)
	if err := checkError(raw); err != nil {
		return kind.Extrinsics{}, fmt.Errorf("extrinsics: %w", err)
	}
	return extr, nil
}

// RegisterExtrinsics stores a transform between two streams.
func (p *StreamProfile) RegisterExtrinsics(to *StreamProfile, extr kind.Extrinsics) error {
	if err := checkError(p.lib.RegisterExtrinsics(p.h, to.h, extr)); err != nil {
		return fmt.Errorf("register extrinsics: %w", err)
	}
	return nil
}
