package realsense

import (
	"fmt"

	"github.com/teslashibe/go-realsense/internal/native"
	"github.com/teslashibe/go-realsense/pkg/kind"
)

// Sensor is one sensing unit of a device (stereo module, RGB camera, IMU).
// A Sensor always owns its native handle, whether it came from
// Device.Sensors or Frame.Sensor, and must be closed.
type Sensor struct {
	lib        native.Lib
	h          native.Handle
	shouldDrop bool
}

// GetOption reads the current value of an option. Unsupported options are
// reported as ErrOptionNotSupported before the native call is attempted.
func (s *Sensor) GetOption(opt kind.Option) (float32, error) {
	supported, err := s.SupportsOption(opt)
	if err != nil {
		return 0, err
	}
	if !supported {
		return 0, ErrOptionNotSupported
	}
	v, raw := s.lib.GetOption(s.h, opt)
	if err := checkError(raw); err != nil {
		return 0, fmt.Errorf("get option %d: %w", opt, err)
	}
	return v, nil
}

// SetOption writes an option value. Unsupported and read-only options are
// reported as domain errors before the native call is attempted.
func (s *Sensor) SetOption(opt kind.Option, value float32) error {
	supported, err := s.SupportsOption(opt)
	if err != nil {
		return err
	}
	if !supported {
		return ErrOptionNotSupported
	}
	readOnly, err := s.IsOptionReadOnly(opt)
	if err != nil {
		return err
	}
	if readOnly {
		return ErrOptionReadOnly
	}
	if err := checkError(s.lib.SetOption(s.h, opt, value)); err != nil {
		return fmt.Errorf("set option %d: %w", opt, err)
	}
	return nil
}

// SupportsOption reports whether the sensor exposes the option.
func (s *Sensor) SupportsOption(opt kind.Option) (bool, error) {
	ok, raw := s.lib.SupportsOption(s.h, opt)
	if err := checkError(raw); err != nil {
		return false, fmt.Errorf("supports option %d: %w", opt, err)
	}
	return ok, nil
}

// IsOptionReadOnly reports whether the option can only be read.
func (s *Sensor) IsOptionReadOnly(opt kind.Option) (bool, error) {
	ro, raw := s.lib.IsOptionReadOnly(s.h, opt)
	if err := checkError(raw); err != nil {
		return false, fmt.Errorf("option %d read-only query: %w", opt, err)
	}
	return ro, nil
}

// OptionRange returns the valid range of an option.
func (s *Sensor) OptionRange(opt kind.Option) (kind.OptionRange, error) {
	r, raw := s.lib.GetOptionRange(s.h, opt)
	if err := checkError(raw); err != nil {
		return kind.OptionRange{}, fmt.Errorf("option %d range: %w", opt, err)
	}
	return r, nil
}

// Info returns a sensor description field, or false if unsupported.
func (s *Sensor) Info(info kind.CameraInfo) (string, bool) {
	ok, raw := s.lib.SupportsSensorInfo(s.h, info)
	if checkError(raw) != nil || !ok {
		return "", false
	}
	v, raw := s.lib.GetSensorInfo(s.h, info)
	if err := checkError(raw); err != nil {
		return "", false
	}
	return v, true
}

// StreamProfiles enumerates the streams this sensor can produce. Profile data
// is copied out eagerly and the native list is released before returning, so
// the scalar accessors of the returned profiles never fail; only live-handle
// queries (intrinsics, extrinsics) can fail later. A profile that fails to
// read is skipped.
func (s *Sensor) StreamProfiles() ([]*StreamProfile, error) {
	list, raw := s.lib.GetStreamProfiles(s.h)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("stream profiles: %w", err)
	}
	defer s.lib.DeleteStreamProfileList(list)

	n, raw := s.lib.StreamProfileListSize(list)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("stream profile count: %w", err)
	}

	profiles := make([]*StreamProfile, 0, n)
	for i := 0; i < n; i++ {
		h, raw := s.lib.GetStreamProfile(list, i)
		if err := checkError(raw); err != nil {
			continue
		}
		p, err := newStreamProfile(s.lib, h)
		if err != nil {
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// Close releases the native sensor.
func (s *Sensor) Close() error {
	if s.h != 0 && s.shouldDrop {
		s.lib.DeleteSensor(s.h)
	}
	s.h = 0
	return nil
}
