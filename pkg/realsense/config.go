package realsense

import (
	"fmt"

	"github.com/teslashibe/go-realsense/internal/native"
	"github.com/teslashibe/go-realsense/pkg/kind"
)

// Config collects stream requests and device filters to resolve a pipeline
// against. A zero request set means "the device's default streams".
type Config struct {
	lib native.Lib
	h   native.Handle
}

// NewConfig creates an empty configuration in the native backend.
func NewConfig() (*Config, error) {
	lib, err := native.Open()
	if err != nil {
		return nil, err
	}
	return newConfig(lib)
}

func newConfig(lib native.Lib) (*Config, error) {
	h, raw := lib.CreateConfig()
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("create config: %w", err)
	}
	return &Config{lib: lib, h: mustHandle(h, "config")}, nil
}

// EnableStream requests one explicit stream. Zero width, height or framerate
// match any; index -1 matches any stream index.
func (c *Config) EnableStream(stream kind.Stream, index, width, height int, format kind.Format, framerate int) error {
	raw := c.lib.ConfigEnableStream(c.h, stream, index, width, height, format, framerate)
	if err := checkError(raw); err != nil {
		return fmt.Errorf("enable stream %s: %w", stream, err)
	}
	return nil
}

// EnableAllStreams requests every stream the device offers.
func (c *Config) EnableAllStreams() error {
	if err := checkError(c.lib.ConfigEnableAllStreams(c.h)); err != nil {
		return fmt.Errorf("enable all streams: %w", err)
	}
	return nil
}

// DisableStream removes requests for a stream kind.
func (c *Config) DisableStream(stream kind.Stream) error {
	if err := checkError(c.lib.ConfigDisableStream(c.h, stream)); err != nil {
		return fmt.Errorf("disable stream %s: %w", stream, err)
	}
	return nil
}

// DisableAllStreams removes every stream request.
func (c *Config) DisableAllStreams() error {
	if err := checkError(c.lib.ConfigDisableAllStreams(c.h)); err != nil {
		return fmt.Errorf("disable all streams: %w", err)
	}
	return nil
}

// EnableDevice restricts resolution to the device with the given serial.
func (c *Config) EnableDevice(serial string) error {
	if err := checkError(c.lib.ConfigEnableDevice(c.h, serial)); err != nil {
		return fmt.Errorf("enable device %q: %w", serial, err)
	}
	return nil
}

// EnableDeviceFromFile plays back a recorded session instead of live
// hardware.
func (c *Config) EnableDeviceFromFile(path string) error {
	if err := checkError(c.lib.ConfigEnableDeviceFromFile(c.h, path)); err != nil {
		return fmt.Errorf("enable device from file %q: %w", path, err)
	}
	return nil
}

// EnableRecordToFile records the streamed session to a file.
func (c *Config) EnableRecordToFile(path string) error {
	if err := checkError(c.lib.ConfigEnableRecordToFile(c.h, path)); err != nil {
		return fmt.Errorf("enable record to file %q: %w", path, err)
	}
	return nil
}

// Close releases the native config.
func (c *Config) Close() error {
	if c.h != 0 {
		c.lib.DeleteConfig(c.h)
		c.h = 0
	}
	return nil
}
