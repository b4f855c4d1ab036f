package realsense

import (
	"fmt"

	"github.com/teslashibe/go-realsense/internal/native"
	"github.com/teslashibe/go-realsense/pkg/kind"
)

// Device is one attached camera. Devices returned by Context.QueryDevices own
// their handle and must be closed.
type Device struct {
	lib        native.Lib
	h          native.Handle
	shouldDrop bool
}

// Sensors enumerates the device's sensors. Every returned Sensor owns its
// handle and must be closed; a sensor that fails to open is skipped.
func (d *Device) Sensors() ([]*Sensor, error) {
	list, raw := d.lib.QuerySensors(d.h)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("query sensors: %w", err)
	}
	defer d.lib.DeleteSensorList(list)

	n, raw := d.lib.SensorListSize(list)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("sensor list size: %w", err)
	}

	sensors := make([]*Sensor, 0, n)
	for i := 0; i < n; i++ {
		h, raw := d.lib.CreateSensor(list, i)
		if err := checkError(raw); err != nil {
			continue
		}
		sensors = append(sensors, &Sensor{lib: d.lib, h: mustHandle(h, "sensor"), shouldDrop: true})
	}
	return sensors, nil
}

// SupportsInfo reports whether the device exposes the description field.
func (d *Device) SupportsInfo(info kind.CameraInfo) bool {
	ok, raw := d.lib.SupportsDeviceInfo(d.h, info)
	if err := checkError(raw); err != nil {
		return false
	}
	return ok
}

// Info returns the device description field, or false if the device does not
// expose it or the query failed.
func (d *Device) Info(info kind.CameraInfo) (string, bool) {
	if !d.SupportsInfo(info) {
		return "", false
	}
	s, raw := d.lib.GetDeviceInfo(d.h, info)
	if err := checkError(raw); err != nil {
		return "", false
	}
	return s, true
}

// Serial is shorthand for Info(CameraInfoSerialNumber).
func (d *Device) Serial() (string, bool) {
	return d.Info(kind.CameraInfoSerialNumber)
}

// HardwareReset asks the device to reset and consumes the wrapper: the
// underlying handle refers to pre-reset state, so it is released regardless
// of the call's outcome and the Device must not be used afterwards.
func (d *Device) HardwareReset() error {
	raw := d.lib.HardwareReset(d.h)
	err := checkError(raw)
	d.Close()
	if err != nil {
		return fmt.Errorf("hardware reset: %w", err)
	}
	return nil
}

// Close releases the native device if this wrapper owns it.
func (d *Device) Close() error {
	if d.h != 0 && d.shouldDrop {
		d.lib.DeleteDevice(d.h)
	}
	d.h = 0
	return nil
}

// DeviceHub waits for device arrival.
type DeviceHub struct {
	lib native.Lib
	h   native.Handle
}

// WaitForDevice blocks until a device is available and returns it. The
// returned Device owns its handle.
func (hub *DeviceHub) WaitForDevice() (*Device, error) {
	h, raw := hub.lib.HubWaitForDevice(hub.h)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("wait for device: %w", err)
	}
	return &Device{lib: hub.lib, h: mustHandle(h, "device"), shouldDrop: true}, nil
}

// Close releases the native hub.
func (hub *DeviceHub) Close() error {
	if hub.h != 0 {
		hub.lib.DeleteDeviceHub(hub.h)
		hub.h = 0
	}
	return nil
}
