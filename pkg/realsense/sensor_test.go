package realsense

import (
	"errors"
	"testing"

	"github.com/teslashibe/go-realsense/internal/native"
	"github.com/teslashibe/go-realsense/pkg/kind"
)

func testSensors(t *testing.T, sim *native.Sim) []*Sensor {
	t.Helper()
	ctx, err := newContext(sim)
	if err != nil {
		t.Fatalf("newContext: %v", err)
	}
	t.Cleanup(func() { ctx.Close() })

	devices, err := ctx.QueryDevices(ProductAny)
	if err != nil {
		t.Fatalf("QueryDevices: %v", err)
	}
	if len(devices) == 0 {
		t.Fatal("no devices")
	}
	t.Cleanup(func() { devices[0].Close() })

	sensors, err := devices[0].Sensors()
	if err != nil {
		t.Fatalf("Sensors: %v", err)
	}
	t.Cleanup(func() {
		for _, s := range sensors {
			s.Close()
		}
	})
	return sensors
}

func TestSensorOptions(t *testing.T) {
	dev := simStereoDevice()
	sim := native.NewSim(dev)
	stereo := testSensors(t, sim)[0]

	v, err := stereo.GetOption(kind.OptionDepthUnits)
	if err != nil {
		t.Fatalf("GetOption: %v", err)
	}
	if v != 0.001 {
		t.Errorf("depth units = %v, want 0.001", v)
	}

	if err := stereo.SetOption(kind.OptionLaserPower, 180); err != nil {
		t.Fatalf("SetOption: %v", err)
	}
	if v, _ := stereo.GetOption(kind.OptionLaserPower); v != 180 {
		t.Errorf("laser power after set = %v, want 180", v)
	}

	if err := stereo.SetOption(kind.OptionHue, 1); !errors.Is(err, ErrOptionNotSupported) {
		t.Errorf("SetOption(unsupported) = %v, want ErrOptionNotSupported", err)
	}
	if _, err := stereo.GetOption(kind.OptionHue); !errors.Is(err, ErrOptionNotSupported) {
		t.Errorf("GetOption(unsupported) = %v, want ErrOptionNotSupported", err)
	}
	if err := stereo.SetOption(kind.OptionStereoBaseline, 60); !errors.Is(err, ErrOptionReadOnly) {
		t.Errorf("SetOption(read-only) = %v, want ErrOptionReadOnly", err)
	}

	supported, err := stereo.SupportsOption(kind.OptionLaserPower)
	if err != nil || !supported {
		t.Errorf("SupportsOption(laser power) = (%v, %v)", supported, err)
	}
	ro, err := stereo.IsOptionReadOnly(kind.OptionStereoBaseline)
	if err != nil || !ro {
		t.Errorf("IsOptionReadOnly(baseline) = (%v, %v)", ro, err)
	}

	rng, err := stereo.OptionRange(kind.OptionLaserPower)
	if err != nil {
		t.Fatalf("OptionRange: %v", err)
	}
	if rng.Default != 180 {
		t.Errorf("OptionRange.Default = %v", rng.Default)
	}
}

func TestSensorInfo(t *testing.T) {
	dev := simStereoDevice()
	sim := native.NewSim(dev)
	sensors := testSensors(t, sim)

	if len(sensors) != 3 {
		t.Fatalf("got %d sensors, want 3", len(sensors))
	}
	name, ok := sensors[0].Info(kind.CameraInfoName)
	if !ok || name != "Stereo Module" {
		t.Errorf("Info(name) = (%q, %v)", name, ok)
	}
}

func TestDeviceInfo(t *testing.T) {
	dev := simStereoDevice()
	sim := native.NewSim(dev)

	ctx, err := newContext(sim)
	if err != nil {
		t.Fatalf("newContext: %v", err)
	}
	defer ctx.Close()

	devices, err := ctx.QueryDevices(ProductAny)
	if err != nil {
		t.Fatalf("QueryDevices: %v", err)
	}
	d := devices[0]
	defer d.Close()

	if !d.SupportsInfo(kind.CameraInfoName) {
		t.Error("SupportsInfo(name) = false")
	}
	name, ok := d.Info(kind.CameraInfoName)
	if !ok || name != dev.Name {
		t.Errorf("Info(name) = (%q, %v)", name, ok)
	}
	serial, ok := d.Serial()
	if !ok || serial != dev.Serial {
		t.Errorf("Serial() = (%q, %v)", serial, ok)
	}
}

func TestDeviceHub(t *testing.T) {
	dev := simStereoDevice()
	sim := native.NewSim(dev)

	ctx, err := newContext(sim)
	if err != nil {
		t.Fatalf("newContext: %v", err)
	}
	defer ctx.Close()

	hub, err := ctx.CreateDeviceHub()
	if err != nil {
		t.Fatalf("CreateDeviceHub: %v", err)
	}
	defer hub.Close()

	d, err := hub.WaitForDevice()
	if err != nil {
		t.Fatalf("WaitForDevice: %v", err)
	}
	defer d.Close()
	if serial, _ := d.Serial(); serial != dev.Serial {
		t.Errorf("hub device serial = %q", serial)
	}
}
