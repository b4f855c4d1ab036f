package realsense

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/teslashibe/go-realsense/internal/native"
	"github.com/teslashibe/go-realsense/pkg/kind"
)

// Shared simulated-device fixtures. The profiles mirror a small stereo
// module: a default Z16 depth stream, a default BGR8 color stream, and a
// non-default gyro stream.

func simDepthProfile() *native.SimStreamProfile {
	return &native.SimStreamProfile{
		Stream:    kind.StreamDepth,
		Format:    kind.FormatZ16,
		UniqueID:  1,
		Framerate: 30,
		Width:     4,
		Height:    2,
		Default:   true,
		Intrinsics: kind.Intrinsics{
			Width: 4, Height: 2,
			PPX: 2, PPY: 1, FX: 1.5, FY: 1.5,
		},
	}
}

func simColorProfile() *native.SimStreamProfile {
	return &native.SimStreamProfile{
		Stream:    kind.StreamColor,
		Format:    kind.FormatBgr8,
		UniqueID:  2,
		Framerate: 30,
		Width:     4,
		Height:    2,
		Default:   true,
		Intrinsics: kind.Intrinsics{
			Width: 4, Height: 2,
			PPX: 2, PPY: 1, FX: 1.8, FY: 1.8,
		},
	}
}

func simGyroProfile() *native.SimStreamProfile {
	return &native.SimStreamProfile{
		Stream:    kind.StreamGyro,
		Format:    kind.FormatMotionXyz32F,
		UniqueID:  3,
		Framerate: 200,
	}
}

func simStereoDevice() *native.SimDevice {
	return &native.SimDevice{
		Serial: "823A0042",
		Name:   "Sim Stereo Module",
		Sensors: []*native.SimSensor{
			{
				Name: "Stereo Module",
				Options: map[kind.Option]float32{
					kind.OptionDepthUnits:     0.001,
					kind.OptionStereoBaseline: 50,
					kind.OptionLaserPower:     150,
				},
				ReadOnly: map[kind.Option]bool{
					kind.OptionStereoBaseline: true,
				},
				Streams: []*native.SimStreamProfile{simDepthProfile()},
			},
			{
				Name: "RGB Camera",
				Options: map[kind.Option]float32{
					kind.OptionExposure: 156,
				},
				Streams: []*native.SimStreamProfile{simColorProfile()},
			},
			{
				Name: "Motion Module",
				Options: map[kind.Option]float32{},
				Streams: []*native.SimStreamProfile{simGyroProfile()},
			},
		},
	}
}

// depthData encodes raw Z16 values little-endian, row-major.
func depthData(values ...uint16) []byte {
	out := make([]byte, 2*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint16(out[2*i:], v)
	}
	return out
}

func simDepthFrame(dev *native.SimDevice, number uint64) *native.SimFrame {
	return &native.SimFrame{
		Profile:      simDepthProfile(),
		Width:        4,
		Height:       2,
		BitsPerPixel: 16,
		Timestamp:    float64(number) * 33.3,
		Domain:       kind.TimestampDomainHardwareClock,
		Number:       number,
		Data:         depthData(0, 100, 200, 300, 400, 500, 600, 700),
		Sensor:       dev.Sensors[0],
		DepthScale:   0.001,
	}
}

func simColorFrame(dev *native.SimDevice, number uint64) *native.SimFrame {
	data := make([]byte, 4*2*3)
	for i := range data {
		data[i] = byte(i)
	}
	return &native.SimFrame{
		Profile:      simColorProfile(),
		Width:        4,
		Height:       2,
		BitsPerPixel: 24,
		Timestamp:    float64(number) * 33.3,
		Domain:       kind.TimestampDomainHardwareClock,
		Number:       number,
		Data:         data,
		Metadata: map[kind.FrameMetadata]int64{
			kind.MetadataFrameCounter:   int64(number),
			kind.MetadataActualExposure: 156,
		},
		Sensor: dev.Sensors[1],
	}
}

func simGyroFrame(dev *native.SimDevice, number uint64) *native.SimFrame {
	data := make([]byte, 12)
	binary.LittleEndian.PutUint32(data[0:], math.Float32bits(0.1))
	binary.LittleEndian.PutUint32(data[4:], math.Float32bits(-0.2))
	binary.LittleEndian.PutUint32(data[8:], math.Float32bits(9.8))
	return &native.SimFrame{
		Profile:      simGyroProfile(),
		BitsPerPixel: 96,
		Timestamp:    float64(number) * 5,
		Number:       number,
		Data:         data,
		Sensor:       dev.Sensors[2],
	}
}

// startDefaultPipeline creates a context and starts a pipeline with default
// streams against the sim. Cleanup stops and closes everything.
func startDefaultPipeline(t *testing.T, sim *native.Sim) *ActivePipeline {
	t.Helper()
	ctx, err := newContext(sim)
	if err != nil {
		t.Fatalf("newContext: %v", err)
	}
	t.Cleanup(func() { ctx.Close() })

	inactive, err := NewPipeline(ctx)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	active, err := inactive.Start(nil)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() {
		active.Stop().Close()
	})
	return active
}

// checkNoLeaks asserts the sim's ownership counters are clean.
func checkNoLeaks(t *testing.T, sim *native.Sim) {
	t.Helper()
	if n := sim.LiveFrames(); n != 0 {
		t.Errorf("leaked %d frame handles", n)
	}
	if n := sim.DoubleReleases(); n != 0 {
		t.Errorf("%d frame handles released twice", n)
	}
	if n := sim.UnfreedErrors(); n != 0 {
		t.Errorf("leaked %d native error objects", n)
	}
}
