package realsense

import (
	"errors"
	"testing"

	"github.com/teslashibe/go-realsense/internal/native"
	"github.com/teslashibe/go-realsense/pkg/kind"
)

func TestStreamProfileCachedAccessorsSurviveDisconnect(t *testing.T) {
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
	if len(devices) != 1 {
		t.Fatalf("got %d devices, want 1", len(devices))
	}
	defer devices[0].Close()

	sensors, err := devices[0].Sensors()
	if err != nil {
		t.Fatalf("Sensors: %v", err)
	}
	defer func() {
		for _, s := range sensors {
			s.Close()
		}
	}()

	profiles, err := sensors[0].StreamProfiles()
	if err != nil {
		t.Fatalf("StreamProfiles: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("got %d profiles, want 1", len(profiles))
	}
	p := profiles[0]

	if _, err := p.Intrinsics(); err != nil {
		t.Fatalf("Intrinsics before disconnect: %v", err)
	}

	sim.SetDisconnected(true)
	defer sim.SetDisconnected(false)

	// scalars were copied at construction and keep answering
	if p.Kind() != kind.StreamDepth {
		t.Errorf("Kind() = %v after disconnect", p.Kind())
	}
	if p.Format() != kind.FormatZ16 {
		t.Errorf("Format() = %v after disconnect", p.Format())
	}
	if p.Framerate() != 30 {
		t.Errorf("Framerate() = %d after disconnect", p.Framerate())
	}
	if p.UniqueID() != 1 {
		t.Errorf("UniqueID() = %d after disconnect", p.UniqueID())
	}
	if !p.IsDefault() {
		t.Error("IsDefault() = false after disconnect")
	}

	// calibration queries touch the live handle and now fail
	_, err = p.Intrinsics()
	var rsErr *Error
	if !errors.As(err, &rsErr) || !rsErr.IsDisconnected() {
		t.Errorf("Intrinsics after disconnect = %v, want disconnect error", err)
	}
}

func TestStreamProfileApplicability(t *testing.T) {
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
	defer devices[0].Close()
	sensors, err := devices[0].Sensors()
	if err != nil {
		t.Fatalf("Sensors: %v", err)
	}
	defer func() {
		for _, s := range sensors {
			s.Close()
		}
	}()

	depthProfiles, _ := sensors[0].StreamProfiles()
	gyroProfiles, _ := sensors[2].StreamProfiles()
	depth, gyro := depthProfiles[0], gyroProfiles[0]

	if _, err := depth.MotionIntrinsics(); !errors.Is(err, ErrNotApplicable) {
		t.Errorf("MotionIntrinsics on depth = %v, want ErrNotApplicable", err)
	}
	if _, err := gyro.Intrinsics(); !errors.Is(err, ErrNotApplicable) {
		t.Errorf("Intrinsics on gyro = %v, want ErrNotApplicable", err)
	}

	intr, err := depth.Intrinsics()
	if err != nil {
		t.Fatalf("Intrinsics on depth: %v", err)
	}
	if intr.Width != 4 || intr.Height != 2 {
		t.Errorf("Intrinsics = %+v", intr)
	}

	extr, err := depth.Extrinsics(gyro)
	if err != nil {
		t.Fatalf("Extrinsics: %v", err)
	}
	if extr.Rotation[0] != 1 {
		t.Errorf("Extrinsics = %+v", extr)
	}
	if err := depth.RegisterExtrinsics(gyro, extr); err != nil {
		t.Errorf("RegisterExtrinsics: %v", err)
	}
}
