package realsense

import (
	"errors"
	"testing"

	"github.com/teslashibe/go-realsense/internal/native"
	"github.com/teslashibe/go-realsense/pkg/kind"
)

func waitOneComposite(t *testing.T, sim *native.Sim) *CompositeFrame {
	t.Helper()
	active := startDefaultPipeline(t, sim)
	comp, err := active.Wait(0)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	t.Cleanup(func() { comp.Close() })
	return comp
}

func TestFrameMetadata(t *testing.T) {
	dev := simStereoDevice()
	sim := native.NewSim(dev)
	sim.QueueComposite(simColorFrame(dev, 42))

	comp := waitOneComposite(t, sim)
	color := comp.ColorFrames()
	if len(color) != 1 {
		t.Fatalf("got %d color frames", len(color))
	}
	f := color[0]
	defer f.Close()

	if f.FrameNumber() != 42 {
		t.Errorf("FrameNumber() = %d", f.FrameNumber())
	}
	if f.TimestampDomain() != kind.TimestampDomainHardwareClock {
		t.Errorf("TimestampDomain() = %v", f.TimestampDomain())
	}
	if !f.SupportsMetadata(kind.MetadataFrameCounter) {
		t.Error("SupportsMetadata(counter) = false")
	}
	if v, ok := f.Metadata(kind.MetadataActualExposure); !ok || v != 156 {
		t.Errorf("Metadata(exposure) = (%d, %v)", v, ok)
	}
	if _, ok := f.Metadata(kind.MetadataWhiteBalance); ok {
		t.Error("Metadata(white balance) reported a value the frame does not carry")
	}

	sensor, err := f.Sensor()
	if err != nil {
		t.Fatalf("Sensor: %v", err)
	}
	defer sensor.Close()
	if name, _ := sensor.Info(kind.CameraInfoName); name != "RGB Camera" {
		t.Errorf("frame sensor name = %q", name)
	}
}

func TestDepthFrameDistance(t *testing.T) {
	dev := simStereoDevice()
	sim := native.NewSim(dev)
	sim.QueueComposite(simDepthFrame(dev, 1))

	comp := waitOneComposite(t, sim)
	depth := comp.DepthFrames()
	if len(depth) != 1 {
		t.Fatalf("got %d depth frames", len(depth))
	}
	f := depth[0]
	defer f.Close()

	// raw value 400 at (0,1) with 0.001 m/unit
	d, err := f.Distance(0, 1)
	if err != nil {
		t.Fatalf("Distance: %v", err)
	}
	if d != 0.4 {
		t.Errorf("Distance(0,1) = %v, want 0.4", d)
	}
	if _, err := f.Distance(10, 10); err == nil {
		t.Error("Distance accepted an out-of-range pixel")
	}

	units, err := f.DepthUnits()
	if err != nil {
		t.Fatalf("DepthUnits: %v", err)
	}
	if units != 0.001 {
		t.Errorf("DepthUnits() = %v", units)
	}

	// the raw pixel view is still available through the video surface
	px, ok := f.At(1, 1)
	if !ok {
		t.Fatal("At(1,1) rejected an in-range pixel")
	}
	if px != (Gray16Pixel{Value: 500}) {
		t.Errorf("At(1,1) = %#v", px)
	}
}

func TestDisparityFrameBaseline(t *testing.T) {
	dev := simStereoDevice()
	sim := native.NewSim(dev)
	sf := simDepthFrame(dev, 1)
	sf.Profile = &native.SimStreamProfile{
		Stream: kind.StreamDepth, Format: kind.FormatDisparity32,
		UniqueID: 9, Framerate: 30, Width: 4, Height: 2,
	}
	sf.Data = f32le(1, 2, 3, 4, 5, 6, 7, 8)
	sf.BitsPerPixel = 32
	sf.Baseline = 55
	sim.QueueComposite(sf)

	comp := waitOneComposite(t, sim)
	disp := comp.DisparityFrames()
	if len(disp) != 1 {
		t.Fatalf("got %d disparity frames", len(disp))
	}
	f := disp[0]
	defer f.Close()

	b, err := f.Baseline()
	if err != nil {
		t.Fatalf("Baseline: %v", err)
	}
	if b != 55 {
		t.Errorf("Baseline() = %v", b)
	}

	// a disparity frame still answers depth-frame extraction
	depth := comp.DepthFrames()
	if len(depth) != 1 {
		t.Errorf("got %d depth frames from a disparity composite", len(depth))
	}
	for _, df := range depth {
		df.Close()
	}
}

func TestPoseFrame(t *testing.T) {
	dev := simStereoDevice()
	sim := native.NewSim(dev)
	sf := &native.SimFrame{
		Profile: &native.SimStreamProfile{Stream: kind.StreamPose, Format: kind.Format6Dof, UniqueID: 11, Framerate: 200},
		Number:  3,
		Pose: kind.Pose{
			Translation:       kind.Vector3{X: 1, Y: 2, Z: 3},
			Rotation:          kind.Quaternion{W: 1},
			TrackerConfidence: 3,
		},
	}
	sim.QueueComposite(sf)

	comp := waitOneComposite(t, sim)
	poses := comp.PoseFrames()
	if len(poses) != 1 {
		t.Fatalf("got %d pose frames", len(poses))
	}
	f := poses[0]
	defer f.Close()

	p := f.Pose()
	if p.Translation.Z != 3 || p.Rotation.W != 1 || p.TrackerConfidence != 3 {
		t.Errorf("Pose() = %+v", p)
	}
}

func TestPointsFrame(t *testing.T) {
	dev := simStereoDevice()
	sim := native.NewSim(dev)
	sf := &native.SimFrame{
		Profile:    &native.SimStreamProfile{Stream: kind.StreamDepth, Format: kind.FormatXyz32F, UniqueID: 12, Framerate: 30},
		PointCount: 2,
		Vertices:   f32le(1, 2, 3, 4, 5, 6),
		TexCoords:  f32le(0.1, 0.2, 0.3, 0.4),
	}
	sim.QueueComposite(sf)

	comp := waitOneComposite(t, sim)
	points := comp.PointsFrames()
	if len(points) != 1 {
		t.Fatalf("got %d points frames", len(points))
	}
	p := points[0]
	defer p.Close()

	if p.Count() != 2 {
		t.Fatalf("Count() = %d", p.Count())
	}
	verts := p.Vertices()
	if verts[1] != (Vertex{X: 4, Y: 5, Z: 6}) {
		t.Errorf("Vertices()[1] = %+v", verts[1])
	}
	tex := p.TextureCoordinates()
	if tex[0] != (TextureCoordinate{U: 0.1, V: 0.2}) {
		t.Errorf("TextureCoordinates()[0] = %+v", tex[0])
	}
	vecs := p.Vectors()
	if len(vecs) != 2 || vecs[0].X != 1 {
		t.Errorf("Vectors() = %+v", vecs)
	}
}

func TestFrameDetachDisablesRelease(t *testing.T) {
	dev := simStereoDevice()
	sim := native.NewSim(dev)
	sim.QueueComposite(simColorFrame(dev, 1))

	comp := waitOneComposite(t, sim)
	color := comp.ColorFrames()
	if len(color) != 1 {
		t.Fatalf("got %d color frames", len(color))
	}
	f := color[0]

	h := f.DetachHandle()
	f.Close()
	if sim.Releases() != 0 {
		t.Fatal("wrapper released after detach")
	}
	sim.ReleaseFrame(h)
	if sim.DoubleReleases() != 0 {
		t.Fatal("detached handle was double released")
	}
}

func TestDepthUnitsUnsupported(t *testing.T) {
	dev := simStereoDevice()
	// strip the option so the query falls through to the sentinel
	delete(dev.Sensors[0].Options, kind.OptionDepthUnits)
	sim := native.NewSim(dev)
	sim.QueueComposite(simDepthFrame(dev, 1))

	comp := waitOneComposite(t, sim)
	depth := comp.DepthFrames()
	f := depth[0]
	defer f.Close()

	if _, err := f.DepthUnits(); !errors.Is(err, ErrOptionNotSupported) {
		t.Errorf("DepthUnits without the option = %v, want ErrOptionNotSupported", err)
	}
}
