package native

import (
	"testing"

	"github.com/teslashibe/go-realsense/pkg/kind"
)

func simTestDevice() *SimDevice {
	return &SimDevice{
		Serial: "0001",
		Name:   "Sim",
		Sensors: []*SimSensor{{
			Name: "Stereo Module",
			Streams: []*SimStreamProfile{{
				Stream: kind.StreamDepth, Format: kind.FormatZ16,
				UniqueID: 1, Framerate: 30, Width: 2, Height: 2, Default: true,
			}},
		}},
	}
}

func mustOK(t *testing.T, raw RawError) {
	t.Helper()
	if raw != nil {
		msg := raw.Message()
		raw.Free()
		t.Fatalf("unexpected native error: %s", msg)
	}
}

func TestSimTracksFrameReleases(t *testing.T) {
	s := NewSim(simTestDevice())
	s.QueueComposite(&SimFrame{Width: 2, Height: 2, BitsPerPixel: 16, Data: make([]byte, 8)})

	pipe, raw := s.CreatePipeline(0)
	mustOK(t, raw)
	pp, raw := s.PipelineStart(pipe)
	mustOK(t, raw)
	s.DeletePipelineProfile(pp)

	comp, got, raw := s.PipelineTryWaitForFrames(pipe, 100)
	mustOK(t, raw)
	if !got {
		t.Fatal("queued composite not delivered")
	}
	if s.LiveFrames() != 1 {
		t.Fatalf("LiveFrames() = %d after delivery", s.LiveFrames())
	}

	sub, raw := s.ExtractFrame(comp, 0)
	mustOK(t, raw)
	if s.LiveFrames() != 2 {
		t.Fatalf("LiveFrames() = %d after extraction", s.LiveFrames())
	}

	s.ReleaseFrame(sub)
	s.ReleaseFrame(comp)
	if s.LiveFrames() != 0 || s.Releases() != 2 {
		t.Fatalf("releases = %d, live = %d", s.Releases(), s.LiveFrames())
	}

	s.ReleaseFrame(comp)
	if s.DoubleReleases() != 1 {
		t.Fatalf("DoubleReleases() = %d after releasing twice", s.DoubleReleases())
	}
}

func TestSimErrorAccounting(t *testing.T) {
	s := NewSim()

	// stale handle raises an error object that must be freed
	_, raw := s.DeviceListSize(Handle(99))
	if raw == nil {
		t.Fatal("stale handle lookup succeeded")
	}
	if raw.Exception() != kind.ExceptionWrongAPICallSequence {
		t.Errorf("exception = %v", raw.Exception())
	}
	if s.UnfreedErrors() != 1 {
		t.Fatalf("UnfreedErrors() = %d before free", s.UnfreedErrors())
	}
	raw.Free()
	if s.UnfreedErrors() != 0 {
		t.Fatalf("UnfreedErrors() = %d after free", s.UnfreedErrors())
	}
}

func TestSimConfigResolution(t *testing.T) {
	s := NewSim(simTestDevice())

	pipe, raw := s.CreatePipeline(0)
	mustOK(t, raw)
	cfg, raw := s.CreateConfig()
	mustOK(t, raw)

	mustOK(t, s.ConfigEnableStream(cfg, kind.StreamDepth, -1, 0, 0, kind.FormatAny, 0))
	ok, raw := s.ConfigCanResolve(cfg, pipe)
	mustOK(t, raw)
	if !ok {
		t.Error("wildcard depth request did not resolve")
	}

	mustOK(t, s.ConfigDisableAllStreams(cfg))
	mustOK(t, s.ConfigEnableStream(cfg, kind.StreamColor, -1, 0, 0, kind.FormatAny, 0))
	ok, raw = s.ConfigCanResolve(cfg, pipe)
	mustOK(t, raw)
	if ok {
		t.Error("color request resolved against a depth-only device")
	}

	s.DeleteConfig(cfg)
	s.DeletePipeline(pipe)
}
