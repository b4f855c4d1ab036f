package kind

import "testing"

func TestStreamClassification(t *testing.T) {
	tests := []struct {
		stream Stream
		video  bool
		motion bool
	}{
		{StreamDepth, true, false},
		{StreamColor, true, false},
		{StreamInfrared, true, false},
		{StreamFisheye, true, false},
		{StreamGyro, false, true},
		{StreamAccel, false, true},
		{StreamPose, false, false},
		{StreamAny, false, false},
	}
	for _, tt := range tests {
		if got := tt.stream.IsVideo(); got != tt.video {
			t.Errorf("%v.IsVideo() = %v, want %v", tt.stream, got, tt.video)
		}
		if got := tt.stream.IsMotion(); got != tt.motion {
			t.Errorf("%v.IsMotion() = %v, want %v", tt.stream, got, tt.motion)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if s := StreamDepth.String(); s == "" {
		t.Error("StreamDepth has no name")
	}
	if s := FormatZ16.String(); s == "" {
		t.Error("FormatZ16 has no name")
	}
	if s := Format(999).String(); s == "" {
		t.Error("unknown format must still format")
	}
	if s := ExceptionCameraDisconnected.String(); s == "" {
		t.Error("ExceptionCameraDisconnected has no name")
	}
}
