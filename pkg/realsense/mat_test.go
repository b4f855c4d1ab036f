package realsense

import (
	"testing"

	"gocv.io/x/gocv"

	"github.com/teslashibe/go-realsense/internal/native"
	"github.com/teslashibe/go-realsense/pkg/kind"
)

func TestMatType(t *testing.T) {
	tests := []struct {
		format kind.Format
		want   gocv.MatType
		ok     bool
	}{
		{kind.FormatBgr8, gocv.MatTypeCV8UC3, true},
		{kind.FormatRgb8, gocv.MatTypeCV8UC3, true},
		{kind.FormatBgra8, gocv.MatTypeCV8UC4, true},
		{kind.FormatY8, gocv.MatTypeCV8UC1, true},
		{kind.FormatZ16, gocv.MatTypeCV16UC1, true},
		{kind.FormatDistance, gocv.MatTypeCV32FC1, true},
		{kind.FormatYuyv, 0, false},
		{kind.FormatXyz32F, 0, false},
	}
	for _, tt := range tests {
		got, ok := matType(tt.format)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("matType(%v) = (%v, %v), want (%v, %v)", tt.format, got, ok, tt.want, tt.ok)
		}
	}
}

func TestVideoFrameMat(t *testing.T) {
	dev := simStereoDevice()
	sim := native.NewSim(dev)
	sim.QueueComposite(simColorFrame(dev, 1))

	comp := waitOneComposite(t, sim)
	color := comp.ColorFrames()
	if len(color) != 1 {
		t.Fatalf("got %d color frames", len(color))
	}
	f := color[0]
	defer f.Close()

	mat, err := f.Mat()
	if err != nil {
		t.Fatalf("Mat: %v", err)
	}
	defer mat.Close()

	if mat.Rows() != f.Height() || mat.Cols() != f.Width() {
		t.Errorf("mat is %dx%d, frame is %dx%d", mat.Cols(), mat.Rows(), f.Width(), f.Height())
	}
	if mat.Type() != gocv.MatTypeCV8UC3 {
		t.Errorf("mat type = %v", mat.Type())
	}
}
