package realsense

import (
	"github.com/teslashibe/go-realsense/internal/native"
	"github.com/teslashibe/go-realsense/pkg/kind"
)

// CompositeFrame is a bundle of time-aligned frames of possibly different
// kinds, delivered together by the pipeline. Sub-frames are pulled out with
// the typed extraction methods; everything not extracted is released when
// the composite is closed.
type CompositeFrame struct {
	lib        native.Lib
	h          native.Handle
	shouldDrop bool
}

func newCompositeFrame(lib native.Lib, h native.Handle) *CompositeFrame {
	return &CompositeFrame{lib: lib, h: h, shouldDrop: true}
}

// Count returns the number of embedded sub-frames. Internal errors degrade
// to zero rather than propagating: count feeds loops where a bad composite
// should behave as "no frames", not abort the batch.
func (c *CompositeFrame) Count() int {
	n, raw := c.lib.EmbeddedFramesCount(c.h)
	if checkError(raw) != nil {
		return 0
	}
	return n
}

// IsEmpty reports whether the composite holds no frames.
func (c *CompositeFrame) IsEmpty() bool {
	return c.Count() == 0
}

// typedFrame is the surface the extraction loop needs from every variant.
type typedFrame interface {
	Profile() *StreamProfile
	Close() error
}

// framesOf is the central extraction algorithm. For each embedded index it
// extracts the raw sub-frame handle, checks extendability to the requested
// extension tag, attempts the typed construction, and filters by stream
// kind. Ownership of the extracted handle moves into the typed wrapper only
// on full success; on any failure or mismatch the handle is released before
// the loop continues, so no reference leaks whatever the composite holds.
func framesOf[F typedFrame](c *CompositeFrame, ext kind.Extension, stream kind.Stream, construct func(native.Lib, native.Handle) (F, error)) []F {
	n := c.Count()
	var out []F
	for i := 0; i < n; i++ {
		h, raw := c.lib.ExtractFrame(c.h, i)
		if checkError(raw) != nil || h == 0 {
			continue
		}
		ok, raw := c.lib.IsFrameExtendableTo(h, ext)
		if checkError(raw) != nil || !ok {
			c.lib.ReleaseFrame(h)
			continue
		}
		f, err := construct(c.lib, h)
		if err != nil {
			c.lib.ReleaseFrame(h)
			continue
		}
		if stream != kind.StreamAny && f.Profile().Kind() != stream {
			f.Close()
			continue
		}
		out = append(out, f)
	}
	return out
}

// DepthFrames extracts every depth-kind depth frame. The returned frames own
// their handles and must be closed.
func (c *CompositeFrame) DepthFrames() []*DepthFrame {
	return framesOf(c, kind.ExtensionDepthFrame, kind.StreamDepth, newDepthFrame)
}

// DisparityFrames extracts every disparity frame.
func (c *CompositeFrame) DisparityFrames() []*DisparityFrame {
	return framesOf(c, kind.ExtensionDisparityFrame, kind.StreamDepth, newDisparityFrame)
}

// ColorFrames extracts every color video frame.
func (c *CompositeFrame) ColorFrames() []*VideoFrame {
	return framesOf(c, kind.ExtensionVideoFrame, kind.StreamColor, newVideoFrame)
}

// InfraredFrames extracts every infrared video frame.
func (c *CompositeFrame) InfraredFrames() []*VideoFrame {
	return framesOf(c, kind.ExtensionVideoFrame, kind.StreamInfrared, newVideoFrame)
}

// VideoFrames extracts every video frame of the given stream kind;
// StreamAny matches all of them.
func (c *CompositeFrame) VideoFrames(stream kind.Stream) []*VideoFrame {
	return framesOf(c, kind.ExtensionVideoFrame, stream, newVideoFrame)
}

// MotionFrames extracts every motion frame of the given stream kind (gyro,
// accel, or StreamAny for both).
func (c *CompositeFrame) MotionFrames(stream kind.Stream) []*MotionFrame {
	return framesOf(c, kind.ExtensionMotionFrame, stream, newMotionFrame)
}

// PoseFrames extracts every pose frame.
func (c *CompositeFrame) PoseFrames() []*PoseFrame {
	return framesOf(c, kind.ExtensionPoseFrame, kind.StreamAny, newPoseFrame)
}

// PointsFrames extracts every point-cloud frame.
func (c *CompositeFrame) PointsFrames() []*Points {
	return framesOf(c, kind.ExtensionPoints, kind.StreamAny, newPoints)
}

// DetachHandle transfers ownership of the raw composite handle to the
// caller, disabling this wrapper's own release.
func (c *CompositeFrame) DetachHandle() native.Handle {
	h := c.h
	c.h = 0
	c.shouldDrop = false
	return h
}

// Close releases the native composite reference. Sub-frames already
// extracted are unaffected; they hold their own references.
func (c *CompositeFrame) Close() error {
	if c.h != 0 && c.shouldDrop {
		c.lib.ReleaseFrame(c.h)
	}
	c.h = 0
	return nil
}
