package realsense

import (
	"fmt"
	"time"

	"github.com/teslashibe/go-realsense/internal/native"
)

// DefaultWaitTimeout is used by ActivePipeline.Wait when no timeout is
// given.
const DefaultWaitTimeout = 5 * time.Second

// InactivePipeline is a configured but non-streaming pipeline. Start moves
// its native handle into an ActivePipeline.
type InactivePipeline struct {
	lib native.Lib
	h   native.Handle
	ctx *Context
}

// ActivePipeline is a streaming pipeline. It exclusively owns the resolved
// PipelineProfile; Stop moves the native handle back into an
// InactivePipeline.
type ActivePipeline struct {
	lib     native.Lib
	h       native.Handle
	ctx     *Context
	profile *PipelineProfile
}

// NewPipeline creates an inactive pipeline in the given context.
func NewPipeline(ctx *Context) (*InactivePipeline, error) {
	h, raw := ctx.lib.CreatePipeline(ctx.h)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("create pipeline: %w", err)
	}
	return &InactivePipeline{lib: ctx.lib, h: mustHandle(h, "pipeline"), ctx: ctx}, nil
}

// Start begins streaming, with the given config or the device defaults when
// cfg is nil. On success the pipeline handle moves into the returned
// ActivePipeline and this InactivePipeline is neutered; it must not be used
// again. On failure this InactivePipeline stays valid.
func (p *InactivePipeline) Start(cfg *Config) (*ActivePipeline, error) {
	var ph native.Handle
	var raw native.RawError
	if cfg != nil {
		ph, raw = p.lib.PipelineStartWithConfig(p.h, cfg.h)
	} else {
		ph, raw = p.lib.PipelineStart(p.h)
	}
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("pipeline start: %w", err)
	}

	profile, err := newPipelineProfile(p.lib, mustHandle(ph, "pipeline profile"))
	if err != nil {
		// undo the start so the inactive pipeline stays reusable
		if raw := p.lib.PipelineStop(p.h); raw != nil {
			raw.Free()
		}
		return nil, err
	}

	active := &ActivePipeline{lib: p.lib, h: p.h, ctx: p.ctx, profile: profile}
	p.h = 0
	return active, nil
}

// CanResolve reports whether the config can be satisfied by an attached
// device, without changing pipeline state. An unresolvable config is an
// expected outcome, not an error.
func (p *InactivePipeline) CanResolve(cfg *Config) bool {
	ok, raw := p.lib.ConfigCanResolve(cfg.h, p.h)
	if checkError(raw) != nil {
		return false
	}
	return ok
}

// Resolve dry-runs the config and returns the profile that starting would
// produce, or false if the config cannot be satisfied.
func (p *InactivePipeline) Resolve(cfg *Config) (*PipelineProfile, bool) {
	h, raw := p.lib.ConfigResolve(cfg.h, p.h)
	if checkError(raw) != nil || h == 0 {
		return nil, false
	}
	profile, err := newPipelineProfile(p.lib, h)
	if err != nil {
		return nil, false
	}
	return profile, true
}

// Close releases the native pipeline. A no-op if the handle was moved into
// an ActivePipeline.
func (p *InactivePipeline) Close() error {
	if p.h != 0 {
		p.lib.DeletePipeline(p.h)
		p.h = 0
	}
	return nil
}

// Profile returns the resolved profile this pipeline streams under.
func (a *ActivePipeline) Profile() *PipelineProfile { return a.profile }

// Wait blocks until a composite frame arrives or the timeout elapses. A
// zero timeout means DefaultWaitTimeout. Timeout expiry returns ErrTimeout,
// which is distinct from a native failure such as a mid-stream disconnect.
func (a *ActivePipeline) Wait(timeout time.Duration) (*CompositeFrame, error) {
	if timeout == 0 {
		timeout = DefaultWaitTimeout
	}
	h, got, raw := a.lib.PipelineTryWaitForFrames(a.h, int(timeout.Milliseconds()))
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("pipeline wait: %w", err)
	}
	if !got {
		return nil, ErrTimeout
	}
	return newCompositeFrame(a.lib, mustHandle(h, "composite frame")), nil
}

// Poll returns a composite frame if one is immediately available. The bool
// reports readiness; false with a nil error means no frame yet. Safe to
// call in a tight loop.
func (a *ActivePipeline) Poll() (*CompositeFrame, bool, error) {
	h, got, raw := a.lib.PipelinePollForFrames(a.h)
	if err := checkError(raw); err != nil {
		return nil, false, fmt.Errorf("pipeline poll: %w", err)
	}
	if !got {
		return nil, false, nil
	}
	return newCompositeFrame(a.lib, mustHandle(h, "composite frame")), true, nil
}

// PipelineProfile describes what a resolved pipeline streams: the selected
// device and the set of active stream profiles. All of it is copied out of
// the native profile at construction, so a PipelineProfile never touches
// native state after that and stays valid across Stop.
type PipelineProfile struct {
	device  *Device
	streams []*StreamProfile
}

// newPipelineProfile copies the device and stream list out of the native
// pipeline profile, then releases the native handle. Construction is the
// only point these queries run.
func newPipelineProfile(lib native.Lib, h native.Handle) (*PipelineProfile, error) {
	defer lib.DeletePipelineProfile(h)

	dh, raw := lib.PipelineProfileDevice(h)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("pipeline profile device: %w", err)
	}
	device := &Device{lib: lib, h: mustHandle(dh, "device"), shouldDrop: true}

	list, raw := lib.PipelineProfileStreams(h)
	if err := checkError(raw); err != nil {
		device.Close()
		return nil, fmt.Errorf("pipeline profile streams: %w", err)
	}
	defer lib.DeleteStreamProfileList(list)

	n, raw := lib.StreamProfileListSize(list)
	if err := checkError(raw); err != nil {
		device.Close()
		return nil, fmt.Errorf("pipeline profile stream count: %w", err)
	}

	streams := make([]*StreamProfile, 0, n)
	for i := 0; i < n; i++ {
		sh, raw := lib.GetStreamProfile(list, i)
		if err := checkError(raw); err != nil {
			continue
		}
		p, err := newStreamProfile(lib, sh)
		if err != nil {
			continue
		}
		streams = append(streams, p)
	}
	return &PipelineProfile{device: device, streams: streams}, nil
}

// Device returns the device this profile streams from. The profile owns it;
// callers must not Close it.
func (p *PipelineProfile) Device() *Device { return p.device }

// Streams returns the active stream profiles.
func (p *PipelineProfile) Streams() []*StreamProfile { return p.streams }

// Close releases the profile's device.
func (p *PipelineProfile) Close() error {
	if p.device != nil {
		p.device.Close()
		p.device = nil
	}
	return nil
}

// Stop halts streaming and moves the native handle back into an
// InactivePipeline, which can be started again. Native stop errors are
// deliberately ignored: with a non-null handle the only reported failures
// are benign already-stopped conditions.
func (a *ActivePipeline) Stop() *InactivePipeline {
	if raw := a.lib.PipelineStop(a.h); raw != nil {
		raw.Free()
	}
	inactive := &InactivePipeline{lib: a.lib, h: a.h, ctx: a.ctx}
	a.h = 0
	a.profile = nil
	return inactive
}
