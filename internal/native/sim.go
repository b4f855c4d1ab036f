package native

import (
	"fmt"
	"sync"

	"github.com/teslashibe/go-realsense/pkg/kind"
)

// Sim is an in-memory Lib used by tests. It models the handle table, the
// out-parameter error convention and frame reference counting of the real
// backend, and records every release so tests can assert exactly-once
// semantics. Behavior can be shaped through the exported fields of SimDevice,
// SimSensor, SimStreamProfile and SimFrame before handles are handed out.
type Sim struct {
	mu   sync.Mutex
	next Handle

	objects map[Handle]any

	devices []*SimDevice

	// queued composites delivered by the pipeline, oldest first
	pending []*simComposite

	// disconnected makes every live-handle query fail with a camera
	// disconnected exception; cached data held by wrappers is unaffected.
	disconnected bool

	liveFrames     map[Handle]bool
	releases       int
	doubleReleases int
	unfreedErrors  int
}

// SimDevice describes one simulated device.
type SimDevice struct {
	Serial  string
	Name    string
	Sensors []*SimSensor
}

// SimSensor describes one simulated sensor and its option table.
type SimSensor struct {
	Name     string
	Options  map[kind.Option]float32
	ReadOnly map[kind.Option]bool
	Streams  []*SimStreamProfile
}

// SimStreamProfile describes one stream a simulated sensor can produce.
type SimStreamProfile struct {
	Stream     kind.Stream
	Format     kind.Format
	Index      int
	UniqueID   int
	Framerate  int
	Width      int
	Height     int
	Default    bool
	Intrinsics kind.Intrinsics
	Motion     kind.MotionIntrinsics
}

// SimFrame describes one frame delivered inside a composite. Zero-value
// fields are derived where possible (stride from width and bits-per-pixel,
// data size from the data slice).
type SimFrame struct {
	Profile      *SimStreamProfile
	Width        int
	Height       int
	BitsPerPixel int
	Stride       int
	Timestamp    float64
	Domain       kind.TimestampDomain
	Number       uint64
	Data         []byte
	Metadata     map[kind.FrameMetadata]int64
	Sensor       *SimSensor

	// Extensions overrides the extension tags derived from the profile.
	Extensions []kind.Extension

	// Depth / disparity behavior.
	DepthScale float32
	Baseline   float32

	// Pose frames.
	Pose kind.Pose

	// Points frames.
	PointCount int
	Vertices   []byte
	TexCoords  []byte
}

type simComposite struct {
	frames []*SimFrame
}

type simContext struct{}
type simDeviceList struct{ devices []*SimDevice }
type simSensorList struct{ device *SimDevice }
type simProfileList struct{ profiles []*SimStreamProfile }
type simHub struct{}

type simConfig struct {
	requests   []simStreamReq
	enableAll  bool
	serial     string
	fromFile   string
	recordPath string
}

type simStreamReq struct {
	stream        kind.Stream
	index         int
	width, height int
	format        kind.Format
	framerate     int
}

type simPipeline struct {
	started bool
}

type simPipelineProfile struct {
	device  *SimDevice
	streams []*SimStreamProfile
}

type simError struct {
	sim *Sim
	exc kind.Exception
	msg string
}

func (e *simError) Exception() kind.Exception { return e.exc }
func (e *simError) Message() string           { return e.msg }

func (e *simError) Free() {
	e.sim.mu.Lock()
	e.sim.unfreedErrors--
	e.sim.mu.Unlock()
}

// NewSim returns a Sim with no devices. Add devices before creating handles.
func NewSim(devices ...*SimDevice) *Sim {
	return &Sim{
		next:       1,
		objects:    make(map[Handle]any),
		devices:    devices,
		liveFrames: make(map[Handle]bool),
	}
}

// QueueComposite enqueues one composite of frames for delivery by the next
// pipeline wait or poll.
func (s *Sim) QueueComposite(frames ...*SimFrame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, &simComposite{frames: frames})
}

// SetDisconnected toggles the simulated device disconnect. While set, every
// query that touches a live handle fails with a camera-disconnected
// exception.
func (s *Sim) SetDisconnected(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disconnected = v
}

// LiveFrames returns the number of frame handles that have been handed out
// and not yet released.
func (s *Sim) LiveFrames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.liveFrames)
}

// Releases returns the total number of frame releases performed.
func (s *Sim) Releases() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.releases
}

// DoubleReleases returns how many times a frame handle was released more than
// once. Anything above zero is a wrapper ownership bug.
func (s *Sim) DoubleReleases() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doubleReleases
}

// UnfreedErrors returns the number of native error objects handed out and not
// freed. Anything above zero means an error-path leak.
func (s *Sim) UnfreedErrors() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unfreedErrors
}

// register must be called with s.mu held.
func (s *Sim) register(obj any) Handle {
	h := s.next
	s.next++
	s.objects[h] = obj
	return h
}

// registerFrame must be called with s.mu held.
func (s *Sim) registerFrame(obj any) Handle {
	h := s.register(obj)
	s.liveFrames[h] = true
	return h
}

// fail must be called with s.mu held.
func (s *Sim) fail(exc kind.Exception, format string, args ...any) RawError {
	s.unfreedErrors++
	return &simError{sim: s, exc: exc, msg: fmt.Sprintf(format, args...)}
}

func (s *Sim) failDisconnected() RawError {
	return s.fail(kind.ExceptionCameraDisconnected, "device disconnected")
}

// lookup must be called with s.mu held.
func lookup[T any](s *Sim, h Handle) (T, RawError) {
	obj, ok := s.objects[h]
	if !ok {
		var zero T
		return zero, s.fail(kind.ExceptionWrongAPICallSequence, "stale handle %d", h)
	}
	v, ok := obj.(T)
	if !ok {
		var zero T
		return zero, s.fail(kind.ExceptionWrongAPICallSequence, "handle %d has wrong type %T", h, obj)
	}
	return v, nil
}

func (s *Sim) CreateContext(apiVersion int) (Handle, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.register(&simContext{}), nil
}

func (s *Sim) DeleteContext(ctx Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, ctx)
}

func (s *Sim) QueryDevices(ctx Handle, productMask int) (Handle, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.register(&simDeviceList{devices: s.devices}), nil
}

func (s *Sim) DeviceListSize(list Handle) (int, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, raw := lookup[*simDeviceList](s, list)
	if raw != nil {
		return 0, raw
	}
	return len(l.devices), nil
}

func (s *Sim) CreateDevice(list Handle, index int) (Handle, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, raw := lookup[*simDeviceList](s, list)
	if raw != nil {
		return 0, raw
	}
	if index < 0 || index >= len(l.devices) {
		return 0, s.fail(kind.ExceptionInvalidValue, "device index %d out of range", index)
	}
	return s.register(l.devices[index]), nil
}

func (s *Sim) DeleteDevice(dev Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, dev)
}

func (s *Sim) DeleteDeviceList(list Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, list)
}

func (s *Sim) SupportsDeviceInfo(dev Handle, info kind.CameraInfo) (bool, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, raw := lookup[*SimDevice](s, dev)
	if raw != nil {
		return false, raw
	}
	switch info {
	case kind.CameraInfoName:
		return d.Name != "", nil
	case kind.CameraInfoSerialNumber:
		return d.Serial != "", nil
	}
	return false, nil
}

func (s *Sim) GetDeviceInfo(dev Handle, info kind.CameraInfo) (string, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, raw := lookup[*SimDevice](s, dev)
	if raw != nil {
		return "", raw
	}
	if s.disconnected {
		return "", s.failDisconnected()
	}
	switch info {
	case kind.CameraInfoName:
		return d.Name, nil
	case kind.CameraInfoSerialNumber:
		return d.Serial, nil
	}
	return "", s.fail(kind.ExceptionNotImplemented, "info field %d not simulated", info)
}

func (s *Sim) HardwareReset(dev Handle) RawError {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, raw := lookup[*SimDevice](s, dev)
	return raw
}

func (s *Sim) CreateDeviceHub(ctx Handle) (Handle, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.register(&simHub{}), nil
}

func (s *Sim) DeleteDeviceHub(hub Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, hub)
}

func (s *Sim) HubWaitForDevice(hub Handle) (Handle, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.devices) == 0 {
		return 0, s.fail(kind.ExceptionBackend, "no devices attached")
	}
	return s.register(s.devices[0]), nil
}

func (s *Sim) QuerySensors(dev Handle) (Handle, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, raw := lookup[*SimDevice](s, dev)
	if raw != nil {
		return 0, raw
	}
	return s.register(&simSensorList{device: d}), nil
}

func (s *Sim) SensorListSize(list Handle) (int, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, raw := lookup[*simSensorList](s, list)
	if raw != nil {
		return 0, raw
	}
	return len(l.device.Sensors), nil
}

func (s *Sim) CreateSensor(list Handle, index int) (Handle, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, raw := lookup[*simSensorList](s, list)
	if raw != nil {
		return 0, raw
	}
	if index < 0 || index >= len(l.device.Sensors) {
		return 0, s.fail(kind.ExceptionInvalidValue, "sensor index %d out of range", index)
	}
	return s.register(l.device.Sensors[index]), nil
}

func (s *Sim) DeleteSensor(sensor Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, sensor)
}

func (s *Sim) DeleteSensorList(list Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, list)
}

func (s *Sim) SupportsSensorInfo(sensor Handle, info kind.CameraInfo) (bool, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sn, raw := lookup[*SimSensor](s, sensor)
	if raw != nil {
		return false, raw
	}
	return info == kind.CameraInfoName && sn.Name != "", nil
}

func (s *Sim) GetSensorInfo(sensor Handle, info kind.CameraInfo) (string, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sn, raw := lookup[*SimSensor](s, sensor)
	if raw != nil {
		return "", raw
	}
	if info == kind.CameraInfoName {
		return sn.Name, nil
	}
	return "", s.fail(kind.ExceptionNotImplemented, "info field %d not simulated", info)
}

func (s *Sim) GetOption(sensor Handle, opt kind.Option) (float32, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sn, raw := lookup[*SimSensor](s, sensor)
	if raw != nil {
		return 0, raw
	}
	if s.disconnected {
		return 0, s.failDisconnected()
	}
	v, ok := sn.Options[opt]
	if !ok {
		return 0, s.fail(kind.ExceptionInvalidValue, "option %d not supported", opt)
	}
	return v, nil
}

func (s *Sim) SetOption(sensor Handle, opt kind.Option, value float32) RawError {
	s.mu.Lock()
	defer s.mu.Unlock()
	sn, raw := lookup[*SimSensor](s, sensor)
	if raw != nil {
		return raw
	}
	if s.disconnected {
		return s.failDisconnected()
	}
	if _, ok := sn.Options[opt]; !ok {
		return s.fail(kind.ExceptionInvalidValue, "option %d not supported", opt)
	}
	if sn.ReadOnly[opt] {
		return s.fail(kind.ExceptionInvalidValue, "option %d is read-only", opt)
	}
	sn.Options[opt] = value
	return nil
}

func (s *Sim) SupportsOption(sensor Handle, opt kind.Option) (bool, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sn, raw := lookup[*SimSensor](s, sensor)
	if raw != nil {
		return false, raw
	}
	_, ok := sn.Options[opt]
	return ok, nil
}

func (s *Sim) IsOptionReadOnly(sensor Handle, opt kind.Option) (bool, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sn, raw := lookup[*SimSensor](s, sensor)
	if raw != nil {
		return false, raw
	}
	return sn.ReadOnly[opt], nil
}

func (s *Sim) GetOptionRange(sensor Handle, opt kind.Option) (kind.OptionRange, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sn, raw := lookup[*SimSensor](s, sensor)
	if raw != nil {
		return kind.OptionRange{}, raw
	}
	v, ok := sn.Options[opt]
	if !ok {
		return kind.OptionRange{}, s.fail(kind.ExceptionInvalidValue, "option %d not supported", opt)
	}
	return kind.OptionRange{Min: 0, Max: v * 2, Step: 1, Default: v}, nil
}

func (s *Sim) GetStreamProfiles(sensor Handle) (Handle, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sn, raw := lookup[*SimSensor](s, sensor)
	if raw != nil {
		return 0, raw
	}
	return s.register(&simProfileList{profiles: sn.Streams}), nil
}

func (s *Sim) StreamProfileListSize(list Handle) (int, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, raw := lookup[*simProfileList](s, list)
	if raw != nil {
		return 0, raw
	}
	return len(l.profiles), nil
}

func (s *Sim) GetStreamProfile(list Handle, index int) (Handle, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, raw := lookup[*simProfileList](s, list)
	if raw != nil {
		return 0, raw
	}
	if index < 0 || index >= len(l.profiles) {
		return 0, s.fail(kind.ExceptionInvalidValue, "profile index %d out of range", index)
	}
	return s.register(l.profiles[index]), nil
}

func (s *Sim) DeleteStreamProfileList(list Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, list)
}

func (s *Sim) GetStreamProfileData(profile Handle) (kind.Stream, kind.Format, int, int, int, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, raw := lookup[*SimStreamProfile](s, profile)
	if raw != nil {
		return 0, 0, 0, 0, 0, raw
	}
	if s.disconnected {
		return 0, 0, 0, 0, 0, s.failDisconnected()
	}
	return p.Stream, p.Format, p.Index, p.UniqueID, p.Framerate, nil
}

func (s *Sim) IsStreamProfileDefault(profile Handle) (bool, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, raw := lookup[*SimStreamProfile](s, profile)
	if raw != nil {
		return false, raw
	}
	if s.disconnected {
		return false, s.failDisconnected()
	}
	return p.Default, nil
}

func (s *Sim) GetVideoIntrinsics(profile Handle) (kind.Intrinsics, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, raw := lookup[*SimStreamProfile](s, profile)
	if raw != nil {
		return kind.Intrinsics{}, raw
	}
	if s.disconnected {
		return kind.Intrinsics{}, s.failDisconnected()
	}
	return p.Intrinsics, nil
}

func (s *Sim) GetMotionIntrinsics(profile Handle) (kind.MotionIntrinsics, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, raw := lookup[*SimStreamProfile](s, profile)
	if raw != nil {
		return kind.MotionIntrinsics{}, raw
	}
	if s.disconnected {
		return kind.MotionIntrinsics{}, s.failDisconnected()
	}
	return p.Motion, nil
}

func (s *Sim) GetExtrinsics(from, to Handle) (kind.Extrinsics, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, raw := lookup[*SimStreamProfile](s, from); raw != nil {
		return kind.Extrinsics{}, raw
	}
	if _, raw := lookup[*SimStreamProfile](s, to); raw != nil {
		return kind.Extrinsics{}, raw
	}
	if s.disconnected {
		return kind.Extrinsics{}, s.failDisconnected()
	}
	// identity transform
	return kind.Extrinsics{Rotation: [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}}, nil
}

func (s *Sim) RegisterExtrinsics(from, to Handle, extr kind.Extrinsics) RawError {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, raw := lookup[*SimStreamProfile](s, from); raw != nil {
		return raw
	}
	_, raw := lookup[*SimStreamProfile](s, to)
	return raw
}

func (s *Sim) CreateConfig() (Handle, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.register(&simConfig{}), nil
}

func (s *Sim) DeleteConfig(cfg Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, cfg)
}

func (s *Sim) ConfigEnableStream(cfg Handle, stream kind.Stream, index, width, height int, format kind.Format, framerate int) RawError {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, raw := lookup[*simConfig](s, cfg)
	if raw != nil {
		return raw
	}
	c.requests = append(c.requests, simStreamReq{
		stream: stream, index: index, width: width, height: height,
		format: format, framerate: framerate,
	})
	return nil
}

func (s *Sim) ConfigEnableAllStreams(cfg Handle) RawError {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, raw := lookup[*simConfig](s, cfg)
	if raw != nil {
		return raw
	}
	c.enableAll = true
	return nil
}

func (s *Sim) ConfigDisableStream(cfg Handle, stream kind.Stream) RawError {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, raw := lookup[*simConfig](s, cfg)
	if raw != nil {
		return raw
	}
	kept := c.requests[:0]
	for _, r := range c.requests {
		if r.stream != stream {
			kept = append(kept, r)
		}
	}
	c.requests = kept
	return nil
}

func (s *Sim) ConfigDisableAllStreams(cfg Handle) RawError {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, raw := lookup[*simConfig](s, cfg)
	if raw != nil {
		return raw
	}
	c.requests = nil
	c.enableAll = false
	return nil
}

func (s *Sim) ConfigEnableDevice(cfg Handle, serial string) RawError {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, raw := lookup[*simConfig](s, cfg)
	if raw != nil {
		return raw
	}
	c.serial = serial
	return nil
}

func (s *Sim) ConfigEnableDeviceFromFile(cfg Handle, path string) RawError {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, raw := lookup[*simConfig](s, cfg)
	if raw != nil {
		return raw
	}
	c.fromFile = path
	return nil
}

func (s *Sim) ConfigEnableRecordToFile(cfg Handle, path string) RawError {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, raw := lookup[*simConfig](s, cfg)
	if raw != nil {
		return raw
	}
	c.recordPath = path
	return nil
}

// resolve must be called with s.mu held. A nil cfg resolves default streams.
func (s *Sim) resolve(c *simConfig) (*simPipelineProfile, bool) {
	if len(s.devices) == 0 {
		return nil, false
	}
	var dev *SimDevice
	if c != nil && c.serial != "" {
		for _, d := range s.devices {
			if d.Serial == c.serial {
				dev = d
				break
			}
		}
		if dev == nil {
			return nil, false
		}
	} else {
		dev = s.devices[0]
	}

	var all []*SimStreamProfile
	for _, sn := range dev.Sensors {
		all = append(all, sn.Streams...)
	}

	if c == nil || (len(c.requests) == 0 && !c.enableAll) || c.enableAll {
		var defaults []*SimStreamProfile
		for _, p := range all {
			if p.Default || (c != nil && c.enableAll) {
				defaults = append(defaults, p)
			}
		}
		if len(defaults) == 0 {
			return nil, false
		}
		return &simPipelineProfile{device: dev, streams: defaults}, true
	}

	var matched []*SimStreamProfile
	for _, r := range c.requests {
		found := false
		for _, p := range all {
			if r.stream != kind.StreamAny && r.stream != p.Stream {
				continue
			}
			if r.format != kind.FormatAny && r.format != p.Format {
				continue
			}
			if r.width != 0 && r.width != p.Width {
				continue
			}
			if r.height != 0 && r.height != p.Height {
				continue
			}
			if r.framerate != 0 && r.framerate != p.Framerate {
				continue
			}
			matched = append(matched, p)
			found = true
			break
		}
		if !found {
			return nil, false
		}
	}
	return &simPipelineProfile{device: dev, streams: matched}, true
}

func (s *Sim) ConfigCanResolve(cfg, pipeline Handle) (bool, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, raw := lookup[*simConfig](s, cfg)
	if raw != nil {
		return false, raw
	}
	if _, raw := lookup[*simPipeline](s, pipeline); raw != nil {
		return false, raw
	}
	_, ok := s.resolve(c)
	return ok, nil
}

func (s *Sim) ConfigResolve(cfg, pipeline Handle) (Handle, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, raw := lookup[*simConfig](s, cfg)
	if raw != nil {
		return 0, raw
	}
	if _, raw := lookup[*simPipeline](s, pipeline); raw != nil {
		return 0, raw
	}
	pp, ok := s.resolve(c)
	if !ok {
		return 0, s.fail(kind.ExceptionInvalidValue, "config cannot be resolved against attached devices")
	}
	return s.register(pp), nil
}

func (s *Sim) CreatePipeline(ctx Handle) (Handle, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.register(&simPipeline{}), nil
}

func (s *Sim) DeletePipeline(pipeline Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, pipeline)
}

func (s *Sim) PipelineStart(pipeline Handle) (Handle, RawError) {
	return s.startPipeline(pipeline, nil)
}

func (s *Sim) PipelineStartWithConfig(pipeline, cfg Handle) (Handle, RawError) {
	s.mu.Lock()
	c, raw := lookup[*simConfig](s, cfg)
	s.mu.Unlock()
	if raw != nil {
		return 0, raw
	}
	return s.startPipeline(pipeline, c)
}

func (s *Sim) startPipeline(pipeline Handle, c *simConfig) (Handle, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, raw := lookup[*simPipeline](s, pipeline)
	if raw != nil {
		return 0, raw
	}
	if p.started {
		return 0, s.fail(kind.ExceptionWrongAPICallSequence, "pipeline already started")
	}
	pp, ok := s.resolve(c)
	if !ok {
		return 0, s.fail(kind.ExceptionInvalidValue, "config cannot be resolved against attached devices")
	}
	p.started = true
	return s.register(pp), nil
}

func (s *Sim) PipelineStop(pipeline Handle) RawError {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, raw := lookup[*simPipeline](s, pipeline)
	if raw != nil {
		return raw
	}
	if !p.started {
		return s.fail(kind.ExceptionWrongAPICallSequence, "pipeline not started")
	}
	p.started = false
	return nil
}

func (s *Sim) PipelineTryWaitForFrames(pipeline Handle, timeoutMs int) (Handle, bool, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, raw := lookup[*simPipeline](s, pipeline)
	if raw != nil {
		return 0, false, raw
	}
	if !p.started {
		return 0, false, s.fail(kind.ExceptionWrongAPICallSequence, "pipeline not started")
	}
	if s.disconnected {
		return 0, false, s.failDisconnected()
	}
	if len(s.pending) == 0 {
		return 0, false, nil
	}
	comp := s.pending[0]
	s.pending = s.pending[1:]
	return s.registerFrame(comp), true, nil
}

func (s *Sim) PipelinePollForFrames(pipeline Handle) (Handle, bool, RawError) {
	return s.PipelineTryWaitForFrames(pipeline, 0)
}

func (s *Sim) PipelineProfileDevice(profile Handle) (Handle, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pp, raw := lookup[*simPipelineProfile](s, profile)
	if raw != nil {
		return 0, raw
	}
	return s.register(pp.device), nil
}

func (s *Sim) PipelineProfileStreams(profile Handle) (Handle, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pp, raw := lookup[*simPipelineProfile](s, profile)
	if raw != nil {
		return 0, raw
	}
	return s.register(&simProfileList{profiles: pp.streams}), nil
}

func (s *Sim) DeletePipelineProfile(profile Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, profile)
}

func (s *Sim) ReleaseFrame(frame Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.liveFrames[frame] {
		s.doubleReleases++
		return
	}
	delete(s.liveFrames, frame)
	delete(s.objects, frame)
	s.releases++
}

func (s *Sim) EmbeddedFramesCount(composite Handle) (int, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, raw := lookup[*simComposite](s, composite)
	if raw != nil {
		return 0, raw
	}
	return len(c.frames), nil
}

func (s *Sim) ExtractFrame(composite Handle, index int) (Handle, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, raw := lookup[*simComposite](s, composite)
	if raw != nil {
		return 0, raw
	}
	if index < 0 || index >= len(c.frames) {
		return 0, s.fail(kind.ExceptionInvalidValue, "frame index %d out of range", index)
	}
	// each extraction is a fresh reference that must be released
	return s.registerFrame(c.frames[index]), nil
}

// extensions derives the extension tags a frame answers to.
func (f *SimFrame) extensions() []kind.Extension {
	if len(f.Extensions) > 0 {
		return f.Extensions
	}
	p := f.profile()
	switch {
	case p.Stream == kind.StreamPose || p.Format == kind.Format6Dof:
		return []kind.Extension{kind.ExtensionPoseFrame}
	case p.Format == kind.FormatMotionXyz32F || p.Format == kind.FormatMotionRaw:
		return []kind.Extension{kind.ExtensionMotionFrame}
	case p.Format == kind.FormatXyz32F:
		return []kind.Extension{kind.ExtensionPoints}
	case p.Format == kind.FormatDisparity16 || p.Format == kind.FormatDisparity32:
		return []kind.Extension{kind.ExtensionVideoFrame, kind.ExtensionDepthFrame, kind.ExtensionDisparityFrame}
	case p.Stream == kind.StreamDepth:
		return []kind.Extension{kind.ExtensionVideoFrame, kind.ExtensionDepthFrame}
	default:
		return []kind.Extension{kind.ExtensionVideoFrame}
	}
}

func (f *SimFrame) profile() *SimStreamProfile {
	if f.Profile != nil {
		return f.Profile
	}
	return &SimStreamProfile{Stream: kind.StreamColor, Format: kind.FormatBgr8}
}

func (f *SimFrame) stride() int {
	if f.Stride != 0 {
		return f.Stride
	}
	return f.Width * f.BitsPerPixel / 8
}

func (s *Sim) IsFrameExtendableTo(frame Handle, ext kind.Extension) (bool, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[frame]
	if !ok {
		return false, s.fail(kind.ExceptionWrongAPICallSequence, "stale frame handle %d", frame)
	}
	switch f := obj.(type) {
	case *simComposite:
		return ext == kind.ExtensionCompositeFrame, nil
	case *SimFrame:
		for _, e := range f.extensions() {
			if e == ext {
				return true, nil
			}
		}
		return false, nil
	}
	return false, s.fail(kind.ExceptionWrongAPICallSequence, "handle %d is not a frame", frame)
}

// frameOf must be called with s.mu held.
func (s *Sim) frameOf(frame Handle) (*SimFrame, RawError) {
	return lookup[*SimFrame](s, frame)
}

func (s *Sim) GetFrameWidth(frame Handle) (int, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, raw := s.frameOf(frame)
	if raw != nil {
		return 0, raw
	}
	return f.Width, nil
}

func (s *Sim) GetFrameHeight(frame Handle) (int, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, raw := s.frameOf(frame)
	if raw != nil {
		return 0, raw
	}
	return f.Height, nil
}

func (s *Sim) GetFrameStrideInBytes(frame Handle) (int, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, raw := s.frameOf(frame)
	if raw != nil {
		return 0, raw
	}
	return f.stride(), nil
}

func (s *Sim) GetFrameBitsPerPixel(frame Handle) (int, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, raw := s.frameOf(frame)
	if raw != nil {
		return 0, raw
	}
	return f.BitsPerPixel, nil
}

func (s *Sim) GetFrameTimestamp(frame Handle) (float64, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, raw := s.frameOf(frame)
	if raw != nil {
		return 0, raw
	}
	return f.Timestamp, nil
}

func (s *Sim) GetFrameTimestampDomain(frame Handle) (kind.TimestampDomain, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, raw := s.frameOf(frame)
	if raw != nil {
		return 0, raw
	}
	return f.Domain, nil
}

func (s *Sim) GetFrameNumber(frame Handle) (uint64, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, raw := s.frameOf(frame)
	if raw != nil {
		return 0, raw
	}
	return f.Number, nil
}

func (s *Sim) GetFrameStreamProfile(frame Handle) (Handle, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, raw := s.frameOf(frame)
	if raw != nil {
		return 0, raw
	}
	return s.register(f.profile()), nil
}

func (s *Sim) GetFrameDataSize(frame Handle) (int, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, raw := s.frameOf(frame)
	if raw != nil {
		return 0, raw
	}
	return len(f.Data), nil
}

func (s *Sim) GetFrameData(frame Handle, size int) ([]byte, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, raw := s.frameOf(frame)
	if raw != nil {
		return nil, raw
	}
	if size > len(f.Data) {
		size = len(f.Data)
	}
	return f.Data[:size], nil
}

func (s *Sim) GetFrameSensor(frame Handle) (Handle, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, raw := s.frameOf(frame)
	if raw != nil {
		return 0, raw
	}
	sn := f.Sensor
	if sn == nil && len(s.devices) > 0 && len(s.devices[0].Sensors) > 0 {
		sn = s.devices[0].Sensors[0]
	}
	if sn == nil {
		return 0, s.fail(kind.ExceptionBackend, "frame has no originating sensor")
	}
	// the native call allocates a new sensor object per query
	return s.register(sn), nil
}

func (s *Sim) SupportsFrameMetadata(frame Handle, md kind.FrameMetadata) (bool, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, raw := s.frameOf(frame)
	if raw != nil {
		return false, raw
	}
	_, ok := f.Metadata[md]
	return ok, nil
}

func (s *Sim) GetFrameMetadata(frame Handle, md kind.FrameMetadata) (int64, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, raw := s.frameOf(frame)
	if raw != nil {
		return 0, raw
	}
	v, ok := f.Metadata[md]
	if !ok {
		return 0, s.fail(kind.ExceptionInvalidValue, "metadata %d not supported", md)
	}
	return v, nil
}

func (s *Sim) GetDepthDistance(frame Handle, col, row int) (float32, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, raw := s.frameOf(frame)
	if raw != nil {
		return 0, raw
	}
	if col < 0 || row < 0 || col >= f.Width || row >= f.Height {
		return 0, s.fail(kind.ExceptionInvalidValue, "pixel (%d,%d) out of range", col, row)
	}
	scale := f.DepthScale
	if scale == 0 {
		scale = 0.001
	}
	off := row*f.stride() + col*2
	if off+1 >= len(f.Data) {
		return 0, s.fail(kind.ExceptionInvalidValue, "pixel (%d,%d) outside data", col, row)
	}
	raw16 := uint16(f.Data[off]) | uint16(f.Data[off+1])<<8
	return float32(raw16) * scale, nil
}

func (s *Sim) GetDisparityBaseline(frame Handle) (float32, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, raw := s.frameOf(frame)
	if raw != nil {
		return 0, raw
	}
	return f.Baseline, nil
}

func (s *Sim) GetPoseData(frame Handle) (kind.Pose, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, raw := s.frameOf(frame)
	if raw != nil {
		return kind.Pose{}, raw
	}
	return f.Pose, nil
}

func (s *Sim) GetPointsCount(frame Handle) (int, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, raw := s.frameOf(frame)
	if raw != nil {
		return 0, raw
	}
	return f.PointCount, nil
}

func (s *Sim) GetPointsVertices(frame Handle, count int) ([]byte, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, raw := s.frameOf(frame)
	if raw != nil {
		return nil, raw
	}
	return f.Vertices, nil
}

func (s *Sim) GetPointsTextureCoordinates(frame Handle, count int) ([]byte, RawError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, raw := s.frameOf(frame)
	if raw != nil {
		return nil, raw
	}
	return f.TexCoords, nil
}
