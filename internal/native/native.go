// Package native is the boundary with the device-streaming C library.
//
// Every call that can raise a native exception returns a RawError out-value
// alongside its result, mirroring the library's out-parameter error
// convention. A nil RawError means the call succeeded and the result is valid
// to read; a non-nil RawError must be consumed (kind + message extracted,
// then freed) by exactly one caller. The safe wrappers in pkg/realsense never
// touch a result before checking the RawError.
//
// Three implementations of Lib exist: a cgo binding to the installed native
// library (build tag "realsense"), a stub for builds without it, and an
// in-memory Sim used by tests.
package native

import (
	"errors"

	"github.com/teslashibe/go-realsense/pkg/kind"
)

// Handle is an opaque reference to an object living in the native library's
// memory. Zero means nil; every constructor in Lib guarantees a non-zero
// handle on success.
type Handle uintptr

// RawError is a native error object delivered through the out parameter of a
// failed call. It owns native memory: callers must Free it exactly once after
// reading the exception kind and message.
type RawError interface {
	Exception() kind.Exception
	Message() string
	Free()
}

// ErrUnavailable is returned by Open when this build has no native backend.
var ErrUnavailable = errors.New("native: librealsense backend not available (build with -tags realsense)")

// Lib is the native call surface the safe wrappers depend on. Handles are not
// interchangeable between Lib instances.
type Lib interface {
	// Context and device enumeration.
	CreateContext(apiVersion int) (Handle, RawError)
	DeleteContext(ctx Handle)
	QueryDevices(ctx Handle, productMask int) (Handle, RawError)
	DeviceListSize(list Handle) (int, RawError)
	CreateDevice(list Handle, index int) (Handle, RawError)
	DeleteDevice(dev Handle)
	DeleteDeviceList(list Handle)
	SupportsDeviceInfo(dev Handle, info kind.CameraInfo) (bool, RawError)
	GetDeviceInfo(dev Handle, info kind.CameraInfo) (string, RawError)
	HardwareReset(dev Handle) RawError
	CreateDeviceHub(ctx Handle) (Handle, RawError)
	DeleteDeviceHub(hub Handle)
	HubWaitForDevice(hub Handle) (Handle, RawError)

	// Sensors and options.
	QuerySensors(dev Handle) (Handle, RawError)
	SensorListSize(list Handle) (int, RawError)
	CreateSensor(list Handle, index int) (Handle, RawError)
	DeleteSensor(sensor Handle)
	DeleteSensorList(list Handle)
	SupportsSensorInfo(sensor Handle, info kind.CameraInfo) (bool, RawError)
	GetSensorInfo(sensor Handle, info kind.CameraInfo) (string, RawError)
	GetOption(sensor Handle, opt kind.Option) (float32, RawError)
	SetOption(sensor Handle, opt kind.Option, value float32) RawError
	SupportsOption(sensor Handle, opt kind.Option) (bool, RawError)
	IsOptionReadOnly(sensor Handle, opt kind.Option) (bool, RawError)
	GetOptionRange(sensor Handle, opt kind.Option) (kind.OptionRange, RawError)
	GetStreamProfiles(sensor Handle) (Handle, RawError)

	// Stream profiles.
	StreamProfileListSize(list Handle) (int, RawError)
	GetStreamProfile(list Handle, index int) (Handle, RawError)
	DeleteStreamProfileList(list Handle)
	GetStreamProfileData(profile Handle) (kind.Stream, kind.Format, int, int, int, RawError)
	IsStreamProfileDefault(profile Handle) (bool, RawError)
	GetVideoIntrinsics(profile Handle) (kind.Intrinsics, RawError)
	GetMotionIntrinsics(profile Handle) (kind.MotionIntrinsics, RawError)
	GetExtrinsics(from, to Handle) (kind.Extrinsics, RawError)
	RegisterExtrinsics(from, to Handle, extr kind.Extrinsics) RawError

	// Config.
	CreateConfig() (Handle, RawError)
	DeleteConfig(cfg Handle)
	ConfigEnableStream(cfg Handle, stream kind.Stream, index, width, height int, format kind.Format, framerate int) RawError
	ConfigEnableAllStreams(cfg Handle) RawError
	ConfigDisableStream(cfg Handle, stream kind.Stream) RawError
	ConfigDisableAllStreams(cfg Handle) RawError
	ConfigEnableDevice(cfg Handle, serial string) RawError
	ConfigEnableDeviceFromFile(cfg Handle, path string) RawError
	ConfigEnableRecordToFile(cfg Handle, path string) RawError
	ConfigCanResolve(cfg, pipeline Handle) (bool, RawError)
	ConfigResolve(cfg, pipeline Handle) (Handle, RawError)

	// Pipeline.
	CreatePipeline(ctx Handle) (Handle, RawError)
	DeletePipeline(pipeline Handle)
	PipelineStart(pipeline Handle) (Handle, RawError)
	PipelineStartWithConfig(pipeline, cfg Handle) (Handle, RawError)
	PipelineStop(pipeline Handle) RawError
	// PipelineTryWaitForFrames blocks up to timeoutMs. The bool reports
	// whether a frame arrived; false with a nil RawError means timeout.
	PipelineTryWaitForFrames(pipeline Handle, timeoutMs int) (Handle, bool, RawError)
	PipelinePollForFrames(pipeline Handle) (Handle, bool, RawError)
	PipelineProfileDevice(profile Handle) (Handle, RawError)
	PipelineProfileStreams(profile Handle) (Handle, RawError)
	DeletePipelineProfile(profile Handle)

	// Frames. ReleaseFrame decrements the native reference count; every frame
	// handle obtained from extraction or delivery must be released exactly
	// once.
	ReleaseFrame(frame Handle)
	EmbeddedFramesCount(composite Handle) (int, RawError)
	ExtractFrame(composite Handle, index int) (Handle, RawError)
	IsFrameExtendableTo(frame Handle, ext kind.Extension) (bool, RawError)
	GetFrameWidth(frame Handle) (int, RawError)
	GetFrameHeight(frame Handle) (int, RawError)
	GetFrameStrideInBytes(frame Handle) (int, RawError)
	GetFrameBitsPerPixel(frame Handle) (int, RawError)
	GetFrameTimestamp(frame Handle) (float64, RawError)
	GetFrameTimestampDomain(frame Handle) (kind.TimestampDomain, RawError)
	GetFrameNumber(frame Handle) (uint64, RawError)
	GetFrameStreamProfile(frame Handle) (Handle, RawError)
	GetFrameDataSize(frame Handle) (int, RawError)
	// GetFrameData returns a view over the native buffer; valid only while
	// the frame handle is held.
	GetFrameData(frame Handle, size int) ([]byte, RawError)
	GetFrameSensor(frame Handle) (Handle, RawError)
	SupportsFrameMetadata(frame Handle, md kind.FrameMetadata) (bool, RawError)
	GetFrameMetadata(frame Handle, md kind.FrameMetadata) (int64, RawError)

	// Typed frame queries.
	GetDepthDistance(frame Handle, col, row int) (float32, RawError)
	GetDisparityBaseline(frame Handle) (float32, RawError)
	GetPoseData(frame Handle) (kind.Pose, RawError)
	GetPointsCount(frame Handle) (int, RawError)
	// GetPointsVertices returns count*12 bytes of packed xyz float triples;
	// GetPointsTextureCoordinates returns count*8 bytes of packed uv pairs.
	GetPointsVertices(frame Handle, count int) ([]byte, RawError)
	GetPointsTextureCoordinates(frame Handle, count int) ([]byte, RawError)
}
