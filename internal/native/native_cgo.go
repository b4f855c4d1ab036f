//go:build realsense

package native

/*
#cgo LDFLAGS: -lrealsense2
#cgo CPPFLAGS: -I/usr/local/include
#include <stdlib.h>
#include <librealsense2/rs.h>
#include <librealsense2/h/rs_pipeline.h>
#include <librealsense2/h/rs_config.h>
*/
import "C"

import (
	"unsafe"

	"github.com/teslashibe/go-realsense/pkg/kind"
)

// Open returns the cgo-backed Lib for the installed native library.
func Open() (Lib, error) {
	return cgoLib{}, nil
}

// cgoLib implements Lib over librealsense2.
type cgoLib struct{}

type cgoError struct {
	e *C.rs2_error
}

func (e *cgoError) Exception() kind.Exception {
	return kind.Exception(C.rs2_get_librealsense_exception_type(e.e))
}

func (e *cgoError) Message() string {
	return C.GoString(C.rs2_get_error_message(e.e))
}

func (e *cgoError) Free() {
	C.rs2_free_error(e.e)
}

// wrapErr converts the C out-parameter into a RawError, nil when the call
// succeeded. The explicit nil check keeps the returned interface nil rather
// than a typed nil.
func wrapErr(e *C.rs2_error) RawError {
	if e == nil {
		return nil
	}
	return &cgoError{e: e}
}

func handle(p unsafe.Pointer) Handle {
	return Handle(uintptr(p))
}

func pointer(h Handle) unsafe.Pointer {
	return unsafe.Pointer(uintptr(h)) //nolint:govet // raw native handle round-trip
}

func (cgoLib) CreateContext(apiVersion int) (Handle, RawError) {
	if apiVersion == 0 {
		apiVersion = C.RS2_API_VERSION
	}
	var e *C.rs2_error
	ctx := C.rs2_create_context(C.int(apiVersion), &e)
	return handle(unsafe.Pointer(ctx)), wrapErr(e)
}

func (cgoLib) DeleteContext(ctx Handle) {
	C.rs2_delete_context((*C.rs2_context)(pointer(ctx)))
}

func (cgoLib) QueryDevices(ctx Handle, productMask int) (Handle, RawError) {
	var e *C.rs2_error
	list := C.rs2_query_devices_ex((*C.rs2_context)(pointer(ctx)), C.int(productMask), &e)
	return handle(unsafe.Pointer(list)), wrapErr(e)
}

func (cgoLib) DeviceListSize(list Handle) (int, RawError) {
	var e *C.rs2_error
	n := C.rs2_get_device_count((*C.rs2_device_list)(pointer(list)), &e)
	return int(n), wrapErr(e)
}

func (cgoLib) CreateDevice(list Handle, index int) (Handle, RawError) {
	var e *C.rs2_error
	dev := C.rs2_create_device((*C.rs2_device_list)(pointer(list)), C.int(index), &e)
	return handle(unsafe.Pointer(dev)), wrapErr(e)
}

func (cgoLib) DeleteDevice(dev Handle) {
	C.rs2_delete_device((*C.rs2_device)(pointer(dev)))
}

func (cgoLib) DeleteDeviceList(list Handle) {
	C.rs2_delete_device_list((*C.rs2_device_list)(pointer(list)))
}

func (cgoLib) SupportsDeviceInfo(dev Handle, info kind.CameraInfo) (bool, RawError) {
	var e *C.rs2_error
	ok := C.rs2_supports_device_info((*C.rs2_device)(pointer(dev)), C.rs2_camera_info(info), &e)
	return ok != 0, wrapErr(e)
}

func (cgoLib) GetDeviceInfo(dev Handle, info kind.CameraInfo) (string, RawError) {
	var e *C.rs2_error
	s := C.rs2_get_device_info((*C.rs2_device)(pointer(dev)), C.rs2_camera_info(info), &e)
	if e != nil {
		return "", wrapErr(e)
	}
	return C.GoString(s), nil
}

func (cgoLib) HardwareReset(dev Handle) RawError {
	var e *C.rs2_error
	C.rs2_hardware_reset((*C.rs2_device)(pointer(dev)), &e)
	return wrapErr(e)
}

func (cgoLib) CreateDeviceHub(ctx Handle) (Handle, RawError) {
	var e *C.rs2_error
	hub := C.rs2_create_device_hub((*C.rs2_context)(pointer(ctx)), &e)
	return handle(unsafe.Pointer(hub)), wrapErr(e)
}

func (cgoLib) DeleteDeviceHub(hub Handle) {
	C.rs2_delete_device_hub((*C.rs2_device_hub)(pointer(hub)))
}

func (cgoLib) HubWaitForDevice(hub Handle) (Handle, RawError) {
	var e *C.rs2_error
	dev := C.rs2_device_hub_wait_for_device((*C.rs2_device_hub)(pointer(hub)), &e)
	return handle(unsafe.Pointer(dev)), wrapErr(e)
}

func (cgoLib) QuerySensors(dev Handle) (Handle, RawError) {
	var e *C.rs2_error
	list := C.rs2_query_sensors((*C.rs2_device)(pointer(dev)), &e)
	return handle(unsafe.Pointer(list)), wrapErr(e)
}

func (cgoLib) SensorListSize(list Handle) (int, RawError) {
	var e *C.rs2_error
	n := C.rs2_get_sensors_count((*C.rs2_sensor_list)(pointer(list)), &e)
	return int(n), wrapErr(e)
}

func (cgoLib) CreateSensor(list Handle, index int) (Handle, RawError) {
	var e *C.rs2_error
	s := C.rs2_create_sensor((*C.rs2_sensor_list)(pointer(list)), C.int(index), &e)
	return handle(unsafe.Pointer(s)), wrapErr(e)
}

func (cgoLib) DeleteSensor(sensor Handle) {
	C.rs2_delete_sensor((*C.rs2_sensor)(pointer(sensor)))
}

func (cgoLib) DeleteSensorList(list Handle) {
	C.rs2_delete_sensor_list((*C.rs2_sensor_list)(pointer(list)))
}

func (cgoLib) SupportsSensorInfo(sensor Handle, info kind.CameraInfo) (bool, RawError) {
	var e *C.rs2_error
	ok := C.rs2_supports_sensor_info((*C.rs2_sensor)(pointer(sensor)), C.rs2_camera_info(info), &e)
	return ok != 0, wrapErr(e)
}

func (cgoLib) GetSensorInfo(sensor Handle, info kind.CameraInfo) (string, RawError) {
	var e *C.rs2_error
	s := C.rs2_get_sensor_info((*C.rs2_sensor)(pointer(sensor)), C.rs2_camera_info(info), &e)
	if e != nil {
		return "", wrapErr(e)
	}
	return C.GoString(s), nil
}

func (cgoLib) GetOption(sensor Handle, opt kind.Option) (float32, RawError) {
	var e *C.rs2_error
	v := C.rs2_get_option((*C.rs2_options)(pointer(sensor)), C.rs2_option(opt), &e)
	return float32(v), wrapErr(e)
}

func (cgoLib) SetOption(sensor Handle, opt kind.Option, value float32) RawError {
	var e *C.rs2_error
	C.rs2_set_option((*C.rs2_options)(pointer(sensor)), C.rs2_option(opt), C.float(value), &e)
	return wrapErr(e)
}

func (cgoLib) SupportsOption(sensor Handle, opt kind.Option) (bool, RawError) {
	var e *C.rs2_error
	ok := C.rs2_supports_option((*C.rs2_options)(pointer(sensor)), C.rs2_option(opt), &e)
	return ok != 0, wrapErr(e)
}

func (cgoLib) IsOptionReadOnly(sensor Handle, opt kind.Option) (bool, RawError) {
	var e *C.rs2_error
	ro := C.rs2_is_option_read_only((*C.rs2_options)(pointer(sensor)), C.rs2_option(opt), &e)
	return ro != 0, wrapErr(e)
}

func (cgoLib) GetOptionRange(sensor Handle, opt kind.Option) (kind.OptionRange, RawError) {
	var e *C.rs2_error
	var min, max, step, def C.float
	C.rs2_get_option_range((*C.rs2_options)(pointer(sensor)), C.rs2_option(opt), &min, &max, &step, &def, &e)
	if e != nil {
		return kind.OptionRange{}, wrapErr(e)
	}
	return kind.OptionRange{
		Min:     float32(min),
		Max:     float32(max),
		Step:    float32(step),
		Default: float32(def),
	}, nil
}

func (cgoLib) GetStreamProfiles(sensor Handle) (Handle, RawError) {
	var e *C.rs2_error
	list := C.rs2_get_stream_profiles((*C.rs2_sensor)(pointer(sensor)), &e)
	return handle(unsafe.Pointer(list)), wrapErr(e)
}

func (cgoLib) StreamProfileListSize(list Handle) (int, RawError) {
	var e *C.rs2_error
	n := C.rs2_get_stream_profiles_count((*C.rs2_stream_profile_list)(pointer(list)), &e)
	return int(n), wrapErr(e)
}

func (cgoLib) GetStreamProfile(list Handle, index int) (Handle, RawError) {
	var e *C.rs2_error
	p := C.rs2_get_stream_profile((*C.rs2_stream_profile_list)(pointer(list)), C.int(index), &e)
	return handle(unsafe.Pointer(p)), wrapErr(e)
}

func (cgoLib) DeleteStreamProfileList(list Handle) {
	C.rs2_delete_stream_profiles_list((*C.rs2_stream_profile_list)(pointer(list)))
}

func (cgoLib) GetStreamProfileData(profile Handle) (kind.Stream, kind.Format, int, int, int, RawError) {
	var e *C.rs2_error
	var stream C.rs2_stream
	var format C.rs2_format
	var index, uniqueID, framerate C.int
	C.rs2_get_stream_profile_data((*C.rs2_stream_profile)(pointer(profile)),
		&stream, &format, &index, &uniqueID, &framerate, &e)
	if e != nil {
		return 0, 0, 0, 0, 0, wrapErr(e)
	}
	return kind.Stream(stream), kind.Format(format), int(index), int(uniqueID), int(framerate), nil
}

func (cgoLib) IsStreamProfileDefault(profile Handle) (bool, RawError) {
	var e *C.rs2_error
	ok := C.rs2_is_stream_profile_default((*C.rs2_stream_profile)(pointer(profile)), &e)
	return ok != 0, wrapErr(e)
}

func (cgoLib) GetVideoIntrinsics(profile Handle) (kind.Intrinsics, RawError) {
	var e *C.rs2_error
	var ci C.rs2_intrinsics
	C.rs2_get_video_stream_intrinsics((*C.rs2_stream_profile)(pointer(profile)), &ci, &e)
	if e != nil {
		return kind.Intrinsics{}, wrapErr(e)
	}
	intr := kind.Intrinsics{
		Width:  int(ci.width),
		Height: int(ci.height),
		PPX:    float32(ci.ppx),
		PPY:    float32(ci.ppy),
		FX:     float32(ci.fx),
		FY:     float32(ci.fy),
		Model:  kind.Distortion(ci.model),
	}
	for i := range intr.Coeffs {
		intr.Coeffs[i] = float32(ci.coeffs[i])
	}
	return intr, nil
}

func (cgoLib) GetMotionIntrinsics(profile Handle) (kind.MotionIntrinsics, RawError) {
	var e *C.rs2_error
	var cm C.rs2_motion_device_intrinsic
	C.rs2_get_motion_intrinsics((*C.rs2_stream_profile)(pointer(profile)), &cm, &e)
	if e != nil {
		return kind.MotionIntrinsics{}, wrapErr(e)
	}
	var intr kind.MotionIntrinsics
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			intr.Data[i][j] = float32(cm.data[i][j])
		}
		intr.NoiseVariances[i] = float32(cm.noise_variances[i])
		intr.BiasVariances[i] = float32(cm.bias_variances[i])
	}
	return intr, nil
}

func (cgoLib) GetExtrinsics(from, to Handle) (kind.Extrinsics, RawError) {
	var e *C.rs2_error
	var ce C.rs2_extrinsics
	C.rs2_get_extrinsics((*C.rs2_stream_profile)(pointer(from)),
		(*C.rs2_stream_profile)(pointer(to)), &ce, &e)
	if e != nil {
		return kind.Extrinsics{}, wrapErr(e)
	}
	var extr kind.Extrinsics
	for i := range extr.Rotation {
		extr.Rotation[i] = float32(ce.rotation[i])
	}
	for i := range extr.Translation {
		extr.Translation[i] = float32(ce.translation[i])
	}
	return extr, nil
}

func (cgoLib) RegisterExtrinsics(from, to Handle, extr kind.Extrinsics) RawError {
	var ce C.rs2_extrinsics
	for i := range extr.Rotation {
		ce.rotation[i] = C.float(extr.Rotation[i])
	}
	for i := range extr.Translation {
		ce.translation[i] = C.float(extr.Translation[i])
	}
	var e *C.rs2_error
	C.rs2_register_extrinsics((*C.rs2_stream_profile)(pointer(from)),
		(*C.rs2_stream_profile)(pointer(to)), ce, &e)
	return wrapErr(e)
}

func (cgoLib) CreateConfig() (Handle, RawError) {
	var e *C.rs2_error
	cfg := C.rs2_create_config(&e)
	return handle(unsafe.Pointer(cfg)), wrapErr(e)
}

func (cgoLib) DeleteConfig(cfg Handle) {
	C.rs2_delete_config((*C.rs2_config)(pointer(cfg)))
}

func (cgoLib) ConfigEnableStream(cfg Handle, stream kind.Stream, index, width, height int, format kind.Format, framerate int) RawError {
	var e *C.rs2_error
	C.rs2_config_enable_stream((*C.rs2_config)(pointer(cfg)), C.rs2_stream(stream),
		C.int(index), C.int(width), C.int(height), C.rs2_format(format), C.int(framerate), &e)
	return wrapErr(e)
}

func (cgoLib) ConfigEnableAllStreams(cfg Handle) RawError {
	var e *C.rs2_error
	C.rs2_config_enable_all_stream((*C.rs2_config)(pointer(cfg)), &e)
	return wrapErr(e)
}

func (cgoLib) ConfigDisableStream(cfg Handle, stream kind.Stream) RawError {
	var e *C.rs2_error
	C.rs2_config_disable_stream((*C.rs2_config)(pointer(cfg)), C.rs2_stream(stream), &e)
	return wrapErr(e)
}

func (cgoLib) ConfigDisableAllStreams(cfg Handle) RawError {
	var e *C.rs2_error
	C.rs2_config_disable_all_streams((*C.rs2_config)(pointer(cfg)), &e)
	return wrapErr(e)
}

func (cgoLib) ConfigEnableDevice(cfg Handle, serial string) RawError {
	cs := C.CString(serial)
	defer C.free(unsafe.Pointer(cs))
	var e *C.rs2_error
	C.rs2_config_enable_device((*C.rs2_config)(pointer(cfg)), cs, &e)
	return wrapErr(e)
}

func (cgoLib) ConfigEnableDeviceFromFile(cfg Handle, path string) RawError {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	var e *C.rs2_error
	C.rs2_config_enable_device_from_file((*C.rs2_config)(pointer(cfg)), cs, &e)
	return wrapErr(e)
}

func (cgoLib) ConfigEnableRecordToFile(cfg Handle, path string) RawError {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	var e *C.rs2_error
	C.rs2_config_enable_record_to_file((*C.rs2_config)(pointer(cfg)), cs, &e)
	return wrapErr(e)
}

func (cgoLib) ConfigCanResolve(cfg, pipeline Handle) (bool, RawError) {
	var e *C.rs2_error
	ok := C.rs2_config_can_resolve((*C.rs2_config)(pointer(cfg)),
		(*C.rs2_pipeline)(pointer(pipeline)), &e)
	return ok != 0, wrapErr(e)
}

func (cgoLib) ConfigResolve(cfg, pipeline Handle) (Handle, RawError) {
	var e *C.rs2_error
	p := C.rs2_config_resolve((*C.rs2_config)(pointer(cfg)),
		(*C.rs2_pipeline)(pointer(pipeline)), &e)
	return handle(unsafe.Pointer(p)), wrapErr(e)
}

func (cgoLib) CreatePipeline(ctx Handle) (Handle, RawError) {
	var e *C.rs2_error
	p := C.rs2_create_pipeline((*C.rs2_context)(pointer(ctx)), &e)
	return handle(unsafe.Pointer(p)), wrapErr(e)
}

func (cgoLib) DeletePipeline(pipeline Handle) {
	C.rs2_delete_pipeline((*C.rs2_pipeline)(pointer(pipeline)))
}

func (cgoLib) PipelineStart(pipeline Handle) (Handle, RawError) {
	var e *C.rs2_error
	p := C.rs2_pipeline_start((*C.rs2_pipeline)(pointer(pipeline)), &e)
	return handle(unsafe.Pointer(p)), wrapErr(e)
}

func (cgoLib) PipelineStartWithConfig(pipeline, cfg Handle) (Handle, RawError) {
	var e *C.rs2_error
	p := C.rs2_pipeline_start_with_config((*C.rs2_pipeline)(pointer(pipeline)),
		(*C.rs2_config)(pointer(cfg)), &e)
	return handle(unsafe.Pointer(p)), wrapErr(e)
}

func (cgoLib) PipelineStop(pipeline Handle) RawError {
	var e *C.rs2_error
	C.rs2_pipeline_stop((*C.rs2_pipeline)(pointer(pipeline)), &e)
	return wrapErr(e)
}

func (cgoLib) PipelineTryWaitForFrames(pipeline Handle, timeoutMs int) (Handle, bool, RawError) {
	var e *C.rs2_error
	var f *C.rs2_frame
	got := C.rs2_pipeline_try_wait_for_frames((*C.rs2_pipeline)(pointer(pipeline)),
		&f, C.uint(timeoutMs), &e)
	return handle(unsafe.Pointer(f)), got != 0, wrapErr(e)
}

func (cgoLib) PipelinePollForFrames(pipeline Handle) (Handle, bool, RawError) {
	var e *C.rs2_error
	var f *C.rs2_frame
	got := C.rs2_pipeline_poll_for_frames((*C.rs2_pipeline)(pointer(pipeline)), &f, &e)
	return handle(unsafe.Pointer(f)), got != 0, wrapErr(e)
}

func (cgoLib) PipelineProfileDevice(profile Handle) (Handle, RawError) {
	var e *C.rs2_error
	dev := C.rs2_pipeline_profile_get_device((*C.rs2_pipeline_profile)(pointer(profile)), &e)
	return handle(unsafe.Pointer(dev)), wrapErr(e)
}

func (cgoLib) PipelineProfileStreams(profile Handle) (Handle, RawError) {
	var e *C.rs2_error
	list := C.rs2_pipeline_profile_get_streams((*C.rs2_pipeline_profile)(pointer(profile)), &e)
	return handle(unsafe.Pointer(list)), wrapErr(e)
}

func (cgoLib) DeletePipelineProfile(profile Handle) {
	C.rs2_delete_pipeline_profile((*C.rs2_pipeline_profile)(pointer(profile)))
}

func (cgoLib) ReleaseFrame(frame Handle) {
	C.rs2_release_frame((*C.rs2_frame)(pointer(frame)))
}

func (cgoLib) EmbeddedFramesCount(composite Handle) (int, RawError) {
	var e *C.rs2_error
	n := C.rs2_embedded_frames_count((*C.rs2_frame)(pointer(composite)), &e)
	return int(n), wrapErr(e)
}

func (cgoLib) ExtractFrame(composite Handle, index int) (Handle, RawError) {
	var e *C.rs2_error
	f := C.rs2_extract_frame((*C.rs2_frame)(pointer(composite)), C.int(index), &e)
	return handle(unsafe.Pointer(f)), wrapErr(e)
}

func (cgoLib) IsFrameExtendableTo(frame Handle, ext kind.Extension) (bool, RawError) {
	var e *C.rs2_error
	ok := C.rs2_is_frame_extendable_to((*C.rs2_frame)(pointer(frame)), C.rs2_extension(ext), &e)
	return ok != 0, wrapErr(e)
}

func (cgoLib) GetFrameWidth(frame Handle) (int, RawError) {
	var e *C.rs2_error
	v := C.rs2_get_frame_width((*C.rs2_frame)(pointer(frame)), &e)
	return int(v), wrapErr(e)
}

func (cgoLib) GetFrameHeight(frame Handle) (int, RawError) {
	var e *C.rs2_error
	v := C.rs2_get_frame_height((*C.rs2_frame)(pointer(frame)), &e)
	return int(v), wrapErr(e)
}

func (cgoLib) GetFrameStrideInBytes(frame Handle) (int, RawError) {
	var e *C.rs2_error
	v := C.rs2_get_frame_stride_in_bytes((*C.rs2_frame)(pointer(frame)), &e)
	return int(v), wrapErr(e)
}

func (cgoLib) GetFrameBitsPerPixel(frame Handle) (int, RawError) {
	var e *C.rs2_error
	v := C.rs2_get_frame_bits_per_pixel((*C.rs2_frame)(pointer(frame)), &e)
	return int(v), wrapErr(e)
}

func (cgoLib) GetFrameTimestamp(frame Handle) (float64, RawError) {
	var e *C.rs2_error
	v := C.rs2_get_frame_timestamp((*C.rs2_frame)(pointer(frame)), &e)
	return float64(v), wrapErr(e)
}

func (cgoLib) GetFrameTimestampDomain(frame Handle) (kind.TimestampDomain, RawError) {
	var e *C.rs2_error
	v := C.rs2_get_frame_timestamp_domain((*C.rs2_frame)(pointer(frame)), &e)
	return kind.TimestampDomain(v), wrapErr(e)
}

func (cgoLib) GetFrameNumber(frame Handle) (uint64, RawError) {
	var e *C.rs2_error
	v := C.rs2_get_frame_number((*C.rs2_frame)(pointer(frame)), &e)
	return uint64(v), wrapErr(e)
}

func (cgoLib) GetFrameStreamProfile(frame Handle) (Handle, RawError) {
	var e *C.rs2_error
	p := C.rs2_get_frame_stream_profile((*C.rs2_frame)(pointer(frame)), &e)
	return handle(unsafe.Pointer(p)), wrapErr(e)
}

func (cgoLib) GetFrameDataSize(frame Handle) (int, RawError) {
	var e *C.rs2_error
	v := C.rs2_get_frame_data_size((*C.rs2_frame)(pointer(frame)), &e)
	return int(v), wrapErr(e)
}

func (cgoLib) GetFrameData(frame Handle, size int) ([]byte, RawError) {
	var e *C.rs2_error
	p := C.rs2_get_frame_data((*C.rs2_frame)(pointer(frame)), &e)
	if e != nil {
		return nil, wrapErr(e)
	}
	if p == nil || size <= 0 {
		return nil, nil
	}
	return unsafe.Slice((*byte)(p), size), nil
}

func (cgoLib) GetFrameSensor(frame Handle) (Handle, RawError) {
	var e *C.rs2_error
	s := C.rs2_get_frame_sensor((*C.rs2_frame)(pointer(frame)), &e)
	return handle(unsafe.Pointer(s)), wrapErr(e)
}

func (cgoLib) SupportsFrameMetadata(frame Handle, md kind.FrameMetadata) (bool, RawError) {
	var e *C.rs2_error
	ok := C.rs2_supports_frame_metadata((*C.rs2_frame)(pointer(frame)), C.rs2_frame_metadata_value(md), &e)
	return ok != 0, wrapErr(e)
}

func (cgoLib) GetFrameMetadata(frame Handle, md kind.FrameMetadata) (int64, RawError) {
	var e *C.rs2_error
	v := C.rs2_get_frame_metadata((*C.rs2_frame)(pointer(frame)), C.rs2_frame_metadata_value(md), &e)
	return int64(v), wrapErr(e)
}

func (cgoLib) GetDepthDistance(frame Handle, col, row int) (float32, RawError) {
	var e *C.rs2_error
	v := C.rs2_depth_frame_get_distance((*C.rs2_frame)(pointer(frame)), C.int(col), C.int(row), &e)
	return float32(v), wrapErr(e)
}

func (cgoLib) GetDisparityBaseline(frame Handle) (float32, RawError) {
	var e *C.rs2_error
	v := C.rs2_depth_stereo_frame_get_baseline((*C.rs2_frame)(pointer(frame)), &e)
	return float32(v), wrapErr(e)
}

func (cgoLib) GetPoseData(frame Handle) (kind.Pose, RawError) {
	var e *C.rs2_error
	var cp C.rs2_pose
	C.rs2_pose_frame_get_pose_data((*C.rs2_frame)(pointer(frame)), &cp, &e)
	if e != nil {
		return kind.Pose{}, wrapErr(e)
	}
	vec := func(v C.rs2_vector) kind.Vector3 {
		return kind.Vector3{X: float32(v.x), Y: float32(v.y), Z: float32(v.z)}
	}
	return kind.Pose{
		Translation:         vec(cp.translation),
		Velocity:            vec(cp.velocity),
		Acceleration:        vec(cp.acceleration),
		Rotation:            kind.Quaternion{X: float32(cp.rotation.x), Y: float32(cp.rotation.y), Z: float32(cp.rotation.z), W: float32(cp.rotation.w)},
		AngularVelocity:     vec(cp.angular_velocity),
		AngularAcceleration: vec(cp.angular_acceleration),
		TrackerConfidence:   uint32(cp.tracker_confidence),
		MapperConfidence:    uint32(cp.mapper_confidence),
	}, nil
}

func (cgoLib) GetPointsCount(frame Handle) (int, RawError) {
	var e *C.rs2_error
	n := C.rs2_get_frame_points_count((*C.rs2_frame)(pointer(frame)), &e)
	return int(n), wrapErr(e)
}

func (cgoLib) GetPointsVertices(frame Handle, count int) ([]byte, RawError) {
	var e *C.rs2_error
	p := C.rs2_get_frame_vertices((*C.rs2_frame)(pointer(frame)), &e)
	if e != nil {
		return nil, wrapErr(e)
	}
	if p == nil || count <= 0 {
		return nil, nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), count*12), nil
}

func (cgoLib) GetPointsTextureCoordinates(frame Handle, count int) ([]byte, RawError) {
	var e *C.rs2_error
	p := C.rs2_get_frame_texture_coordinates((*C.rs2_frame)(pointer(frame)), &e)
	if e != nil {
		return nil, wrapErr(e)
	}
	if p == nil || count <= 0 {
		return nil, nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), count*8), nil
}
