package kind

// Option identifies a tunable sensor parameter.
type Option int32

const (
	OptionBacklightCompensation Option = iota
	OptionBrightness
	OptionContrast
	OptionExposure
	OptionGain
	OptionGamma
	OptionHue
	OptionSaturation
	OptionSharpness
	OptionWhiteBalance
	OptionEnableAutoExposure
	OptionEnableAutoWhiteBalance
	OptionVisualPreset
	OptionLaserPower
	OptionAccuracy
	OptionMotionRange
	OptionFilterOption
	OptionConfidenceThreshold
	OptionEmitterEnabled
	OptionFramesQueueSize
	OptionTotalFrameDrops
	OptionAutoExposureMode
	OptionPowerLineFrequency
	OptionAsicTemperature
	OptionErrorPollingEnabled
	OptionProjectorTemperature
	OptionOutputTriggerEnabled
	OptionMotionModuleTemperature
	OptionDepthUnits
	OptionEnableMotionCorrection
	OptionAutoExposurePriority
	OptionColorScheme
	OptionHistogramEqualizationEnabled
	OptionMinDistance
	OptionMaxDistance
	OptionTextureSource
	OptionFilterMagnitude
	OptionFilterSmoothAlpha
	OptionFilterSmoothDelta
	OptionHolesFill
	OptionStereoBaseline
)

// OptionRange describes the valid values for an option.
type OptionRange struct {
	Min     float32
	Max     float32
	Step    float32
	Default float32
}

// CameraInfo identifies a device description field.
type CameraInfo int32

const (
	CameraInfoName CameraInfo = iota
	CameraInfoSerialNumber
	CameraInfoFirmwareVersion
	CameraInfoRecommendedFirmwareVersion
	CameraInfoPhysicalPort
	CameraInfoDebugOpCode
	CameraInfoAdvancedMode
	CameraInfoProductID
	CameraInfoCameraLocked
	CameraInfoUsbTypeDescriptor
	CameraInfoProductLine
	CameraInfoAsicSerialNumber
	CameraInfoFirmwareUpdateID
	CameraInfoIPAddress
)
