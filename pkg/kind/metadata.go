package kind

import "fmt"

// FrameMetadata identifies a per-frame metadata attribute. Support varies by
// device and stream; query support before reading.
type FrameMetadata int32

const (
	MetadataFrameCounter FrameMetadata = iota
	MetadataFrameTimestamp
	MetadataSensorTimestamp
	MetadataActualExposure
	MetadataGainLevel
	MetadataAutoExposure
	MetadataWhiteBalance
	MetadataTimeOfArrival
	MetadataTemperature
	MetadataBackendTimestamp
	MetadataActualFps
	MetadataFrameLaserPower
	MetadataFrameLaserPowerMode
	MetadataExposurePriority
	MetadataExposureRoiLeft
	MetadataExposureRoiRight
	MetadataExposureRoiTop
	MetadataExposureRoiBottom
	MetadataBrightness
	MetadataContrast
	MetadataSaturation
	MetadataSharpness
)

// TimestampDomain identifies which clock a frame timestamp was taken from.
type TimestampDomain int32

const (
	TimestampDomainHardwareClock TimestampDomain = iota
	TimestampDomainSystemTime
	TimestampDomainGlobalTime
)

// String returns a human-readable name for the timestamp domain.
func (d TimestampDomain) String() string {
	switch d {
	case TimestampDomainHardwareClock:
		return "hardware clock"
	case TimestampDomainSystemTime:
		return "system time"
	case TimestampDomainGlobalTime:
		return "global time"
	default:
		return fmt.Sprintf("timestamp domain(%d)", int32(d))
	}
}
