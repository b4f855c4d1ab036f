package kind

// Distortion identifies the lens distortion model an Intrinsics uses.
type Distortion int32

const (
	DistortionNone Distortion = iota
	DistortionModifiedBrownConrady
	DistortionInverseBrownConrady
	DistortionFtheta
	DistortionBrownConrady
	DistortionKannalaBrandt4
)

// Intrinsics is the pinhole camera model for a video stream: resolution,
// principal point, focal length and distortion coefficients.
type Intrinsics struct {
	Width  int
	Height int
	PPX    float32
	PPY    float32
	FX     float32
	FY     float32
	Model  Distortion
	Coeffs [5]float32
}

// Extrinsics is the rigid transform from one stream's 3D coordinate space to
// another's. Rotation is a column-major 3x3 matrix, Translation is in meters.
type Extrinsics struct {
	Rotation    [9]float32
	Translation [3]float32
}

// MotionIntrinsics describes an IMU stream's scale/bias matrix and noise model.
type MotionIntrinsics struct {
	// Data packs scale (diagonal), cross-axis terms and bias (last column).
	Data           [3][4]float32
	NoiseVariances [3]float32
	BiasVariances  [3]float32
}

// Vector3 is a 3-component float vector as delivered by the native library.
type Vector3 struct {
	X, Y, Z float32
}

// Quaternion is a rotation in (x, y, z, w) component order.
type Quaternion struct {
	X, Y, Z, W float32
}

// Pose is one sample of a 6DOF pose stream.
type Pose struct {
	Translation         Vector3
	Velocity            Vector3
	Acceleration        Vector3
	Rotation            Quaternion
	AngularVelocity     Vector3
	AngularAcceleration Vector3
	TrackerConfidence   uint32
	MapperConfidence    uint32
}
