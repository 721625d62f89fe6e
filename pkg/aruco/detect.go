package aruco

// Corner is one marker corner in image coordinates.
type Corner struct {
	X, Y float32
}

// Detection is a single marker found in an image.
type Detection struct {
	ID      int       // marker identifier within the dictionary
	Corners [4]Corner // clockwise from the top-left corner
}

// Detector finds markers of a single dictionary in an image file.
// See OpenCVDetector for the production implementation.
type Detector interface {
	Detect(path string) ([]Detection, error)
}
