package aruco

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/poqudrof/arucogen/pkg/errors"
)

// OpenCVRenderer renders markers through OpenCV's aruco module. It is the
// only production Renderer; the dictionary contents and error-correction
// coding live entirely inside OpenCV.
type OpenCVRenderer struct{}

// NewOpenCVRenderer creates an OpenCV-backed marker renderer.
func NewOpenCVRenderer() OpenCVRenderer {
	return OpenCVRenderer{}
}

// RenderMarker implements Renderer using cv::aruco::generateImageMarker.
// Inputs are assumed validated by Request.Resolve; OpenCV aborts on an
// out-of-range id rather than reporting it.
func (OpenCVRenderer) RenderMarker(d Dictionary, id, sidePixels, borderBits int) (image.Image, error) {
	mat := gocv.NewMat()
	defer mat.Close()

	gocv.ArucoGenerateImageMarker(d.Code, id, sidePixels, mat, borderBits)
	if mat.Empty() {
		return nil, errors.New(errors.ErrCodeRender,
			"OpenCV produced no image for %s id %d", d.Name, id)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "convert marker matrix")
	}
	return img, nil
}

// OpenCVDetector finds markers of one dictionary using OpenCV's
// ArucoDetector with default detection parameters.
type OpenCVDetector struct {
	dict Dictionary
}

// NewOpenCVDetector creates a detector bound to the given dictionary.
func NewOpenCVDetector(d Dictionary) *OpenCVDetector {
	return &OpenCVDetector{dict: d}
}

// Detect implements Detector. It reads the image as grayscale and returns
// one Detection per accepted marker candidate.
func (o *OpenCVDetector) Detect(path string) ([]Detection, error) {
	if err := errors.ValidateImagePath(path); err != nil {
		return nil, err
	}

	img := gocv.IMRead(path, gocv.IMReadGrayScale)
	if img.Empty() {
		return nil, errors.New(errors.ErrCodeFileNotFound, "cannot read image %s", path)
	}
	defer img.Close()

	detector := gocv.NewArucoDetectorWithParams(
		gocv.GetPredefinedDictionary(o.dict.Code),
		gocv.NewArucoDetectorParameters(),
	)
	defer detector.Close()

	corners, ids, _ := detector.DetectMarkers(img)

	out := make([]Detection, 0, len(ids))
	for i, id := range ids {
		det := Detection{ID: id}
		if i < len(corners) {
			for j, p := range corners[i] {
				if j >= len(det.Corners) {
					break
				}
				det.Corners[j] = Corner{X: p.X, Y: p.Y}
			}
		}
		out = append(out, det)
	}
	return out, nil
}
