package postprocess

import (
	"fmt"

	"github.com/ortlite/go-ortlite"
	"github.com/ortlite/go-ortlite/postprocess/result"
	"github.com/ortlite/go-ortlite/preprocess"
)

// DetStride is the number of values making up one detection record in the
// model output tensor: left, top, right, bottom, confidence, class id
const DetStride = 6

// Detector defines the struct for post processing detection model output
type Detector struct {
	// Params are the Model configuration parameters
	Params DetectorParams
	// idGen is a counter that increments and provides the next number
	// for each detection result ID
	idGen *result.IDGenerator
}

// DetectorParams defines the struct containing the parameters to use for
// post processing operations
type DetectorParams struct {
	// ConfThreshold is the minimum confidence score required for a
	// detection record to be kept
	ConfThreshold float32
	// ClassNum is the number of object classes the Model was trained
	// with, used to validate record class ids against the name table
	ClassNum int
}

// COCOParams returns detector parameters configured with default values
// for a Model trained on the COCO dataset featuring:
//   - Object Classes: 80
//   - Confidence Threshold: 0.5
func COCOParams() DetectorParams {
	return DetectorParams{
		ConfThreshold: 0.5,
		ClassNum:      80,
	}
}

// NewDetector returns an instance of the Detector post processor
func NewDetector(p DetectorParams) *Detector {
	return &Detector{
		Params: p,
		idGen:  result.NewIDGenerator(),
	}
}

// DetectObjects interprets the flat model output as stride 6 records in
// input tensor pixel coordinates, drops records under the confidence
// threshold, and rescales the surviving boxes to source image
// coordinates.  Raw record order is preserved and no suppression is
// performed here, models with a post-NMS detection head emit
// non-overlapping records already.
func (d *Detector) DetectObjects(output []float32,
	resizer *preprocess.Resizer) ([]result.DetectResult, error) {

	if len(output)%DetStride != 0 {
		return nil, fmt.Errorf("output tensor length %d is not divisible by record stride %d",
			len(output), DetStride)
	}

	scaleX := resizer.ScaleX()
	scaleY := resizer.ScaleY()

	group := make([]result.DetectResult, 0)

	for i := 0; i < len(output); i += DetStride {

		left := output[i]
		top := output[i+1]
		right := output[i+2]
		bottom := output[i+3]
		conf := output[i+4]
		classID := int(output[i+5])

		if conf < d.Params.ConfThreshold {
			continue
		}

		if classID < 0 || classID >= d.Params.ClassNum {
			return nil, &ortlite.ClassIndexError{ID: classID, Size: d.Params.ClassNum}
		}

		// coordinates truncate toward zero.  box width and height are
		// scaled before truncation, so Right and Bottom derive from the
		// truncated origin plus the truncated span
		x := int(left * scaleX)
		y := int(top * scaleY)
		w := int((right - left) * scaleX)
		h := int((bottom - top) * scaleY)

		res := result.DetectResult{
			Box: result.BoxRect{
				Left:   x,
				Top:    y,
				Right:  x + w,
				Bottom: y + h,
			},
			Probability: conf,
			Class:       classID,
			ID:          d.idGen.GetNext(),
		}

		group = append(group, res)
	}

	return group, nil
}
