package preprocess

import (
	"fmt"

	"github.com/ortlite/go-ortlite"
	"gocv.io/x/gocv"
)

// TensorData converts an 8 bit multi channel image into a flat planar
// float32 tensor matching the given NCHW shape, with values scaled from
// [0,255] to [0,1].  Channel planes are concatenated in the Mat's native
// channel order, so a BGR decoded image produces B, G, R planes.
func TensorData(img gocv.Mat, shape ortlite.Shape) ([]float32, error) {

	if err := shape.Validate(); err != nil {
		return nil, err
	}

	if img.Channels() != shape.Channels() {
		return nil, fmt.Errorf("image has %d channels, tensor shape expects %d",
			img.Channels(), shape.Channels())
	}

	if img.Cols() != shape.Width() || img.Rows() != shape.Height() {
		return nil, fmt.Errorf("image is %dx%d, tensor shape expects %dx%d",
			img.Cols(), img.Rows(), shape.Width(), shape.Height())
	}

	// convert pixel values to float32 scaled to [0,1]
	floatImg := gocv.NewMat()
	defer floatImg.Close()

	img.ConvertToWithParams(&floatImg, gocv.MatTypeCV32F, 1.0/255.0, 0)

	// split interleaved channels into separate planes and concatenate
	// them into the planar tensor buffer
	planes := gocv.Split(floatImg)

	data := make([]float32, 0, shape.Elements())

	for _, plane := range planes {
		vals, err := plane.DataPtrFloat32()

		if err != nil {
			plane.Close()
			return nil, fmt.Errorf("error getting data pointer to plane: %w", err)
		}

		// append copies out of the Mat backed buffer
		data = append(data, vals...)
		plane.Close()
	}

	return data, nil
}
