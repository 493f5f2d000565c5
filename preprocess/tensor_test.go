package preprocess

import (
	"math"
	"testing"

	"github.com/ortlite/go-ortlite"
	"gocv.io/x/gocv"
)

func TestTensorData(t *testing.T) {

	// uniform color image, channel order B=255, G=128, R=0
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 128, 0, 0),
		4, 4, gocv.MatTypeCV8UC3)
	defer img.Close()

	shape := ortlite.NewShape(1, 3, 4, 4)

	data, err := TensorData(img, shape)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(data) != shape.Elements() {
		t.Fatalf("expected %d values, got %d", shape.Elements(), len(data))
	}

	planeLen := shape.Width() * shape.Height()

	// planes concatenate in channel order, each value scaled by 1/255
	expected := []float32{255.0 / 255.0, 128.0 / 255.0, 0.0}

	for c := 0; c < 3; c++ {
		for i := 0; i < planeLen; i++ {
			got := data[c*planeLen+i]

			if math.Abs(float64(got-expected[c])) > 1e-6 {
				t.Fatalf("plane %d value %d: expected %f, got %f",
					c, i, expected[c], got)
			}
		}
	}
}

func TestTensorDataValuesInRange(t *testing.T) {

	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(17, 200, 99, 0),
		8, 8, gocv.MatTypeCV8UC3)
	defer img.Close()

	data, err := TensorData(img, ortlite.NewShape(1, 3, 8, 8))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, v := range data {
		if v < 0.0 || v > 1.0 {
			t.Fatalf("value %d is %f, outside [0,1]", i, v)
		}
	}
}

func TestTensorDataBadShape(t *testing.T) {

	img := gocv.NewMatWithSize(4, 4, gocv.MatTypeCV8UC3)
	defer img.Close()

	if _, err := TensorData(img, ortlite.Shape{1, 3, 4}); err == nil {
		t.Error("expected error for malformed shape, got none")
	}
}

func TestTensorDataChannelMismatch(t *testing.T) {

	img := gocv.NewMatWithSize(4, 4, gocv.MatTypeCV8UC1)
	defer img.Close()

	if _, err := TensorData(img, ortlite.NewShape(1, 3, 4, 4)); err == nil {
		t.Error("expected error for channel mismatch, got none")
	}
}

func TestTensorDataDimensionMismatch(t *testing.T) {

	img := gocv.NewMatWithSize(8, 8, gocv.MatTypeCV8UC3)
	defer img.Close()

	if _, err := TensorData(img, ortlite.NewShape(1, 3, 4, 4)); err == nil {
		t.Error("expected error for dimension mismatch, got none")
	}
}
