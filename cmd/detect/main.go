package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ortlite/go-ortlite"
	"github.com/ortlite/go-ortlite/postprocess"
	"github.com/ortlite/go-ortlite/postprocess/result"
	"github.com/ortlite/go-ortlite/preprocess"
	"github.com/ortlite/go-ortlite/render"
	"gocv.io/x/gocv"
)

// resultFile is the annotated image written to the working directory,
// overwriting any existing file of that name
const resultFile = "result.jpg"

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	modelFile, imgFile, ok := parseArgs(os.Args)

	if !ok {
		fmt.Fprintf(os.Stderr, "Usage: %s <model_path> <image_path>\n", os.Args[0])
		os.Exit(1)
	}

	if err := run(modelFile, imgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs validates the full argument vector and returns the model and
// image paths.  ok is false for any count other than exactly two
// positional arguments.
func parseArgs(argv []string) (modelFile, imgFile string, ok bool) {

	if len(argv) != 3 {
		return "", "", false
	}

	return argv[1], argv[2], true
}

// detectionLine formats one detection for console output.  Confidence
// prints with six significant digits and trailing zeros trimmed, so 0.9
// renders as "0.9" not "0.900000".
func detectionLine(det result.DetectResult, name string) string {
	return fmt.Sprintf("Class ID: %d Confidence: %.6g BBox: [%d, %d, %d, %d] Class Name: %s",
		det.Class, det.Probability,
		det.Box.Left, det.Box.Top, det.Box.Width(), det.Box.Height(),
		name)
}

// run executes the detection pipeline: load image, preprocess to the
// input tensor, run inference, filter detections, then render and write
// the annotated image
func run(modelFile, imgFile string) error {

	// the image loads before the model so a bad image path never
	// constructs or runs an inference session
	img := gocv.IMRead(imgFile, gocv.IMReadColor)

	if img.Empty() {
		return &ortlite.LoadError{Path: imgFile}
	}

	defer img.Close()

	inputShape := ortlite.NewShape(1, 3, 640, 640)

	resizer := preprocess.NewResizer(img.Cols(), img.Rows(),
		inputShape.Width(), inputShape.Height())

	resized := gocv.NewMat()
	defer resized.Close()

	resizer.Resize(img, &resized)

	tensor, err := preprocess.TensorData(resized, inputShape)

	if err != nil {
		return err
	}

	rt, err := ortlite.NewRuntime(modelFile)

	if err != nil {
		return err
	}

	defer rt.Close()

	output, err := rt.Inference(tensor, inputShape)

	if err != nil {
		return err
	}

	detector := postprocess.NewDetector(postprocess.COCOParams())

	detections, err := detector.DetectObjects(output, resizer)

	if err != nil {
		return err
	}

	for _, det := range detections {

		name, err := ortlite.ClassName(ortlite.COCOLabels, det.Class)

		if err != nil {
			return err
		}

		fmt.Println(detectionLine(det, name))
	}

	render.DetectionBoxes(&img, detections, ortlite.COCOLabels,
		render.DefaultFont(), render.Green, 2)

	if ok := gocv.IMWrite(resultFile, img); !ok {
		return fmt.Errorf("failed to write annotated image to %s", resultFile)
	}

	return nil
}
