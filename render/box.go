package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ortlite/go-ortlite/postprocess/result"
	"gocv.io/x/gocv"
)

// DetectionBoxes renders the bounding boxes around the objects detected.
// Each detection paints its box outline, label background, then label
// text before the next detection starts, so later detections draw over
// earlier ones where they overlap.  Boxes are labelled
// "<class name>: <confidence>" on a filled background sized to fit the
// text.
func DetectionBoxes(img *gocv.Mat, detectResults []result.DetectResult,
	classNames []string, font Font, boxColor color.RGBA, lineThickness int) {

	for _, detResult := range detectResults {

		rect := image.Rect(detResult.Box.Left, detResult.Box.Top,
			detResult.Box.Right, detResult.Box.Bottom)
		gocv.Rectangle(img, rect, boxColor, lineThickness)

		// create text for label
		name := ""

		if detResult.Class >= 0 && detResult.Class < len(classNames) {
			name = classNames[detResult.Class]
		}

		text := fmt.Sprintf("%s: %f", name, detResult.Probability)
		textSize, baseline := gocv.GetTextSizeWithBaseline(text, font.Face,
			font.Scale, font.Thickness)

		// filled background sits above the box's top edge with the text
		// baseline resting on the edge
		bRect := image.Rect(
			detResult.Box.Left-font.LeftPad,
			detResult.Box.Top-textSize.Y-font.TopPad,
			detResult.Box.Left+textSize.X+font.RightPad,
			detResult.Box.Top+baseline+font.BottomPad,
		)

		// draw box text gets written on
		gocv.Rectangle(img, bRect, font.Fill, -1)

		// draw the label over box
		gocv.PutTextWithParams(img, text,
			image.Pt(detResult.Box.Left, detResult.Box.Top),
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}

// ClassDetectionBoxes renders detection boxes like DetectionBoxes but
// colors each box by its class id from the palette instead of a single
// uniform color
func ClassDetectionBoxes(img *gocv.Mat, detectResults []result.DetectResult,
	classNames []string, font Font, lineThickness int) {

	for _, detResult := range detectResults {
		one := []result.DetectResult{detResult}
		DetectionBoxes(img, one, classNames, font,
			ClassColor(detResult.Class), lineThickness)
	}
}
