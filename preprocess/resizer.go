package preprocess

import (
	"image"

	"gocv.io/x/gocv"
)

// Resizer defines the struct used for handling image resizing
type Resizer struct {
	// srcWidth is the width of the source image
	srcWidth int
	// srcHeight is the height of the source image
	srcHeight int
	// destWidth is the width to scale to
	destWidth int
	// destHeight is the height to scale to
	destHeight int
	// scale factors mapping input tensor coordinates back to source
	// image coordinates
	scaleX float32
	scaleY float32
}

// NewResizer returns a resizer used for scaling an image to the needed
// dimensions for input tensor size.  Aspect ratio is not preserved, the
// horizontal and vertical axes scale independently.
func NewResizer(srcWidth, srcHeight, destWidth, destHeight int) *Resizer {
	r := &Resizer{
		srcWidth:   srcWidth,
		srcHeight:  srcHeight,
		destWidth:  destWidth,
		destHeight: destHeight,
	}

	// precalculate scaling factors
	r.preCalc()

	return r
}

// preCalc the scaling factors between source and destination dimensions
func (r *Resizer) preCalc() {
	r.scaleX = float32(r.srcWidth) / float32(r.destWidth)
	r.scaleY = float32(r.srcHeight) / float32(r.destHeight)
}

// Resize scales the source image to the destination dimensions using
// bilinear interpolation
func (r *Resizer) Resize(src gocv.Mat, dest *gocv.Mat) {
	gocv.Resize(src, dest, image.Pt(r.destWidth, r.destHeight),
		0, 0, gocv.InterpolationLinear)
}

// ScaleX returns the horizontal factor for mapping input tensor
// coordinates back to source image coordinates
func (r *Resizer) ScaleX() float32 {
	return r.scaleX
}

// ScaleY returns the vertical factor for mapping input tensor coordinates
// back to source image coordinates
func (r *Resizer) ScaleY() float32 {
	return r.scaleY
}

// SrcWidth returns the width of the source image
func (r *Resizer) SrcWidth() int {
	return r.srcWidth
}

// SrcHeight returns the height of the source image
func (r *Resizer) SrcHeight() int {
	return r.srcHeight
}

// DestWidth returns the width scaled to
func (r *Resizer) DestWidth() int {
	return r.destWidth
}

// DestHeight returns the height scaled to
func (r *Resizer) DestHeight() int {
	return r.destHeight
}
