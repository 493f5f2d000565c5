package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"gocv.io/x/gocv"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TextRenderer draws anti-aliased TTF text over a gocv Mat, for callers
// wanting label typography beyond the built in Hershey fonts
type TextRenderer struct {
	// fontFace is the loaded TTF font face
	fontFace font.Face
}

// NewTextRenderer loads the given TTF/OTF font file at the given point
// size
func NewTextRenderer(fontFile string, size float64) (*TextRenderer, error) {

	fontBytes, err := os.ReadFile(fontFile)

	if err != nil {
		return nil, fmt.Errorf("error reading font file: %w", err)
	}

	f, err := opentype.Parse(fontBytes)

	if err != nil {
		return nil, fmt.Errorf("error parsing font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	if err != nil {
		return nil, fmt.Errorf("error creating font face: %w", err)
	}

	return &TextRenderer{fontFace: face}, nil
}

// PutText draws the text over the image with the baseline starting at
// pixel position x, y
func (t *TextRenderer) PutText(img *gocv.Mat, text string, x, y int,
	clr color.RGBA) error {

	// rasterize the text into a transparent overlay the same size as
	// the target image
	rgba := image.NewRGBA(image.Rect(0, 0, img.Cols(), img.Rows()))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(color.RGBA{0, 0, 0, 0}),
		image.Point{}, draw.Src)

	dr := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(clr),
		Face: t.fontFace,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	dr.DrawString(text)

	// convert image.RGBA to gocv.Mat and blend onto the target
	overlay, err := gocv.NewMatFromBytes(rgba.Bounds().Dy(),
		rgba.Bounds().Dx(), gocv.MatTypeCV8UC4, rgba.Pix)

	if err != nil || overlay.Empty() {
		return fmt.Errorf("error creating Mat from RGBA overlay")
	}

	defer overlay.Close()

	gocv.CvtColor(overlay, &overlay, gocv.ColorRGBAToBGR)
	gocv.AddWeighted(*img, 1.0, overlay, 1.0, 0, img)

	return nil
}

// Close releases the font face
func (t *TextRenderer) Close() error {

	if t.fontFace == nil {
		return nil
	}

	return t.fontFace.Close()
}
