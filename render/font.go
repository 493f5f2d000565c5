package render

import (
	"gocv.io/x/gocv"
	"image/color"
)

// Font defines the parameters for rendering text on an image using GoCV
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
	// Fill is the color of the filled background the label text is
	// drawn over
	Fill color.RGBA
	// Padding to place around text
	LeftPad   int
	RightPad  int
	TopPad    int
	BottomPad int
}

// DefaultFont returns default font settings matching the classic
// detection overlay, black text on a white filled label background
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.5,
		Color:     Black,
		Thickness: 1,
		LineType:  gocv.LineAA,
		Fill:      White,
		LeftPad:   0,
		RightPad:  0,
		TopPad:    0,
		BottomPad: 0,
	}
}
