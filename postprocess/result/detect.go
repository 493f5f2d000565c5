package result

// BoxRect is the bounding box of a detected object in source image pixel
// coordinates
type BoxRect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Width returns the pixel width of the bounding box
func (b BoxRect) Width() int {
	return b.Right - b.Left
}

// Height returns the pixel height of the bounding box
func (b BoxRect) Height() int {
	return b.Bottom - b.Top
}

// DetectResult defines a single detected object
type DetectResult struct {
	// Class is the line number in the class names table the detected
	// object belongs to
	Class int
	// Box is the bounding box in source image coordinates
	Box BoxRect
	// Probability is the confidence score of the detection
	Probability float32
	// ID is a unique identifier assigned to the detection
	ID int64
}
