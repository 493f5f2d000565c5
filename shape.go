package ortlite

import "fmt"

// Shape describes the dimensional interpretation of a flat tensor buffer
// in NCHW order: batch, channels, height, width
type Shape []int64

// NewShape returns a four dimension NCHW shape descriptor
func NewShape(batch, channels, height, width int64) Shape {
	return Shape{batch, channels, height, width}
}

// Validate checks the shape descriptor has exactly four positive entries
func (s Shape) Validate() error {

	if len(s) != 4 {
		return fmt.Errorf("shape must have 4 dimensions, has %d", len(s))
	}

	for i, d := range s {
		if d <= 0 {
			return fmt.Errorf("shape dimension %d must be positive, is %d", i, d)
		}
	}

	return nil
}

// Elements returns the total number of values a tensor of this shape holds
func (s Shape) Elements() int {

	if len(s) == 0 {
		return 0
	}

	n := int64(1)

	for _, d := range s {
		n *= d
	}

	return int(n)
}

// Batch returns the batch dimension
func (s Shape) Batch() int {
	return int(s[0])
}

// Channels returns the channel dimension
func (s Shape) Channels() int {
	return int(s[1])
}

// Height returns the height dimension in pixels
func (s Shape) Height() int {
	return int(s[2])
}

// Width returns the width dimension in pixels
func (s Shape) Width() int {
	return int(s[3])
}

func (s Shape) String() string {
	return fmt.Sprintf("%v", []int64(s))
}
