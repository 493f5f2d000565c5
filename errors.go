package ortlite

import "fmt"

// LoadError indicates the source image could not be read or decoded
type LoadError struct {
	// Path is the image file that failed to load
	Path string
	// Err is the underlying cause, nil when the decoder gave no detail
	Err error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not read the image %s: %v", e.Path, e.Err)
	}

	return fmt.Sprintf("could not read the image: %s", e.Path)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// InferenceError indicates the model could not be loaded or executed
type InferenceError struct {
	// Op is the runtime operation that failed
	Op string
	// Err is the underlying engine error
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference error during %s: %v", e.Op, e.Err)
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}

// ClassIndexError indicates a detection carried a class id outside the
// class name table
type ClassIndexError struct {
	// ID is the offending class id
	ID int
	// Size is the number of entries in the class name table
	Size int
}

func (e *ClassIndexError) Error() string {
	return fmt.Sprintf("class id %d is outside the class name table of %d entries",
		e.ID, e.Size)
}
