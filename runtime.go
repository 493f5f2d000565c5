package ortlite

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// SharedLibPathEnv is the environment variable consulted for the location
// of the ONNX Runtime shared library before falling back to the platform
// default location.
const SharedLibPathEnv = "ONNXRUNTIME_SHARED_LIBRARY_PATH"

var (
	ortInitOnce sync.Once
	ortInitErr  error
)

// initEnvironment loads the ONNX Runtime shared library and initializes
// the engine environment.  The underlying C library can only be
// initialized once per process.
func initEnvironment() error {

	ortInitOnce.Do(func() {
		if ort.IsInitialized() {
			return
		}

		ort.SetSharedLibraryPath(sharedLibPath())
		ortInitErr = ort.InitializeEnvironment()
	})

	return ortInitErr
}

// sharedLibPath returns the ONNX Runtime shared library location for the
// current platform, or the SharedLibPathEnv override when set
func sharedLibPath() string {

	if path := os.Getenv(SharedLibPathEnv); path != "" {
		return path
	}

	switch runtime.GOOS {
	case "windows":
		return "onnxruntime.dll"

	case "darwin":
		if runtime.GOARCH == "arm64" {
			return "/opt/homebrew/lib/libonnxruntime.dylib"
		}

		return "/usr/local/lib/libonnxruntime.dylib"

	default:
		return "/usr/lib/libonnxruntime.so"
	}
}

// Runtime defines an ONNX Runtime inference session wrapping a single
// model file
type Runtime struct {
	// session is the dynamic ONNX Runtime session
	session *ort.DynamicAdvancedSession
	// inputName caches the name of the model's input tensor
	inputName string
	// outputName caches the name of the model's output tensor
	outputName string
	// inputShape caches the model's input tensor dimensions
	inputShape Shape
}

// NewRuntime returns a run time instance for the given model file.  The
// model must expose exactly one input and one output tensor, their names
// and dimensions are queried from the model file rather than assumed.
func NewRuntime(modelFile string) (*Runtime, error) {

	if err := initEnvironment(); err != nil {
		return nil, &InferenceError{Op: "environment init", Err: err}
	}

	inputs, outputs, err := ort.GetInputOutputInfo(modelFile)

	if err != nil {
		return nil, &InferenceError{Op: "model load", Err: err}
	}

	if len(inputs) != 1 || len(outputs) != 1 {
		return nil, &InferenceError{
			Op: "model load",
			Err: fmt.Errorf("model must have one input and one output tensor, has %d and %d",
				len(inputs), len(outputs)),
		}
	}

	opts, err := ort.NewSessionOptions()

	if err != nil {
		return nil, &InferenceError{Op: "session options", Err: err}
	}

	defer opts.Destroy()

	// the pipeline is synchronous and processes a single image, so the
	// engine is constrained to one intra-op thread
	if err := opts.SetIntraOpNumThreads(1); err != nil {
		return nil, &InferenceError{Op: "session options", Err: err}
	}

	session, err := ort.NewDynamicAdvancedSession(modelFile,
		[]string{inputs[0].Name}, []string{outputs[0].Name}, opts)

	if err != nil {
		return nil, &InferenceError{Op: "session create", Err: err}
	}

	return &Runtime{
		session:    session,
		inputName:  inputs[0].Name,
		outputName: outputs[0].Name,
		inputShape: Shape(inputs[0].Dimensions),
	}, nil
}

// InputName returns the model's input tensor name as queried from the
// model file
func (r *Runtime) InputName() string {
	return r.inputName
}

// OutputName returns the model's output tensor name as queried from the
// model file
func (r *Runtime) OutputName() string {
	return r.outputName
}

// InputShape returns the model's input tensor dimensions.  Models
// exported with dynamic axes report those dimensions as -1, callers must
// substitute concrete values before inference.
func (r *Runtime) InputShape() Shape {
	return r.inputShape
}

// Inference runs a single synchronous forward pass over the model with
// the given planar tensor data and shape descriptor.  The flat output
// tensor is returned as float32, models emitting float16 have their
// output widened.
func (r *Runtime) Inference(data []float32, shape Shape) ([]float32, error) {

	if err := shape.Validate(); err != nil {
		return nil, &InferenceError{Op: "input check", Err: err}
	}

	if len(data) != shape.Elements() {
		return nil, &InferenceError{
			Op: "input check",
			Err: fmt.Errorf("tensor has %d values, shape %s requires %d",
				len(data), shape, shape.Elements()),
		}
	}

	input, err := ort.NewTensor(ort.NewShape(shape...), data)

	if err != nil {
		return nil, &InferenceError{Op: "input tensor create", Err: err}
	}

	defer input.Destroy()

	// a nil entry makes the session allocate the output tensor itself
	outputs := []ort.Value{nil}

	if err := r.session.Run([]ort.Value{input}, outputs); err != nil {
		return nil, &InferenceError{Op: "session run", Err: err}
	}

	defer outputs[0].Destroy()

	switch out := outputs[0].(type) {

	case *ort.Tensor[float32]:
		// copy out of the engine owned buffer before it is destroyed
		res := make([]float32, len(out.GetData()))
		copy(res, out.GetData())
		return res, nil

	case *ort.CustomDataTensor:
		// dynamic sessions surface float16 outputs as raw bytes
		return F16BufferToF32(out.GetData())

	default:
		return nil, &InferenceError{
			Op:  "output read",
			Err: fmt.Errorf("unsupported output tensor type %T", outputs[0]),
		}
	}
}

// Close releases the inference session
func (r *Runtime) Close() error {

	if r.session == nil {
		return nil
	}

	err := r.session.Destroy()
	r.session = nil

	return err
}
