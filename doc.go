/*
go-ortlite provides a lite Go wrapper around the ONNX Runtime for running
object detection models against still images.  It aims to keep the glue
around the inference engine small: the root package owns the runtime and
tensor plumbing, with subpackages for image preprocessing, detection
postprocessing, and rendering of annotated results.

The runtime queries the model file for its input and output tensor names
rather than assuming them, so any single-input single-output detection
model exporting post-NMS [left, top, right, bottom, confidence, class id]
records works unmodified.

See example usage in the cmd/detect CLI.
*/
package ortlite
