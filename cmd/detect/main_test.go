package main

import (
	"errors"
	"testing"

	"github.com/ortlite/go-ortlite"
	"github.com/ortlite/go-ortlite/postprocess/result"
)

func TestParseArgs(t *testing.T) {

	tests := []struct {
		name string
		argv []string
		ok   bool
	}{
		{"no args", []string{"detect"}, false},
		{"one arg", []string{"detect", "model.onnx"}, false},
		{"two args", []string{"detect", "model.onnx", "image.jpg"}, true},
		{"three args", []string{"detect", "model.onnx", "image.jpg", "extra"}, false},
		{"four args", []string{"detect", "model.onnx", "image.jpg", "a", "b"}, false},
	}

	for _, tc := range tests {
		gotModel, gotImg, gotOK := parseArgs(tc.argv)

		if gotOK != tc.ok {
			t.Errorf("%s: expected ok=%v, got %v", tc.name, tc.ok, gotOK)
			continue
		}

		if tc.ok && (gotModel != "model.onnx" || gotImg != "image.jpg") {
			t.Errorf("%s: expected paths model.onnx, image.jpg, got %s, %s",
				tc.name, gotModel, gotImg)
		}
	}
}

func TestDetectionLine(t *testing.T) {

	tests := []struct {
		det      result.DetectResult
		name     string
		expected string
	}{
		{
			result.DetectResult{
				Class:       0,
				Probability: 0.9,
				Box:         result.BoxRect{Left: 0, Top: 0, Right: 200, Bottom: 200},
			},
			"person",
			"Class ID: 0 Confidence: 0.9 BBox: [0, 0, 200, 200] Class Name: person",
		},
		{
			result.DetectResult{
				Class:       39,
				Probability: 0.853471,
				Box:         result.BoxRect{Left: 4, Top: 2, Right: 14, Bottom: 6},
			},
			"bottle",
			"Class ID: 39 Confidence: 0.853471 BBox: [4, 2, 10, 4] Class Name: bottle",
		},
		{
			result.DetectResult{
				Class:       16,
				Probability: 1.0,
				Box:         result.BoxRect{Left: 10, Top: 20, Right: 30, Bottom: 60},
			},
			"dog",
			"Class ID: 16 Confidence: 1 BBox: [10, 20, 20, 40] Class Name: dog",
		},
	}

	for _, tc := range tests {
		if got := detectionLine(tc.det, tc.name); got != tc.expected {
			t.Errorf("expected %q, got %q", tc.expected, got)
		}
	}
}

func TestRunMissingImage(t *testing.T) {

	// a bad image path must fail with a LoadError before the model is
	// ever touched, so the model path here can be anything
	err := run("no-such-model.onnx", "/nonexistent/image.jpg")

	var loadErr *ortlite.LoadError

	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError for missing image, got %v", err)
	}
}
