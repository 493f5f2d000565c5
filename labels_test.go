package ortlite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCOCOLabels(t *testing.T) {

	if len(COCOLabels) != 80 {
		t.Fatalf("COCO table must have 80 entries, has %d", len(COCOLabels))
	}

	if COCOLabels[0] != "person" {
		t.Errorf("class id 0 should be person, got %s", COCOLabels[0])
	}

	if COCOLabels[79] != "toothbrush" {
		t.Errorf("class id 79 should be toothbrush, got %s", COCOLabels[79])
	}
}

func TestClassName(t *testing.T) {

	tests := []struct {
		id       int
		expected string
		wantErr  bool
	}{
		{0, "person", false},
		{39, "bottle", false},
		{79, "toothbrush", false},
		{80, "", true},
		{-1, "", true},
	}

	for _, tc := range tests {
		name, err := ClassName(COCOLabels, tc.id)

		if tc.wantErr {
			var classErr *ClassIndexError

			if !errors.As(err, &classErr) {
				t.Errorf("id %d: expected ClassIndexError, got %v", tc.id, err)
			}

			continue
		}

		if err != nil {
			t.Errorf("id %d: unexpected error: %v", tc.id, err)
			continue
		}

		if name != tc.expected {
			t.Errorf("id %d: expected %s, got %s", tc.id, tc.expected, name)
		}
	}
}

func TestLoadLabels(t *testing.T) {

	file := filepath.Join(t.TempDir(), "labels.txt")

	content := "cat\ndog\n  bird  \n"

	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("error writing labels file: %v", err)
	}

	labels, err := LoadLabels(file)

	if err != nil {
		t.Fatalf("error loading labels: %v", err)
	}

	expected := []string{"cat", "dog", "bird"}

	if len(labels) != len(expected) {
		t.Fatalf("expected %d labels, got %d", len(expected), len(labels))
	}

	for i, want := range expected {
		if labels[i] != want {
			t.Errorf("label %d: expected %s, got %s", i, want, labels[i])
		}
	}
}

func TestLoadLabelsMissingFile(t *testing.T) {

	if _, err := LoadLabels("/nonexistent/labels.txt"); err == nil {
		t.Error("expected error for missing labels file, got none")
	}
}
