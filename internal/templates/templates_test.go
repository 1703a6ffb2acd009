package templates_test

import (
	"testing"

	"github.com/petrichorlabs/rampkit/internal/templates"
)

func TestRenderStorageReference(t *testing.T) {
	got, err := templates.RenderStorageReference(templates.StorageReference{
		StorageName:  "TextStorage",
		ToolName:     "FileManager",
		ActivityName: "load_files_from_disk",
		Key:          "b2c3",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `Output of "FileManager.load_files_from_disk" was stored in storage "TextStorage" with the following record ID: "b2c3"`
	if got != want {
		t.Fatalf("reference mismatch:\n got %q\nwant %q", got, want)
	}
}
