package tools_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/petrichorlabs/rampkit/artifact"
	"github.com/petrichorlabs/rampkit/memory"
	"github.com/petrichorlabs/rampkit/tools"
)

func newFileManager(t *testing.T, memories *memory.Registry) *tools.FileManager {
	t.Helper()
	m, err := tools.NewFileManager(t.TempDir(), memories)
	if err != nil {
		t.Fatalf("NewFileManager: %v", err)
	}
	return m
}

func TestNewFileManager_RejectsRelativeWorkdir(t *testing.T) {
	if _, err := tools.NewFileManager("relative/dir", nil); err == nil {
		t.Fatal("expected error for relative workdir")
	}
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	m := newFileManager(t, nil)
	content := "line one\nline two\n"

	res := m.SaveContentToFile(context.Background(), raw(t, map[string]string{
		"path":    "notes/out.txt",
		"content": content,
	}))
	if info, ok := res.(artifact.Info); !ok || info.Value != "saved successfully" {
		t.Fatalf("save result %T: %s", res, res.ToText())
	}

	res = m.LoadFilesFromDisk(context.Background(), raw(t, map[string][]string{
		"paths": {"notes/out.txt"},
	}))
	list, ok := res.(artifact.List)
	if !ok {
		t.Fatalf("load result %T: %s", res, res.ToText())
	}
	if len(list.Values) != 1 {
		t.Fatalf("expected 1 artifact, got %d", len(list.Values))
	}
	txt, ok := list.Values[0].(artifact.Text)
	if !ok {
		t.Fatalf("expected Text, got %T", list.Values[0])
	}
	if txt.Value != content {
		t.Fatalf("round trip mismatch: got %q want %q", txt.Value, content)
	}
	if txt.Name != "out.txt" {
		t.Fatalf("artifact name = %q", txt.Name)
	}
}

func TestLoadFiles_MissingPathErrorArtifact(t *testing.T) {
	m := newFileManager(t, nil)
	res := m.LoadFilesFromDisk(context.Background(), raw(t, map[string][]string{
		"paths": {"no/such/file.txt"},
	}))
	e, ok := res.(artifact.Error)
	if !ok {
		t.Fatalf("expected Error, got %T", res)
	}
	if want := "file in path `no/such/file.txt` not found"; e.Message != want {
		t.Fatalf("message = %q, want %q", e.Message, want)
	}
}

func TestLoadFiles_EmptyPaths(t *testing.T) {
	m := newFileManager(t, nil)
	for _, input := range []string{`{}`, `{"paths":[]}`, `{`} {
		if _, ok := m.LoadFilesFromDisk(context.Background(), json.RawMessage(input)).(artifact.Error); !ok {
			t.Errorf("input %q: expected Error artifact", input)
		}
	}
}

func TestLoadFiles_TraversalErrorArtifact(t *testing.T) {
	m := newFileManager(t, nil)
	res := m.LoadFilesFromDisk(context.Background(), raw(t, map[string][]string{
		"paths": {"../../etc/passwd"},
	}))
	if _, ok := res.(artifact.Error); !ok {
		t.Fatalf("expected Error, got %T", res)
	}
}

func TestSaveContent_CreatesDirs(t *testing.T) {
	m := newFileManager(t, nil)
	res := m.SaveContentToFile(context.Background(), raw(t, map[string]string{
		"path":    "a/b/c.txt",
		"content": "x",
	}))
	if _, ok := res.(artifact.Info); !ok {
		t.Fatalf("save result %T: %s", res, res.ToText())
	}
	if _, err := os.Stat(filepath.Join(m.Workdir(), "a", "b", "c.txt")); err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}
}

func TestSaveContent_MissingPath(t *testing.T) {
	m := newFileManager(t, nil)
	if _, ok := m.SaveContentToFile(context.Background(), json.RawMessage(`{"content":"x"}`)).(artifact.Error); !ok {
		t.Fatal("expected Error artifact")
	}
}

func saveMemoryInput(t *testing.T, memoryName, namespace string) json.RawMessage {
	t.Helper()
	return raw(t, map[string]string{
		"dir_name":           "out",
		"file_name":          "saved.txt",
		"memory_name":        memoryName,
		"artifact_namespace": namespace,
	})
}

func TestSaveMemoryArtifacts_SingleArtifact(t *testing.T) {
	reg := memory.NewRegistry()
	store := memory.NewStore()
	_ = store.StoreArtifact("ns", artifact.NewText("payload"))
	reg.Register("scratch", store)
	m := newFileManager(t, reg)

	res := m.SaveMemoryArtifactsToDisk(context.Background(), saveMemoryInput(t, "scratch", "ns"))
	if info, ok := res.(artifact.Info); !ok || info.Value != "saved successfully" {
		t.Fatalf("result %T: %s", res, res.ToText())
	}

	b, err := os.ReadFile(filepath.Join(m.Workdir(), "out", "saved.txt"))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(b) != "payload" {
		t.Fatalf("content = %q", string(b))
	}
}

func TestSaveMemoryArtifacts_FanOut(t *testing.T) {
	reg := memory.NewRegistry()
	store := memory.NewStore()
	_ = store.StoreArtifact("ns", artifact.NewNamedText("first", "one"))
	_ = store.StoreArtifact("ns", artifact.NewText("two"))
	reg.Register("scratch", store)
	m := newFileManager(t, reg)

	res := m.SaveMemoryArtifactsToDisk(context.Background(), saveMemoryInput(t, "scratch", "ns"))
	if _, ok := res.(artifact.Info); !ok {
		t.Fatalf("result %T: %s", res, res.ToText())
	}

	cases := map[string]string{
		"first-saved.txt": "one",
		"2-saved.txt":     "two",
	}
	for name, want := range cases {
		b, err := os.ReadFile(filepath.Join(m.Workdir(), "out", name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(b) != want {
			t.Fatalf("%s content = %q, want %q", name, string(b), want)
		}
	}
}

func TestSaveMemoryArtifacts_Failures(t *testing.T) {
	reg := memory.NewRegistry()
	reg.Register("empty", memory.NewStore())
	m := newFileManager(t, reg)

	cases := []struct {
		name  string
		input json.RawMessage
		want  string
	}{
		{"UnknownMemory", saveMemoryInput(t, "nope", "ns"), "memory not found"},
		{"EmptyNamespace", saveMemoryInput(t, "empty", "ns"), "no artifacts found"},
		{"MissingDirName", raw(t, map[string]string{"file_name": "f.txt", "memory_name": "empty", "artifact_namespace": "ns"}), "dir_name is required"},
		{"MissingFileName", raw(t, map[string]string{"dir_name": "out", "memory_name": "empty", "artifact_namespace": "ns"}), "file_name is required"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := m.SaveMemoryArtifactsToDisk(context.Background(), c.input)
			e, ok := res.(artifact.Error)
			if !ok {
				t.Fatalf("expected Error, got %T", res)
			}
			if e.Message != c.want {
				t.Fatalf("message = %q, want %q", e.Message, c.want)
			}
		})
	}
}
