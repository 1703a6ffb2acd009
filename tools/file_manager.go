package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/petrichorlabs/rampkit/artifact"
	"github.com/petrichorlabs/rampkit/internal/fsops"
	"github.com/petrichorlabs/rampkit/memory"
)

// FileManager loads and saves files under a work directory. The workdir is
// validated once at construction; every activity path is relative to it.
type FileManager struct {
	fs       *fsops.FS
	memories *memory.Registry
}

// NewFileManager returns a FileManager rooted at workdir. The workdir must
// be absolute. The registry resolves memory names for
// save_memory_artifacts_to_disk; a nil registry behaves as empty.
func NewFileManager(workdir string, memories *memory.Registry) (*FileManager, error) {
	fs, err := fsops.New(workdir)
	if err != nil {
		return nil, err
	}
	if memories == nil {
		memories = memory.NewRegistry()
	}
	return &FileManager{fs: fs, memories: memories}, nil
}

// Workdir returns the absolute root all activity paths resolve against.
func (m *FileManager) Workdir() string { return m.fs.Workdir() }

type LoadFilesInput struct {
	Paths []string `json:"paths" jsonschema_description:"Paths to files to be loaded, POSIX-style and relative to the work directory. For example, [\"foo/bar/file.txt\"]."`
}

type SaveMemoryArtifactsInput struct {
	DirName           string `json:"dir_name" jsonschema_description:"Destination directory name on disk in the POSIX format. For example, 'foo/bar'."`
	FileName          string `json:"file_name" jsonschema_description:"Destination file name. For example, 'baz.txt'."`
	MemoryName        string `json:"memory_name" jsonschema_description:"Name of the memory holding the artifacts."`
	ArtifactNamespace string `json:"artifact_namespace" jsonschema_description:"Namespace of the artifacts within the memory."`
}

type SaveContentInput struct {
	Path    string `json:"path" jsonschema_description:"Destination file path on disk in the POSIX format. For example, 'foo/bar/baz.txt'."`
	Content string `json:"content" jsonschema_description:"Content to save."`
}

var LoadFilesInputSchema = GenerateSchema[LoadFilesInput]()
var SaveMemoryArtifactsInputSchema = GenerateSchema[SaveMemoryArtifactsInput]()
var SaveContentInputSchema = GenerateSchema[SaveContentInput]()

// Definitions returns the activity definitions exposed by this tool.
func (m *FileManager) Definitions() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "load_files_from_disk",
			Description: "Can be used to load files from disk",
			InputSchema: LoadFilesInputSchema,
			Function:    m.LoadFilesFromDisk,
		},
		{
			Name:        "save_memory_artifacts_to_disk",
			Description: "Can be used to save memory artifacts to disk",
			InputSchema: SaveMemoryArtifactsInputSchema,
			Function:    m.SaveMemoryArtifactsToDisk,
		},
		{
			Name:        "save_content_to_file",
			Description: "Can be used to save content to a file",
			InputSchema: SaveContentInputSchema,
			Function:    m.SaveContentToFile,
		},
	}
}

// LoadFilesFromDisk loads every requested path and returns a List of named
// Text artifacts. The first failure aborts the load and is returned as an
// Error artifact.
func (m *FileManager) LoadFilesFromDisk(_ context.Context, input json.RawMessage) artifact.Artifact {
	var in LoadFilesInput
	if err := json.Unmarshal(input, &in); err != nil {
		return artifact.Errorf("invalid load_files_from_disk input: %s", err)
	}
	if len(in.Paths) == 0 {
		return artifact.NewError("paths is required")
	}

	list := artifact.List{}
	for _, p := range in.Paths {
		content, err := m.fs.Load(p)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return artifact.Errorf("file in path `%s` not found", p)
			}
			return artifact.Errorf("error loading file: %s", err)
		}
		list.Values = append(list.Values, artifact.NewNamedText(path.Base(p), content))
	}
	return list
}

// SaveMemoryArtifactsToDisk writes artifacts from a named memory namespace
// under dir_name. A single artifact saves to file_name; multiple artifacts
// fan out to per-artifact file names.
func (m *FileManager) SaveMemoryArtifactsToDisk(_ context.Context, input json.RawMessage) artifact.Artifact {
	var in SaveMemoryArtifactsInput
	if err := json.Unmarshal(input, &in); err != nil {
		return artifact.Errorf("invalid save_memory_artifacts_to_disk input: %s", err)
	}
	if in.DirName == "" {
		return artifact.NewError("dir_name is required")
	}
	if in.FileName == "" {
		return artifact.NewError("file_name is required")
	}
	if in.MemoryName == "" {
		return artifact.NewError("memory_name is required")
	}
	if in.ArtifactNamespace == "" {
		return artifact.NewError("artifact_namespace is required")
	}

	store, ok := m.memories.Find(in.MemoryName)
	if !ok {
		return artifact.NewError("memory not found")
	}
	artifacts, err := store.LoadArtifacts(in.ArtifactNamespace)
	if err != nil {
		return artifact.Errorf("error loading artifacts: %s", err)
	}
	if len(artifacts) == 0 {
		return artifact.NewError("no artifacts found")
	}

	if len(artifacts) == 1 {
		if err := m.fs.Save(path.Join(in.DirName, in.FileName), artifacts[0].ToText()); err != nil {
			return artifact.Errorf("error writing file to disk: %s", err)
		}
		return artifact.NewInfo("saved successfully")
	}

	for i, a := range artifacts {
		name := fanoutFileName(a, i, in.FileName)
		if err := m.fs.Save(path.Join(in.DirName, name), a.ToText()); err != nil {
			return artifact.Errorf("error writing file to disk: %s", err)
		}
	}
	return artifact.NewInfo("saved successfully")
}

// fanoutFileName derives a distinct file name per artifact when a namespace
// holds more than one. Named Text artifacts use their name as prefix;
// everything else falls back to its 1-based position.
func fanoutFileName(a artifact.Artifact, i int, fileName string) string {
	if t, ok := a.(artifact.Text); ok && t.Name != "" {
		return t.Name + "-" + fileName
	}
	return fmt.Sprintf("%d-%s", i+1, fileName)
}

// SaveContentToFile writes content to a single file under the workdir.
func (m *FileManager) SaveContentToFile(_ context.Context, input json.RawMessage) artifact.Artifact {
	var in SaveContentInput
	if err := json.Unmarshal(input, &in); err != nil {
		return artifact.Errorf("invalid save_content_to_file input: %s", err)
	}
	if in.Path == "" {
		return artifact.NewError("path is required")
	}

	if err := m.fs.Save(in.Path, in.Content); err != nil {
		return artifact.Errorf("error writing file to disk: %s", err)
	}
	return artifact.NewInfo("saved successfully")
}
