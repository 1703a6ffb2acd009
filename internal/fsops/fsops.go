// Package fsops provides workdir-rooted file loading and saving for tool
// activities. Every path is a POSIX-style relative path validated through
// safety before it touches the disk.
package fsops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/petrichorlabs/rampkit/internal/safety"
)

// FS binds load/save operations to an absolute work directory.
type FS struct {
	workdir string
}

// New returns an FS rooted at workdir. The workdir must be an absolute path;
// it is resolved through symlinks once here so later boundary checks are
// reliable.
func New(workdir string) (*FS, error) {
	if !filepath.IsAbs(workdir) {
		return nil, fmt.Errorf("workdir must be an absolute path: %q", workdir)
	}
	if resolved, err := filepath.EvalSymlinks(workdir); err == nil {
		workdir = resolved
	}
	return &FS{workdir: workdir}, nil
}

// Workdir returns the absolute root all relative paths resolve against.
func (f *FS) Workdir() string { return f.workdir }

// Load reads the file at relPath under the workdir. Directory targets are
// rejected with a ToolError; missing files surface the os stat error so
// callers can distinguish not-found from policy violations.
func (f *FS) Load(relPath string) (string, error) {
	absPath, err := safety.ResolveUnder(f.workdir, relPath)
	if err != nil {
		return "", err
	}

	fi, err := os.Stat(absPath)
	if err != nil {
		return "", err
	}
	if fi.IsDir() {
		return "", safety.ToolError{Code: "ERR_NOT_A_FILE", Message: "path is a directory"}
	}

	b, err := os.ReadFile(absPath)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Save writes content to relPath under the workdir, creating parent
// directories as needed.
func (f *FS) Save(relPath, content string) error {
	absPath, err := safety.ResolveUnder(f.workdir, relPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(absPath, []byte(content), 0o644)
}
