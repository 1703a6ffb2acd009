// Package safety validates activity-supplied paths against a workdir sandbox.
package safety

import (
	"encoding/json"
	"path/filepath"
	"strings"
)

// ToolError is a machine-readable policy violation surfaced beneath the
// artifact conversion at the tool boundary.
type ToolError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error returns a compact single-line JSON string to keep payloads small.
func (e ToolError) Error() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// Internal directories never exposed to tool activities.
var deniedDirs = []string{".git", ".rampkit"}

// ResolveUnder resolves relPath against the absolute workdir and returns an
// absolute path inside it. It rejects absolute inputs, parent traversal,
// symlink escapes, and any path under a denied internal directory.
func ResolveUnder(workdir, relPath string) (string, error) {
	if filepath.IsAbs(relPath) {
		return "", ToolError{Code: "ERR_PATH_OUTSIDE_SANDBOX", Message: "absolute paths are not allowed"}
	}

	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if cleaned == "" {
		cleaned = "."
	}
	candidate := filepath.Join(workdir, cleaned)

	// Resolve symlinks where possible so the boundary check sees the real
	// location. When the leaf doesn't exist yet (saves), resolve the deepest
	// existing ancestor and rejoin the final segment.
	if resolved, err := filepath.EvalSymlinks(candidate); err == nil {
		candidate = resolved
	} else if resolvedParent, err := filepath.EvalSymlinks(filepath.Dir(candidate)); err == nil {
		candidate = filepath.Join(resolvedParent, filepath.Base(candidate))
	}

	rel, err := filepath.Rel(workdir, candidate)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", ToolError{Code: "ERR_PATH_OUTSIDE_SANDBOX", Message: "requested path resolves outside the work directory"}
	}

	slashRel := filepath.ToSlash(rel)
	for _, dir := range deniedDirs {
		if slashRel == dir || strings.HasPrefix(slashRel, dir+"/") {
			return "", ToolError{Code: "ERR_DENIED_PATH", Message: "paths under " + dir + "/ are not allowed"}
		}
	}

	return candidate, nil
}
