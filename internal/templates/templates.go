// Package templates renders the storage reference string returned to the
// agent after a textual tool output is captured by a ramp.
package templates

import (
	_ "embed"
	"strings"
	"text/template"
)

//go:embed storage.tmpl
var storageTmpl string

var storageTemplate = template.Must(template.New("storage").Parse(storageTmpl))

// StorageReference holds the fields rendered into the reference string.
type StorageReference struct {
	StorageName  string
	ToolName     string
	ActivityName string
	Key          string
}

// RenderStorageReference renders the reference pointing an agent at a stored
// activity output.
func RenderStorageReference(ref StorageReference) (string, error) {
	var sb strings.Builder
	if err := storageTemplate.Execute(&sb, ref); err != nil {
		return "", err
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
