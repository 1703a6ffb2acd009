package memory

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/petrichorlabs/rampkit/artifact"
)

// FileStore persists artifacts as a single JSON document mapping namespace
// to an array of tagged artifact objects. Appends rewrite only the target
// array; the rest of the document carries over untouched.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// namespacePath escapes gjson/sjson path metacharacters so namespaces are
// treated as literal keys.
func namespacePath(namespace string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`, "|", `\|`, "#", `\#`)
	return r.Replace(namespace)
}

func (s *FileStore) StoreArtifact(namespace string, a artifact.Artifact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		doc = []byte("{}")
	} else if err != nil {
		return err
	}

	b, err := json.Marshal(a)
	if err != nil {
		return err
	}
	updated, err := sjson.SetRawBytes(doc, namespacePath(namespace)+".-1", b)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, updated, 0o644)
}

func (s *FileStore) LoadArtifacts(namespace string) ([]artifact.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	res := gjson.GetBytes(doc, namespacePath(namespace))
	if !res.Exists() {
		return nil, nil
	}

	var out []artifact.Artifact
	for _, v := range res.Array() {
		a, err := artifact.FromJSON([]byte(v.Raw))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
