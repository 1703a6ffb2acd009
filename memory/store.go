package memory

import (
	"sync"

	"github.com/petrichorlabs/rampkit/artifact"
)

// ArtifactStore is the read/write contract for namespaced artifact memory.
type ArtifactStore interface {
	StoreArtifact(namespace string, a artifact.Artifact) error
	// LoadArtifacts returns the artifacts stored under namespace, oldest
	// first. An unknown namespace yields an empty slice, not an error.
	LoadArtifacts(namespace string) ([]artifact.Artifact, error)
}

// Store keeps artifacts in process memory.
type Store struct {
	mu     sync.Mutex
	spaces map[string][]artifact.Artifact
}

func NewStore() *Store {
	return &Store{spaces: make(map[string][]artifact.Artifact)}
}

func (s *Store) StoreArtifact(namespace string, a artifact.Artifact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spaces[namespace] = append(s.spaces[namespace], a)
	return nil
}

func (s *Store) LoadArtifacts(namespace string) ([]artifact.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := s.spaces[namespace]
	out := make([]artifact.Artifact, len(stored))
	copy(out, stored)
	return out, nil
}

// Registry resolves memory names to stores for activities that address
// memory by name.
type Registry struct {
	mu     sync.Mutex
	stores map[string]ArtifactStore
}

func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]ArtifactStore)}
}

// Register binds name to store, replacing any previous binding.
func (r *Registry) Register(name string, store ArtifactStore) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stores[name] = store
}

// Find returns the store bound to name.
func (r *Registry) Find(name string) (ArtifactStore, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	store, ok := r.stores[name]
	return store, ok
}
