package memory_test

import (
	"reflect"
	"testing"

	"github.com/petrichorlabs/rampkit/artifact"
	"github.com/petrichorlabs/rampkit/memory"
)

func TestStore_RoundTrip(t *testing.T) {
	s := memory.NewStore()
	if err := s.StoreArtifact("notes", artifact.NewText("alpha")); err != nil {
		t.Fatalf("StoreArtifact: %v", err)
	}
	if err := s.StoreArtifact("notes", artifact.NewNamedText("b", "beta")); err != nil {
		t.Fatalf("StoreArtifact: %v", err)
	}

	got, err := s.LoadArtifacts("notes")
	if err != nil {
		t.Fatalf("LoadArtifacts: %v", err)
	}
	want := []artifact.Artifact{artifact.NewText("alpha"), artifact.NewNamedText("b", "beta")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestStore_UnknownNamespaceEmpty(t *testing.T) {
	got, err := memory.NewStore().LoadArtifacts("nope")
	if err != nil {
		t.Fatalf("LoadArtifacts: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestStore_NamespaceIsolation(t *testing.T) {
	s := memory.NewStore()
	_ = s.StoreArtifact("a", artifact.NewText("x"))
	_ = s.StoreArtifact("b", artifact.NewText("y"))

	got, _ := s.LoadArtifacts("a")
	if len(got) != 1 || got[0].ToText() != "x" {
		t.Fatalf("namespace leakage: %v", got)
	}
}

func TestStore_LoadReturnsCopy(t *testing.T) {
	s := memory.NewStore()
	_ = s.StoreArtifact("ns", artifact.NewText("x"))
	got, _ := s.LoadArtifacts("ns")
	got[0] = artifact.NewText("mutated")

	again, _ := s.LoadArtifacts("ns")
	if again[0].ToText() != "x" {
		t.Fatal("LoadArtifacts shares internal slice")
	}
}

func TestRegistry_FindRegistered(t *testing.T) {
	r := memory.NewRegistry()
	s := memory.NewStore()
	r.Register("scratch", s)

	got, ok := r.Find("scratch")
	if !ok || got != memory.ArtifactStore(s) {
		t.Fatalf("Find: got (%v, %v)", got, ok)
	}
	if _, ok := r.Find("missing"); ok {
		t.Fatal("unexpected hit for missing name")
	}
}
