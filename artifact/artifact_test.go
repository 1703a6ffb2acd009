package artifact_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/petrichorlabs/rampkit/artifact"
)

func TestKinds(t *testing.T) {
	cases := []struct {
		a    artifact.Artifact
		kind artifact.Kind
		text string
	}{
		{artifact.NewText("hello"), artifact.KindText, "hello"},
		{artifact.NewError("boom"), artifact.KindError, "boom"},
		{artifact.NewInfo("saved successfully"), artifact.KindInfo, "saved successfully"},
		{artifact.NewList(artifact.NewText("a"), artifact.NewText("b")), artifact.KindList, "a\nb"},
	}
	for _, c := range cases {
		if got := c.a.Kind(); got != c.kind {
			t.Errorf("Kind() = %q, want %q", got, c.kind)
		}
		if got := c.a.ToText(); got != c.text {
			t.Errorf("ToText() = %q, want %q", got, c.text)
		}
	}
}

func TestValueEquality(t *testing.T) {
	if artifact.NewText("x") != artifact.NewText("x") {
		t.Fatal("equal Text artifacts compare unequal")
	}
	if artifact.NewText("x") == artifact.NewNamedText("n", "x") {
		t.Fatal("named and unnamed Text artifacts compare equal")
	}
}

func TestErrorf(t *testing.T) {
	e := artifact.Errorf("file in path `%s` not found", "foo/bar.txt")
	want := "file in path `foo/bar.txt` not found"
	if e.Message != want {
		t.Fatalf("message = %q, want %q", e.Message, want)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	in := artifact.NewList(
		artifact.NewNamedText("a.txt", "alpha"),
		artifact.NewError("boom"),
		artifact.NewInfo("ok"),
		artifact.NewList(artifact.NewText("nested")),
	)
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out, err := artifact.FromJSON(b)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", out, in)
	}
}

func TestFromJSON_Tagged(t *testing.T) {
	a, err := artifact.FromJSON([]byte(`{"type":"text","value":"hi"}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	txt, ok := a.(artifact.Text)
	if !ok {
		t.Fatalf("expected Text, got %T", a)
	}
	if txt.Value != "hi" {
		t.Fatalf("value = %q", txt.Value)
	}
}

func TestFromJSON_Rejects(t *testing.T) {
	for _, raw := range []string{`not json`, `{"type":"bogus"}`, `{}`} {
		if _, err := artifact.FromJSON([]byte(raw)); err == nil {
			t.Errorf("FromJSON(%q): expected error", raw)
		}
	}
}
