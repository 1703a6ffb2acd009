// Package telemetry emits JSONL activity events for offline inspection.
//
// Emission is off by default and enabled with RAMP_OBSERVE_JSON=1. Events
// land in .rampkit/events.jsonl under the current directory.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const eventDir = ".rampkit"

func observeEnabled() bool {
	return os.Getenv("RAMP_OBSERVE_JSON") == "1"
}

// Emit writes a single JSON line to .rampkit/events.jsonl when
// RAMP_OBSERVE_JSON=1. It augments fields with RFC3339Nano time and the
// event name. Emission failures are reported to stderr and never propagate.
func Emit(name string, fields map[string]any) {
	if !observeEnabled() {
		return
	}

	// Shallow copy so callers' maps aren't mutated.
	m := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		m[k] = v
	}
	m["time"] = time.Now().UTC().Format(time.RFC3339Nano)
	m["event"] = name

	b, err := json.Marshal(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: marshal: %v\n", err)
		return
	}

	if err := os.MkdirAll(eventDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: mkdir %s: %v\n", eventDir, err)
		return
	}

	path := filepath.Join(eventDir, "events.jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: open %s: %v\n", path, err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(b, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: write %s: %v\n", path, err)
	}
}
