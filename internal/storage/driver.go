// Package storage defines the text-storage driver contract behind the
// TextManager ramp, plus an in-memory reference driver for tests and the
// CLI. Real storage engines live outside this module and plug in through
// TextDriver.
package storage

import (
	"context"

	"github.com/petrichorlabs/rampkit/artifact"
)

// TextDriver owns the lifecycle of stored text records. Query and summarize
// results come back as artifacts so driver failures never propagate past the
// adapter boundary.
type TextDriver interface {
	// Save stores text and returns the opaque record key.
	Save(text string) (string, error)
	// QueryRecord runs query against the record identified by id.
	QueryRecord(ctx context.Context, id, query string) artifact.Artifact
	// SummarizeRecord produces a summary of the record identified by id.
	SummarizeRecord(ctx context.Context, id string) artifact.Artifact
}
