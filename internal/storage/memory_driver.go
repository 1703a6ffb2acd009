package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/petrichorlabs/rampkit/artifact"
	"github.com/petrichorlabs/rampkit/internal/llm"
	"github.com/petrichorlabs/rampkit/internal/telemetry"
	"github.com/petrichorlabs/rampkit/internal/textstat"
)

const queryPromptFmt = `Use the text below to answer the question. Answer only from the text; say so if the text does not contain the answer.

Question: %s

Text:
%s`

const summaryPromptFmt = `Summarize the following text in a short paragraph. Keep key facts and names.

Text:
%s`

// MemoryDriver keeps records in process memory, keyed by generated UUIDs.
// Query and summarize delegate to a Completer.
type MemoryDriver struct {
	mu        sync.Mutex
	records   map[string]string
	completer llm.Completer
}

func NewMemoryDriver(completer llm.Completer) *MemoryDriver {
	return &MemoryDriver{
		records:   make(map[string]string),
		completer: completer,
	}
}

// Save stores text under a fresh UUID key and returns the key.
func (d *MemoryDriver) Save(text string) (string, error) {
	key := uuid.NewString()
	d.mu.Lock()
	d.records[key] = text
	d.mu.Unlock()

	fields := textstat.Count(text).Fields()
	fields["record_id"] = key
	telemetry.Emit("record_saved", fields)
	return key, nil
}

// Load returns the stored text for id.
func (d *MemoryDriver) Load(id string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	text, ok := d.records[id]
	return text, ok
}

// eventFields builds the common event fields, including the activity ID
// when the context carries one.
func eventFields(ctx context.Context, id string) map[string]any {
	fields := map[string]any{"record_id": id}
	if actID, ok := telemetry.ActivityIDFromContext(ctx); ok {
		fields["activity_id"] = actID
	}
	return fields
}

// QueryRecord answers query from the record's text via the completer.
func (d *MemoryDriver) QueryRecord(ctx context.Context, id, query string) artifact.Artifact {
	text, ok := d.Load(id)
	if !ok {
		return artifact.Errorf("storage record `%s` not found", id)
	}
	telemetry.Emit("record_queried", eventFields(ctx, id))

	answer, err := d.completer.Complete(ctx, fmt.Sprintf(queryPromptFmt, query, text))
	if err != nil {
		return artifact.Errorf("error querying record: %s", err)
	}
	return artifact.NewText(answer)
}

// SummarizeRecord summarizes the record's text via the completer.
func (d *MemoryDriver) SummarizeRecord(ctx context.Context, id string) artifact.Artifact {
	text, ok := d.Load(id)
	if !ok {
		return artifact.Errorf("storage record `%s` not found", id)
	}
	telemetry.Emit("record_summarized", eventFields(ctx, id))

	summary, err := d.completer.Complete(ctx, fmt.Sprintf(summaryPromptFmt, text))
	if err != nil {
		return artifact.Errorf("error summarizing record: %s", err)
	}
	return artifact.NewText(summary)
}
