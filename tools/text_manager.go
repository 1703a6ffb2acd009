package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/petrichorlabs/rampkit/artifact"
	"github.com/petrichorlabs/rampkit/internal/storage"
	"github.com/petrichorlabs/rampkit/internal/telemetry"
	"github.com/petrichorlabs/rampkit/internal/templates"
)

// ensureActivityID stamps a fresh activity ID into ctx unless the caller
// already scoped one, so driver telemetry can correlate events per activity.
func ensureActivityID(ctx context.Context, activityName string) context.Context {
	if _, ok := telemetry.ActivityIDFromContext(ctx); ok {
		return ctx
	}
	return telemetry.WithActivityID(ctx, fmt.Sprintf("%s-%d", activityName, time.Now().UnixNano()))
}

// TextManager is a ramp over a text-storage driver. Its activities delegate
// to the driver; ProcessOutput lets it capture textual output of other tools
// into storage and hand the agent a reference instead of the full text.
type TextManager struct {
	name   string
	driver storage.TextDriver
}

// NewTextManager returns a TextManager named name (used in storage
// reference strings) over driver.
func NewTextManager(name string, driver storage.TextDriver) *TextManager {
	return &TextManager{name: name, driver: driver}
}

// Name returns the storage name rendered into reference strings.
func (m *TextManager) Name() string { return m.name }

type QueryRecordInput struct {
	ID    string `json:"id" jsonschema_description:"Storage record ID."`
	Query string `json:"query" jsonschema_description:"Query to run against the storage record."`
}

type SummarizeRecordInput struct {
	ID string `json:"id" jsonschema_description:"Storage record ID."`
}

var QueryRecordInputSchema = GenerateSchema[QueryRecordInput]()
var SummarizeRecordInputSchema = GenerateSchema[SummarizeRecordInput]()

// Definitions returns the activity definitions exposed by this ramp.
func (m *TextManager) Definitions() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "query_record",
			Description: "Can be used to query a storage record for any content",
			InputSchema: QueryRecordInputSchema,
			Function:    m.QueryRecord,
		},
		{
			Name:        "summarize_record",
			Description: "Can be used to generate a summary of a storage record",
			InputSchema: SummarizeRecordInputSchema,
			Function:    m.SummarizeRecord,
		},
	}
}

// QueryRecord runs a query against a stored record. Pure delegation to the
// driver once the parameters check out.
func (m *TextManager) QueryRecord(ctx context.Context, input json.RawMessage) artifact.Artifact {
	var in QueryRecordInput
	if err := json.Unmarshal(input, &in); err != nil {
		return artifact.Errorf("invalid query_record input: %s", err)
	}
	if in.ID == "" {
		return artifact.NewError("id is required")
	}
	if in.Query == "" {
		return artifact.NewError("query is required")
	}
	return m.driver.QueryRecord(ensureActivityID(ctx, "query_record"), in.ID, in.Query)
}

// SummarizeRecord produces a summary of a stored record.
func (m *TextManager) SummarizeRecord(ctx context.Context, input json.RawMessage) artifact.Artifact {
	var in SummarizeRecordInput
	if err := json.Unmarshal(input, &in); err != nil {
		return artifact.Errorf("invalid summarize_record input: %s", err)
	}
	if in.ID == "" {
		return artifact.NewError("id is required")
	}
	return m.driver.SummarizeRecord(ensureActivityID(ctx, "summarize_record"), in.ID)
}

// ProcessOutput captures a textual activity result into storage and returns
// a Text artifact carrying the reference string. Non-text artifacts pass
// through unchanged.
func (m *TextManager) ProcessOutput(toolName, activityName string, value artifact.Artifact) artifact.Artifact {
	txt, ok := value.(artifact.Text)
	if !ok {
		return value
	}

	key, err := m.driver.Save(txt.Value)
	if err != nil {
		return artifact.Errorf("error storing tool output: %s", err)
	}

	ref, err := templates.RenderStorageReference(templates.StorageReference{
		StorageName:  m.name,
		ToolName:     toolName,
		ActivityName: activityName,
		Key:          key,
	})
	if err != nil {
		return artifact.Errorf("error rendering storage reference: %s", err)
	}
	return artifact.NewText(ref)
}
