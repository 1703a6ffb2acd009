package tools

import (
	"context"
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/invopop/jsonschema"

	"github.com/petrichorlabs/rampkit/artifact"
)

// ActivityFunc executes one tool activity. Input is the raw JSON parameters
// from the agent; the result is always an artifact, with failures reported
// as Error artifacts rather than Go errors.
type ActivityFunc func(ctx context.Context, input json.RawMessage) artifact.Artifact

// ToolDefinition describes a callable activity for an agent runtime.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema anthropic.ToolInputSchemaParam
	Function    ActivityFunc
}

// GenerateSchema derives the JSON input schema for an activity from its
// input struct type.
func GenerateSchema[T any]() anthropic.ToolInputSchemaParam {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return anthropic.ToolInputSchemaParam{
		Properties: schema.Properties,
	}
}
