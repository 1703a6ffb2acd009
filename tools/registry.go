package tools

// Registry returns all activity definitions wired for an agent. Nil managers
// are skipped so callers can wire only the adapters they use.
func Registry(text *TextManager, files *FileManager) []ToolDefinition {
	var defs []ToolDefinition
	if text != nil {
		defs = append(defs, text.Definitions()...)
	}
	if files != nil {
		defs = append(defs, files.Definitions()...)
	}
	return defs
}
