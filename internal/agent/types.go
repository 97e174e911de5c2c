package agent

import (
	"context"
	"sort"

	"hotel-concierge-agent/pkg/anthropic"
)

// Tool is an agent capability the model may invoke during a turn.
type Tool interface {
	// Name returns the tool name (used in tool calling).
	Name() string

	// Description returns what the tool does (for the model).
	Description() string

	// Parameters returns the JSON schema for tool input.
	Parameters() map[string]interface{}

	// Execute runs the tool. The returned value must be JSON-serializable;
	// "not found" outcomes are values, not errors.
	Execute(ctx context.Context, input map[string]interface{}) (interface{}, error)
}

// ToolRegistry manages available tools.
type ToolRegistry struct {
	tools map[string]Tool
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry. A tool registered twice under the
// same name replaces the earlier one.
func (r *ToolRegistry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools, sorted by name.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name() < tools[j].Name() })
	return tools
}

// ToToolDefinitions converts the registry to the Messages API tool format.
func (r *ToolRegistry) ToToolDefinitions() []anthropic.Tool {
	defs := make([]anthropic.Tool, 0, len(r.tools))
	for _, tool := range r.List() {
		defs = append(defs, anthropic.Tool{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.Parameters(),
		})
	}
	return defs
}
