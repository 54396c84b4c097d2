// Package tools defines the typed tool-call contract between the
// conversational voice agent and the game engine. The five registered tools
// are the entire wire-level surface the agent can reach; the LLM is reduced
// to an external caller that must supply well-formed arguments.
package tools

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Tool represents a function the conversational agent can invoke during a
// game, such as adding a player or recording a spoken word.
type Tool struct {
	// Name is the unique identifier for the tool (e.g., "word_spoken").
	Name string `json:"name"`

	// Description explains what the tool does, helping the agent decide
	// when to use it.
	Description string `json:"description"`

	// Parameters defines the JSON schema for the tool's arguments.
	Parameters map[string]any `json:"parameters"`

	// Handler is called when the agent invokes this tool. It receives the
	// parsed arguments and returns a JSON result string or an error.
	Handler func(args map[string]any) (string, error) `json:"-"`
}

// ToolCall represents one invocation of a tool by the agent.
type ToolCall struct {
	// ID is the unique identifier for this call, used to match results
	// back to the correct invocation.
	ID string

	// Name is the tool being invoked.
	Name string

	// Arguments contains the parsed arguments from the agent.
	Arguments map[string]any
}

// ToolResult represents the result of a tool invocation.
type ToolResult struct {
	// CallID matches the ToolCall.ID this result corresponds to.
	CallID string

	// Result is the JSON string sent back to the agent.
	Result string

	// Err is set if the tool execution failed. The agent is expected to
	// recover conversationally (e.g., re-prompt for a name).
	Err error
}

// Registry holds the tools bound to a single game session.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool, replacing any previous tool with the same name.
func (r *Registry) Register(t Tool) {
	r.tools[t.Name] = t
}

// Get looks up a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// List returns all registered tools sorted by name.
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Dispatch executes a tool call and returns its result.
func (r *Registry) Dispatch(call ToolCall) ToolResult {
	t, ok := r.tools[call.Name]
	if !ok {
		return ToolResult{
			CallID: call.ID,
			Err:    fmt.Errorf("tools: unknown tool %q", call.Name),
		}
	}

	result, err := t.Handler(call.Arguments)
	return ToolResult{CallID: call.ID, Result: result, Err: err}
}

// objectSchema builds a JSON schema for an object with the given properties.
func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// jsonResult marshals a tool result payload to its wire form.
func jsonResult(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("tools: encode result: %w", err)
	}
	return string(data), nil
}

// stringArg extracts a required or optional string argument.
func stringArg(args map[string]any, key string, required bool) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		if required {
			return "", fmt.Errorf("tools: missing argument %q", key)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("tools: argument %q must be a string", key)
	}
	if required && s == "" {
		return "", fmt.Errorf("tools: missing argument %q", key)
	}
	return s, nil
}

// boolArg extracts a required boolean argument. String forms of true/false
// are tolerated since some models stringify every value.
func boolArg(args map[string]any, key string) (bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return false, fmt.Errorf("tools: missing argument %q", key)
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch b {
		case "true", "True":
			return true, nil
		case "false", "False":
			return false, nil
		}
	}
	return false, fmt.Errorf("tools: argument %q must be a boolean", key)
}
