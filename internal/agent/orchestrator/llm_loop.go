package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"hotel-concierge-agent/pkg/anthropic"
)

// runToolLoop answers a guest turn with the model, letting it call tools for
// up to maxToolRounds rounds. A model failure degrades to the intent's canned
// apology with the error recorded in metadata; the guest always gets text.
func (o *Orchestrator) runToolLoop(ctx context.Context, tc *turnContext, intent string) (string, map[string]interface{}) {
	metadata := map[string]interface{}{
		"handler": intent,
		"model":   o.llm.Model(),
	}

	system, messages := o.assembleContext(tc)
	tools := o.registry.ToToolDefinitions()

	req := anthropic.MessagesRequest{
		MaxTokens: o.maxTokens,
		System:    system,
		Tools:     tools,
		Messages:  messages,
	}

	resp, err := o.llm.CreateMessage(ctx, req)
	if err != nil {
		return o.cannedReply(ctx, intent, metadata, err)
	}

	for round := 0; round < o.maxToolRounds; round++ {
		if !resp.HasToolUse() {
			break
		}
		o.l.Infof(ctx, "%s: round %d/%d", LogPrefixToolLoop, round+1, o.maxToolRounds)

		results := make([]anthropic.ContentBlock, 0, len(resp.Content))
		for _, use := range resp.ToolUses() {
			results = append(results, anthropic.ContentBlock{
				Type:      "tool_result",
				ToolUseID: use.ID,
				Content:   o.executeTool(ctx, use.Name, use.Input),
			})
		}

		req.Messages = append(req.Messages,
			anthropic.Message{Role: "assistant", Content: resp.Content},
			anthropic.Message{Role: "user", Content: results},
		)

		resp, err = o.llm.CreateMessage(ctx, req)
		if err != nil {
			return o.cannedReply(ctx, intent, metadata, err)
		}
	}

	// Either the model finished, or the round budget ran out and we keep
	// whatever text the last reply carried.
	return resp.TextContent(), metadata
}

// executeTool runs one tool call and serializes its result. Unknown tools and
// execution failures become structured error payloads the model can read.
func (o *Orchestrator) executeTool(ctx context.Context, name string, input map[string]interface{}) string {
	o.l.Infof(ctx, "%s: executing tool %s with input %+v", LogPrefixToolLoop, name, input)

	tool, ok := o.registry.Get(name)
	if !ok {
		o.l.Errorf(ctx, "%s: tool %s not found", LogPrefixToolLoop, name)
		return marshalToolResult(map[string]string{"error": fmt.Sprintf("tool '%s' not found", name)})
	}

	result, err := tool.Execute(ctx, input)
	if err != nil {
		o.l.Errorf(ctx, "%s: tool %s failed: %v", LogPrefixToolLoop, name, err)
		return marshalToolResult(map[string]string{"error": err.Error()})
	}
	return marshalToolResult(result)
}

func marshalToolResult(v interface{}) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(raw)
}

func (o *Orchestrator) cannedReply(ctx context.Context, intent string, metadata map[string]interface{}, err error) (string, map[string]interface{}) {
	o.l.Errorf(ctx, "%s: model call failed: %v", LogPrefixToolLoop, err)
	metadata["error"] = err.Error()

	reply, ok := fallbackResponses[intent]
	if !ok {
		reply = defaultFallbackResponse
	}
	return reply, metadata
}
