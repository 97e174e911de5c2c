package router

import (
	"context"
	"fmt"

	"hotel-concierge-agent/pkg/anthropic"
)

// Resolve classifies the guest message. The model is asked for a bare intent
// name with a small token budget; an unreachable model, an error reply or an
// unparsable answer all degrade to ClassifyFallback, so the caller always
// gets a member of the closed intent set.
func (r *IntentResolver) Resolve(ctx context.Context, message string) Resolution {
	prompt := fmt.Sprintf(promptClassifyIntent, message)

	resp, err := r.llm.CreateMessage(ctx, anthropic.MessagesRequest{
		MaxTokens: classifyMaxTokens,
		Messages:  []anthropic.Message{anthropic.NewTextMessage("user", prompt)},
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: model classification failed, using fallback: %v", LogPrefixResolve, err)
		return Resolution{Intent: ClassifyFallback(message), Source: SourceFallback}
	}

	raw := resp.TextContent()
	intent, ok := parseIntent(raw)
	if !ok {
		r.l.Warnf(ctx, "%s: could not parse model answer %q, using fallback", LogPrefixResolve, raw)
		return Resolution{Intent: ClassifyFallback(message), Source: SourceFallback, Raw: raw}
	}

	r.l.Infof(ctx, "%s: classified as %s (raw: %q)", LogPrefixResolve, intent, raw)
	return Resolution{Intent: intent, Source: SourceLLM, Raw: raw}
}
