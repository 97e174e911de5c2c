package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCreateMessage(t *testing.T) {
	var gotReq MessagesRequest
	var gotHeaders http.Header

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" {
			t.Errorf("path = %s, want /messages", r.URL.Path)
		}
		gotHeaders = r.Header.Clone()
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(MessagesResponse{
			ID:         "msg_123",
			StopReason: "end_turn",
			Content:    []ContentBlock{{Type: "text", Text: "Hola!"}},
		})
	}))
	defer srv.Close()

	client := NewClient("test-key", "")
	client.SetAPIURL(srv.URL)

	resp, err := client.CreateMessage(context.Background(), MessagesRequest{
		MaxTokens: 100,
		Messages:  []Message{NewTextMessage("user", "Hola")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.TextContent() != "Hola!" {
		t.Errorf("text = %q, want Hola!", resp.TextContent())
	}
	if gotReq.Model != DefaultModel {
		t.Errorf("model = %q, want the client default filled in", gotReq.Model)
	}
	if gotHeaders.Get("x-api-key") != "test-key" {
		t.Error("request should carry the API key header")
	}
	if gotHeaders.Get("anthropic-version") == "" {
		t.Error("request should carry the API version header")
	}
}

func TestCreateMessage_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"Number of requests exceeded"}}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", "claude-sonnet-4-20250514")
	client.SetAPIURL(srv.URL)

	_, err := client.CreateMessage(context.Background(), MessagesRequest{
		Messages: []Message{NewTextMessage("user", "hola")},
	})
	if err == nil {
		t.Fatal("expected an error on a non-200 status")
	}
	if !strings.Contains(err.Error(), "rate_limit_error") {
		t.Errorf("err = %v, want the API error type surfaced", err)
	}
}

func TestMessagesResponseHelpers(t *testing.T) {
	resp := &MessagesResponse{
		StopReason: "tool_use",
		Content: []ContentBlock{
			{Type: "text", Text: "Dejame revisar."},
			{Type: "tool_use", ID: "tu_1", Name: "get_room_types", Input: map[string]interface{}{}},
			{Type: "tool_use", ID: "tu_2", Name: "get_hotel_amenities", Input: map[string]interface{}{}},
		},
	}

	if !resp.HasToolUse() {
		t.Error("HasToolUse should be true when stop_reason is tool_use")
	}
	if resp.TextContent() != "Dejame revisar." {
		t.Errorf("text = %q", resp.TextContent())
	}
	uses := resp.ToolUses()
	if len(uses) != 2 || uses[0].ID != "tu_1" || uses[1].Name != "get_hotel_amenities" {
		t.Errorf("tool uses = %+v", uses)
	}

	done := &MessagesResponse{StopReason: "end_turn"}
	if done.HasToolUse() {
		t.Error("HasToolUse should be false on end_turn")
	}
}
