package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-concierge-agent/internal/agent"
	"hotel-concierge-agent/internal/agent/orchestrator"
	"hotel-concierge-agent/internal/agent/tools"
	convMemory "hotel-concierge-agent/internal/conversation/memory"
	pmsMemory "hotel-concierge-agent/internal/pms/memory"
	"hotel-concierge-agent/internal/router"
	"hotel-concierge-agent/pkg/anthropic"
	pkgTelegram "hotel-concierge-agent/pkg/telegram"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// testEnv wires the webhook handler against fake Telegram and model servers
// so a full update can run end to end in-process.
type testEnv struct {
	router *gin.Engine
	convs  *convMemory.Store

	mu       sync.Mutex
	captured []pkgTelegram.SendMessageRequest
}

func (e *testEnv) sentMessages() []pkgTelegram.SendMessageRequest {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]pkgTelegram.SendMessageRequest, len(e.captured))
	copy(out, e.captured)
	return out
}

// waitForMessages polls until the background goroutine has delivered n
// messages or the deadline passes.
func (e *testEnv) waitForMessages(t *testing.T, n int) []pkgTelegram.SendMessageRequest {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if msgs := e.sentMessages(); len(msgs) >= n {
			return msgs
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d sent messages, got %d", n, len(e.sentMessages()))
	return nil
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{}

	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sendMessage") {
			var req pkgTelegram.SendMessageRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
				env.mu.Lock()
				env.captured = append(env.captured, req)
				env.mu.Unlock()
			}
		}
		json.NewEncoder(w).Encode(pkgTelegram.APIResponse{OK: true})
	}))
	t.Cleanup(tgServer.Close)

	// The model server answers classification calls (no tools attached) with
	// an intent name and everything else with a final text reply.
	llmServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req anthropic.MessagesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		text := "El WiFi es gratuito en todo el hotel."
		if len(req.Tools) == 0 {
			text = "amenities_query"
		}
		json.NewEncoder(w).Encode(anthropic.MessagesResponse{
			StopReason: "end_turn",
			Content:    []anthropic.ContentBlock{{Type: "text", Text: text}},
		})
	}))
	t.Cleanup(llmServer.Close)

	l := &mockLogger{}
	pmsStore := pmsMemory.New(l)
	convStore := convMemory.New(l, 0)
	env.convs = convStore

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	llm := anthropic.NewClient("test-key", "")
	llm.SetAPIURL(llmServer.URL)

	registry := agent.NewToolRegistry()
	registry.Register(tools.NewGetHotelAmenitiesTool(pmsStore, pmsMemory.HotelID, l))

	orch, err := orchestrator.New(orchestrator.Config{
		LLM:           llm,
		Resolver:      router.New(llm, l),
		Registry:      registry,
		PMS:           pmsStore,
		Conversations: convStore,
		Logger:        l,
		HotelID:       pmsMemory.HotelID,
	})
	if err != nil {
		t.Fatalf("orchestrator.New: %v", err)
	}

	h := New(Config{
		Logger:        l,
		Orchestrator:  orch,
		Conversations: convStore,
		PMS:           pmsStore,
		Bot:           bot,
		HotelID:       pmsMemory.HotelID,
		// Generous limit so rapid-fire test updates never trip the bucket.
		RateLimitPerMin: 600,
	})

	r := gin.New()
	r.POST("/webhook/telegram", h.HandleWebhook)
	env.router = r
	return env
}

func (e *testEnv) sendWebhook(t *testing.T, update pkgTelegram.Update) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(update)
	if err != nil {
		t.Fatalf("marshal update: %v", err)
	}
	return e.sendRaw(t, body)
}

func (e *testEnv) sendRaw(t *testing.T, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func textUpdate(updateID, userID int64, text string) pkgTelegram.Update {
	return pkgTelegram.Update{
		UpdateID: updateID,
		Message: &pkgTelegram.Message{
			MessageID: updateID,
			From:      &pkgTelegram.User{ID: userID, FirstName: "Guest"},
			Chat:      &pkgTelegram.Chat{ID: userID, Type: "private"},
			Date:      time.Now().Unix(),
			Text:      text,
		},
	}
}

func TestHandleWebhook_FullTurn(t *testing.T) {
	env := newTestEnv(t)

	w := env.sendWebhook(t, textUpdate(1, 5491112345678, "Tienen WiFi?"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "accepted") {
		t.Errorf("body = %s, want accepted ack", w.Body.String())
	}

	msgs := env.waitForMessages(t, 1)
	if msgs[0].ChatID != 5491112345678 {
		t.Errorf("chat = %d, want the sender's chat", msgs[0].ChatID)
	}
	if !strings.Contains(msgs[0].Text, "WiFi") {
		t.Errorf("reply = %q, want the model answer", msgs[0].Text)
	}

	// Both sides of the turn end up in the transcript.
	convs, err := env.convs.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(convs) != 1 {
		t.Fatalf("conversations = %d, want 1", len(convs))
	}
	history, err := env.convs.GetHistory(context.Background(), convs[0].ID, 0)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history = %d messages, want user + assistant", len(history))
	}
	if history[0].Content != "Tienen WiFi?" || history[1].Intent != "amenities_query" {
		t.Errorf("history = %+v", history)
	}
}

func TestHandleWebhook_Commands(t *testing.T) {
	env := newTestEnv(t)

	t.Run("start", func(t *testing.T) {
		env.sendWebhook(t, textUpdate(10, 100, "/start"))
		msgs := env.waitForMessages(t, 1)
		if !strings.Contains(msgs[0].Text, "Sofia") {
			t.Errorf("reply = %q, want the welcome text", msgs[0].Text)
		}
	})

	t.Run("help", func(t *testing.T) {
		env.sendWebhook(t, textUpdate(11, 100, "/help"))
		msgs := env.waitForMessages(t, 2)
		if !strings.Contains(msgs[1].Text, "Puedo ayudarte") {
			t.Errorf("reply = %q, want the help text", msgs[1].Text)
		}
	})

	t.Run("reset closes the active conversation", func(t *testing.T) {
		env.sendWebhook(t, textUpdate(12, 100, "Tienen WiFi?"))
		env.waitForMessages(t, 3)

		env.sendWebhook(t, textUpdate(13, 100, "/reset"))
		msgs := env.waitForMessages(t, 4)
		if !strings.Contains(msgs[3].Text, "reinicie") {
			t.Errorf("reply = %q, want the reset confirmation", msgs[3].Text)
		}

		env.sendWebhook(t, textUpdate(14, 100, "Hay desayuno?"))
		env.waitForMessages(t, 5)

		convs, err := env.convs.List(context.Background())
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		active := 0
		for _, c := range convs {
			if c.Status == "active" {
				active++
			}
		}
		if len(convs) != 2 || active != 1 {
			t.Errorf("conversations = %d (active %d), want a fresh one after reset", len(convs), active)
		}
	})
}

func TestHandleWebhook_DuplicateUpdate(t *testing.T) {
	env := newTestEnv(t)

	env.sendWebhook(t, textUpdate(42, 200, "Tienen WiFi?"))
	env.waitForMessages(t, 1)

	w := env.sendWebhook(t, textUpdate(42, 200, "Tienen WiFi?"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "duplicate") {
		t.Errorf("body = %s, want the duplicate marker", w.Body.String())
	}

	// Give a would-be second goroutine a moment, then confirm nothing new.
	time.Sleep(100 * time.Millisecond)
	if got := len(env.sentMessages()); got != 1 {
		t.Errorf("sent messages = %d, want 1 (retry swallowed)", got)
	}
}

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	w := env.sendRaw(t, []byte("{not json"))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	env := newTestEnv(t)

	w := env.sendWebhook(t, pkgTelegram.Update{UpdateID: 7})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ignored") {
		t.Errorf("body = %s, want ignored", w.Body.String())
	}

	time.Sleep(50 * time.Millisecond)
	if got := len(env.sentMessages()); got != 0 {
		t.Errorf("sent messages = %d, want 0", got)
	}
}

func TestHandleWebhook_LinksBookingByPhone(t *testing.T) {
	env := newTestEnv(t)

	// Telegram user ids double as guest phone keys; Juan's seeded phone
	// suffix matches this id.
	env.sendWebhook(t, textUpdate(50, 5491112345678, "Hola, tengo una consulta"))
	env.waitForMessages(t, 1)

	convs, err := env.convs.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(convs) != 1 {
		t.Fatalf("conversations = %d, want 1", len(convs))
	}
	if convs[0].BookingID == nil || *convs[0].BookingID != pmsMemory.BookingJuanID {
		t.Errorf("booking = %v, want Juan's linked by phone", convs[0].BookingID)
	}
}
