package tools

import (
	"context"
	"testing"

	"hotel-concierge-agent/internal/agent"
	convMemory "hotel-concierge-agent/internal/conversation/memory"
	"hotel-concierge-agent/internal/model"
	pmsMemory "hotel-concierge-agent/internal/pms/memory"
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

func asMap(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	m, ok := v.(map[string]interface{})
	if !ok {
		t.Fatalf("result is %T, want map[string]interface{}", v)
	}
	return m
}

func TestGetBookingDetailsTool(t *testing.T) {
	l := &mockLogger{}
	store := pmsMemory.New(l)
	tool := NewGetBookingDetailsTool(store, l)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		res, err := tool.Execute(ctx, map[string]interface{}{"confirmation_number": "plr-2024-001"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := asMap(t, res)
		if m["found"] != true {
			t.Errorf("found = %v, want true", m["found"])
		}
		b, ok := m["booking"].(*model.Booking)
		if !ok || b.GuestName != "Juan Perez" {
			t.Errorf("booking = %+v, want Juan's", m["booking"])
		}
	})

	t.Run("not found is a value, not an error", func(t *testing.T) {
		res, err := tool.Execute(ctx, map[string]interface{}{"confirmation_number": "PLR-1999-001"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := asMap(t, res)
		if m["found"] != false {
			t.Errorf("found = %v, want false", m["found"])
		}
	})

	t.Run("missing parameter is an error", func(t *testing.T) {
		if _, err := tool.Execute(ctx, map[string]interface{}{}); err == nil {
			t.Error("expected an error for a missing confirmation_number")
		}
	})
}

func TestCheckAvailabilityTool(t *testing.T) {
	l := &mockLogger{}
	store := pmsMemory.New(l)
	tool := NewCheckAvailabilityTool(store, pmsMemory.HotelID, l)
	ctx := context.Background()

	t.Run("invalid dates become a readable payload", func(t *testing.T) {
		res, err := tool.Execute(ctx, map[string]interface{}{
			"checkin":    "2026-01-10",
			"checkout":   "2026-01-05",
			"num_guests": float64(2),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := asMap(t, res)
		if m["available"] != false {
			t.Errorf("available = %v, want false", m["available"])
		}
		if m["message"] == "" {
			t.Error("the model needs a message explaining the date problem")
		}
	})

	t.Run("missing dates are an error", func(t *testing.T) {
		if _, err := tool.Execute(ctx, map[string]interface{}{"num_guests": float64(2)}); err == nil {
			t.Error("expected an error for missing dates")
		}
	})
}

func TestCreateServiceRequestTool(t *testing.T) {
	l := &mockLogger{}
	store := pmsMemory.New(l)
	tool := NewCreateServiceRequestTool(store, l)
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		res, err := tool.Execute(ctx, map[string]interface{}{
			"booking_id":   pmsMemory.BookingCarlosID.String(),
			"request_type": "towels",
			"details":      "2 toallas extra por favor",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := asMap(t, res)
		if m["success"] != true {
			t.Errorf("success = %v, want true", m["success"])
		}
		req, ok := m["request"].(*model.ServiceRequest)
		if !ok || req.Status != "pending" {
			t.Errorf("request = %+v, want a pending ticket", m["request"])
		}
	})

	t.Run("unknown booking is a value", func(t *testing.T) {
		res, err := tool.Execute(ctx, map[string]interface{}{
			"booking_id":   "0a0a0a0a-0000-0000-0000-000000000000",
			"request_type": "towels",
			"details":      "x",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m := asMap(t, res); m["success"] != false {
			t.Errorf("success = %v, want false", m["success"])
		}
	})

	t.Run("malformed booking id is an error", func(t *testing.T) {
		_, err := tool.Execute(ctx, map[string]interface{}{
			"booking_id":   "not-a-uuid",
			"request_type": "towels",
			"details":      "x",
		})
		if err == nil {
			t.Error("expected an error for a malformed UUID")
		}
	})
}

func TestSearchFAQTool(t *testing.T) {
	l := &mockLogger{}
	store := pmsMemory.New(l)
	tool := NewSearchFAQTool(store, pmsMemory.HotelID, l)
	ctx := context.Background()

	t.Run("matches on question keywords", func(t *testing.T) {
		res, err := tool.Execute(ctx, map[string]interface{}{"query": "como llego desde el aeropuerto"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := asMap(t, res)
		count, _ := m["count"].(int)
		if count < 1 {
			t.Fatalf("count = %v, want at least the airport entry", m["count"])
		}
	})

	t.Run("no match yields zero count", func(t *testing.T) {
		res, err := tool.Execute(ctx, map[string]interface{}{"query": "zeppelin"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m := asMap(t, res); m["count"] != 0 {
			t.Errorf("count = %v, want 0", m["count"])
		}
	})

	t.Run("short tokens are ignored", func(t *testing.T) {
		// Nothing but stopword-length tokens: must not match every entry.
		res, err := tool.Execute(ctx, map[string]interface{}{"query": "de la el"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m := asMap(t, res); m["count"] != 0 {
			t.Errorf("count = %v, want 0 for stopword-only query", m["count"])
		}
	})

	t.Run("empty query is an error", func(t *testing.T) {
		if _, err := tool.Execute(ctx, map[string]interface{}{}); err == nil {
			t.Error("expected an error for a missing query")
		}
	})
}

func TestEscalateToHumanTool(t *testing.T) {
	l := &mockLogger{}
	convs := convMemory.New(l, 0)
	tool := NewEscalateToHumanTool(convs, l)
	ctx := context.Background()

	c, err := convs.GetOrCreate(ctx, pmsMemory.HotelID, "5491112345678", model.PlatformTelegram)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	t.Run("conversation id comes from the turn context", func(t *testing.T) {
		turnCtx := agent.WithConversationID(ctx, c.ID)
		res, err := tool.Execute(turnCtx, map[string]interface{}{"reason": "pedido complejo"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m := asMap(t, res); m["success"] != true {
			t.Errorf("success = %v, want true", m["success"])
		}

		got, err := convs.GetByID(ctx, c.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.Status != model.ConversationEscalated {
			t.Errorf("status = %s, want escalated", got.Status)
		}
	})

	t.Run("missing reason is an error", func(t *testing.T) {
		if _, err := tool.Execute(ctx, map[string]interface{}{}); err == nil {
			t.Error("expected an error for a missing reason")
		}
	})

	t.Run("no conversation anywhere is an error", func(t *testing.T) {
		if _, err := tool.Execute(ctx, map[string]interface{}{"reason": "x"}); err == nil {
			t.Error("expected an error when no conversation can be resolved")
		}
	})
}
