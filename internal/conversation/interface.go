package conversation

import (
	"context"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/model"
)

// Store persists guest conversations and their messages. Implementations are
// safe for concurrent use; each conversation is independent, so cross-guest
// operations never block each other logically.
type Store interface {
	// GetOrCreate returns the active conversation for the guest phone on the
	// given platform, starting a new one when none exists or the previous one
	// has been inactive past the configured timeout (the stale one is closed
	// as resolved/automated).
	GetOrCreate(ctx context.Context, hotelID uuid.UUID, guestPhone string, platform model.Platform) (*model.Conversation, error)

	// GetByID returns a conversation by id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error)

	// List returns all conversations, most recent activity first.
	List(ctx context.Context) ([]model.Conversation, error)

	// AddMessage appends a message and bumps the conversation's last activity.
	AddMessage(ctx context.Context, conversationID uuid.UUID, input AddMessageInput) (*model.Message, error)

	// GetHistory returns up to limit most recent messages, oldest first.
	// limit <= 0 means no limit.
	GetHistory(ctx context.Context, conversationID uuid.UUID, limit int) ([]model.Message, error)

	// LinkBooking associates a booking with the conversation.
	LinkBooking(ctx context.Context, conversationID, bookingID uuid.UUID) error

	// Escalate marks the conversation escalated with a human_handoff resolution.
	Escalate(ctx context.Context, conversationID uuid.UUID) error

	// Resolve closes the conversation as resolved/automated.
	Resolve(ctx context.Context, conversationID uuid.UUID) error

	// Reset closes the guest's active conversation so the next message starts
	// fresh. Resetting a guest with no active conversation is a no-op.
	Reset(ctx context.Context, guestPhone string) error
}
