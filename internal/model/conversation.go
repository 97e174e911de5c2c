package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationStatus is the lifecycle state of a guest conversation.
type ConversationStatus string

const (
	ConversationActive    ConversationStatus = "active"
	ConversationResolved  ConversationStatus = "resolved"
	ConversationEscalated ConversationStatus = "escalated"
)

// ResolutionType records how a conversation ended.
type ResolutionType string

const (
	ResolutionAutomated    ResolutionType = "automated"
	ResolutionHumanHandoff ResolutionType = "human_handoff"
)

// Platform is the messaging channel a conversation arrived on.
type Platform string

const (
	PlatformTelegram Platform = "telegram"
	PlatformWhatsApp Platform = "whatsapp"
)

// MessageRole tags who authored a conversation message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

// Conversation groups the messages of one guest session with the agent.
type Conversation struct {
	ID             uuid.UUID          `json:"id"`
	HotelID        uuid.UUID          `json:"hotel_id"`
	GuestPhone     string             `json:"guest_phone"`
	BookingID      *uuid.UUID         `json:"booking_id,omitempty"`
	Platform       Platform           `json:"platform"`
	StartedAt      time.Time          `json:"started_at"`
	LastMessageAt  time.Time          `json:"last_message_at"`
	Status         ConversationStatus `json:"status"`
	ResolutionType ResolutionType     `json:"resolution_type,omitempty"`
}

// Message is one persisted conversation message.
type Message struct {
	ID             uuid.UUID              `json:"id"`
	ConversationID uuid.UUID              `json:"conversation_id"`
	Role           MessageRole            `json:"role"`
	Content        string                 `json:"content"`
	Intent         string                 `json:"intent,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

// Scope identifies the guest a request acts on behalf of.
type Scope struct {
	GuestPhone string
	Username   string
}

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
