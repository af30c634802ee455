package dispatch

//go:generate mockgen -destination=mock/mock_delivery.go -package=dispatchmock github.com/SogeMoge/xwsbot/internal/orchestrators/dispatch Delivery

import (
	"context"
	"time"
)

// Message is an inbound chat message
type Message struct {
	ID        string
	ChannelID string
	GuildID   string
	Content   string

	AuthorID          string
	AuthorName        string
	AuthorDisplayName string
	AuthorMention     string
	AuthorAvatarURL   string

	// FromSelf marks messages the bot itself wrote
	FromSelf bool
}

// ConfirmOutcome is the terminal state of a confirmation prompt
type ConfirmOutcome int

// Prompt outcomes
const (
	ConfirmTimeout ConfirmOutcome = iota
	ConfirmDelete
	ConfirmKeep
)

func (o ConfirmOutcome) String() string {
	switch o {
	case ConfirmDelete:
		return "delete"
	case ConfirmKeep:
		return "keep"
	default:
		return "timeout"
	}
}

// Delivery sends output back to the chat platform
type Delivery interface {
	// SendBlocks sends every block in order, stopping at the first failure
	SendBlocks(ctx context.Context, input *SendBlocksInput) error

	// SendNotice sends a plain text message
	SendNotice(ctx context.Context, input *SendNoticeInput) error

	// Confirm posts the delete/keep prompt and returns once it is visible.
	// The channel receives exactly one outcome and is then closed.
	Confirm(ctx context.Context, input *ConfirmInput) (<-chan ConfirmOutcome, error)

	// DeleteMessage removes a message
	DeleteMessage(ctx context.Context, input *DeleteMessageInput) error
}

// OutgoingBlock is a rendered block with its footer
type OutgoingBlock struct {
	Description   string
	Color         int
	Footer        string
	FooterIconURL string
}

// SendBlocksInput defines the request for sending rendered blocks
type SendBlocksInput struct {
	ChannelID string
	Blocks    []OutgoingBlock
}

// SendNoticeInput defines the request for sending a notice
type SendNoticeInput struct {
	ChannelID string
	Text      string
}

// ConfirmInput defines the request for a confirmation prompt
type ConfirmInput struct {
	ChannelID string
	// MessageID of the message the prompt is about
	MessageID   string
	RequesterID string
	Text        string
	Timeout     time.Duration
}

// DeleteMessageInput defines the request for deleting a message
type DeleteMessageInput struct {
	ChannelID string
	MessageID string
}
