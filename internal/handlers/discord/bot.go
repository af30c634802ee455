package discord

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/SogeMoge/xwsbot/internal/errors"
	"github.com/SogeMoge/xwsbot/internal/orchestrators/dispatch"
)

// Intents the bot needs: guild messages with their content
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsMessageContent

// MessageHandler consumes inbound chat messages
type MessageHandler interface {
	HandleMessage(ctx context.Context, msg *dispatch.Message)
}

// HandlerAdder is satisfied by *discordgo.Session
type HandlerAdder interface {
	AddHandler(handler interface{}) func()
}

// BotConfig holds the dependencies for Bot
type BotConfig struct {
	Messages      MessageHandler
	Confirmations *Confirmations
	// Logger (optional)
	Logger *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *BotConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Messages == nil {
		vb.RequiredField("Messages")
	}
	if c.Confirmations == nil {
		vb.RequiredField("Confirmations")
	}
	return vb.Build()
}

// Bot turns gateway events into dispatcher and prompt calls
type Bot struct {
	messages      MessageHandler
	confirmations *Confirmations
	logger        *zap.Logger

	mu     sync.RWMutex
	selfID string
}

// NewBot creates a Bot
func NewBot(cfg *BotConfig) (*Bot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	b := &Bot{
		messages:      cfg.Messages,
		confirmations: cfg.Confirmations,
		logger:        cfg.Logger,
	}
	if b.logger == nil {
		b.logger = zap.NewNop()
	}
	return b, nil
}

// Register attaches the bot's handlers. ctx is the parent of every request
// and is canceled on shutdown.
func (b *Bot) Register(ctx context.Context, s HandlerAdder) []func() {
	return []func(){
		s.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
			b.OnReady(r)
		}),
		s.AddHandler(func(sess *discordgo.Session, m *discordgo.MessageCreate) {
			if sess != nil && sess.State != nil && sess.State.User != nil {
				b.setSelfID(sess.State.User.ID)
			}
			b.OnMessageCreate(ctx, m)
		}),
		s.AddHandler(func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
			b.OnInteractionCreate(ctx, i)
		}),
	}
}

// OnReady records the bot's own user ID and logs the login
func (b *Bot) OnReady(r *discordgo.Ready) {
	if r == nil || r.User == nil {
		return
	}
	b.setSelfID(r.User.ID)
	b.logger.Info("Logged in",
		zap.String("user", r.User.Username),
		zap.String("user_id", r.User.ID),
		zap.Int("guilds", len(r.Guilds)))
}

// OnMessageCreate hands a new message to the dispatcher
func (b *Bot) OnMessageCreate(ctx context.Context, m *discordgo.MessageCreate) {
	msg := toMessage(m, b.SelfID())
	if msg == nil {
		return
	}
	b.messages.HandleMessage(ctx, msg)
}

// OnInteractionCreate routes button presses to pending prompts
func (b *Bot) OnInteractionCreate(ctx context.Context, i *discordgo.InteractionCreate) {
	if i == nil {
		return
	}
	b.confirmations.HandleInteraction(ctx, i.Interaction)
}

// SelfID is the bot's own user ID, empty until the gateway is ready
func (b *Bot) SelfID() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.selfID
}

func (b *Bot) setSelfID(id string) {
	if id == "" {
		return
	}
	b.mu.Lock()
	b.selfID = id
	b.mu.Unlock()
}

// toMessage converts a gateway message. Only messages written by selfID are
// flagged; other bots are ordinary authors.
func toMessage(m *discordgo.MessageCreate, selfID string) *dispatch.Message {
	if m == nil || m.Message == nil || m.Author == nil {
		return nil
	}

	msg := &dispatch.Message{
		ID:                m.ID,
		ChannelID:         m.ChannelID,
		GuildID:           m.GuildID,
		Content:           m.Content,
		AuthorID:          m.Author.ID,
		AuthorName:        m.Author.Username,
		AuthorDisplayName: m.Author.GlobalName,
		AuthorMention:     m.Author.Mention(),
		AuthorAvatarURL:   m.Author.AvatarURL(""),
		FromSelf:          selfID != "" && m.Author.ID == selfID,
	}
	if m.Member != nil && m.Member.Nick != "" {
		msg.AuthorDisplayName = m.Member.Nick
	}
	return msg
}
