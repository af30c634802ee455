package discord

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/SogeMoge/xwsbot/internal/errors"
	"github.com/SogeMoge/xwsbot/internal/orchestrators/dispatch"
	"github.com/SogeMoge/xwsbot/internal/pkg/idgen"
)

const (
	customIDPrefix = "xwsconfirm"
	actionDelete   = "delete"
	actionKeep     = "keep"

	// DeleteLabel and KeepLabel are the prompt button labels
	DeleteLabel = "Yes (Delete Original)"
	KeepLabel   = "No (Keep Original)"

	// NotRequesterText is the ephemeral reply to anyone else pressing a button
	NotRequesterText = "Directive override: Only the originator of the list may utilize these controls."
	// ExpiredText is the ephemeral reply to a button on a finished prompt
	ExpiredText = "This request has already been handled."

	promptCleanupTimeout = 10 * time.Second
)

// ConfirmationsConfig holds the dependencies for the prompt registry
type ConfirmationsConfig struct {
	Session Session
	// IDGenerator (optional) names prompts inside button custom IDs
	IDGenerator idgen.Generator
	// Logger (optional)
	Logger *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *ConfirmationsConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Session == nil {
		vb.RequiredField("Session")
	}
	return vb.Build()
}

// prompt is one pending delete/keep question. It leaves the registry on its
// first terminal transition; later ones are no-ops.
type prompt struct {
	id          string
	channelID   string
	messageID   string
	requesterID string
	result      chan dispatch.ConfirmOutcome
	timer       *time.Timer
}

// Confirmations tracks pending prompts and routes button presses to them
type Confirmations struct {
	session Session
	ids     idgen.Generator
	logger  *zap.Logger

	mu      sync.Mutex
	pending map[string]*prompt
}

// NewConfirmations creates an empty prompt registry
func NewConfirmations(cfg *ConfirmationsConfig) (*Confirmations, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := &Confirmations{
		session: cfg.Session,
		ids:     cfg.IDGenerator,
		logger:  cfg.Logger,
		pending: make(map[string]*prompt),
	}
	if c.ids == nil {
		c.ids = idgen.NewUUID("")
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c, nil
}

// Ask posts the prompt and returns a channel that receives exactly one
// outcome and is then closed.
func (c *Confirmations) Ask(ctx context.Context, input *dispatch.ConfirmInput) (<-chan dispatch.ConfirmOutcome, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Timeout <= 0 {
		return nil, errors.InvalidArgumentf("timeout must be positive, got %s", input.Timeout)
	}

	p := &prompt{
		id:          c.ids.Generate(),
		channelID:   input.ChannelID,
		requesterID: input.RequesterID,
		result:      make(chan dispatch.ConfirmOutcome, 1),
	}

	msg, err := c.session.ChannelMessageSendComplex(input.ChannelID, &discordgo.MessageSend{
		Content:    input.Text,
		Components: buttons(p.id),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to send confirmation prompt").
			WithMeta("channel_id", input.ChannelID)
	}
	p.messageID = msg.ID

	c.mu.Lock()
	c.pending[p.id] = p
	p.timer = time.AfterFunc(input.Timeout, func() {
		c.finish(p.id, dispatch.ConfirmTimeout)
	})
	c.mu.Unlock()

	return p.result, nil
}

// HandleInteraction answers a button press. Presses that are not ours are
// ignored.
func (c *Confirmations) HandleInteraction(ctx context.Context, i *discordgo.Interaction) {
	if i == nil || i.Type != discordgo.InteractionMessageComponent {
		return
	}

	id, outcome, ok := parseCustomID(i.MessageComponentData().CustomID)
	if !ok {
		return
	}

	log := c.logger.With(zap.String("prompt_id", id), zap.String("channel_id", i.ChannelID))

	c.mu.Lock()
	p, found := c.pending[id]
	c.mu.Unlock()

	if !found {
		c.reply(ctx, log, i, ExpiredText)
		return
	}

	userID := interactionUserID(i)
	if userID != p.requesterID {
		log.Info("Ignoring button press from another user", zap.String("user_id", userID))
		c.reply(ctx, log, i, NotRequesterText)
		return
	}

	if err := c.session.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}, discordgo.WithContext(ctx)); err != nil {
		log.Warn("Failed to acknowledge button press", zap.Error(err))
	}

	c.finish(id, outcome)
}

// CancelAll times out every pending prompt. Used on shutdown.
func (c *Confirmations) CancelAll() {
	c.mu.Lock()
	ids := make([]string, 0, len(c.pending))
	for id := range c.pending {
		ids = append(ids, id)
	}
	c.mu.Unlock()

	for _, id := range ids {
		c.finish(id, dispatch.ConfirmTimeout)
	}
}

// Pending returns the number of unanswered prompts
func (c *Confirmations) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (c *Confirmations) finish(id string, outcome dispatch.ConfirmOutcome) {
	c.mu.Lock()
	p, ok := c.pending[id]
	if ok {
		delete(c.pending, id)
		p.timer.Stop()
	}
	c.mu.Unlock()
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), promptCleanupTimeout)
	defer cancel()
	if err := c.session.ChannelMessageDelete(p.channelID, p.messageID, discordgo.WithContext(ctx)); err != nil {
		c.logger.Warn("Failed to delete confirmation prompt",
			zap.String("prompt_id", id),
			zap.String("message_id", p.messageID),
			zap.Error(err))
	}

	p.result <- outcome
	close(p.result)
}

func (c *Confirmations) reply(ctx context.Context, log *zap.Logger, i *discordgo.Interaction, text string) {
	err := c.session.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: text,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		log.Warn("Failed to send ephemeral reply", zap.Error(err))
	}
}

func buttons(id string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    DeleteLabel,
					Style:    discordgo.SuccessButton,
					CustomID: customID(actionDelete, id),
				},
				discordgo.Button{
					Label:    KeepLabel,
					Style:    discordgo.DangerButton,
					CustomID: customID(actionKeep, id),
				},
			},
		},
	}
}

func customID(action, id string) string {
	return customIDPrefix + ":" + action + ":" + id
}

func parseCustomID(raw string) (string, dispatch.ConfirmOutcome, bool) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 || parts[0] != customIDPrefix || parts[2] == "" {
		return "", dispatch.ConfirmTimeout, false
	}

	switch parts[1] {
	case actionDelete:
		return parts[2], dispatch.ConfirmDelete, true
	case actionKeep:
		return parts[2], dispatch.ConfirmKeep, true
	default:
		return "", dispatch.ConfirmTimeout, false
	}
}

// interactionUserID is the member in guilds and the user in DMs
func interactionUserID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
