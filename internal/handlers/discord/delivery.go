package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/SogeMoge/xwsbot/internal/errors"
	"github.com/SogeMoge/xwsbot/internal/orchestrators/dispatch"
)

// DeliveryConfig holds the dependencies for Delivery
type DeliveryConfig struct {
	Session       Session
	Confirmations *Confirmations
	// Logger (optional)
	Logger *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *DeliveryConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Session == nil {
		vb.RequiredField("Session")
	}
	if c.Confirmations == nil {
		vb.RequiredField("Confirmations")
	}
	return vb.Build()
}

// Delivery sends dispatcher output to Discord
type Delivery struct {
	session       Session
	confirmations *Confirmations
	logger        *zap.Logger
}

var _ dispatch.Delivery = (*Delivery)(nil)

// NewDelivery creates a Delivery
func NewDelivery(cfg *DeliveryConfig) (*Delivery, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	d := &Delivery{
		session:       cfg.Session,
		confirmations: cfg.Confirmations,
		logger:        cfg.Logger,
	}
	if d.logger == nil {
		d.logger = zap.NewNop()
	}
	return d, nil
}

// SendBlocks posts one embed per block, in order, stopping at the first failure
func (d *Delivery) SendBlocks(ctx context.Context, input *dispatch.SendBlocksInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}

	for i, b := range input.Blocks {
		embed := &discordgo.MessageEmbed{
			Description: b.Description,
			Color:       b.Color,
			Footer: &discordgo.MessageEmbedFooter{
				Text:    b.Footer,
				IconURL: b.FooterIconURL,
			},
		}
		if _, err := d.session.ChannelMessageSendEmbed(input.ChannelID, embed, discordgo.WithContext(ctx)); err != nil {
			return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to send embed %d of %d", i+1, len(input.Blocks)).
				WithMeta("channel_id", input.ChannelID)
		}
	}
	return nil
}

// SendNotice posts a plain text message
func (d *Delivery) SendNotice(ctx context.Context, input *dispatch.SendNoticeInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}

	if _, err := d.session.ChannelMessageSend(input.ChannelID, input.Text, discordgo.WithContext(ctx)); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to send notice").
			WithMeta("channel_id", input.ChannelID)
	}
	return nil
}

// Confirm posts the delete/keep prompt
func (d *Delivery) Confirm(ctx context.Context, input *dispatch.ConfirmInput) (<-chan dispatch.ConfirmOutcome, error) {
	return d.confirmations.Ask(ctx, input)
}

// DeleteMessage deletes a channel message
func (d *Delivery) DeleteMessage(ctx context.Context, input *dispatch.DeleteMessageInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}

	if err := d.session.ChannelMessageDelete(input.ChannelID, input.MessageID, discordgo.WithContext(ctx)); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete message").
			WithMeta("channel_id", input.ChannelID).
			WithMeta("message_id", input.MessageID)
	}
	return nil
}
