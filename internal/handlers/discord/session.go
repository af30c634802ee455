// Package discord adapts a discordgo session to the dispatcher: gateway
// events in, embeds, notices and confirmation prompts out.
package discord

import (
	"github.com/bwmarrin/discordgo"
)

//go:generate mockgen -destination=mock/mock_session.go -package=discordmock github.com/SogeMoge/xwsbot/internal/handlers/discord Session

// Session is the part of *discordgo.Session the bot talks to
type Session interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

var _ Session = (*discordgo.Session)(nil)
