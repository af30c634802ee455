package discord_test

import (
	"context"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/SogeMoge/xwsbot/internal/errors"
	"github.com/SogeMoge/xwsbot/internal/handlers/discord"
	discordmock "github.com/SogeMoge/xwsbot/internal/handlers/discord/mock"
	"github.com/SogeMoge/xwsbot/internal/orchestrators/dispatch"
)

type recordingHandler struct {
	mu       sync.Mutex
	messages []*dispatch.Message
}

func (h *recordingHandler) HandleMessage(_ context.Context, msg *dispatch.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, msg)
}

type recordingAdder struct {
	handlers []interface{}
}

func (a *recordingAdder) AddHandler(handler interface{}) func() {
	a.handlers = append(a.handlers, handler)
	return func() {}
}

type BotTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	session *discordmock.MockSession
	handler *recordingHandler
	logs    *observer.ObservedLogs
	bot     *discord.Bot
	ctx     context.Context
}

func (s *BotTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.session = discordmock.NewMockSession(s.ctrl)
	s.handler = &recordingHandler{}
	s.ctx = context.Background()

	core, logs := observer.New(zapcore.InfoLevel)
	s.logs = logs

	confirmations, err := discord.NewConfirmations(&discord.ConfirmationsConfig{Session: s.session})
	s.Require().NoError(err)

	b, err := discord.NewBot(&discord.BotConfig{
		Messages:      s.handler,
		Confirmations: confirmations,
		Logger:        zap.New(core),
	})
	s.Require().NoError(err)
	s.bot = b
}

func (s *BotTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BotTestSuite) TestMessageCreateConversion() {
	testCases := []struct {
		name        string
		member      *discordgo.Member
		globalName  string
		wantDisplay string
	}{
		{name: "guild nickname wins", member: &discordgo.Member{Nick: "Mando"}, globalName: "Din Djarin", wantDisplay: "Mando"},
		{name: "global name without nickname", member: &discordgo.Member{}, globalName: "Din Djarin", wantDisplay: "Din Djarin"},
		{name: "direct message", globalName: "", wantDisplay: ""},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.handler.messages = nil

			s.bot.OnMessageCreate(s.ctx, &discordgo.MessageCreate{Message: &discordgo.Message{
				ID:        "m1",
				ChannelID: "c1",
				GuildID:   "g1",
				Content:   "https://xwing-legacy.com/?f=x",
				Member:    tc.member,
				Author: &discordgo.User{
					ID:         "42",
					Username:   "din",
					GlobalName: tc.globalName,
					Bot:        false,
				},
			}})

			s.Require().Len(s.handler.messages, 1)
			msg := s.handler.messages[0]
			s.Equal("m1", msg.ID)
			s.Equal("c1", msg.ChannelID)
			s.Equal("g1", msg.GuildID)
			s.Equal("42", msg.AuthorID)
			s.Equal("din", msg.AuthorName)
			s.Equal("<@42>", msg.AuthorMention)
			s.Equal(tc.wantDisplay, msg.AuthorDisplayName)
			s.NotEmpty(msg.AuthorAvatarURL)
			s.False(msg.FromSelf)
		})
	}
}

func (s *BotTestSuite) TestMessageCreateWithoutAuthorIsDropped() {
	s.bot.OnMessageCreate(s.ctx, nil)
	s.bot.OnMessageCreate(s.ctx, &discordgo.MessageCreate{Message: &discordgo.Message{Content: "x"}})
	s.Empty(s.handler.messages)
}

func (s *BotTestSuite) TestOnlyOwnMessagesAreFlagged() {
	testCases := []struct {
		name     string
		ready    bool
		author   *discordgo.User
		wantSelf bool
	}{
		{name: "another bot relaying a link", ready: true, author: &discordgo.User{ID: "7", Bot: true}, wantSelf: false},
		{name: "human author", ready: true, author: &discordgo.User{ID: "42"}, wantSelf: false},
		{name: "own message", ready: true, author: &discordgo.User{ID: "99", Bot: true}, wantSelf: true},
		{name: "own message before ready", author: &discordgo.User{ID: "99", Bot: true}, wantSelf: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.ready {
				s.bot.OnReady(&discordgo.Ready{User: &discordgo.User{ID: "99", Username: "xwsbot"}})
			}

			s.bot.OnMessageCreate(s.ctx, &discordgo.MessageCreate{Message: &discordgo.Message{
				Content: "https://xwing-legacy.com/?f=x",
				Author:  tc.author,
			}})

			s.Require().Len(s.handler.messages, 1)
			s.Equal(tc.wantSelf, s.handler.messages[0].FromSelf)
		})
	}
}

func (s *BotTestSuite) TestSelfIDFromSessionState() {
	adder := &recordingAdder{}
	s.bot.Register(s.ctx, adder)
	onMessage, ok := adder.handlers[1].(func(*discordgo.Session, *discordgo.MessageCreate))
	s.Require().True(ok)

	sess := &discordgo.Session{State: discordgo.NewState()}
	sess.State.User = &discordgo.User{ID: "99"}

	onMessage(sess, &discordgo.MessageCreate{Message: &discordgo.Message{Content: "x", Author: &discordgo.User{ID: "99"}}})

	s.Equal("99", s.bot.SelfID())
	s.Require().Len(s.handler.messages, 1)
	s.True(s.handler.messages[0].FromSelf)
}

func (s *BotTestSuite) TestInteractionRoutesToConfirmations() {
	s.session.EXPECT().
		InteractionRespond(gomock.Any(), ephemeral(discord.ExpiredText), gomock.Any()).
		Return(nil)

	s.bot.OnInteractionCreate(s.ctx, &discordgo.InteractionCreate{Interaction: press("xwsconfirm:keep:gone", requester)})
	s.bot.OnInteractionCreate(s.ctx, nil)
}

func (s *BotTestSuite) TestReadyIsLogged() {
	s.bot.OnReady(&discordgo.Ready{User: &discordgo.User{ID: "99", Username: "xwsbot"}, Guilds: []*discordgo.Guild{{ID: "g1"}}})
	s.bot.OnReady(nil)
	s.Equal("99", s.bot.SelfID())

	entries := s.logs.FilterMessage("Logged in").All()
	s.Require().Len(entries, 1)
	s.Equal("xwsbot", entries[0].ContextMap()["user"])
	s.EqualValues(1, entries[0].ContextMap()["guilds"])
}

func (s *BotTestSuite) TestRegisterAddsGatewayHandlers() {
	adder := &recordingAdder{}
	removers := s.bot.Register(s.ctx, adder)

	s.Len(removers, 3)
	s.Require().Len(adder.handlers, 3)

	onMessage, ok := adder.handlers[1].(func(*discordgo.Session, *discordgo.MessageCreate))
	s.Require().True(ok)
	onMessage(nil, &discordgo.MessageCreate{Message: &discordgo.Message{Content: "x", Author: &discordgo.User{ID: "42"}}})
	s.Len(s.handler.messages, 1)
}

func (s *BotTestSuite) TestNewBotValidation() {
	_, err := discord.NewBot(&discord.BotConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = discord.NewBot(nil)
	s.True(errors.IsInvalidArgument(err))
}

func TestBotTestSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}
