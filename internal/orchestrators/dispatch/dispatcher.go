// Package dispatch runs one chat message through the squad pipeline: link
// detection, fetch, reference resolution, rendering, delivery and the
// delete/keep confirmation.
package dispatch

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/SogeMoge/xwsbot/internal/clients/yasb"
	"github.com/SogeMoge/xwsbot/internal/errors"
	"github.com/SogeMoge/xwsbot/internal/orchestrators/squad"
	"github.com/SogeMoge/xwsbot/internal/pkg/keylock"
	"github.com/SogeMoge/xwsbot/internal/pkg/logger"
	"github.com/SogeMoge/xwsbot/internal/render"
)

const (
	// DefaultConfirmTimeout is how long the requester has to answer the prompt
	DefaultConfirmTimeout = 120 * time.Second

	cleanupTimeout = 10 * time.Second
)

// Config holds the dependencies for the dispatcher
type Config struct {
	Fetcher  yasb.Client
	Resolver squad.Service
	Delivery Delivery

	// Locks (optional) serializes work per channel
	Locks *keylock.Table
	// Logger (optional)
	Logger *zap.Logger
	// RenderOptions (optional)
	RenderOptions *render.Options
	// Phrase (optional) picks the footer phrase
	Phrase func() string
	// ConfirmTimeout (optional, defaults to DefaultConfirmTimeout)
	ConfirmTimeout time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Fetcher == nil {
		vb.RequiredField("Fetcher")
	}
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.Delivery == nil {
		vb.RequiredField("Delivery")
	}
	if c.ConfirmTimeout < 0 {
		vb.Fieldf("ConfirmTimeout", "must not be negative, got %s", c.ConfirmTimeout)
	}
	return vb.Build()
}

// Dispatcher handles inbound messages
type Dispatcher struct {
	fetcher        yasb.Client
	resolver       squad.Service
	delivery       Delivery
	locks          *keylock.Table
	logger         *zap.Logger
	renderOpts     *render.Options
	phrase         func() string
	confirmTimeout time.Duration

	// in-flight requests and their confirmation waiters
	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

// New creates a dispatcher
func New(cfg *Config) (*Dispatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	d := &Dispatcher{
		fetcher:        cfg.Fetcher,
		resolver:       cfg.Resolver,
		delivery:       cfg.Delivery,
		locks:          cfg.Locks,
		logger:         cfg.Logger,
		renderOpts:     cfg.RenderOptions,
		phrase:         cfg.Phrase,
		confirmTimeout: cfg.ConfirmTimeout,
	}
	if d.locks == nil {
		d.locks = keylock.New(nil)
	}
	if d.logger == nil {
		d.logger = zap.NewNop()
	}
	if d.phrase == nil {
		d.phrase = func() string { return render.PickPhrase(nil) }
	}
	if d.confirmTimeout == 0 {
		d.confirmTimeout = DefaultConfirmTimeout
	}
	return d, nil
}

// HandleMessage processes one message end to end. It never panics and never
// returns an error: failures are logged and reported to the requester.
func (d *Dispatcher) HandleMessage(ctx context.Context, msg *Message) {
	if msg == nil || msg.FromSelf || msg.Content == "" {
		return
	}

	link, ok := yasb.FindLink(msg.Content)
	if !ok {
		return
	}

	if !d.begin() {
		d.logger.Info("Dropping list request during shutdown", zap.String("channel_id", msg.ChannelID))
		return
	}
	defer d.wg.Done()

	log := d.logger.With(
		zap.String("channel_id", msg.ChannelID),
		zap.String("user_id", msg.AuthorID),
		zap.String("user_name", msg.AuthorName),
	)

	unlock, err := d.locks.Lock(ctx, msg.ChannelID)
	if err != nil {
		log.Warn("Gave up waiting for channel lock", zap.Error(err))
		return
	}
	log.Info("Acquired lock")
	defer func() {
		unlock()
		log.Info("Released lock")
	}()

	log = log.With(zap.String("yasb_url", link))
	ctx = logger.WithContext(ctx, log)

	confirm, err := d.process(ctx, log, msg, link)
	if err != nil {
		d.fail(ctx, log, msg, err)
		return
	}

	if confirm != nil {
		// the outer count is still held, so this Add cannot race Wait
		d.wg.Add(1)
		go d.awaitConfirmation(context.WithoutCancel(ctx), log, msg, confirm)
	}
}

// process does the locked part of the work. A panic is turned into an error.
func (d *Dispatcher) process(ctx context.Context, log *zap.Logger, msg *Message, link string) (confirm <-chan ConfirmOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Recovered from panic while processing list",
				zap.Any("panic", r),
				zap.Stack("stack"))
			confirm = nil
			err = errors.Internalf("panic: %v", r)
		}
	}()

	log.Info("Processing list request")

	doc, err := d.fetcher.FetchSquad(ctx, link)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch squad").WithMeta("stage", stageFetch)
	}

	resolved, err := d.resolver.Resolve(ctx, &squad.ResolveInput{Link: link, Squad: doc})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve squad").WithMeta("stage", stageResolve)
	}

	blocks := render.Render(resolved.Squad, d.renderOpts)
	phrase := d.phrase()
	footerUser := msg.AuthorDisplayName
	if footerUser == "" {
		footerUser = msg.AuthorName
	}

	outgoing := make([]OutgoingBlock, len(blocks))
	for i, b := range blocks {
		outgoing[i] = OutgoingBlock{
			Description:   b.Description,
			Color:         b.Color,
			Footer:        render.Footer(phrase, footerUser, i+1, len(blocks)),
			FooterIconURL: msg.AuthorAvatarURL,
		}
	}

	log.Info("Sending embeds", zap.Int("count", len(outgoing)))
	if err := d.delivery.SendBlocks(ctx, &SendBlocksInput{ChannelID: msg.ChannelID, Blocks: outgoing}); err != nil {
		return nil, errors.Wrap(err, "failed to send squad").WithMeta("stage", stageSend)
	}

	confirm, err = d.delivery.Confirm(ctx, &ConfirmInput{
		ChannelID:   msg.ChannelID,
		MessageID:   msg.ID,
		RequesterID: msg.AuthorID,
		Text:        confirmText(footerUser),
		Timeout:     d.confirmTimeout,
	})
	if err != nil {
		// the squad is already posted; a missing prompt is not worth an apology
		log.Error("Failed to send confirmation buttons", zap.Error(err))
		return nil, nil
	}
	log.Info("Sent confirmation buttons", zap.String("message_id", msg.ID))

	return confirm, nil
}

func (d *Dispatcher) fail(ctx context.Context, log *zap.Logger, msg *Message, err error) {
	log.Error("List request failed",
		zap.String("code", errors.GetCode(err).String()),
		zap.Any("meta", errors.GetMeta(err)),
		zap.Error(err))

	text := noticeFor(err, msg.AuthorMention)
	if text == "" {
		return
	}

	noticeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()
	if sendErr := d.delivery.SendNotice(noticeCtx, &SendNoticeInput{ChannelID: msg.ChannelID, Text: text}); sendErr != nil {
		log.Error("Failed to send notice", zap.Error(sendErr))
	}
}

func (d *Dispatcher) awaitConfirmation(ctx context.Context, log *zap.Logger, msg *Message, confirm <-chan ConfirmOutcome) {
	defer d.wg.Done()

	outcome, ok := <-confirm
	if !ok {
		outcome = ConfirmTimeout
	}
	log.Info("Confirmation finished", zap.Stringer("outcome", outcome))

	if outcome != ConfirmDelete {
		return
	}

	deleteCtx, cancel := context.WithTimeout(ctx, cleanupTimeout)
	defer cancel()
	if err := d.delivery.DeleteMessage(deleteCtx, &DeleteMessageInput{ChannelID: msg.ChannelID, MessageID: msg.ID}); err != nil {
		log.Error("Failed to delete original message", zap.Error(err))
		return
	}
	log.Info("Deleted original message", zap.String("message_id", msg.ID))
}

// begin registers a request unless the dispatcher is stopping
func (d *Dispatcher) begin() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return false
	}
	d.wg.Add(1)
	return true
}

// Wait blocks until every in-flight request and its confirmation waiter has
// finished
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Stop refuses new requests, then waits like Wait. Call it once the gateway
// handlers are removed.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
	d.wg.Wait()
}
