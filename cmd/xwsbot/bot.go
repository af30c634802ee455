package main

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SogeMoge/xwsbot/internal/clients/yasb"
	"github.com/SogeMoge/xwsbot/internal/config"
	"github.com/SogeMoge/xwsbot/internal/errors"
	"github.com/SogeMoge/xwsbot/internal/handlers/discord"
	"github.com/SogeMoge/xwsbot/internal/orchestrators/dispatch"
	"github.com/SogeMoge/xwsbot/internal/orchestrators/squad"
	"github.com/SogeMoge/xwsbot/internal/pkg/idgen"
	"github.com/SogeMoge/xwsbot/internal/pkg/keylock"
	"github.com/SogeMoge/xwsbot/internal/services/importer"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Discord bot",
	Long:  `Connect to Discord and answer every message that carries an X-Wing Legacy builder link.`,
	RunE:  runBot,
}

func init() {
	botCmd.Flags().Bool("prepare", true, "rebuild the reference data before connecting (env PREPARE_ON_START)")
	bindFlag(botCmd, config.KeyPrepareOnStart, "prepare")
}

func runBot(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	if err := rt.cfg.ValidateBot(); err != nil {
		return err
	}
	if err := rt.ping(ctx); err != nil {
		return err
	}

	if rt.cfg.PrepareOnStart {
		if _, err := rt.importer.Prepare(ctx, &importer.PrepareInput{Root: rt.cfg.DataRoot}); err != nil {
			return errors.Wrap(err, "failed to prepare reference data")
		}
	}

	session, err := discordgo.New("Bot " + rt.cfg.DiscordToken)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create discord session")
	}
	session.Identify.Intents = discord.Intents

	fetcher, err := yasb.New(&yasb.Config{
		BaseURL:     rt.cfg.RBEndpoint,
		HTTPTimeout: rt.cfg.FetchTimeout,
	})
	if err != nil {
		return err
	}

	resolver, err := squad.NewOrchestrator(&squad.Config{
		Repository: rt.store,
		Logger:     rt.log.Named("squad"),
	})
	if err != nil {
		return err
	}

	confirmations, err := discord.NewConfirmations(&discord.ConfirmationsConfig{
		Session:     session,
		IDGenerator: idgen.NewUUID(""),
		Logger:      rt.log.Named("confirm"),
	})
	if err != nil {
		return err
	}

	delivery, err := discord.NewDelivery(&discord.DeliveryConfig{
		Session:       session,
		Confirmations: confirmations,
		Logger:        rt.log.Named("delivery"),
	})
	if err != nil {
		return err
	}

	locks := keylock.New(&keylock.Config{IdleTTL: rt.cfg.LockIdleTTL})

	dispatcher, err := dispatch.New(&dispatch.Config{
		Fetcher:        fetcher,
		Resolver:       resolver,
		Delivery:       delivery,
		Locks:          locks,
		Logger:         rt.log.Named("dispatch"),
		ConfirmTimeout: rt.cfg.ConfirmTimeout,
	})
	if err != nil {
		return err
	}

	bot, err := discord.NewBot(&discord.BotConfig{
		Messages:      dispatcher,
		Confirmations: confirmations,
		Logger:        rt.log.Named("discord"),
	})
	if err != nil {
		return err
	}

	removers := bot.Register(ctx, session)

	if err := session.Open(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open discord session")
	}

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go locks.RunJanitor(janitorCtx, janitorInterval(rt.cfg.LockIdleTTL))

	rt.log.Info("Bot running, press Ctrl+C to stop")
	<-ctx.Done()
	rt.log.Info("Received shutdown signal, gracefully stopping...")

	for _, remove := range removers {
		remove()
	}
	confirmations.CancelAll()
	dispatcher.Stop()

	if err := session.Close(); err != nil {
		rt.log.Warn("Failed to close discord session", zap.Error(err))
	}
	rt.log.Info("Bot stopped")
	return nil
}

func janitorInterval(ttl time.Duration) time.Duration {
	return max(ttl/2, time.Minute)
}
