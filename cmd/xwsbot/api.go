package main

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SogeMoge/xwsbot/internal/config"
	"github.com/SogeMoge/xwsbot/internal/handlers/httpapi"
)

const apiShutdownTimeout = 30 * time.Second

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the reference data over HTTP",
	Long:  `Start the HTTP API: reference lookups by xws id and POST /reinit_db to rebuild the data.`,
	RunE:  runAPI,
}

func init() {
	apiCmd.Flags().String("http-addr", "", "listen address (env HTTP_ADDR)")
	bindFlag(apiCmd, config.KeyHTTPAddr, "http-addr")
}

func runAPI(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	if err := rt.cfg.ValidateAPI(); err != nil {
		return err
	}
	if err := rt.ping(ctx); err != nil {
		return err
	}

	handler, err := httpapi.New(&httpapi.Config{
		Repository: rt.store,
		Importer:   rt.importer,
		DataRoot:   rt.cfg.DataRoot,
		Logger:     rt.log.Named("http"),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              rt.cfg.HTTPAddr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	rt.log.Info("HTTP API starting", zap.String("addr", rt.cfg.HTTPAddr))
	if err := httpapi.Serve(ctx, srv, apiShutdownTimeout); err != nil {
		return err
	}
	rt.log.Info("HTTP API stopped")
	return nil
}
