package main

import (
	"github.com/spf13/cobra"

	"github.com/SogeMoge/xwsbot/internal/services/importer"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Rebuild the reference data from xwing-data2",
	Long:  `Drop every reference record in Redis and import factions, ships, pilots and upgrades from the xwing-data2 data directory.`,
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	if err := rt.ping(ctx); err != nil {
		return err
	}

	out, err := rt.importer.Prepare(ctx, &importer.PrepareInput{Root: rt.cfg.DataRoot})
	if err != nil {
		return err
	}

	cmd.Printf("Imported %d factions, %d ships, %d pilots, %d upgrades from %s\n",
		out.Factions, out.Ships, out.Pilots, out.Upgrades, rt.cfg.DataRoot)
	for _, f := range out.SkippedFiles {
		cmd.Printf("  skipped %s\n", f)
	}
	return nil
}
