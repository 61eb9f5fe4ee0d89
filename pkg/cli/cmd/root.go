package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rzbill/armkit/internal/config"
	"github.com/rzbill/armkit/pkg/catalog"
	"github.com/rzbill/armkit/pkg/cli/format"
	"github.com/rzbill/armkit/pkg/log"
	"github.com/rzbill/armkit/pkg/store"
	"github.com/rzbill/armkit/pkg/version"
	"github.com/spf13/cobra"
)

// app carries the state shared by every command. It is filled in by the
// root command's PersistentPreRunE.
type app struct {
	cfgFile string
	verbose bool
	output  string

	cfg     *config.Config
	logger  log.Logger
	catalog *catalog.Catalog
}

// NewRootCmd builds the armkit command tree.
func NewRootCmd() *cobra.Command {
	a := &app{catalog: catalog.Default()}

	rootCmd := &cobra.Command{
		Use:   "armkit",
		Short: "Armkit - decode, validate and snapshot Azure Resource Manager payloads",
		Long: `Armkit decodes Health Bot and Security Insights resource payloads,
validates required fields, resolves polymorphic kinds and keeps
snapshots of decoded resources in a local store.`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.armkit/config.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVarP(&a.output, "output", "o", "", "output format (json, yaml)")

	rootCmd.AddCommand(
		newDecodeCmd(a),
		newEnumsCmd(a),
		newKindsCmd(a),
		newTypesCmd(a),
		newPagesCmd(a),
		newImportCmd(a),
		newGetCmd(a),
		newListCmd(a),
		newDeleteCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, format.Error("Error: %v", err))
		stop()
		os.Exit(1)
	}
}

// setup loads the config, applies flag overrides and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.output != "" {
		cfg.Output = a.output
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := log.ApplyConfig(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	log.SetDefaultLogger(logger)
	format.EnableColor(format.ShouldColor(cfg.Color, os.Stdout))

	a.cfg = cfg
	a.logger = logger
	cmd.SetContext(log.WithLogger(cmd.Context(), logger))

	logger.Debug("Loaded configuration",
		log.Str("data_dir", cfg.DataDir),
		log.Str("output", cfg.Output),
		log.Int("max_pages", cfg.MaxPages))
	return nil
}

// openStore opens the snapshot store under the configured data directory.
// The caller closes it.
func (a *app) openStore() (store.Store, error) {
	st := store.NewBadgerStore(a.logger)
	if err := st.Open(a.cfg.DataDir); err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", a.cfg.DataDir, err)
	}
	return st, nil
}
