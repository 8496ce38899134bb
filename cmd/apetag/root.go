package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/simonhull/apetag"
	"github.com/simonhull/apetag/internal/config"
	"github.com/simonhull/apetag/internal/logger"
)

// app carries state shared by subcommands once flags and config are loaded.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
}

// openOptions translates the loaded configuration into library options.
func (a *app) openOptions() []apetag.Option {
	return []apetag.Option{
		apetag.WithLogger(a.log),
		apetag.WithMaxTagSize(a.cfg.MaxTagSize),
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "apetag",
		Short: "Inspect and edit APEv2 tags",
		Long: `apetag reads and rewrites APEv2 tags, the key/value metadata blocks
appended to Musepack, WavPack, Monkey's Audio and MP3 files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg

			log, err := logger.New(logger.Config{Debug: cfg.Debug, LogFormat: cfg.LogFormat})
			if err != nil {
				return err
			}
			a.log = log
			if cfg.File != "" {
				log.Debug("loaded config", zap.String("file", cfg.File))
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync() //nolint:errcheck // Syncing stderr fails on some platforms
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./apetag.yaml)")
	flags.Bool("debug", false, "Enable debug logging")
	flags.String("log-format", "human", "Log format: json or human")
	flags.Int64("max-tag-size", 0, "Refuse tags with more item data than this many bytes (0 = no limit)")

	_ = a.v.BindPFlag("debug", flags.Lookup("debug"))
	_ = a.v.BindPFlag("log_format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("max_tag_size", flags.Lookup("max-tag-size"))

	root.AddCommand(
		newProbeCmd(a),
		newDumpCmd(a),
		newSetCmd(a),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := apetag.GetVersionInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "apetag %s (commit %s, built %s, %s)\n",
				info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
		},
	}
}
